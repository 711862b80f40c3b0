package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	api "checkhub/internal/api/application"
	"checkhub/internal/infrastructure/logger"
)

func TestAPIKeyAuthWithKey(t *testing.T) {
	tests := []struct {
		name           string
		configuredKey  string
		headerKey      string
		path           string
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "valid API key",
			configuredKey:  "test-api-key",
			headerKey:      "test-api-key",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing API key header",
			configuredKey:  "test-api-key",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid or missing API key",
		},
		{
			name:           "invalid API key",
			configuredKey:  "test-api-key",
			headerKey:      "wrong-key",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid or missing API key",
		},
		{
			name:           "key not configured",
			headerKey:      "any-key",
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "API key not configured",
		},
		{
			name:           "swagger skips auth",
			configuredKey:  "test-api-key",
			path:           "/swagger/index.html",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("OK"))
			})
			handler := APIKeyAuthWithKey(tt.configuredKey)(nextHandler)

			path := tt.path
			if path == "" {
				path = "/api/v1/monitors"
			}
			req := httptest.NewRequest(http.MethodGet, path, nil)
			if tt.headerKey != "" {
				req.Header.Set("X-API-Key", tt.headerKey)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.expectedStatus == http.StatusOK {
				if w.Body.String() != "OK" {
					t.Errorf("expected next handler to be called, got body: %q", w.Body.String())
				}
				return
			}

			var resp api.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Success || resp.Msg != tt.expectedMsg {
				t.Errorf("unexpected error response: %+v", resp)
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	base := slog.Default()

	var got *slog.Logger
	handler := chimiddleware.RequestID(RequestLogger(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = logger.FromContext(r.Context())
	})))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got == nil {
		t.Fatal("expected a logger in the request context")
	}
	if got == base {
		t.Error("expected the request logger to carry the request id")
	}
}
