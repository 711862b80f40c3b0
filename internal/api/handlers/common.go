package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	api "checkhub/internal/api/application"
	"checkhub/internal/infrastructure/logger"
	monitoringdomain "checkhub/internal/monitoring/domain"
	"checkhub/internal/shared/validation"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// getLogger extracts the logger from the request context
// Falls back to slog.Default() if not found
func getLogger(r *http.Request) *slog.Logger {
	return logger.FromContext(r.Context())
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondJSONError sends a JSON error response
func respondJSONError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, api.ErrorResponse{Success: false, Msg: message})
}

// respondError is the single exit for failed requests. Validation problems
// are reported to the caller; storage failures are logged and reported
// generically.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	logger := getLogger(r)

	var valErr *validation.ValidationError
	switch {
	case errors.As(err, &valErr):
		logger.Debug("Request validation failed", "err", valErr.Message())
		respondJSONError(w, valErr.StatusCode(), valErr.Message())
	case errors.Is(err, monitoringdomain.ErrMonitorNotFound):
		logger.Debug("Monitor not found", "path", r.URL.Path)
		respondJSONError(w, http.StatusNotFound, "Monitor not found")
	default:
		logger.Error("Request failed", "path", r.URL.Path, "err", err)
		respondJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// checkRequest collects path params, query and the decoded JSON body
func checkRequest(w http.ResponseWriter, r *http.Request, withBody bool) (api.CheckRequest, error) {
	req := api.CheckRequest{
		Params: pathParams(r),
		Query:  r.URL.Query(),
	}
	if !withBody || r.Body == nil {
		return req, nil
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return req, validation.NewValidationError(map[string]string{"": "could not be read"}, "body")
	}
	if len(raw) == 0 {
		return req, nil
	}

	if err := json.Unmarshal(raw, &req.Body); err != nil {
		return req, validation.NewValidationError(map[string]string{"": "must be valid JSON"}, "body")
	}
	return req, nil
}

func pathParams(r *http.Request) map[string]string {
	params := make(map[string]string)
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return params
	}
	for i, key := range rctx.URLParams.Keys {
		if i < len(rctx.URLParams.Values) {
			params[key] = rctx.URLParams.Values[i]
		}
	}
	return params
}
