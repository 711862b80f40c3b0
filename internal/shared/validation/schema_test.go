package validation

import (
	"errors"
	"net/url"
	"testing"
)

func TestSchema_Validate(t *testing.T) {
	body := Schema{
		Path: "body",
		Fields: []Field{
			Required("monitorId", NonEmpty()),
			Required("status", Boolean()),
			Required("responseTime", Number(), Min(0)),
			Required("statusCode", Integer()),
			Optional("message", String()),
		},
	}

	tests := []struct {
		name      string
		values    map[string]any
		wantField string
		want      map[string]any
	}{
		{
			name: "valid",
			values: map[string]any{
				"monitorId":    "m1",
				"status":       true,
				"responseTime": float64(100),
				"statusCode":   float64(200),
				"message":      "ok",
			},
			want: map[string]any{
				"monitorId":    "m1",
				"status":       true,
				"responseTime": float64(100),
				"statusCode":   200,
				"message":      "ok",
			},
		},
		{
			name: "optional field absent",
			values: map[string]any{
				"monitorId":    "m1",
				"status":       false,
				"responseTime": float64(0),
				"statusCode":   float64(500),
			},
			want: map[string]any{
				"monitorId":    "m1",
				"status":       false,
				"responseTime": float64(0),
				"statusCode":   500,
			},
		},
		{
			name:      "empty object fails on first required field",
			values:    map[string]any{},
			wantField: "monitorId",
		},
		{
			name: "negative response time",
			values: map[string]any{
				"monitorId":    "m1",
				"status":       true,
				"responseTime": float64(-1),
				"statusCode":   float64(200),
			},
			wantField: "responseTime",
		},
		{
			name: "fractional status code",
			values: map[string]any{
				"monitorId":    "m1",
				"status":       true,
				"responseTime": float64(1),
				"statusCode":   200.5,
			},
			wantField: "statusCode",
		},
		{
			name: "wrong status type",
			values: map[string]any{
				"monitorId":    "m1",
				"status":       float64(1),
				"responseTime": float64(1),
				"statusCode":   float64(200),
			},
			wantField: "status",
		},
		{
			name: "null required field",
			values: map[string]any{
				"monitorId":    "m1",
				"status":       nil,
				"responseTime": float64(1),
				"statusCode":   float64(200),
			},
			wantField: "status",
		},
		{
			name: "unknown field",
			values: map[string]any{
				"monitorId":    "m1",
				"status":       true,
				"responseTime": float64(1),
				"statusCode":   float64(200),
				"extra":        "x",
			},
			wantField: "extra",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := body.Validate(tt.values)

			if tt.wantField != "" {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				if valErr.Path != "body" {
					t.Errorf("expected path %q, got %q", "body", valErr.Path)
				}
				if _, ok := valErr.Problems[tt.wantField]; !ok {
					t.Errorf("expected problem for %q, got %v", tt.wantField, valErr.Problems)
				}
				if len(valErr.Problems) != 1 {
					t.Errorf("expected exactly one problem, got %v", valErr.Problems)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d values, got %d: %v", len(tt.want), len(got), got)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("expected %s=%v (%T), got %v (%T)", k, v, v, got[k], got[k])
				}
			}
		})
	}
}

func TestSchema_ValidateQuery(t *testing.T) {
	query := Schema{
		Path: "query",
		Fields: []Field{
			Optional("sortOrder", OneOf("asc", "desc")),
			Optional("page", Integer(), Min(0)),
			Optional("rowsPerPage", Integer(), Min(1), Max(100)),
		},
		AllowUnknown: true,
	}

	tests := []struct {
		name      string
		query     string
		wantField string
		want      map[string]any
	}{
		{
			name:  "empty query",
			query: "",
			want:  map[string]any{},
		},
		{
			name:  "coerces strings",
			query: "sortOrder=asc&page=2&rowsPerPage=10",
			want:  map[string]any{"sortOrder": "asc", "page": 2, "rowsPerPage": 10},
		},
		{
			name:  "unknown keys ignored",
			query: "cacheBust=123",
			want:  map[string]any{},
		},
		{
			name:      "not a number",
			query:     "page=abc",
			wantField: "page",
		},
		{
			name:      "empty number",
			query:     "page=",
			wantField: "page",
		},
		{
			name:      "above max",
			query:     "rowsPerPage=101",
			wantField: "rowsPerPage",
		},
		{
			name:      "not in set",
			query:     "sortOrder=up",
			wantField: "sortOrder",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("bad query: %v", err)
			}

			got, err := query.Validate(FromQuery(values))
			if tt.wantField != "" {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				if _, ok := valErr.Problems[tt.wantField]; !ok {
					t.Errorf("expected problem for %q, got %v", tt.wantField, valErr.Problems)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("expected %s=%v, got %v", k, v, got[k])
				}
			}
		})
	}
}

func TestRules(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		value   any
		want    any
		wantErr bool
	}{
		{name: "string ok", rule: String(), value: "x", want: "x"},
		{name: "string rejects number", rule: String(), value: float64(1), wantErr: true},
		{name: "non-empty rejects blank", rule: NonEmpty(), value: "  ", wantErr: true},
		{name: "boolean from string", rule: Boolean(), value: "false", want: false},
		{name: "boolean rejects other string", rule: Boolean(), value: "yes", wantErr: true},
		{name: "number from string", rule: Number(), value: "12.5", want: 12.5},
		{name: "number rejects NaN", rule: Number(), value: "NaN", wantErr: true},
		{name: "integer from float", rule: Integer(), value: float64(7), want: 7},
		{name: "integer rejects fraction", rule: Integer(), value: "7.2", wantErr: true},
		{name: "min boundary", rule: Min(0), value: float64(0), want: float64(0)},
		{name: "max boundary", rule: Max(10), value: 10, want: 10},
		{name: "one of", rule: OneOf("a", "b"), value: "b", want: "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.rule(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v (%T), got %v (%T)", tt.want, tt.want, got, got)
			}
		})
	}
}
