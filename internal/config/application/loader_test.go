package application

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"checkhub/internal/infrastructure/logger"
	monitoringdomain "checkhub/internal/monitoring/domain"
	monitoringinfra "checkhub/internal/monitoring/infrastructure"
	"checkhub/internal/shared/validation"
)

func setupTestLoader(t *testing.T) (*Loader, *monitoringinfra.MemoryRepository) {
	repo := monitoringinfra.NewMemoryRepository()
	return NewLoader(logger.DefaultLogger(), repo), repo
}

func TestLoader_LoadConfig(t *testing.T) {
	tests := []struct {
		name         string
		config       string
		expectError  bool
		errorType    string
		wantMonitors []string
	}{
		{
			name: "valid config with monitors",
			config: `{
				"name": "test-instance",
				"teams": [
					{
						"id": "t1",
						"name": "Team One",
						"monitors": [
							{"id": "m1", "name": "api"},
							{"id": "m2", "name": "web"}
						]
					},
					{
						"id": "t2",
						"monitors": [{"id": "m3"}]
					}
				]
			}`,
			expectError:  false,
			wantMonitors: []string{"m1", "m2", "m3"},
		},
		{
			name: "team without monitors",
			config: `{
				"name": "test-instance",
				"teams": [{"id": "t1"}]
			}`,
			expectError:  false,
			wantMonitors: []string{},
		},
		{
			name: "invalid JSON",
			config: `{
				"name": "test-instance",
				"teams": [
			`,
			expectError: true,
			errorType:   "parse",
		},
		{
			name: "config validation error - empty name",
			config: `{
				"name": "",
				"teams": [{"id": "t1"}]
			}`,
			expectError: true,
			errorType:   "validation",
		},
		{
			name: "config validation error - empty teams",
			config: `{
				"name": "test-instance",
				"teams": []
			}`,
			expectError: true,
			errorType:   "validation",
		},
		{
			name: "missing team id",
			config: `{
				"name": "test-instance",
				"teams": [{"id": "t1"}, {"name": "nameless"}]
			}`,
			expectError: true,
			errorType:   "missing-id",
		},
		{
			name: "missing monitor id",
			config: `{
				"name": "test-instance",
				"teams": [{"id": "t1", "monitors": [{"name": "x"}]}]
			}`,
			expectError: true,
			errorType:   "missing-id",
		},
		{
			name: "duplicate team",
			config: `{
				"name": "test-instance",
				"teams": [{"id": "t1"}, {"id": "t1"}]
			}`,
			expectError: true,
			errorType:   "duplicate",
		},
		{
			name: "duplicate monitor across teams",
			config: `{
				"name": "test-instance",
				"teams": [
					{"id": "t1", "monitors": [{"id": "m1"}]},
					{"id": "t2", "monitors": [{"id": "m1"}]}
				]
			}`,
			expectError: true,
			errorType:   "duplicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, repo := setupTestLoader(t)

			rawConfig := []byte(tt.config)
			err := loader.LoadConfig(context.Background(), rawConfig)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error, got nil")
					return
				}

				switch tt.errorType {
				case "parse":
					if !strings.HasPrefix(err.Error(), "failed to parse config") {
						t.Errorf("expected parse error, got: %v", err)
					}
				case "validation":
					var valErr *validation.ValidationError
					if !errors.As(err, &valErr) {
						t.Errorf("expected validation error, got: %v", err)
					}
				case "missing-id":
					var idErr *validation.MissingIDError
					if !errors.As(err, &idErr) {
						t.Errorf("expected missing id error, got: %v", err)
					}
				case "duplicate":
					var dupErr *validation.DuplicateFoundError
					if !errors.As(err, &dupErr) {
						t.Errorf("expected duplicate error, got: %v", err)
					}
				}

				if loader.GetConfig() != nil {
					t.Error("expected no config to be stored after a failed load")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(loader.GetConfig()) != tt.config {
				t.Errorf("expected stored config to match input")
			}

			monitors, err := repo.ListMonitors(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(monitors) != len(tt.wantMonitors) {
				t.Fatalf("expected %d monitors, got %d", len(tt.wantMonitors), len(monitors))
			}
			for i, m := range monitors {
				if m.ID != tt.wantMonitors[i] {
					t.Errorf("expected monitor %q, got %q", tt.wantMonitors[i], m.ID)
				}
			}
		})
	}
}

func TestLoader_LoadConfig_MonitorsAcceptChecks(t *testing.T) {
	loader, repo := setupTestLoader(t)

	err := loader.LoadConfig(context.Background(), []byte(`{
		"name": "test-instance",
		"teams": [{"id": "t1", "monitors": [{"id": "m1"}]}]
	}`))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if _, err := repo.CreateCheck(context.Background(), "m1", monitoringdomain.CheckResult{Status: true}); err != nil {
		t.Errorf("expected registered monitor to accept checks, got %v", err)
	}
}

func TestLoader_LoadConfig_ConcurrentAccess(t *testing.T) {
	loader, _ := setupTestLoader(t)

	config := `{
		"name": "test-instance",
		"teams": [{"id": "t1", "monitors": [{"id": "m1"}]}]
	}`

	var wg sync.WaitGroup
	errors := make(chan error, 10)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := loader.LoadConfig(context.Background(), []byte(config))
			if err != nil {
				errors <- err
			}
		}()
	}

	wg.Wait()
	close(errors)

	for err := range errors {
		t.Errorf("unexpected error during concurrent access: %v", err)
	}
}
