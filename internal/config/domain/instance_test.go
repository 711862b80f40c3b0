package domain

import (
	"context"
	"testing"
)

func TestInstanceConfig_Valid(t *testing.T) {
	tests := []struct {
		name      string
		config    InstanceConfig
		wantError bool
		errorKeys []string
	}{
		{
			name: "valid config",
			config: InstanceConfig{
				Name: "test-instance",
				Teams: []TeamConfig{
					{ID: "t1", Monitors: []MonitorConfig{{ID: "m1"}}},
				},
			},
			wantError: false,
		},
		{
			name: "team without monitors",
			config: InstanceConfig{
				Name:  "test-instance",
				Teams: []TeamConfig{{ID: "t1"}},
			},
			wantError: false,
		},
		{
			name: "empty name",
			config: InstanceConfig{
				Name:  "",
				Teams: []TeamConfig{{ID: "t1"}},
			},
			wantError: true,
			errorKeys: []string{"name"},
		},
		{
			name: "empty teams",
			config: InstanceConfig{
				Name:  "test-instance",
				Teams: []TeamConfig{},
			},
			wantError: true,
			errorKeys: []string{"teams"},
		},
		{
			name: "nil teams",
			config: InstanceConfig{
				Name:  "test-instance",
				Teams: nil,
			},
			wantError: true,
			errorKeys: []string{"teams"},
		},
		{
			name: "multiple validation errors",
			config: InstanceConfig{
				Name:  "",
				Teams: []TeamConfig{},
			},
			wantError: true,
			errorKeys: []string{"name", "teams"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := tt.config.Valid(context.Background())

			if tt.wantError {
				if len(problems) == 0 {
					t.Errorf("expected validation errors, got none")
					return
				}

				for _, key := range tt.errorKeys {
					if _, ok := problems[key]; !ok {
						t.Errorf("expected error for key %q, but it was not found in %v", key, problems)
					}
				}
			} else {
				if len(problems) > 0 {
					t.Errorf("expected no validation errors, got: %v", problems)
				}
			}
		})
	}
}
