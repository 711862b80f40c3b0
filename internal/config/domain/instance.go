package domain

import (
	"context"
	"strings"
)

// InstanceConfig represents the top-level registry configuration
type InstanceConfig struct {
	Name  string       `json:"name"`
	Teams []TeamConfig `json:"teams"`
}

// TeamConfig declares a team and the monitors it owns
type TeamConfig struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Monitors []MonitorConfig `json:"monitors"`
}

// MonitorConfig declares a monitor that checks may be reported for
type MonitorConfig struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c *InstanceConfig) Valid(ctx context.Context) map[string]string {
	problems := make(map[string]string, 2)

	if strings.TrimSpace(c.Name) == "" {
		problems["name"] = "'name' is required"
	}

	if len(c.Teams) == 0 {
		problems["teams"] = "teams cannot be empty"
	}

	return problems
}
