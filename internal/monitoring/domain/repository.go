package domain

import (
	"context"
	"errors"
)

var ErrMonitorNotFound = errors.New("could not find monitor with this id")

var ErrTeamNotFound = errors.New("could not find team with this id")

// CheckRepository defines the interface for check persistence
type CheckRepository interface {
	// CreateCheck stores a result for an existing monitor and returns the
	// check with its assigned id and timestamp.
	CreateCheck(ctx context.Context, monitorID string, result CheckResult) (Check, error)
	GetChecks(ctx context.Context, filters CheckFilters) ([]Check, error)
	GetChecksCount(ctx context.Context, filters CheckFilters) (int64, error)
	// GetTeamChecks returns checks across every monitor owned by
	// filters.TeamID as a single ordered sequence.
	GetTeamChecks(ctx context.Context, filters CheckFilters) ([]Check, error)
}

// MonitorRepository defines the interface for the team and monitor registry
type MonitorRepository interface {
	UpsertTeam(ctx context.Context, team Team) error
	UpsertMonitor(ctx context.Context, monitor Monitor) error
	ListMonitors(ctx context.Context) ([]Monitor, error)
}

// Repository is implemented by every storage engine
type Repository interface {
	CheckRepository
	MonitorRepository
	Close(ctx context.Context) error
}
