package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"checkhub/internal/config/domain"
	monitoringdomain "checkhub/internal/monitoring/domain"
	sharedlogger "checkhub/internal/shared/logger"
	"checkhub/internal/shared/validation"
)

// Loader applies registry configuration to the monitor repository
type Loader struct {
	logger   sharedlogger.Logger
	registry monitoringdomain.MonitorRepository

	mu     sync.RWMutex
	rawCfg []byte
}

// NewLoader creates a new configuration loader
func NewLoader(logger sharedlogger.Logger, registry monitoringdomain.MonitorRepository) *Loader {
	return &Loader{
		logger:   logger,
		registry: registry,
	}
}

// LoadConfig parses, validates and applies configuration from raw JSON bytes.
// Teams and monitors are upserted; entries missing from the new config are
// left in place so their check history stays queryable.
func (l *Loader) LoadConfig(ctx context.Context, rawConfig []byte) error {
	var cfg domain.InstanceConfig
	err := json.Unmarshal(rawConfig, &cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	problems := cfg.Valid(ctx)
	if len(problems) > 0 {
		return validation.NewValidationError(problems, cfg.Name)
	}

	if err := checkIDs(cfg); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	monitorCount := 0
	for _, team := range cfg.Teams {
		err := l.registry.UpsertTeam(ctx, monitoringdomain.Team{ID: team.ID, Name: team.Name})
		if err != nil {
			return fmt.Errorf("failed to register team %s: %w", team.ID, err)
		}

		for _, monitor := range team.Monitors {
			err := l.registry.UpsertMonitor(ctx, monitoringdomain.Monitor{
				ID:     monitor.ID,
				TeamID: team.ID,
				Name:   monitor.Name,
			})
			if err != nil {
				return fmt.Errorf("failed to register monitor %s: %w", monitor.ID, err)
			}
			monitorCount++
		}
		l.logger.Debug("Registered team", "team_id", team.ID, "monitor_count", len(team.Monitors))
	}

	l.rawCfg = append([]byte(nil), rawConfig...)
	l.logger.Info("Registry configuration applied", "instance", cfg.Name, "team_count", len(cfg.Teams), "monitor_count", monitorCount)
	return nil
}

// GetConfig returns the last successfully applied configuration, or nil
func (l *Loader) GetConfig() []byte {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.rawCfg
}

// checkIDs requires every team and monitor to have an id that is unique
// across the whole configuration.
func checkIDs(cfg domain.InstanceConfig) error {
	teams := make(map[string]struct{}, len(cfg.Teams))
	monitors := make(map[string]struct{})

	for i, team := range cfg.Teams {
		if strings.TrimSpace(team.ID) == "" {
			err := validation.NewMissingIDError(cfg.Name, "teams")
			err.SetIndex(i)
			return err
		}
		if _, exists := teams[team.ID]; exists {
			return validation.NewDuplicateFoundError(cfg.Name, "teams", fmt.Sprint(i))
		}
		teams[team.ID] = struct{}{}

		for j, monitor := range team.Monitors {
			if strings.TrimSpace(monitor.ID) == "" {
				err := validation.NewMissingIDError(cfg.Name, "teams", team.ID, "monitors")
				err.SetIndex(j)
				return err
			}
			if _, exists := monitors[monitor.ID]; exists {
				return validation.NewDuplicateFoundError(cfg.Name, "teams", team.ID, "monitors", fmt.Sprint(j))
			}
			monitors[monitor.ID] = struct{}{}
		}
	}

	return nil
}
