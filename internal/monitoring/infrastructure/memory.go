package infrastructure

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"checkhub/internal/monitoring/domain"
)

var _ domain.Repository = (*MemoryRepository)(nil)

// MemoryRepository keeps teams, monitors and checks in process memory
type MemoryRepository struct {
	mu       sync.RWMutex
	teams    map[string]domain.Team
	monitors map[string]domain.Monitor
	checks   map[string][]domain.Check

	now   func() time.Time
	newID func() string
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		teams:    make(map[string]domain.Team),
		monitors: make(map[string]domain.Monitor),
		checks:   make(map[string][]domain.Check),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

func (r *MemoryRepository) UpsertTeam(ctx context.Context, team domain.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams[team.ID] = team
	return nil
}

func (r *MemoryRepository) UpsertMonitor(ctx context.Context, monitor domain.Monitor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.teams[monitor.TeamID]; !ok {
		return domain.ErrTeamNotFound
	}

	// Registry updates never reset the derived status
	if old, ok := r.monitors[monitor.ID]; ok {
		monitor.Status = old.Status
		monitor.LastCheckedAt = old.LastCheckedAt
	}
	r.monitors[monitor.ID] = monitor
	return nil
}

func (r *MemoryRepository) ListMonitors(ctx context.Context) ([]domain.Monitor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Monitor, 0, len(r.monitors))
	for _, m := range r.monitors {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *MemoryRepository) CreateCheck(ctx context.Context, monitorID string, result domain.CheckResult) (domain.Check, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	monitor, ok := r.monitors[monitorID]
	if !ok {
		return domain.Check{}, domain.ErrMonitorNotFound
	}

	check := domain.NewCheck(r.newID(), monitorID, result, r.now())
	r.checks[monitorID] = append(r.checks[monitorID], check)

	status := check.Status
	checkedAt := check.CreatedAt
	monitor.Status = &status
	monitor.LastCheckedAt = &checkedAt
	r.monitors[monitorID] = monitor

	return check, nil
}

func (r *MemoryRepository) GetChecks(ctx context.Context, filters domain.CheckFilters) ([]domain.Check, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return window(r.matching(filters, []string{filters.MonitorID}), filters), nil
}

func (r *MemoryRepository) GetChecksCount(ctx context.Context, filters domain.CheckFilters) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.matching(filters, []string{filters.MonitorID}))), nil
}

func (r *MemoryRepository) GetTeamChecks(ctx context.Context, filters domain.CheckFilters) ([]domain.Check, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	monitorIDs := make([]string, 0)
	for id, m := range r.monitors {
		if m.TeamID == filters.TeamID {
			monitorIDs = append(monitorIDs, id)
		}
	}

	return window(r.matching(filters, monitorIDs), filters), nil
}

func (r *MemoryRepository) Close(ctx context.Context) error {
	return nil
}

// matching returns the sorted checks of the given monitors that pass filters.
// Callers must hold the read lock.
func (r *MemoryRepository) matching(filters domain.CheckFilters, monitorIDs []string) []domain.Check {
	result := make([]domain.Check, 0)
	for _, id := range monitorIDs {
		for _, c := range r.checks[id] {
			if filters.Matches(c) {
				result = append(result, c)
			}
		}
	}
	slices.SortStableFunc(result, func(a, b domain.Check) int {
		if filters.Less(a, b) {
			return -1
		}
		if filters.Less(b, a) {
			return 1
		}
		return 0
	})
	return result
}

func window(checks []domain.Check, filters domain.CheckFilters) []domain.Check {
	if filters.Offset >= len(checks) {
		return []domain.Check{}
	}
	checks = checks[filters.Offset:]
	if filters.Limit > 0 && filters.Limit < len(checks) {
		checks = checks[:filters.Limit]
	}
	return checks
}
