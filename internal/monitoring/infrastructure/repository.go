package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"checkhub/internal/monitoring/domain"
)

var _ domain.Repository = (*Repository)(nil)

// Repository implements the monitoring repository interfaces using SQLite
type Repository struct {
	readDB  *sql.DB
	writeDB *sql.DB

	now   func() time.Time
	newID func() string
}

// NewRepository creates a new SQLite repository. Writes go through writeDB,
// which is expected to be limited to a single connection.
func NewRepository(readDB *sql.DB, writeDB *sql.DB) *Repository {
	return &Repository{
		readDB:  readDB,
		writeDB: writeDB,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

func (r *Repository) UpsertTeam(ctx context.Context, team domain.Team) error {
	_, err := r.writeDB.ExecContext(ctx,
		`INSERT INTO teams (id, name) VALUES (?, ?)
		 ON CONFLICT (id) DO UPDATE SET name = excluded.name`,
		team.ID, team.Name)
	if err != nil {
		return fmt.Errorf("upsert team %s: %w", team.ID, err)
	}
	return nil
}

func (r *Repository) UpsertMonitor(ctx context.Context, monitor domain.Monitor) error {
	tx, err := r.writeDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert monitor: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM teams WHERE id = ?`, monitor.TeamID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrTeamNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup team %s: %w", monitor.TeamID, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO monitors (id, team_id, name) VALUES (?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET team_id = excluded.team_id, name = excluded.name`,
		monitor.ID, monitor.TeamID, monitor.Name)
	if err != nil {
		return fmt.Errorf("upsert monitor %s: %w", monitor.ID, err)
	}

	return tx.Commit()
}

func (r *Repository) ListMonitors(ctx context.Context) ([]domain.Monitor, error) {
	rows, err := r.readDB.QueryContext(ctx,
		`SELECT id, team_id, name, status, last_checked_at FROM monitors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list monitors: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Monitor, 0)
	for rows.Next() {
		var (
			m         domain.Monitor
			status    sql.NullBool
			checkedAt sql.NullInt64
		)
		if err := rows.Scan(&m.ID, &m.TeamID, &m.Name, &status, &checkedAt); err != nil {
			return nil, fmt.Errorf("scan monitor: %w", err)
		}
		if status.Valid {
			m.Status = &status.Bool
		}
		if checkedAt.Valid {
			ts := time.Unix(0, checkedAt.Int64).UTC()
			m.LastCheckedAt = &ts
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

// CreateCheck inserts a check and records it as the monitor's latest status
func (r *Repository) CreateCheck(ctx context.Context, monitorID string, result domain.CheckResult) (domain.Check, error) {
	tx, err := r.writeDB.BeginTx(ctx, nil)
	if err != nil {
		return domain.Check{}, fmt.Errorf("begin create check: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM monitors WHERE id = ?`, monitorID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Check{}, domain.ErrMonitorNotFound
	}
	if err != nil {
		return domain.Check{}, fmt.Errorf("lookup monitor %s: %w", monitorID, err)
	}

	check := domain.NewCheck(r.newID(), monitorID, result, r.now())

	_, err = tx.ExecContext(ctx,
		`INSERT INTO checks (id, monitor_id, status, response_time, status_code, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		check.ID, check.MonitorID, check.Status, check.ResponseTime, check.StatusCode, check.Message,
		check.CreatedAt.UnixNano())
	if err != nil {
		return domain.Check{}, fmt.Errorf("insert check: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE monitors SET status = ?, last_checked_at = ? WHERE id = ?`,
		check.Status, check.CreatedAt.UnixNano(), monitorID)
	if err != nil {
		return domain.Check{}, fmt.Errorf("update monitor status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Check{}, fmt.Errorf("commit create check: %w", err)
	}

	return check, nil
}

func (r *Repository) GetChecks(ctx context.Context, filters domain.CheckFilters) ([]domain.Check, error) {
	where, args := checkConditions(filters)
	where = append([]string{"c.monitor_id = ?"}, where...)
	args = append([]any{filters.MonitorID}, args...)

	return r.queryChecks(ctx, `SELECT `+checkColumns+` FROM checks c`, where, args, filters)
}

func (r *Repository) GetChecksCount(ctx context.Context, filters domain.CheckFilters) (int64, error) {
	where, args := checkConditions(filters)
	where = append([]string{"c.monitor_id = ?"}, where...)
	args = append([]any{filters.MonitorID}, args...)

	var count int64
	err := r.readDB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM checks c WHERE `+strings.Join(where, " AND "), args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count checks: %w", err)
	}
	return count, nil
}

func (r *Repository) GetTeamChecks(ctx context.Context, filters domain.CheckFilters) ([]domain.Check, error) {
	where, args := checkConditions(filters)
	where = append([]string{"m.team_id = ?"}, where...)
	args = append([]any{filters.TeamID}, args...)

	return r.queryChecks(ctx,
		`SELECT `+checkColumns+` FROM checks c JOIN monitors m ON m.id = c.monitor_id`,
		where, args, filters)
}

func (r *Repository) Close(ctx context.Context) error {
	return nil
}

const checkColumns = `c.id, c.monitor_id, c.status, c.response_time, c.status_code, c.message, c.created_at`

func (r *Repository) queryChecks(ctx context.Context, base string, where []string, args []any, filters domain.CheckFilters) ([]domain.Check, error) {
	order := "DESC"
	if filters.Order == domain.SortAsc {
		order = "ASC"
	}

	query := base + ` WHERE ` + strings.Join(where, " AND ") +
		fmt.Sprintf(` ORDER BY c.created_at %s, c.id %s`, order, order)
	if filters.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filters.Limit, filters.Offset)
	} else if filters.Offset > 0 {
		query += ` LIMIT -1 OFFSET ?`
		args = append(args, filters.Offset)
	}

	rows, err := r.readDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query checks: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Check, 0)
	for rows.Next() {
		var (
			c         domain.Check
			createdAt int64
		)
		if err := rows.Scan(&c.ID, &c.MonitorID, &c.Status, &c.ResponseTime, &c.StatusCode, &c.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scan check: %w", err)
		}
		c.CreatedAt = time.Unix(0, createdAt).UTC()
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checks: %w", err)
	}
	return result, nil
}

// checkConditions translates the status and date filters into SQL
func checkConditions(filters domain.CheckFilters) ([]string, []any) {
	where := make([]string, 0, 3)
	args := make([]any, 0, 2)

	switch filters.Status {
	case domain.StatusUp:
		where = append(where, "c.status = 1")
	case domain.StatusDown:
		where = append(where, "c.status = 0")
	case domain.StatusResolve:
		where = append(where, "c.status = 0", "c.status_code = ?")
		args = append(args, domain.ResolveFailureStatusCode)
	}

	if filters.Since != nil {
		where = append(where, "c.created_at >= ?")
		args = append(args, filters.Since.UnixNano())
	}

	return where, args
}
