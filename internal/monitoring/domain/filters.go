package domain

import "time"

// ResolveFailureStatusCode is reported by the executor when the target
// could not be resolved or reached at all.
const ResolveFailureStatusCode = 5000

// Query defaults
const (
	DefaultLimit       = 100
	DefaultRowsPerPage = 25
	MaxRowsPerPage     = 100
	MaxLimit           = 1000
)

type SortOrder string

const (
	SortDesc SortOrder = "desc"
	SortAsc  SortOrder = "asc"
)

type DateRange string

const (
	DateRangeAll   DateRange = "all"
	DateRangeDay   DateRange = "day"
	DateRangeWeek  DateRange = "week"
	DateRangeMonth DateRange = "month"
)

// Since returns the lower creation-time bound for the range, or nil for "all".
func (d DateRange) Since(now time.Time) *time.Time {
	var back time.Duration
	switch d {
	case DateRangeDay:
		back = 24 * time.Hour
	case DateRangeWeek:
		back = 7 * 24 * time.Hour
	case DateRangeMonth:
		back = 30 * 24 * time.Hour
	default:
		return nil
	}
	since := now.Add(-back)
	return &since
}

type StatusFilter string

const (
	StatusAll     StatusFilter = "all"
	StatusUp      StatusFilter = "up"
	StatusDown    StatusFilter = "down"
	StatusResolve StatusFilter = "resolve"
)

// CheckFilters selects and windows checks. Exactly one of MonitorID and
// TeamID is set by callers. Limit and Offset are ignored by counts.
type CheckFilters struct {
	MonitorID string
	TeamID    string
	Status    StatusFilter
	Since     *time.Time
	Order     SortOrder
	Limit     int
	Offset    int
}

// Matches reports whether a check passes the status and date filters.
// Ownership (MonitorID/TeamID) is not evaluated here.
func (f CheckFilters) Matches(c Check) bool {
	switch f.Status {
	case StatusUp:
		if !c.Status {
			return false
		}
	case StatusDown:
		if c.Status {
			return false
		}
	case StatusResolve:
		if !c.IsResolveFailure() {
			return false
		}
	}

	if f.Since != nil && c.CreatedAt.Before(*f.Since) {
		return false
	}

	return true
}

// Less orders two checks by creation time and then id, honouring Order
func (f CheckFilters) Less(a, b Check) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		if f.Order == SortAsc {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.CreatedAt.After(b.CreatedAt)
	}
	if f.Order == SortAsc {
		return a.ID < b.ID
	}
	return a.ID > b.ID
}
