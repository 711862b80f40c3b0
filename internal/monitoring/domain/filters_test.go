package domain

import (
	"testing"
	"time"
)

func TestDateRange_Since(t *testing.T) {
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		rng   DateRange
		want  time.Time
		isNil bool
	}{
		{name: "day", rng: DateRangeDay, want: now.Add(-24 * time.Hour)},
		{name: "week", rng: DateRangeWeek, want: now.Add(-7 * 24 * time.Hour)},
		{name: "month", rng: DateRangeMonth, want: now.Add(-30 * 24 * time.Hour)},
		{name: "all", rng: DateRangeAll, isNil: true},
		{name: "unset", rng: "", isNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rng.Since(now)
			if tt.isNil {
				if got != nil {
					t.Errorf("expected nil, got %v", *got)
				}
				return
			}
			if got == nil || !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCheckFilters_Matches(t *testing.T) {
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)
	since := now.Add(-time.Hour)

	up := NewCheck("1", "m1", CheckResult{Status: true, StatusCode: 200}, now)
	down := NewCheck("2", "m1", CheckResult{Status: false, StatusCode: 500}, now)
	unresolved := NewCheck("3", "m1", CheckResult{Status: false, StatusCode: ResolveFailureStatusCode}, now)
	old := NewCheck("4", "m1", CheckResult{Status: true, StatusCode: 200}, now.Add(-2*time.Hour))

	tests := []struct {
		name    string
		filters CheckFilters
		check   Check
		want    bool
	}{
		{name: "all matches up", filters: CheckFilters{Status: StatusAll}, check: up, want: true},
		{name: "empty status matches down", filters: CheckFilters{}, check: down, want: true},
		{name: "up rejects down", filters: CheckFilters{Status: StatusUp}, check: down, want: false},
		{name: "down matches down", filters: CheckFilters{Status: StatusDown}, check: down, want: true},
		{name: "down rejects up", filters: CheckFilters{Status: StatusDown}, check: up, want: false},
		{name: "resolve matches sentinel", filters: CheckFilters{Status: StatusResolve}, check: unresolved, want: true},
		{name: "resolve rejects plain down", filters: CheckFilters{Status: StatusResolve}, check: down, want: false},
		{name: "since rejects older", filters: CheckFilters{Since: &since}, check: old, want: false},
		{name: "since keeps newer", filters: CheckFilters{Since: &since}, check: up, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filters.Matches(tt.check); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCheckFilters_Less(t *testing.T) {
	now := time.Now()
	a := Check{ID: "a", CreatedAt: now}
	b := Check{ID: "b", CreatedAt: now}
	older := Check{ID: "z", CreatedAt: now.Add(-time.Minute)}

	desc := CheckFilters{Order: SortDesc}
	if !desc.Less(a, older) {
		t.Error("expected newer check first in desc order")
	}
	if !desc.Less(b, a) {
		t.Error("expected id tie-break descending in desc order")
	}

	asc := CheckFilters{Order: SortAsc}
	if !asc.Less(older, a) {
		t.Error("expected older check first in asc order")
	}
	if !asc.Less(a, b) {
		t.Error("expected id tie-break ascending in asc order")
	}
}
