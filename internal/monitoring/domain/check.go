package domain

import "time"

// CheckResult is the observation reported by the check-execution process
type CheckResult struct {
	Status       bool
	ResponseTime float64
	StatusCode   int
	Message      string
}

// Check represents a single persisted observation of a monitor
type Check struct {
	ID           string    `json:"id"`
	MonitorID    string    `json:"monitorId"`
	Status       bool      `json:"status"`
	ResponseTime float64   `json:"responseTime"`
	StatusCode   int       `json:"statusCode"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewCheck creates a check from a reported result
func NewCheck(id string, monitorID string, result CheckResult, createdAt time.Time) Check {
	return Check{
		ID:           id,
		MonitorID:    monitorID,
		Status:       result.Status,
		ResponseTime: result.ResponseTime,
		StatusCode:   result.StatusCode,
		Message:      result.Message,
		CreatedAt:    createdAt,
	}
}

// IsResolveFailure reports whether the executor could not resolve the target
func (c Check) IsResolveFailure() bool {
	return !c.Status && c.StatusCode == ResolveFailureStatusCode
}
