package application

import (
	"encoding/json"
	"net/url"

	monitoringdomain "checkhub/internal/monitoring/domain"
)

// Response messages
const (
	MsgCheckCreate = "Check created successfully"
	MsgCheckGet    = "Got checks successfully"
	MsgMonitorsGet = "Got monitors successfully"
	MsgConfigLoad  = "Config loaded successfully"
	MsgConfigGet   = "Got config successfully"
)

// Envelope wraps every successful API response
type Envelope struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Data    any    `json:"data"`
}

// ErrorResponse represents an error in API responses. It carries no data.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}

// ChecksPage is the data of a single monitor's check history
type ChecksPage struct {
	ChecksCount int64                    `json:"checksCount"`
	Checks      []monitoringdomain.Check `json:"checks"`
}

// CheckRequest is a raw, unvalidated request as received at the boundary
type CheckRequest struct {
	Params map[string]string
	Query  url.Values
	// Body is the decoded JSON body, nil when no body was sent
	Body any
}

// CreateCheckBody documents the create-check payload
type CreateCheckBody struct {
	MonitorID    string  `json:"monitorId"`
	Status       bool    `json:"status"`
	ResponseTime float64 `json:"responseTime"`
	StatusCode   int     `json:"statusCode"`
	Message      string  `json:"message,omitempty"`
}

// LoadConfigRequest represents the configuration payload
type LoadConfigRequest struct {
	Config json.RawMessage `json:"config"`
}

func success(msg string, data any) Envelope {
	return Envelope{Success: true, Msg: msg, Data: data}
}
