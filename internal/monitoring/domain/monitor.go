package domain

import "time"

// Team owns zero or more monitors
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Monitor is a registered target under observation. Status and
// LastCheckedAt reflect the most recent check and are nil until one exists.
type Monitor struct {
	ID            string     `json:"id"`
	TeamID        string     `json:"teamId"`
	Name          string     `json:"name"`
	Status        *bool      `json:"status,omitempty"`
	LastCheckedAt *time.Time `json:"lastCheckedAt,omitempty"`
}
