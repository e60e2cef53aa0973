package handlers

import "time"

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Success   bool   `json:"success" example:"false"`
	Error     string `json:"error" example:"something went wrong"`
	Timestamp string `json:"timestamp" example:"2026-01-02T15:04:05Z"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// timestamp returns the response timestamp for the current instant.
// Every envelope carries one so callers can order responses without
// trusting transport timing.
func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
