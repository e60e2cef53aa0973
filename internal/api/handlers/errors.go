package handlers

import (
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// apiError replaces huma's problem+json error model so failures from the
// versioned API wear the same {success, error, timestamp} envelope as the
// CSRF gate, the rate limiter, and the router's catch-all.
type apiError struct {
	Success   bool   `json:"success" example:"false"`
	Detail    string `json:"error" example:"something went wrong"`
	Timestamp string `json:"timestamp" example:"2026-01-02T15:04:05Z"`

	status int
}

func (e *apiError) Error() string { return e.Detail }

func (e *apiError) GetStatus() int { return e.status }

// ContentType keeps error responses plain application/json.
func (e *apiError) ContentType(string) string { return "application/json" }

func init() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		parts := make([]string, 0, len(errs)+1)
		if message != "" {
			parts = append(parts, message)
		}
		for _, err := range errs {
			if err != nil {
				parts = append(parts, err.Error())
			}
		}
		return &apiError{
			Detail:    strings.Join(parts, ": "),
			Timestamp: timestamp(),
			status:    status,
		}
	}
}
