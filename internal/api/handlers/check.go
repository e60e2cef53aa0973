package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/price-alert-api/pkg/types"
)

// Sweeper defines the interface for running a price check pass.
type Sweeper interface {
	Sweep(ctx context.Context, now time.Time) (*domain.SweepResult, error)
}

// CheckHandler handles manual price check requests.
type CheckHandler struct {
	sweeper Sweeper
}

// NewCheckHandler creates a new CheckHandler.
func NewCheckHandler(s Sweeper) *CheckHandler {
	return &CheckHandler{sweeper: s}
}

// CheckOutput is the response body for the price check endpoint.
type CheckOutput struct {
	Body struct {
		Success       bool                  `json:"success" example:"true"`
		Checked       int                   `json:"checked" doc:"Alerts that were due and inspected"`
		Triggered     int                   `json:"triggered" doc:"Alerts whose target price was met"`
		Notifications []domain.Notification `json:"notifications" doc:"Details of triggered notifications"`
		Timestamp     string                `json:"timestamp" example:"2026-01-02T15:04:05Z"`
	}
}

// Check runs one sweep over all alerts at the current instant.
func (h *CheckHandler) Check(ctx context.Context, _ *struct{}) (*CheckOutput, error) {
	result, err := h.sweeper.Sweep(ctx, time.Now().UTC())
	if err != nil {
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	resp := &CheckOutput{}
	resp.Body.Success = true
	resp.Body.Checked = result.Checked
	resp.Body.Triggered = result.Triggered
	resp.Body.Notifications = result.Notifications
	resp.Body.Timestamp = timestamp()
	return resp, nil
}

// RegisterCheckRoutes registers the price check endpoint with the Huma API.
func RegisterCheckRoutes(api huma.API, h *CheckHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "check-prices",
		Method:      http.MethodPost,
		Path:        "/api/v1/check-prices",
		Summary:     "Check prices now",
		Description: "Runs one price check pass over every active, due alert " +
			"and reports any triggered notifications.",
		Tags:   []string{"checks"},
		Errors: []int{http.StatusInternalServerError},
	}, h.Check)
}
