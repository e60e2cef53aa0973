package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/price-alert-api/internal/store"
	domain "github.com/donaldgifford/price-alert-api/pkg/types"
)

// AlertHandler handles price alert creation and listing.
type AlertHandler struct {
	store store.Store
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(s store.Store) *AlertHandler {
	return &AlertHandler{store: s}
}

// CreateAlertInput is the request body for alert creation.
type CreateAlertInput struct {
	Body domain.CreateAlertRequest
}

// CreateAlertOutput is the response for a created alert.
type CreateAlertOutput struct {
	Body struct {
		Success   bool          `json:"success" example:"true"`
		Data      *domain.Alert `json:"data" doc:"The stored alert"`
		Message   string        `json:"message" doc:"Human-readable confirmation"`
		Timestamp string        `json:"timestamp" example:"2026-01-02T15:04:05Z"`
	}
}

// Create validates and stores a new price alert.
func (h *AlertHandler) Create(
	ctx context.Context,
	input *CreateAlertInput,
) (*CreateAlertOutput, error) {
	if err := input.Body.Validate(); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	alert, err := h.store.CreateAlert(ctx, &input.Body)
	if err != nil {
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	resp := &CreateAlertOutput{}
	resp.Body.Success = true
	resp.Body.Data = alert
	resp.Body.Message = fmt.Sprintf(
		"Price alert has been set! You will be notified when the product "+
			"price meets or drops below £%v. Price checks will run %s.",
		alert.TargetPrice, alert.Frequency,
	)
	resp.Body.Timestamp = timestamp()
	return resp, nil
}

// ListAlertsOutput is the response for alert listing endpoints. Emails in
// Data are masked.
type ListAlertsOutput struct {
	Body struct {
		Success   bool           `json:"success" example:"true"`
		Data      []domain.Alert `json:"data" doc:"Stored alerts with masked emails"`
		Timestamp string         `json:"timestamp" example:"2026-01-02T15:04:05Z"`
	}
}

// List returns every stored alert.
func (h *AlertHandler) List(
	ctx context.Context,
	_ *struct{},
) (*ListAlertsOutput, error) {
	alerts, err := h.store.ListAlerts(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Internal server error")
	}
	if alerts == nil {
		alerts = []domain.Alert{}
	}

	resp := &ListAlertsOutput{}
	resp.Body.Success = true
	resp.Body.Data = alerts
	resp.Body.Timestamp = timestamp()
	return resp, nil
}

// ListUserAlertsInput carries the userId path parameter.
type ListUserAlertsInput struct {
	UserID string `path:"userId" doc:"Owner identifier supplied at creation"`
}

// ListByUser returns the alerts owned by a single user. An unknown user
// yields an empty list, not an error.
func (h *AlertHandler) ListByUser(
	ctx context.Context,
	input *ListUserAlertsInput,
) (*ListAlertsOutput, error) {
	alerts, err := h.store.ListAlertsByUser(ctx, input.UserID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	resp := &ListAlertsOutput{}
	resp.Body.Success = true
	resp.Body.Data = alerts
	resp.Body.Timestamp = timestamp()
	return resp, nil
}

// RegisterAlertRoutes registers alert endpoints with the Huma API.
func RegisterAlertRoutes(api huma.API, h *AlertHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-alert",
		Method:        http.MethodPost,
		Path:          "/api/v1/alerts",
		Summary:       "Create a price alert",
		Description:   "Stores a new price alert after validating the input.",
		Tags:          []string{"alerts"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "list-alerts",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts",
		Summary:     "List all price alerts",
		Description: "Returns every stored alert with masked email addresses.",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "list-user-alerts",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts/user/{userId}",
		Summary:     "List a user's price alerts",
		Description: "Returns the alerts owned by the given user with masked " +
			"email addresses.",
		Tags:   []string{"alerts"},
		Errors: []int{http.StatusInternalServerError},
	}, h.ListByUser)
}
