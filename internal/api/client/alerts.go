package client

import (
	"context"

	domain "github.com/donaldgifford/price-alert-api/pkg/types"
)

// alertEnvelope is the API envelope around a single alert.
type alertEnvelope struct {
	Success   bool          `json:"success"`
	Data      *domain.Alert `json:"data"`
	Message   string        `json:"message"`
	Timestamp string        `json:"timestamp"`
}

// alertListEnvelope is the API envelope around a list of alerts.
type alertListEnvelope struct {
	Success   bool           `json:"success"`
	Data      []domain.Alert `json:"data"`
	Timestamp string         `json:"timestamp"`
}

// checkEnvelope is the API envelope around a price check result.
type checkEnvelope struct {
	Success       bool                  `json:"success"`
	Checked       int                   `json:"checked"`
	Triggered     int                   `json:"triggered"`
	Notifications []domain.Notification `json:"notifications"`
	Timestamp     string                `json:"timestamp"`
}

// CreateAlert creates a new price alert and returns the stored record plus
// the server's confirmation message.
func (c *Client) CreateAlert(
	ctx context.Context,
	req *domain.CreateAlertRequest,
) (*domain.Alert, string, error) {
	var resp alertEnvelope
	if err := c.post(ctx, "/api/v1/alerts", req, &resp); err != nil {
		return nil, "", err
	}
	return resp.Data, resp.Message, nil
}

// ListAlerts returns all alerts. Emails are masked by the server.
func (c *Client) ListAlerts(ctx context.Context) ([]domain.Alert, error) {
	var resp alertListEnvelope
	if err := c.get(ctx, "/api/v1/alerts", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ListUserAlerts returns the alerts owned by userID.
func (c *Client) ListUserAlerts(ctx context.Context, userID string) ([]domain.Alert, error) {
	var resp alertListEnvelope
	if err := c.get(ctx, "/api/v1/alerts/user/"+userID, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CheckPrices triggers one price check pass on the server.
func (c *Client) CheckPrices(ctx context.Context) (*domain.SweepResult, error) {
	var resp checkEnvelope
	if err := c.post(ctx, "/api/v1/check-prices", nil, &resp); err != nil {
		return nil, err
	}
	return &domain.SweepResult{
		Checked:       resp.Checked,
		Triggered:     resp.Triggered,
		Notifications: resp.Notifications,
	}, nil
}
