// Package store defines the datastore abstraction for the price alert API.
// Handlers and the sweep engine depend on the Store interface, never on
// concrete implementations, so the in-memory backend can be swapped or
// mocked without touching callers.
package store

import (
	"context"
	"time"

	domain "github.com/donaldgifford/price-alert-api/pkg/types"
)

// Store owns every Alert for the process lifetime. Implementations must be
// safe for concurrent use: creation, listing, and sweeping may overlap
// across requests.
//
// Listing operations return alerts with masked emails; only CreateAlert
// returns the stored record unmasked, as the creation response confirms the
// address the caller just supplied. Callers always receive copies — the
// store never hands out a mutable reference to its own records.
type Store interface {
	// CreateAlert stores a new alert from input that already passed
	// validation, assigning its ID and timestamps.
	CreateAlert(ctx context.Context, req *domain.CreateAlertRequest) (*domain.Alert, error)

	// ListAlerts returns every stored alert in insertion order.
	ListAlerts(ctx context.Context) ([]domain.Alert, error)

	// ListAlertsByUser returns the alerts whose userId exactly equals
	// userID. No match yields an empty slice, not an error.
	ListAlertsByUser(ctx context.Context, userID string) ([]domain.Alert, error)

	// Sweep runs one price check pass at the given instant. Each active,
	// due alert is inspected exactly once: its lastChecked is stamped, a
	// simulated current price is drawn, and a notification is produced
	// when the price is at or below target. Inactive and not-due alerts
	// are skipped and do not count as checked.
	Sweep(ctx context.Context, now time.Time) (*domain.SweepResult, error)

	// Ping reports whether the backend is usable.
	Ping(ctx context.Context) error
}
