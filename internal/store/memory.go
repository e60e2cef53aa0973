package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/donaldgifford/price-alert-api/internal/metrics"
	"github.com/donaldgifford/price-alert-api/internal/notify"
	"github.com/donaldgifford/price-alert-api/internal/pricesim"
	"github.com/donaldgifford/price-alert-api/pkg/mask"
	domain "github.com/donaldgifford/price-alert-api/pkg/types"
)

// Memory is the in-process Store. Alerts live in an insertion-ordered slice
// guarded by a single mutex; everything is lost on restart. The due check
// and the lastChecked update happen under the same lock acquisition, so two
// overlapping sweeps can never both see the same alert as due.
type Memory struct {
	mu     sync.Mutex
	alerts []domain.Alert

	prices   pricesim.Source
	notifier notify.Notifier
	log      *slog.Logger
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store. Sweeps draw prices from src
// and emit triggered notifications to n.
func NewMemory(src pricesim.Source, n notify.Notifier, log *slog.Logger) *Memory {
	return &Memory{
		prices:   src,
		notifier: n,
		log:      log,
	}
}

// CreateAlert stores a new alert. Input is assumed to have passed
// validation; the store only assigns identity and lifecycle fields.
func (m *Memory) CreateAlert(
	_ context.Context,
	req *domain.CreateAlertRequest,
) (*domain.Alert, error) {
	a := domain.Alert{
		ID:          uuid.NewString(),
		ProductURL:  req.ProductURL,
		TargetPrice: req.TargetPrice,
		Email:       req.Email,
		Frequency:   req.Frequency,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
		LastChecked: nil,
		UserID:      req.UserID,
	}

	m.mu.Lock()
	m.alerts = append(m.alerts, a)
	active := len(m.alerts)
	m.mu.Unlock()

	metrics.AlertsCreatedTotal.Inc()
	metrics.AlertsActive.Set(float64(active))

	m.log.Info("price alert created",
		"alert_id", a.ID,
		"product_url", a.ProductURL,
		"target_price", a.TargetPrice,
		"email", mask.Email(a.Email),
		"frequency", a.Frequency,
	)

	return &a, nil
}

// ListAlerts returns all alerts with masked emails, oldest first.
func (m *Memory) ListAlerts(_ context.Context) ([]domain.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Alert, 0, len(m.alerts))
	for i := range m.alerts {
		out = append(out, masked(m.alerts[i]))
	}
	return out, nil
}

// ListAlertsByUser returns the masked alerts owned by userID.
func (m *Memory) ListAlertsByUser(_ context.Context, userID string) ([]domain.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []domain.Alert{}
	for i := range m.alerts {
		if m.alerts[i].UserID == userID {
			out = append(out, masked(m.alerts[i]))
		}
	}
	return out, nil
}

// Sweep inspects every active, due alert once. Notifications are built
// under the lock but delivered after it is released, so a slow sink never
// blocks concurrent creates.
func (m *Memory) Sweep(ctx context.Context, now time.Time) (*domain.SweepResult, error) {
	start := time.Now()

	m.mu.Lock()
	checked := 0
	var notifications []domain.Notification

	for i := range m.alerts {
		a := &m.alerts[i]
		if !a.IsActive || !a.Due(now) {
			continue
		}

		checked++
		stamp := now
		a.LastChecked = &stamp

		currentPrice := m.prices.Current()
		if float64(currentPrice) <= a.TargetPrice {
			notifications = append(notifications, notify.NewNotification(a, currentPrice, now))
		}
	}
	m.mu.Unlock()

	for _, n := range notifications {
		if err := m.notifier.Send(ctx, n); err != nil {
			metrics.NotificationFailuresTotal.Inc()
			m.log.Error("notification delivery failed",
				"alert_id", n.AlertID,
				"email", n.Email,
				"error", err,
			)
		}
	}

	metrics.SweepsTotal.Inc()
	metrics.SweepDuration.Observe(time.Since(start).Seconds())
	metrics.AlertsCheckedTotal.Add(float64(checked))
	metrics.AlertsTriggeredTotal.Add(float64(len(notifications)))

	if notifications == nil {
		notifications = []domain.Notification{}
	}

	return &domain.SweepResult{
		Checked:       checked,
		Triggered:     len(notifications),
		Notifications: notifications,
	}, nil
}

// Ping always succeeds for the in-memory backend.
func (*Memory) Ping(_ context.Context) error {
	return nil
}

func masked(a domain.Alert) domain.Alert {
	a.Email = mask.Email(a.Email)
	return a
}
