package notify

import (
	"context"
	"log/slog"

	domain "github.com/donaldgifford/price-alert-api/pkg/types"
)

// LogNotifier implements Notifier by writing each notification to the
// structured log. Email delivery is simulated in this service, so this is
// the default sink.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a notifier that records notifications via log.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Send logs the notification. It never fails.
func (l *LogNotifier) Send(_ context.Context, n domain.Notification) error {
	l.log.Info("email notification sent",
		"alert_id", n.AlertID,
		"email", n.Email,
		"product_url", n.ProductURL,
		"current_price", n.CurrentPrice,
		"target_price", n.TargetPrice,
		"message", n.Message,
	)
	return nil
}
