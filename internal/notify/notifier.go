// Package notify defines the notification interface and implementations
// for delivering triggered price alerts.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/donaldgifford/price-alert-api/pkg/mask"
	domain "github.com/donaldgifford/price-alert-api/pkg/types"
)

// Notifier delivers a triggered-alert notification to some sink.
type Notifier interface {
	Send(ctx context.Context, n domain.Notification) error
}

// NewNotification builds the notification record for a triggered alert.
// The alert's email is masked here; downstream sinks never see the raw
// address.
func NewNotification(a *domain.Alert, currentPrice int, now time.Time) domain.Notification {
	return domain.Notification{
		AlertID:      a.ID,
		Email:        mask.Email(a.Email),
		ProductURL:   a.ProductURL,
		CurrentPrice: currentPrice,
		TargetPrice:  a.TargetPrice,
		Message: fmt.Sprintf(
			"Great news! Price dropped to £%d! Your target was £%v",
			currentPrice, a.TargetPrice,
		),
		Timestamp: now,
	}
}
