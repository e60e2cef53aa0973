// Package domain defines the core business types for the price alert API.
package domain

import (
	"errors"
	"time"
)

// Frequency is how often an alert is eligible for a price check.
type Frequency string

// Frequency constants.
const (
	FrequencyHourly Frequency = "hourly"
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// Valid reports whether f is one of the enumerated frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyHourly, FrequencyDaily, FrequencyWeekly:
		return true
	}
	return false
}

// Interval returns the minimum elapsed time between checks for f.
// Unknown frequencies return 0, which makes every elapsed duration
// sufficient — see Alert.Due.
func (f Frequency) Interval() time.Duration {
	switch f {
	case FrequencyHourly:
		return time.Hour
	case FrequencyDaily:
		return 24 * time.Hour
	case FrequencyWeekly:
		return 7 * 24 * time.Hour
	}
	return 0
}

// Alert is a stored request to monitor a product's price against a target.
type Alert struct {
	ID          string     `json:"id"`
	ProductURL  string     `json:"productUrl"`
	TargetPrice float64    `json:"targetPrice"`
	Email       string     `json:"email"`
	Frequency   Frequency  `json:"frequency"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastChecked *time.Time `json:"lastChecked"`
	UserID      string     `json:"userId,omitempty"`
}

// Due reports whether the alert is eligible for a price check at now.
// An alert that has never been checked is always due. An alert with a
// frequency outside the enumerated set is also always due; unknown
// configurations must not silently starve.
func (a *Alert) Due(now time.Time) bool {
	if a.LastChecked == nil {
		return true
	}
	return now.Sub(*a.LastChecked) >= a.Frequency.Interval()
}

// Notification is the structured outcome emitted for a triggered alert.
// Email carries only the masked address; the raw value never leaves the
// store.
type Notification struct {
	AlertID      string    `json:"alertId"`
	Email        string    `json:"email"`
	ProductURL   string    `json:"productUrl"`
	CurrentPrice int       `json:"currentPrice"`
	TargetPrice  float64   `json:"targetPrice"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
}

// SweepResult summarizes one on-demand pass over all alerts.
type SweepResult struct {
	Checked       int            `json:"checked"`
	Triggered     int            `json:"triggered"`
	Notifications []Notification `json:"notifications"`
}

// Validation errors returned by CreateAlertRequest.Validate, in rule order.
var (
	ErrMissingFields = errors.New(
		"Missing required fields: productUrl, targetPrice, email, frequency",
	)
	ErrTargetPrice = errors.New("Target price must be greater than 0")
	ErrFrequency   = errors.New("Check frequency must be hourly, daily, or weekly")
)

// CreateAlertRequest is the creation input accepted by the API. Fields are
// schema-optional so that Validate, not the codec, decides which rule a bad
// request violated.
type CreateAlertRequest struct {
	ProductURL  string    `json:"productUrl"  required:"false" doc:"URL of the product to monitor"`
	TargetPrice float64   `json:"targetPrice" required:"false" doc:"Target price threshold (must be > 0)"`
	Email       string    `json:"email"       required:"false" doc:"Email address for notifications"`
	Frequency   Frequency `json:"frequency"   required:"false" doc:"Check frequency: hourly, daily, or weekly"`
	UserID      string    `json:"userId,omitempty" doc:"Optional owner used for user-scoped listing"`
}

// Validate checks the creation input against the rules in order; the first
// violated rule wins and its error is returned as-is.
func (r *CreateAlertRequest) Validate() error {
	if r.ProductURL == "" || r.TargetPrice == 0 || r.Email == "" || r.Frequency == "" {
		return ErrMissingFields
	}
	if r.TargetPrice <= 0 {
		return ErrTargetPrice
	}
	if !r.Frequency.Valid() {
		return ErrFrequency
	}
	return nil
}
