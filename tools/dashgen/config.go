package main

import "errors"

// KnownMetrics is the set of metric names exported by price-alert-api
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"palert_http_request_duration_seconds": true,
	"palert_http_requests_total":           true,

	// Health metrics.
	"palert_healthz_up": true,
	"palert_readyz_up":  true,

	// Alert store metrics.
	"palert_alerts_created_total": true,
	"palert_alerts_active":        true,

	// Sweep metrics.
	"palert_sweeps_total":           true,
	"palert_sweep_duration_seconds": true,
	"palert_alerts_checked_total":   true,
	"palert_alerts_triggered_total": true,
	"palert_sweep_throttled_total":  true,

	// Notification metrics.
	"palert_notification_failures_total": true,

	// Security metrics.
	"palert_csrf_rejections_total": true,

	// Recording rules.
	"palert:http_requests:rate5m":    true,
	"palert:http_errors:rate5m":      true,
	"palert:sweeps:rate5m":           true,
	"palert:alerts_created:rate5m":   true,
	"palert:alerts_triggered:rate5m": true,
	"palert:csrf_rejections:rate5m":  true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
