package rules

// AlertRules covers availability, error rate, notification delivery, the
// CSRF gate, and sweep liveness.
func AlertRules() PrometheusRule {
	return New("palert-alerts", RuleGroup{
		Name: "palert-alerts",
		Rules: []Rule{
			alert("PalertDown",
				`absent(up{job="price-alert-api"})`,
				"2m", "critical",
				"Price alert API is down",
				"The price-alert-api job has been absent for more than 2 minutes."),
			alert("PalertReadinessDown",
				`palert_readyz_up == 0`,
				"2m", "critical",
				"Price alert API readiness check is failing",
				"The readiness probe has been reporting not-ready for more than 2 minutes."),
			alert("PalertHighErrorRate",
				`palert:http_errors:rate5m / palert:http_requests:rate5m > 0.05`,
				"5m", "warning",
				"High HTTP error rate on price alert API",
				"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
			alert("PalertNotificationFailures",
				`increase(palert_notification_failures_total[5m]) > 0`,
				"1m", "warning",
				"Notification delivery failures detected",
				"One or more triggered alert notifications have failed to send."),
			alert("PalertCSRFRejectionSpike",
				`palert:csrf_rejections:rate5m > 1`,
				"5m", "warning",
				"Elevated anti-forgery rejections",
				"Requests are failing the CSRF gate at more than 1/s, which may indicate misconfigured clients or probing."),
			alert("PalertSweepsStalled",
				`increase(palert_sweeps_total[1h]) == 0 and palert_alerts_active > 0`,
				"30m", "warning",
				"No price check sweeps are running",
				"Alerts exist but no sweep has run in the last hour."),
		},
	})
}
