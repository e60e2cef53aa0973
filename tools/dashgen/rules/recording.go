package rules

// RecordingRules pre-computes the 5m rates that both the overview dashboard
// and the alert rules query, so Grafana and the alert evaluator read the
// same series instead of re-deriving them.
func RecordingRules() PrometheusRule {
	return New("palert-recording-rules", RuleGroup{
		Name: "palert-recording",
		Rules: []Rule{
			record("palert:http_requests:rate5m",
				`sum(rate(palert_http_requests_total[5m]))`),
			record("palert:http_errors:rate5m",
				`sum(rate(palert_http_requests_total{status=~"5.."}[5m]))`),
			record("palert:sweeps:rate5m",
				`rate(palert_sweeps_total[5m])`),
			record("palert:alerts_created:rate5m",
				`rate(palert_alerts_created_total[5m])`),
			record("palert:alerts_triggered:rate5m",
				`rate(palert_alerts_triggered_total[5m])`),
			record("palert:csrf_rejections:rate5m",
				`sum(rate(palert_csrf_rejections_total[5m]))`),
		},
	})
}
