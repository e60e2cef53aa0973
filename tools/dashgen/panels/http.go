package panels

import "github.com/grafana/grafana-foundation-sdk/go/timeseries"

// RequestRate shows total HTTP requests per second from the recording rule.
func RequestRate() *timeseries.PanelBuilder {
	return tsBase("Request Rate", "HTTP requests per second").
		WithTarget(PromQuery(`palert:http_requests:rate5m`, "req/s", "A")).
		Unit("reqps").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// LatencyPercentiles shows p50/p95/p99 request duration from the
// histogram buckets.
func LatencyPercentiles() *timeseries.PanelBuilder {
	const bucketRate = `sum(rate(palert_http_request_duration_seconds_bucket{job="price-alert-api"}[5m])) by (le)`

	return tsBase("Latency Percentiles", "HTTP request duration percentiles").
		WithTarget(PromQuery(`histogram_quantile(0.50, `+bucketRate+`)`, "p50", "A")).
		WithTarget(PromQuery(`histogram_quantile(0.95, `+bucketRate+`)`, "p95", "B")).
		WithTarget(PromQuery(`histogram_quantile(0.99, `+bucketRate+`)`, "p99", "C")).
		Unit("s").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// ErrorRate shows 5xx responses as a percentage of all requests. Yellow at
// 1%, red at 5%, matching the PalertHighErrorRate alert threshold.
func ErrorRate() *timeseries.PanelBuilder {
	return tsBase("Error Rate %", "HTTP 5xx error rate as percentage of total requests").
		WithTarget(PromQuery(
			`palert:http_errors:rate5m / palert:http_requests:rate5m * 100`,
			"error %", "A",
		)).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}
