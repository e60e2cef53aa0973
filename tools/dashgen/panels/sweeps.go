package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SweepRate shows price check sweeps per second.
func SweepRate() *timeseries.PanelBuilder {
	return tsBase("Sweep Rate", "Price check sweeps per second").
		WithTarget(PromQuery(`palert:sweeps:rate5m`, "sweeps/s", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// SweepDuration shows the p95 sweep duration. A sweep walks the whole
// store, so this grows with the number of stored alerts.
func SweepDuration() *timeseries.PanelBuilder {
	return tsBase("Sweep Duration (p95)", "95th percentile sweep duration").
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(palert_sweep_duration_seconds_bucket{job="price-alert-api"}[5m])) by (le))`,
			"p95", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(0.5, 2)).
		ColorScheme(ColorSchemePaletteClassic())
}

// CheckedVsTriggered compares due alerts inspected against alerts whose
// price condition was met.
func CheckedVsTriggered() *timeseries.PanelBuilder {
	return tsBase("Checked vs Triggered", "Alerts checked and alerts triggered per second").
		WithTarget(PromQuery(
			`sum(rate(palert_alerts_checked_total{job="price-alert-api"}[5m]))`,
			"checked/s", "A",
		)).
		WithTarget(PromQuery(`palert:alerts_triggered:rate5m`, "triggered/s", "B")).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// ThrottledSweeps counts sweep triggers rejected by the rate limiter over
// the last day.
func ThrottledSweeps() *stat.PanelBuilder {
	return counterStat("Throttled Sweeps (24h)",
		"Sweep trigger requests rejected by the rate limiter in the last 24 hours").
		WithTarget(PromQuery(`increase(palert_sweep_throttled_total{job="price-alert-api"}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(10, 100))
}
