package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// AlertsCreatedRate shows new price alerts per second.
func AlertsCreatedRate() *timeseries.PanelBuilder {
	return tsBase("Alerts Created Rate", "New price alerts per second").
		WithTarget(PromQuery(`palert:alerts_created:rate5m`, "alerts/s", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// NotificationFailures counts failed notification deliveries over the
// last day.
func NotificationFailures() *stat.PanelBuilder {
	return counterStat("Notification Failures (24h)",
		"Failed alert notification deliveries in the last 24 hours").
		WithTarget(PromQuery(`increase(palert_notification_failures_total{job="price-alert-api"}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5))
}

// CSRFRejections breaks out anti-forgery rejections by reason, so missing
// tokens (client bugs) are distinguishable from invalid ones (probing).
func CSRFRejections() *timeseries.PanelBuilder {
	return tsBase("CSRF Rejections", "Requests rejected by the anti-forgery gate, by reason").
		WithTarget(PromQuery(
			`sum(rate(palert_csrf_rejections_total{job="price-alert-api"}[5m])) by (reason)`,
			"{{reason}}", "A",
		)).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
