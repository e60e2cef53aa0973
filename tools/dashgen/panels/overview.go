package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// overviewStat is the shape of the small stats on the top row.
func overviewStat(title, desc string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(desc).
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		ColorScheme(ColorSchemeThresholds()).
		TextMode(common.BigValueTextModeValue)
}

// upDownStat renders a 0/1 gauge as a colored background value.
func upDownStat(title, desc, expr string) *stat.PanelBuilder {
	return overviewStat(title, desc).
		WithTarget(PromQuery(expr, "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// HealthzStat shows the liveness probe result.
func HealthzStat() *stat.PanelBuilder {
	return upDownStat("Healthz", "Health check status (1 = ok, 0 = failing)",
		`palert_healthz_up`)
}

// ReadyzStat shows the readiness probe result.
func ReadyzStat() *stat.PanelBuilder {
	return upDownStat("Readyz", "Readiness check status (1 = ready, 0 = not ready)",
		`palert_readyz_up`)
}

// ActiveAlertsStat shows how many alerts the store currently holds.
func ActiveAlertsStat() *stat.PanelBuilder {
	return overviewStat("Active Alerts", "Price alerts currently held in the store").
		WithTarget(PromQuery(`palert_alerts_active{job="price-alert-api"}`, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		GraphMode(common.BigValueGraphModeArea)
}

// UptimeStat shows time since process start. The store is in-memory, so
// uptime is also the age of the oldest possible alert.
func UptimeStat() *stat.PanelBuilder {
	return overviewStat("Uptime", "Time since process start").
		WithTarget(PromQuery(
			`time() - process_start_time_seconds{job="price-alert-api"}`,
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		GraphMode(common.BigValueGraphModeNone)
}
