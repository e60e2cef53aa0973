// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/price-alert-api/tools/dashgen/panels"
)

// BuildOverview constructs the Price Alerts Overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Price Alerts Overview").
		Uid("palert-overview").
		Tags([]string{"palert", "price-alert-api"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.ActiveAlertsStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Sweeps.
	b.WithRow(dashboard.NewRowBuilder("Sweeps").
		WithPanel(panels.SweepRate()).
		WithPanel(panels.SweepDuration()).
		WithPanel(panels.CheckedVsTriggered()).
		WithPanel(panels.ThrottledSweeps()))

	// Row 4: Alerts and security.
	b.WithRow(dashboard.NewRowBuilder("Alerts & Security").
		WithPanel(panels.AlertsCreatedRate()).
		WithPanel(panels.NotificationFailures()).
		WithPanel(panels.CSRFRejections()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
