// Package panels builds the Grafana panels for the price alert overview
// dashboard.
package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// Grid sizes on the 24-column dashboard grid. Stats sit four across in the
// overview row; timeseries panels sit two across everywhere else.
const (
	StatWidth  = 6
	StatHeight = 4
	TSWidth    = 12
	TSHeight   = 8
)

// DSRef points a panel at the dashboard's ${datasource} variable rather
// than a hard-coded datasource UID.
func DSRef() dashboard.DataSourceRef {
	return dashboard.DataSourceRef{
		Type: cog.ToPtr("prometheus"),
		Uid:  cog.ToPtr("${datasource}"),
	}
}

// PromQuery is the common shape of every target in this dashboard.
func PromQuery(expr, legendFormat, refID string) *prometheus.DataqueryBuilder {
	return prometheus.NewDataqueryBuilder().
		Expr(expr).
		LegendFormat(legendFormat).
		RefId(refID)
}

func absoluteThresholds(steps ...dashboard.Threshold) cog.Builder[dashboard.ThresholdsConfig] {
	return dashboard.NewThresholdsConfigBuilder().
		Mode(dashboard.ThresholdsModeAbsolute).
		Steps(steps)
}

// ThresholdsRedGreen marks values below greenAbove red. Used for up/down
// gauges where 1 is healthy.
func ThresholdsRedGreen(greenAbove float64) cog.Builder[dashboard.ThresholdsConfig] {
	return absoluteThresholds(
		dashboard.Threshold{Color: "red"},
		dashboard.Threshold{Value: cog.ToPtr(greenAbove), Color: "green"},
	)
}

// ThresholdsGreenYellowRed escalates through the two given cut points.
func ThresholdsGreenYellowRed(yellow, red float64) cog.Builder[dashboard.ThresholdsConfig] {
	return absoluteThresholds(
		dashboard.Threshold{Color: "green"},
		dashboard.Threshold{Value: cog.ToPtr(yellow), Color: "yellow"},
		dashboard.Threshold{Value: cog.ToPtr(red), Color: "red"},
	)
}

// ThresholdsGreenOnly is for panels where no value is alarming.
func ThresholdsGreenOnly() cog.Builder[dashboard.ThresholdsConfig] {
	return absoluteThresholds(dashboard.Threshold{Color: "green"})
}

func ColorSchemeThresholds() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().Mode(dashboard.FieldColorModeIdThresholds)
}

func ColorSchemePaletteClassic() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().Mode(dashboard.FieldColorModeIdPaletteClassic)
}

// TableLegend renders series as a bottom table with the given calc columns.
func TableLegend(calcs ...string) *common.VizLegendOptionsBuilder {
	return common.NewVizLegendOptionsBuilder().
		DisplayMode(common.LegendDisplayModeTable).
		Placement(common.LegendPlacementBottom).
		Calcs(calcs)
}

// MultiTooltip shows every series under the cursor, highest first.
func MultiTooltip() *common.VizTooltipOptionsBuilder {
	return common.NewVizTooltipOptionsBuilder().
		Mode(common.TooltipDisplayModeMulti).
		Sort(common.SortOrderDescending)
}

// tsBase carries the sizing and line style every timeseries panel in this
// dashboard shares. Callers add targets, units, and thresholds.
func tsBase(title, desc string) *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title(title).
		Description(desc).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		FillOpacity(10).
		LineWidth(2).
		DrawStyle(common.GraphDrawStyleLine)
}

// counterStat is the shape of the 24h big-number stat panels.
func counterStat(title, desc string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(desc).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
