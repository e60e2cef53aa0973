package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/price-alert-api/tools/dashgen/dashboards"
	"github.com/donaldgifford/price-alert-api/tools/dashgen/rules"
	"github.com/donaldgifford/price-alert-api/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "palert-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "Price Alerts Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	// 4 rows: Overview, HTTP, Sweeps, Alerts & Security.
	assert.Len(t, dash.Panels, 4)
}

func TestRecordingRulesValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, validate.Rules(rules.RecordingRules(), KnownMetrics))
}

func TestAlertRulesValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, validate.Rules(rules.AlertRules(), KnownMetrics))
}

func TestValidateRejectsUnknownMetric(t *testing.T) {
	t.Parallel()

	pr := rules.PrometheusRule{
		Spec: rules.PrometheusRuleSpec{
			Groups: []rules.RuleGroup{
				{
					Name: "bad",
					Rules: []rules.Rule{
						{Alert: "Bad", Expr: `rate(palert_no_such_metric_total[5m]) > 0`},
					},
				},
			},
		},
	}

	err := validate.Rules(pr, KnownMetrics)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "palert_no_such_metric_total")
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: true}

	require.NoError(t, run(cfg, false))

	dashData, err := os.ReadFile(filepath.Join(dir, "dashboard-overview.json"))
	require.NoError(t, err)
	var dash map[string]any
	require.NoError(t, json.Unmarshal(dashData, &dash))
	assert.Equal(t, "palert-overview", dash["uid"])

	for _, name := range []string{"recording-rules.yaml", "alert-rules.yaml"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)

		var pr rules.PrometheusRule
		require.NoError(t, yaml.Unmarshal(data, &pr))
		assert.Equal(t, "PrometheusRule", pr.Kind)
		assert.NotEmpty(t, pr.Spec.Groups)
	}
}

func TestRun_ValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: true}

	require.NoError(t, run(cfg, true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
