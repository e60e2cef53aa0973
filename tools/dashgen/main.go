// Package main generates Grafana dashboards and Prometheus rule files for
// price-alert-api monitoring.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/price-alert-api/tools/dashgen/dashboards"
	"github.com/donaldgifford/price-alert-api/tools/dashgen/rules"
	"github.com/donaldgifford/price-alert-api/tools/dashgen/validate"
)

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, validateOnly bool) error {
	recording := rules.RecordingRules()
	alerting := rules.AlertRules()

	for _, pr := range []rules.PrometheusRule{recording, alerting} {
		if err := validate.Rules(pr, KnownMetrics); err != nil {
			return err
		}
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return fmt.Errorf("building overview dashboard: %w", err)
		}
		if err := writeJSON(filepath.Join(cfg.OutputDir, "dashboard-overview.json"), dash); err != nil {
			return err
		}
	}

	if cfg.RulesEnabled {
		if err := writeYAML(filepath.Join(cfg.OutputDir, "recording-rules.yaml"), recording); err != nil {
			return err
		}
		if err := writeYAML(filepath.Join(cfg.OutputDir, "alert-rules.yaml"), alerting); err != nil {
			return err
		}
	}

	fmt.Printf("dashgen: artifacts written to %s\n", cfg.OutputDir)
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	return writeFile(path, append(data, '\n'))
}

func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
