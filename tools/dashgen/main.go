// Command dashgen generates the Grafana dashboard and Prometheus rule
// files under deploy/ from Go builders. Run it via `make dashboards`
// after changing any panel or rule definition.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kagiso-dev/flyer-deals/tools/dashgen/dashboards"
	"github.com/kagiso-dev/flyer-deals/tools/dashgen/rules"
	"github.com/kagiso-dev/flyer-deals/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by dashgen. DO NOT EDIT.\n"

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
	if cfg.DashboardEnabled {
		dashJSON, err := renderDashboard()
		if err != nil {
			return err
		}
		if !validateOnly {
			path := filepath.Join(cfg.OutputDir, "grafana", "data", "flyerdeals-overview.json")
			if err := writeFile(path, dashJSON); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
		}
	}

	if cfg.RulesEnabled {
		artifacts := []struct {
			name string
			cr   rules.PrometheusRule
		}{
			{"flyerdeals-recording-rules.yaml", rules.RecordingRules()},
			{"flyerdeals-alerts.yaml", rules.AlertRules()},
		}
		for _, a := range artifacts {
			data, err := yaml.Marshal(a.cr)
			if err != nil {
				return fmt.Errorf("marshal %s: %w", a.name, err)
			}
			if validateOnly {
				continue
			}
			path := filepath.Join(cfg.OutputDir, "prometheus", a.name)
			if err := writeFile(path, append([]byte(generatedHeader), data...)); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
		}
	}

	if validateOnly {
		fmt.Println("validation passed")
	}
	return nil
}

// renderDashboard builds the overview dashboard, validates every query
// against the known metric set, and returns the indented JSON.
func renderDashboard() ([]byte, error) {
	dash, err := dashboards.BuildOverview().Build()
	if err != nil {
		return nil, fmt.Errorf("build dashboard: %w", err)
	}

	result := validate.Dashboard(dash, KnownMetrics)
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if !result.Ok() {
		return nil, fmt.Errorf("dashboard validation failed: %v", result.Errors)
	}

	data, err := json.MarshalIndent(dash, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal dashboard: %w", err)
	}
	return append(data, '\n'), nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
