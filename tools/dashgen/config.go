package main

import "errors"

// KnownMetrics is the set of metric names exported by flyer-deals plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"flyerdeals_http_request_duration_seconds": true,
	"flyerdeals_http_requests_total":           true,

	// Health metrics.
	"flyerdeals_healthz_up": true,
	"flyerdeals_readyz_up":  true,

	// Catalog metrics.
	"flyerdeals_catalog_fetches_total":            true,
	"flyerdeals_catalog_fetch_errors_total":       true,
	"flyerdeals_catalog_deals":                    true,
	"flyerdeals_catalog_refresh_duration_seconds": true,
	"flyerdeals_catalog_events_total":             true,

	// Comparison metrics.
	"flyerdeals_compare_runs_total":       true,
	"flyerdeals_compare_duration_seconds": true,
	"flyerdeals_compare_group_size":       true,

	// Saved-list metrics.
	"flyerdeals_saved_lists_total": true,

	// Recording rules.
	"flyerdeals:http_requests:rate5m":        true,
	"flyerdeals:http_errors:rate5m":          true,
	"flyerdeals:catalog_fetches:rate5m":      true,
	"flyerdeals:catalog_fetch_errors:rate5m": true,
	"flyerdeals:compare_runs:rate5m":         true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
