package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RequestRate shows the HTTP request rate broken down by path and status.
func RequestRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Request Rate").
		Description("HTTP requests per second by path and status").
		Datasource(DSRef()).
		WithTarget(PromQuery(
			`sum by (path, status) (rate(flyerdeals_http_requests_total[5m]))`,
			"{{path}} {{status}}", "A")).
		Unit("reqps").
		ColorScheme(ColorSchemePaletteClassic()).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Height(TSHeight).
		Span(TSWidth)
}

// LatencyPercentiles shows p50/p95/p99 HTTP request latency.
func LatencyPercentiles() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Request Latency").
		Description("HTTP request duration percentiles across all paths").
		Datasource(DSRef()).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum by (le) (rate(flyerdeals_http_request_duration_seconds_bucket[5m])))`,
			"p50", "A")).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum by (le) (rate(flyerdeals_http_request_duration_seconds_bucket[5m])))`,
			"p95", "B")).
		WithTarget(PromQuery(
			`histogram_quantile(0.99, sum by (le) (rate(flyerdeals_http_request_duration_seconds_bucket[5m])))`,
			"p99", "C")).
		Unit("s").
		ColorScheme(ColorSchemePaletteClassic()).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Height(TSHeight).
		Span(TSWidth)
}

// ErrorRate shows the fraction of HTTP requests returning 5xx responses.
func ErrorRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Error Rate").
		Description("Fraction of requests returning 5xx").
		Datasource(DSRef()).
		WithTarget(PromQuery(
			`flyerdeals:http_errors:rate5m / flyerdeals:http_requests:rate5m`,
			"5xx ratio", "A")).
		Unit("percentunit").
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.05)).
		ColorScheme(ColorSchemeThresholds()).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Height(TSHeight).
		Span(FullWidth)
}
