package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CatalogFetchRate shows how often full catalog refreshes run.
func CatalogFetchRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Catalog Fetch Rate").
		Description("Full catalog fetches per second").
		Datasource(DSRef()).
		WithTarget(PromQuery("flyerdeals:catalog_fetches:rate5m", "fetches", "A")).
		Unit("ops").
		ColorScheme(ColorSchemePaletteClassic()).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Height(TSHeight).
		Span(TSWidth)
}

// CatalogFetchErrors shows the rate of failed catalog fetches.
func CatalogFetchErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Catalog Fetch Errors").
		Description("Failed catalog fetches per second").
		Datasource(DSRef()).
		WithTarget(PromQuery("flyerdeals:catalog_fetch_errors:rate5m", "errors", "A")).
		Unit("ops").
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds()).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Height(TSHeight).
		Span(TSWidth)
}

// CatalogRefreshDuration shows how long full catalog refreshes take.
func CatalogRefreshDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Refresh Duration").
		Description("p95 duration of a full catalog refresh").
		Datasource(DSRef()).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum by (le) (rate(flyerdeals_catalog_refresh_duration_seconds_bucket[5m])))`,
			"p95", "A")).
		Unit("s").
		ColorScheme(ColorSchemePaletteClassic()).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Height(TSHeight).
		Span(TSWidth)
}

// CatalogEventsByKind shows incremental catalog events broken down by kind.
func CatalogEventsByKind() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Catalog Events").
		Description("Incremental events applied per second by kind").
		Datasource(DSRef()).
		WithTarget(PromQuery(
			`sum by (kind) (rate(flyerdeals_catalog_events_total[5m]))`,
			"{{kind}}", "A")).
		Unit("ops").
		ColorScheme(ColorSchemePaletteClassic()).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Height(TSHeight).
		Span(TSWidth)
}
