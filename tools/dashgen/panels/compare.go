package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CompareRunRate shows how often deal comparisons are requested.
func CompareRunRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Compare Run Rate").
		Description("Comparison runs per second").
		Datasource(DSRef()).
		WithTarget(PromQuery("flyerdeals:compare_runs:rate5m", "runs", "A")).
		Unit("ops").
		ColorScheme(ColorSchemePaletteClassic()).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Height(TSHeight).
		Span(TSWidth)
}

// CompareDuration shows comparison latency percentiles.
func CompareDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Compare Duration").
		Description("Comparison run duration percentiles").
		Datasource(DSRef()).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum by (le) (rate(flyerdeals_compare_duration_seconds_bucket[5m])))`,
			"p50", "A")).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum by (le) (rate(flyerdeals_compare_duration_seconds_bucket[5m])))`,
			"p95", "B")).
		Unit("s").
		ColorScheme(ColorSchemePaletteClassic()).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Height(TSHeight).
		Span(TSWidth)
}

// CompareGroupSize shows the p95 number of item groups per comparison.
func CompareGroupSize() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Group Size").
		Description("p95 item groups produced per comparison").
		Datasource(DSRef()).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum by (le) (rate(flyerdeals_compare_group_size_bucket[5m])))`,
			"p95 groups", "A")).
		ColorScheme(ColorSchemePaletteClassic()).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Height(TSHeight).
		Span(TSWidth)
}

// SavedListsRate shows how often comparison results are saved as lists.
func SavedListsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Saved Lists").
		Description("Shopping lists saved per second").
		Datasource(DSRef()).
		WithTarget(PromQuery(
			`rate(flyerdeals_saved_lists_total[5m])`,
			"saved", "A")).
		Unit("ops").
		ColorScheme(ColorSchemePaletteClassic()).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Height(TSHeight).
		Span(TSWidth)
}
