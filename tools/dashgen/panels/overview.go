package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// HealthzStat shows the liveness state of the API server.
func HealthzStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Liveness").
		Description("Whether the server process is up and serving /healthz").
		Datasource(DSRef()).
		WithTarget(PromQuery("flyerdeals_healthz_up", "", "A")).
		Mappings([]dashboard.ValueMapping{
			{
				ValueMap: &dashboard.ValueMap{
					Type: dashboard.MappingTypeValueToText,
					Options: map[string]dashboard.ValueMappingResult{
						"0": {Text: cog.ToPtr("DOWN"), Color: cog.ToPtr("red")},
						"1": {Text: cog.ToPtr("UP"), Color: cog.ToPtr("green")},
					},
				},
			},
		}).
		Thresholds(ThresholdsRedGreen(1)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		Height(StatHeight).
		Span(StatWidth)
}

// ReadyzStat shows the readiness state of the API server, which depends on
// the backing store being reachable.
func ReadyzStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Readiness").
		Description("Whether the server can reach its backing store").
		Datasource(DSRef()).
		WithTarget(PromQuery("flyerdeals_readyz_up", "", "A")).
		Mappings([]dashboard.ValueMapping{
			{
				ValueMap: &dashboard.ValueMap{
					Type: dashboard.MappingTypeValueToText,
					Options: map[string]dashboard.ValueMappingResult{
						"0": {Text: cog.ToPtr("NOT READY"), Color: cog.ToPtr("red")},
						"1": {Text: cog.ToPtr("READY"), Color: cog.ToPtr("green")},
					},
				},
			},
		}).
		Thresholds(ThresholdsRedGreen(1)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		Height(StatHeight).
		Span(StatWidth)
}

// CatalogDealsStat shows the number of deals currently held in the catalog.
func CatalogDealsStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Catalog Deals").
		Description("Deals currently loaded in the in-memory catalog").
		Datasource(DSRef()).
		WithTarget(PromQuery("flyerdeals_catalog_deals", "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorMode(common.BigValueColorModeValue).
		GraphMode(common.BigValueGraphModeArea).
		Height(StatHeight).
		Span(StatWidth)
}

// UptimeStat shows how long the server process has been running.
func UptimeStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Uptime").
		Description("Time since the server process started").
		Datasource(DSRef()).
		WithTarget(PromQuery(`time() - process_start_time_seconds{job="flyer-deals"}`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorMode(common.BigValueColorModeValue).
		GraphMode(common.BigValueGraphModeNone).
		Height(StatHeight).
		Span(StatWidth)
}
