// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/kagiso-dev/flyer-deals/tools/dashgen/panels"
)

// BuildOverview constructs the Flyer Deals Overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Flyer Deals Overview").
		Uid("flyerdeals-overview").
		Tags([]string{"flyerdeals", "flyer-deals"}).
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
		WithPanel(panels.CatalogDealsStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Catalog.
	b.WithRow(dashboard.NewRowBuilder("Catalog").
		WithPanel(panels.CatalogFetchRate()).
		WithPanel(panels.CatalogFetchErrors()).
		WithPanel(panels.CatalogRefreshDuration()).
		WithPanel(panels.CatalogEventsByKind()))

	// Row 4: Compare.
	b.WithRow(dashboard.NewRowBuilder("Compare").
		WithPanel(panels.CompareRunRate()).
		WithPanel(panels.CompareDuration()).
		WithPanel(panels.CompareGroupSize()).
		WithPanel(panels.SavedListsRate()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
