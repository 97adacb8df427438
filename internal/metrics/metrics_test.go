package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/kagiso-dev/flyer-deals/internal/metrics"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(metrics.CompareRunsTotal)
	metrics.CompareRunsTotal.Inc()
	assert.InDelta(t, before+1, testutil.ToFloat64(metrics.CompareRunsTotal), 0.0001)
}

func TestGaugeSet(t *testing.T) {
	metrics.CatalogDeals.Set(42)
	assert.InDelta(t, 42, testutil.ToFloat64(metrics.CatalogDeals), 0.0001)
}

func TestEventCounterLabels(t *testing.T) {
	before := testutil.ToFloat64(metrics.CatalogEventsTotal.WithLabelValues("insert"))
	metrics.CatalogEventsTotal.WithLabelValues("insert").Inc()
	assert.InDelta(t, before+1,
		testutil.ToFloat64(metrics.CatalogEventsTotal.WithLabelValues("insert")), 0.0001)
}
