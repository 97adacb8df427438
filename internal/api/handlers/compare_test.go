package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kagiso-dev/flyer-deals/internal/api/handlers"
	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

// fakeComparer records the picks it was called with.
type fakeComparer struct {
	groups []domain.ComparisonGroup
	picks  []domain.PickedItem
}

func (f *fakeComparer) Compare(_ context.Context, picks []domain.PickedItem) []domain.ComparisonGroup {
	f.picks = picks
	return f.groups
}

func TestCompare(t *testing.T) {
	t.Parallel()

	cheapest := domain.Deal{ID: "2", Item: domain.SingleItem("Rice 10kg"), Price: "119.99", Store: "Boxer"}
	comparer := &fakeComparer{groups: []domain.ComparisonGroup{
		{
			ItemKey:      "rice 10kg",
			DisplayName:  "Rice 10kg",
			Deals:        []domain.Deal{cheapest},
			CheapestDeal: &cheapest,
		},
	}}

	h := handlers.NewCompareHandler(comparer)
	_, api := humatest.New(t)
	handlers.RegisterCompareRoutes(api, h)

	resp := api.Post("/api/v1/compare", map[string]any{
		"picks": []map[string]any{
			{"id": "1", "item": "Rice 10kg", "price": "139.99", "store": "Shoprite"},
		},
	})

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"rice 10kg"`)
	assert.Contains(t, resp.Body.String(), `"cheapest_deal"`)
	require.Len(t, comparer.picks, 1)
	assert.Equal(t, "Rice 10kg", comparer.picks[0].Item.Raw())
}

func TestCompare_EmptyPicks(t *testing.T) {
	t.Parallel()

	h := handlers.NewCompareHandler(&fakeComparer{})
	_, api := humatest.New(t)
	handlers.RegisterCompareRoutes(api, h)

	resp := api.Post("/api/v1/compare", map[string]any{"picks": []any{}})

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"groups":[]`)
}

func TestCompare_TooManyPicks(t *testing.T) {
	t.Parallel()

	picks := make([]map[string]any, 201)
	for i := range picks {
		picks[i] = map[string]any{"id": "x", "item": "rice"}
	}

	h := handlers.NewCompareHandler(&fakeComparer{})
	_, api := humatest.New(t)
	handlers.RegisterCompareRoutes(api, h)

	resp := api.Post("/api/v1/compare", map[string]any{"picks": picks})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
