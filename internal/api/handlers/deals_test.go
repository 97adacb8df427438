package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kagiso-dev/flyer-deals/internal/api/handlers"
	"github.com/kagiso-dev/flyer-deals/internal/catalog"
	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

func testCatalog() *catalog.Catalog {
	cat := catalog.New()
	cat.ReplaceAll([]domain.Deal{
		{ID: "1", Item: domain.SingleItem("Rice 10kg"), Price: "139.99", Store: "Shoprite", Type: "Special"},
		{ID: "2", Item: domain.SingleItem("Rice 10kg"), Price: "119.99", Store: "Boxer", Type: "Special"},
		{ID: "3", Item: domain.MultiItem("Oil 2L", "Sugar 2.5kg"), Price: "89.99", Store: "Boxer", Type: "Combo"},
	})
	return cat
}

func TestListDeals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		wantTotal string
		wantBody  string
	}{
		{
			name:      "no filters returns all",
			query:     "",
			wantTotal: `"total":3`,
		},
		{
			name:      "store filter is case-insensitive",
			query:     "?store=boxer",
			wantTotal: `"total":2`,
		},
		{
			name:      "type filter",
			query:     "?type=Combo",
			wantTotal: `"total":1`,
			wantBody:  `"3"`,
		},
		{
			name:      "name query matches within combo names",
			query:     "?q=sugar",
			wantTotal: `"total":1`,
			wantBody:  `"3"`,
		},
		{
			name:      "pagination",
			query:     "?limit=1&offset=1",
			wantTotal: `"total":3`,
			wantBody:  `"2"`,
		},
		{
			name:      "offset past the end returns empty page",
			query:     "?offset=10",
			wantTotal: `"total":3`,
			wantBody:  `"deals":[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewDealsHandler(testCatalog())
			_, api := humatest.New(t)
			handlers.RegisterDealRoutes(api, h)

			resp := api.Get("/api/v1/deals" + tt.query)
			require.Equal(t, http.StatusOK, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantTotal)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestGetDeal(t *testing.T) {
	t.Parallel()

	h := handlers.NewDealsHandler(testCatalog())
	_, api := humatest.New(t)
	handlers.RegisterDealRoutes(api, h)

	resp := api.Get("/api/v1/deals/2")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"Boxer"`)

	resp = api.Get("/api/v1/deals/nope")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
