package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListDeals(context.Background(), DealFilters{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListDeals(context.Background(), DealFilters{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestClient_ListDeals(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/deals", r.URL.Path)
		assert.Equal(t, "boxer", r.URL.Query().Get("store"))
		assert.Equal(t, "rice", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(DealsPage{
			Deals: []domain.Deal{{ID: "1", Item: domain.SingleItem("Rice 10kg")}},
			Total: 1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	page, err := c.ListDeals(context.Background(), DealFilters{Store: "boxer", Query: "rice"})
	require.NoError(t, err)
	require.Len(t, page.Deals, 1)
	assert.Equal(t, "Rice 10kg", page.Deals[0].Item.Raw())
}

func TestClient_Compare(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/compare", r.URL.Path)

		var req compareRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Picks, 1)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(compareResponse{
			Groups: []domain.ComparisonGroup{{ItemKey: "rice 10kg"}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	groups, err := c.Compare(context.Background(), []domain.PickedItem{
		{Deal: domain.Deal{ID: "1", Item: domain.SingleItem("Rice 10kg")}},
	})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "rice 10kg", groups[0].ItemKey)
}

func TestClient_SessionFlow(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/sessions":
			_ = json.NewEncoder(w).Encode(SessionState{ID: "s1"})
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/sessions/s1/basket/d1":
			_ = json.NewEncoder(w).Encode(BasketState{Added: true, Total: 12.99})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v1/sessions/s1/budget":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	sess, err := c.CreateSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "s1", sess.ID)

	basket, err := c.ToggleBasket(ctx, "s1", "d1")
	require.NoError(t, err)
	assert.True(t, basket.Added)
	assert.InDelta(t, 12.99, basket.Total, 0.001)

	require.NoError(t, c.ClearBudget(ctx, "s1"))
}

func TestClient_ExportList(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/lists/l1/export", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Shoprite: Rice 10kg - 139.99\nTotal: 139.99\n"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	text, err := c.ExportList(context.Background(), "l1")
	require.NoError(t, err)
	assert.Contains(t, text, "Total: 139.99")
}
