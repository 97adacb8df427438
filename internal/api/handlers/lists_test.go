package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kagiso-dev/flyer-deals/internal/api/handlers"
	"github.com/kagiso-dev/flyer-deals/internal/session"
	"github.com/kagiso-dev/flyer-deals/internal/store"
	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

type listsFixture struct {
	api     humatest.TestAPI
	manager *session.Manager
	store   *store.MemoryStore
}

func newListsAPI(t *testing.T) *listsFixture {
	t.Helper()

	f := &listsFixture{
		manager: session.NewManager(),
		store:   store.NewMemoryStore(),
	}

	_, api := humatest.New(t)
	handlers.RegisterListRoutes(api, handlers.NewListsHandler(f.store, f.manager))
	f.api = api
	return f
}

func (f *listsFixture) sessionWithBasket() *session.Session {
	sess := f.manager.Create()
	sess.ToggleBasket(domain.Deal{ID: "1", Item: domain.SingleItem("Rice 10kg"), Price: "139.99", Store: "Shoprite"})
	sess.ToggleBasket(domain.Deal{ID: "3", Item: domain.MultiItem("Oil 2L", "Sugar 2.5kg"), Price: "89.99", Store: "Boxer"})
	return sess
}

func TestSaveList(t *testing.T) {
	t.Parallel()

	f := newListsAPI(t)
	sess := f.sessionWithBasket()

	resp := f.api.Post("/api/v1/sessions/"+sess.ID()+"/lists", map[string]any{"name": "weekend shop"})
	require.Equal(t, http.StatusCreated, resp.Code)

	var saved domain.SavedList
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &saved))
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "weekend shop", saved.Name)
	assert.Len(t, saved.Items, 2)
	assert.InDelta(t, 229.98, saved.Total, 0.001)

	got, err := f.store.GetList(t.Context(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "weekend shop", got.Name)
}

func TestSaveList_EmptyBasket(t *testing.T) {
	t.Parallel()

	f := newListsAPI(t)
	sess := f.manager.Create()

	resp := f.api.Post("/api/v1/sessions/"+sess.ID()+"/lists", map[string]any{"name": "empty"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestSaveList_SessionNotFound(t *testing.T) {
	t.Parallel()

	f := newListsAPI(t)

	resp := f.api.Post("/api/v1/sessions/nope/lists", map[string]any{"name": "x"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListAndGetLists(t *testing.T) {
	t.Parallel()

	f := newListsAPI(t)
	sess := f.sessionWithBasket()

	resp := f.api.Post("/api/v1/sessions/"+sess.ID()+"/lists", map[string]any{"name": "first"})
	require.Equal(t, http.StatusCreated, resp.Code)

	var saved domain.SavedList
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &saved))

	resp = f.api.Get("/api/v1/lists")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"first"`)

	resp = f.api.Get("/api/v1/lists/" + saved.ID)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"first"`)

	resp = f.api.Get("/api/v1/lists/00000000-0000-0000-0000-000000000000")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestExportList(t *testing.T) {
	t.Parallel()

	f := newListsAPI(t)
	sess := f.sessionWithBasket()

	resp := f.api.Post("/api/v1/sessions/"+sess.ID()+"/lists", map[string]any{"name": "export me"})
	require.Equal(t, http.StatusCreated, resp.Code)

	var saved domain.SavedList
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &saved))

	resp = f.api.Get("/api/v1/lists/" + saved.ID + "/export")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, resp.Body.String(), "Shoprite: Rice 10kg - 139.99")
	assert.Contains(t, resp.Body.String(), "Boxer: Oil 2L + Sugar 2.5kg - 89.99")
	assert.Contains(t, resp.Body.String(), "Total: 229.98")
}

func TestDeleteList(t *testing.T) {
	t.Parallel()

	f := newListsAPI(t)
	sess := f.sessionWithBasket()

	resp := f.api.Post("/api/v1/sessions/"+sess.ID()+"/lists", map[string]any{"name": "doomed"})
	require.Equal(t, http.StatusCreated, resp.Code)

	var saved domain.SavedList
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &saved))

	resp = f.api.Delete("/api/v1/lists/" + saved.ID)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = f.api.Delete("/api/v1/lists/" + saved.ID)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
