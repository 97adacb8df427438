package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/kagiso-dev/flyer-deals/internal/api/handlers"
	"github.com/kagiso-dev/flyer-deals/internal/store"
)

// failingPingStore wraps the memory store with a failing Ping.
type failingPingStore struct {
	store.Store
}

func (failingPingStore) Ping(context.Context) error {
	return errors.New("connection refused")
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(store.NewMemoryStore())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	err := h.Healthz(e.NewContext(req, rec))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestReadyz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		store      store.Store
		wantStatus int
		wantBody   string
	}{
		{
			name:       "store reachable",
			store:      store.NewMemoryStore(),
			wantStatus: http.StatusOK,
			wantBody:   `"ready"`,
		},
		{
			name:       "store unreachable",
			store:      failingPingStore{store.NewMemoryStore()},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"unavailable"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewHealthHandler(tt.store)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
			rec := httptest.NewRecorder()

			err := h.Readyz(e.NewContext(req, rec))

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
