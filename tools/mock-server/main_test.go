package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadTestFixture(t *testing.T) *fixture {
	t.Helper()
	path := filepath.Join("testdata", "catalog.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return &fx
}

func TestLoadFixture(t *testing.T) {
	fx := loadTestFixture(t)
	if len(fx.Deals) == 0 {
		t.Fatal("expected deals in fixture")
	}
	if len(fx.Events) == 0 {
		t.Fatal("expected events in fixture")
	}
}

func TestDealsHandler(t *testing.T) {
	fx := loadTestFixture(t)
	handler := dealsHandler(testLogger(), fx)

	req := httptest.NewRequest(http.MethodGet, "/api/deals", http.NoBody)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Deals []deal `json:"deals"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Deals) != len(fx.Deals) {
		t.Errorf("deals=%d, want %d", len(resp.Deals), len(fx.Deals))
	}
}

func TestEventsHandler_DripsBatches(t *testing.T) {
	fx := loadTestFixture(t)
	handler := eventsHandler(testLogger(), fx)

	poll := func(cursor string) (int, string) {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/api/deals/events?cursor="+cursor, http.NoBody)
		w := httptest.NewRecorder()
		handler(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
		}

		var resp struct {
			Events []event `json:"events"`
			Cursor string  `json:"cursor"`
		}
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		return len(resp.Events), resp.Cursor
	}

	// First poll gets a batch, later polls continue from the cursor.
	n, cursor := poll("")
	if n == 0 {
		t.Fatal("expected events on first poll")
	}

	delivered := n
	for range fx.Events {
		n, cursor = poll(cursor)
		delivered += n
		if n == 0 {
			break
		}
	}
	if delivered != len(fx.Events) {
		t.Errorf("delivered=%d, want %d", delivered, len(fx.Events))
	}

	// Once drained, polling the final cursor returns nothing.
	n, _ = poll(cursor)
	if n != 0 {
		t.Errorf("expected empty batch after drain, got %d", n)
	}
}

func TestEventsHandler_BadCursorReplaysFromStart(t *testing.T) {
	fx := loadTestFixture(t)
	handler := eventsHandler(testLogger(), fx)

	req := httptest.NewRequest(http.MethodGet, "/api/deals/events?cursor=bogus", http.NoBody)
	w := httptest.NewRecorder()
	handler(w, req)

	var resp struct {
		Events []event `json:"events"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Events) == 0 {
		t.Error("expected events when cursor is unparseable")
	}
}
