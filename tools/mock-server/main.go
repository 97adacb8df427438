// Package main implements a mock flyer catalog feed for local development.
// It serves canned deals from a JSON fixture to simulate the OCR/catalog
// service, including the incremental event endpoint, without a real feed.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"
)

type deal struct {
	ID    json.RawMessage `json:"id"`
	Item  json.RawMessage `json:"item"`
	Price json.RawMessage `json:"price"`
	Store string          `json:"store"`
	Type  string          `json:"type"`
	Unit  string          `json:"unit,omitempty"`
}

type event struct {
	Kind string          `json:"kind"`
	ID   json.RawMessage `json:"id"`
	Deal *deal           `json:"deal,omitempty"`
}

type fixture struct {
	Deals  []deal  `json:"deals"`
	Events []event `json:"events"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/catalog.json", "path to catalog fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "deals", len(fx.Deals), "events", len(fx.Events))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/deals", dealsHandler(logger, fx))
	mux.HandleFunc("GET /api/deals/events", eventsHandler(logger, fx))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock catalog server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &fx, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func dealsHandler(logger *slog.Logger, fx *fixture) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		deals := fx.Deals
		if deals == nil {
			deals = []deal{}
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{"deals": deals})
		logger.Info("served catalog", "deals", len(deals))
	}
}

// eventsHandler drips the fixture's events out one batch per poll. The
// cursor is the number of events already delivered, so clients that
// resume from an old cursor replay the remainder.
func eventsHandler(logger *slog.Logger, fx *fixture) http.HandlerFunc {
	const batchSize = 2
	var mu sync.Mutex

	return func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()

		offset := 0
		if cursor := r.URL.Query().Get("cursor"); cursor != "" {
			if v, err := strconv.Atoi(cursor); err == nil && v >= 0 {
				offset = v
			}
		}

		var batch []event
		if offset < len(fx.Events) {
			end := min(offset+batchSize, len(fx.Events))
			batch = fx.Events[offset:end]
			offset = end
		}
		if batch == nil {
			batch = []event{}
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			"events": batch,
			"cursor": strconv.Itoa(offset),
		})
		logger.Info("served events", "returned", len(batch), "cursor", offset)
	}
}
