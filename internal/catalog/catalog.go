// Package catalog maintains the in-memory copy of the flyer deal catalog.
// The catalog is refreshed by the external OCR/ingestion collaborator via a
// full bulk fetch plus incremental insert/update/delete notifications keyed
// by deal id; the comparison core only ever reads snapshots of it.
package catalog

import (
	"sync"

	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

// EventKind classifies an incremental catalog notification.
type EventKind string

// Event kinds.
const (
	EventInsert EventKind = "insert"
	EventUpdate EventKind = "update"
	EventDelete EventKind = "delete"
)

// Event is a single incremental catalog notification.
type Event struct {
	Kind EventKind   `json:"kind"`
	ID   string      `json:"id"`
	Deal domain.Deal `json:"deal,omitzero"`
}

// Catalog is a concurrency-safe, ordered, in-memory deal catalog. Insertion
// order is preserved because downstream price sorting breaks ties by catalog
// order and must stay deterministic.
type Catalog struct {
	mu    sync.RWMutex
	deals []domain.Deal
	index map[string]int // deal id -> position in deals

	subs []chan struct{}
}

// New creates an empty Catalog.
func New() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// ReplaceAll swaps in a freshly fetched catalog, dropping the previous copy.
func (c *Catalog) ReplaceAll(deals []domain.Deal) {
	c.mu.Lock()
	c.deals = make([]domain.Deal, len(deals))
	copy(c.deals, deals)
	c.reindex()
	c.mu.Unlock()

	c.notify()
}

// Apply folds incremental events into the catalog: insert appends, update
// replaces by id (falling back to append for unknown ids), delete removes by
// id. Unknown event kinds and deletes of absent ids are ignored.
func (c *Catalog) Apply(events []Event) {
	if len(events) == 0 {
		return
	}

	c.mu.Lock()
	for _, ev := range events {
		switch ev.Kind {
		case EventInsert:
			c.upsert(ev.Deal)
		case EventUpdate:
			c.upsert(ev.Deal)
		case EventDelete:
			c.remove(ev.ID)
		}
	}
	c.mu.Unlock()

	c.notify()
}

// Snapshot returns a copy of the current catalog in insertion order.
func (c *Catalog) Snapshot() []domain.Deal {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Deal, len(c.deals))
	copy(out, c.deals)
	return out
}

// Get returns the deal with the given id.
func (c *Catalog) Get(id string) (domain.Deal, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pos, ok := c.index[id]
	if !ok {
		return domain.Deal{}, false
	}
	return c.deals[pos], true
}

// Len returns the number of deals currently held.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.deals)
}

// Subscribe returns a channel that receives a signal after every catalog
// change. The channel is buffered; a slow consumer coalesces signals rather
// than blocking catalog writers.
func (c *Catalog) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)

	c.mu.Lock()
	c.subs = append(c.subs, ch)
	c.mu.Unlock()

	return ch
}

func (c *Catalog) upsert(d domain.Deal) {
	if d.ID == "" {
		return
	}
	if pos, ok := c.index[d.ID]; ok {
		c.deals[pos] = d
		return
	}
	c.index[d.ID] = len(c.deals)
	c.deals = append(c.deals, d)
}

func (c *Catalog) remove(id string) {
	pos, ok := c.index[id]
	if !ok {
		return
	}
	c.deals = append(c.deals[:pos], c.deals[pos+1:]...)
	delete(c.index, id)
	for i := pos; i < len(c.deals); i++ {
		c.index[c.deals[i].ID] = i
	}
}

func (c *Catalog) reindex() {
	c.index = make(map[string]int, len(c.deals))
	for i := range c.deals {
		if c.deals[i].ID != "" {
			c.index[c.deals[i].ID] = i
		}
	}
}

func (c *Catalog) notify() {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, ch := range c.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
