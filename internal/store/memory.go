package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

// MemoryStore is an in-process Store implementation. It backs the
// "memory" database backend and is used by handler tests.
type MemoryStore struct {
	mu    sync.RWMutex
	lists map[string]domain.SavedList
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{lists: make(map[string]domain.SavedList)}
}

func (m *MemoryStore) SaveList(_ context.Context, list *domain.SavedList) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if list.ID == "" {
		list.ID = uuid.NewString()
	}
	if list.CreatedAt.IsZero() {
		list.CreatedAt = time.Now().UTC()
	}

	m.lists[list.ID] = *list
	return nil
}

func (m *MemoryStore) GetList(_ context.Context, id string) (*domain.SavedList, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list, ok := m.lists[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &list, nil
}

func (m *MemoryStore) ListLists(_ context.Context, limit int) ([]domain.SavedList, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if limit <= 0 {
		limit = defaultListLimit
	}

	lists := make([]domain.SavedList, 0, len(m.lists))
	for _, list := range m.lists {
		lists = append(lists, list)
	}
	sort.Slice(lists, func(i, j int) bool {
		return lists[i].CreatedAt.After(lists[j].CreatedAt)
	})

	if len(lists) > limit {
		lists = lists[:limit]
	}
	return lists, nil
}

func (m *MemoryStore) DeleteList(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lists[id]; !ok {
		return ErrNotFound
	}
	delete(m.lists, id)
	return nil
}

func (m *MemoryStore) Migrate(context.Context) error { return nil }

func (m *MemoryStore) Ping(context.Context) error { return nil }
