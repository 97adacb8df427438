// Package store defines persistence for saved shopping lists. Business
// logic depends on the Store interface, never on concrete implementations,
// so handlers stay testable without a running database. Saved lists are
// opaque basket snapshots: the schema is a keyed JSON blob plus a timestamp,
// matching the external key-value contract.
package store

import (
	"context"
	"errors"

	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

// ErrNotFound is returned when no saved list exists for an id.
var ErrNotFound = errors.New("saved list not found")

// Store defines all saved-list data access operations.
type Store interface {
	SaveList(ctx context.Context, list *domain.SavedList) error
	GetList(ctx context.Context, id string) (*domain.SavedList, error)
	ListLists(ctx context.Context, limit int) ([]domain.SavedList, error)
	DeleteList(ctx context.Context, id string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
