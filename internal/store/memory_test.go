package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

func TestMemoryStore_SaveAndGet(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	list := &domain.SavedList{
		Name: "weekly shop",
		Items: []domain.Deal{
			{ID: "1", Item: domain.SingleItem("rice"), Price: "12.99", Store: "Shoprite"},
		},
		Total: 12.99,
	}

	require.NoError(t, s.SaveList(ctx, list))
	assert.NotEmpty(t, list.ID)
	assert.False(t, list.CreatedAt.IsZero())

	got, err := s.GetList(ctx, list.ID)
	require.NoError(t, err)
	assert.Equal(t, "weekly shop", got.Name)
	assert.Len(t, got.Items, 1)
	assert.InDelta(t, 12.99, got.Total, 0.001)
}

func TestMemoryStore_GetNotFound(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()

	_, err := s.GetList(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ListLists(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		list := &domain.SavedList{
			Name:      string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, s.SaveList(ctx, list))
	}

	lists, err := s.ListLists(ctx, 0)
	require.NoError(t, err)
	require.Len(t, lists, 3)

	// Newest first.
	assert.Equal(t, "c", lists[0].Name)
	assert.Equal(t, "a", lists[2].Name)

	limited, err := s.ListLists(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
	assert.Equal(t, "c", limited[0].Name)
}

func TestMemoryStore_DeleteList(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	list := &domain.SavedList{Name: "doomed"}
	require.NoError(t, s.SaveList(ctx, list))

	require.NoError(t, s.DeleteList(ctx, list.ID))

	_, err := s.GetList(ctx, list.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.DeleteList(ctx, list.ID), ErrNotFound)
}
