package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kagiso-dev/flyer-deals/internal/catalog"
	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

type fakeClient struct {
	deals     []domain.Deal
	fetchErr  error
	events    []catalog.Event
	cursor    string
	eventsErr error

	fetchCalls  int
	eventsCalls int
	gotCursor   string
}

func (f *fakeClient) FetchAll(context.Context) ([]domain.Deal, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.deals, nil
}

func (f *fakeClient) FetchEvents(_ context.Context, cursor string) ([]catalog.Event, string, error) {
	f.eventsCalls++
	f.gotCursor = cursor
	if f.eventsErr != nil {
		return nil, "", f.eventsErr
	}
	return f.events, f.cursor, nil
}

func TestEngine_RunRefresh(t *testing.T) {
	t.Parallel()

	client := &fakeClient{deals: []domain.Deal{
		{ID: "1", Item: domain.SingleItem("rice"), Price: "12.99", Store: "Shoprite"},
		{ID: "2", Item: domain.SingleItem("oil"), Price: "39.99", Store: "Boxer"},
	}}
	cat := catalog.New()
	eng := NewEngine(cat, client)

	require.NoError(t, eng.RunRefresh(context.Background()))

	assert.Equal(t, 1, client.fetchCalls)
	assert.Equal(t, 2, cat.Len())
}

func TestEngine_RunRefreshError(t *testing.T) {
	t.Parallel()

	client := &fakeClient{fetchErr: errors.New("feed down")}
	cat := catalog.New()
	cat.ReplaceAll([]domain.Deal{{ID: "1", Item: domain.SingleItem("rice")}})

	eng := NewEngine(cat, client)

	err := eng.RunRefresh(context.Background())
	require.Error(t, err)
	// A failed refresh leaves the catalog untouched.
	assert.Equal(t, 1, cat.Len())
}

func TestEngine_RunSync(t *testing.T) {
	t.Parallel()

	client := &fakeClient{
		events: []catalog.Event{
			{Kind: catalog.EventInsert, ID: "2", Deal: domain.Deal{ID: "2", Item: domain.SingleItem("oil")}},
			{Kind: catalog.EventDelete, ID: "1"},
		},
		cursor: "c-42",
	}
	cat := catalog.New()
	cat.ReplaceAll([]domain.Deal{{ID: "1", Item: domain.SingleItem("rice")}})

	eng := NewEngine(cat, client)

	require.NoError(t, eng.RunSync(context.Background()))

	assert.Equal(t, "", client.gotCursor)
	assert.Equal(t, "c-42", eng.Cursor())
	assert.Equal(t, 1, cat.Len())

	_, ok := cat.Get("2")
	assert.True(t, ok)

	// Next sync passes the advanced cursor through.
	require.NoError(t, eng.RunSync(context.Background()))
	assert.Equal(t, "c-42", client.gotCursor)
}

func TestEngine_RunSyncErrorKeepsCursor(t *testing.T) {
	t.Parallel()

	client := &fakeClient{cursor: "c-1"}
	eng := NewEngine(catalog.New(), client)

	require.NoError(t, eng.RunSync(context.Background()))
	require.Equal(t, "c-1", eng.Cursor())

	client.eventsErr = errors.New("feed down")
	require.Error(t, eng.RunSync(context.Background()))
	assert.Equal(t, "c-1", eng.Cursor())
}

func TestEngine_Compare(t *testing.T) {
	t.Parallel()

	client := &fakeClient{deals: []domain.Deal{
		{ID: "1", Item: domain.SingleItem("Rice 10kg"), Price: "139.99", Store: "Shoprite"},
		{ID: "2", Item: domain.SingleItem("Rice 10kg"), Price: "119.99", Store: "Boxer"},
		{ID: "3", Item: domain.SingleItem("Sunflower Oil"), Price: "59.99", Store: "Boxer"},
	}}
	cat := catalog.New()
	eng := NewEngine(cat, client)
	require.NoError(t, eng.RunRefresh(context.Background()))

	picks := []domain.PickedItem{
		{Deal: domain.Deal{ID: "1", Item: domain.SingleItem("Rice 10kg"), Price: "139.99", Store: "Shoprite"}},
	}

	groups := eng.Compare(context.Background(), picks)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Deals, 2)
	assert.Equal(t, "2", groups[0].CheapestDeal.ID)
}
