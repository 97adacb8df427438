package engine

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kagiso-dev/flyer-deals/internal/catalog"
)

func TestNewScheduler(t *testing.T) {
	t.Parallel()

	eng := NewEngine(catalog.New(), &fakeClient{})

	s, err := NewScheduler(eng, 30*time.Minute, 2*time.Minute, slog.Default())
	require.NoError(t, err)

	assert.Len(t, s.Entries(), 2)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	eng := NewEngine(catalog.New(), &fakeClient{})

	s, err := NewScheduler(eng, time.Hour, time.Hour, slog.Default())
	require.NoError(t, err)

	s.Start()
	stopCtx := s.Stop()

	select {
	case <-stopCtx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop in time")
	}
}
