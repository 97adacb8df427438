package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kagiso-dev/flyer-deals/internal/session"
	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	items := []domain.Deal{
		deal("1", "Rice", "$45", "Store A"),
		{
			ID:    "2",
			Item:  domain.MultiItem("Bread", "Milk"),
			Price: "R 60",
			Store: "Store B",
			Type:  "combo",
		},
	}

	got := session.FormatSummary(items, 105)

	want := "Store A: Rice - 45.00\n" +
		"Store B: Bread + Milk - 60.00\n" +
		"Total: 105.00\n"
	assert.Equal(t, want, got)
}

func TestFormatSummary_DegradedFields(t *testing.T) {
	t.Parallel()

	got := session.FormatSummary([]domain.Deal{{ID: "1", Price: "???"}}, 0)

	assert.Equal(t, "Unknown store: Unnamed item - 0.00\nTotal: 0.00\n", got)
}

func TestFormatSummary_EmptyBasket(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Total: 0.00\n", session.FormatSummary(nil, 0))
}

func TestSession_Summary(t *testing.T) {
	t.Parallel()

	s := session.NewManager().Create()
	s.ToggleBasket(deal("1", "Rice", "$45", "Store A"))

	assert.Equal(t, "Store A: Rice - 45.00\nTotal: 45.00\n", s.Summary())
}
