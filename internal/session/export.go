package session

import (
	"fmt"
	"strings"

	"github.com/kagiso-dev/flyer-deals/pkg/compare"
	"github.com/kagiso-dev/flyer-deals/pkg/money"
	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

// FormatSummary renders a basket snapshot as a flat text summary suitable
// for sharing: one "store: item(s) - price" line per deal plus a total.
// Pure formatting, no side effects.
func FormatSummary(items []domain.Deal, total float64) string {
	var b strings.Builder

	for i := range items {
		d := &items[i]

		store := d.Store
		if store == "" {
			store = "Unknown store"
		}
		name := compare.DisplayName(compare.NormalizeNames(d.Item))
		if name == "" {
			name = "Unnamed item"
		}

		fmt.Fprintf(&b, "%s: %s - %s\n", store, name, money.Format(money.ParseOrZero(d.Price)))
	}

	fmt.Fprintf(&b, "Total: %s\n", money.Format(total))
	return b.String()
}

// Summary renders the session's current basket via FormatSummary.
func (s *Session) Summary() string {
	return FormatSummary(s.BasketItems(), s.Total())
}
