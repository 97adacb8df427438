package compare

import (
	"strings"

	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

// DefaultExtraItemsAllowed bounds how many more items a combo deal may bundle
// than the pick before it stops matching. The value of 1 permits minor
// bundling variance without pulling in unrelated larger combos. It is a
// tunable heuristic, exposed through config; changing it shifts match recall.
const DefaultExtraItemsAllowed = 1

// Matcher decides whether catalog deals represent the same product(s) as a
// picked item. Matching is case-insensitive substring containment only; no
// stemming or edit-distance.
type Matcher struct {
	// ExtraItemsAllowed is the combo-mode tolerance for extra bundled items.
	ExtraItemsAllowed int
}

// NewMatcher returns a Matcher with the default combo tolerance.
func NewMatcher() Matcher {
	return Matcher{ExtraItemsAllowed: DefaultExtraItemsAllowed}
}

// Match returns the subset of catalog deals matching the pick, in catalog
// order. The deal that produced the pick (same id) is always included, so the
// picked item stays visible in its own group even when its item field is
// unmatchable. With an empty token list only the self-match survives.
func (m Matcher) Match(pick *domain.PickedItem, catalog []domain.Deal) []domain.Deal {
	tokens := lowerAll(NormalizeNames(pick.Item))
	combo := len(tokens) > 1 || pick.DeclaredCombo()

	var matched []domain.Deal
	for i := range catalog {
		deal := &catalog[i]

		if deal.ID != "" && deal.ID == pick.ID {
			matched = append(matched, *deal)
			continue
		}
		if len(tokens) == 0 {
			continue
		}

		names := lowerAll(NormalizeNames(deal.Item))
		if combo {
			if m.matchCombo(tokens, names) {
				matched = append(matched, *deal)
			}
			continue
		}
		// Single mode only matches single deals. A combo whose bundle
		// happens to contain the picked name is a different offer.
		if len(names) > 1 || deal.DeclaredCombo() {
			continue
		}
		if anyContains(names, tokens[0]) {
			matched = append(matched, *deal)
		}
	}
	return matched
}

// matchCombo requires every picked token to appear in some deal name, the
// deal to carry at most ExtraItemsAllowed more names than the pick, and the
// deal to itself be a combo rather than a coincidentally-matching single.
func (m Matcher) matchCombo(tokens, names []string) bool {
	if len(names) <= 1 {
		return false
	}
	if len(names) > len(tokens)+m.ExtraItemsAllowed {
		return false
	}
	for _, token := range tokens {
		if !anyContains(names, token) {
			return false
		}
	}
	return true
}

func anyContains(names []string, token string) bool {
	for _, name := range names {
		if strings.Contains(name, token) {
			return true
		}
	}
	return false
}

func lowerAll(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = strings.ToLower(name)
	}
	return out
}
