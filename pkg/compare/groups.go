package compare

import (
	"sort"

	"github.com/kagiso-dev/flyer-deals/pkg/money"
	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

// BuildGroups produces one ComparisonGroup per distinct picked item-set,
// deduplicated by token key with the first-seen pick winning. Within each
// group the deduplicated matches are sorted ascending by parsed price using
// a stable sort, so ties keep catalog order and unparseable prices land at
// the end. Identical inputs always yield identical output ordering.
func BuildGroups(
	picks []domain.PickedItem,
	catalog []domain.Deal,
	matcher Matcher,
) []domain.ComparisonGroup {
	groups := make([]domain.ComparisonGroup, 0, len(picks))
	seen := make(map[string]struct{}, len(picks))

	for i := range picks {
		pick := &picks[i]
		tokens := NormalizeNames(pick.Item)
		key := TokenKey(tokens)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		deals := Deduplicate(matcher.Match(pick, catalog))
		sort.SliceStable(deals, func(a, b int) bool {
			return money.SortValue(deals[a].Price) < money.SortValue(deals[b].Price)
		})

		group := domain.ComparisonGroup{
			ItemKey:     key,
			DisplayName: DisplayName(tokens),
			IsCombo:     len(tokens) > 1 || pick.DeclaredCombo(),
			Deals:       deals,
		}
		if len(deals) > 0 {
			group.CheapestDeal = &group.Deals[0]
		}
		groups = append(groups, group)
	}
	return groups
}
