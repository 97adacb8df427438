package compare

import (
	"strings"

	"github.com/kagiso-dev/flyer-deals/pkg/money"
	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

// Deduplicate collapses matches that represent the same physical flyer
// listing: same store, item names, numeric price, type, and unit. The same
// listing shows up repeatedly when a flyer is re-scanned or re-keyed with
// different casing. First occurrence wins and input order is preserved;
// price ordering happens later in group assembly.
func Deduplicate(deals []domain.Deal) []domain.Deal {
	seen := make(map[string]struct{}, len(deals))
	out := make([]domain.Deal, 0, len(deals))

	for i := range deals {
		key := dedupKey(&deals[i])
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, deals[i])
	}
	return out
}

// dedupKey builds the listing identity tuple. Prices compare by parsed
// numeric value so "R45" and "45.00" collapse; missing unit falls back to
// the ingestion default rather than crashing on absent fields.
func dedupKey(d *domain.Deal) string {
	return strings.Join([]string{
		strings.ToLower(d.Store),
		strings.ToLower(strings.Join(NormalizeNames(d.Item), ",")),
		money.Format(money.ParseOrZero(d.Price)),
		strings.ToLower(d.Type),
		strings.ToLower(d.UnitOrDefault()),
	}, "|")
}
