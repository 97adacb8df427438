// Package compare implements the deal comparison core: item-name
// normalization, deal matching, deduplication, and group assembly over a
// flyer catalog snapshot. Everything here is pure computation, safe to call
// concurrently for different sessions.
package compare

import (
	"sort"
	"strings"

	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

// tokenKeyDelimiter joins sorted lowercase names into a group identity.
const tokenKeyDelimiter = " ||| "

// NormalizeNames flattens a flyer item field into an ordered list of
// non-empty trimmed names. A one-element list whose element contains a comma
// is split on commas; multi-element lists are trimmed as-is; comma-containing
// strings are split; plain strings wrap into a one-element list. Absent or
// unparseable input degrades to an empty list, never an error.
func NormalizeNames(item domain.ItemNames) []string {
	if item.IsList() {
		list := item.List()
		if len(list) == 1 && strings.Contains(list[0], ",") {
			return splitNames(list[0])
		}
		return trimNames(list)
	}

	raw := item.Raw()
	if strings.Contains(raw, ",") {
		return splitNames(raw)
	}
	return trimNames([]string{raw})
}

// TokenKey derives the canonical identity of an item-name set: lowercased,
// sorted lexicographically, joined with a fixed delimiter. Two inputs
// normalizing to the same multiset of lowercase names produce the same key.
func TokenKey(names []string) string {
	lowered := make([]string, len(names))
	for i, name := range names {
		lowered[i] = strings.ToLower(name)
	}
	sort.Strings(lowered)
	return strings.Join(lowered, tokenKeyDelimiter)
}

// DisplayName joins normalized names into a human-readable label.
func DisplayName(names []string) string {
	return strings.Join(names, " + ")
}

func splitNames(s string) []string {
	return trimNames(strings.Split(s, ","))
}

func trimNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
