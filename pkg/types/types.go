// Package domain defines the core business types for the flyer deal
// comparison service.
package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// DefaultUnit is the unit-of-sale assumed when a flyer omits one.
const DefaultUnit = "each"

// ItemNames holds the item field of a scanned flyer deal. OCR output is
// loosely shaped: a single name, a comma-joined string, or a list of names.
// The original shape is preserved so normalization can apply the right
// splitting rule exactly once.
type ItemNames struct {
	raw    string
	list   []string
	isList bool
}

// SingleItem builds an ItemNames from one raw string.
func SingleItem(s string) ItemNames {
	return ItemNames{raw: s}
}

// MultiItem builds an ItemNames from a list of names.
func MultiItem(names ...string) ItemNames {
	return ItemNames{list: names, isList: true}
}

// Raw returns the string form. Only meaningful when IsList is false.
func (n ItemNames) Raw() string { return n.raw }

// List returns the list form. Only meaningful when IsList is true.
func (n ItemNames) List() []string { return n.list }

// IsList reports whether the field arrived as a list.
func (n ItemNames) IsList() bool { return n.isList }

// IsZero reports whether the field is absent or empty.
func (n ItemNames) IsZero() bool {
	if n.isList {
		return len(n.list) == 0
	}
	return n.raw == ""
}

// UnmarshalJSON accepts a JSON string, an array of strings, or null.
// Any other shape degrades to the zero value rather than erroring, since
// flyer data is OCR-derived and must never crash the pipeline.
func (n *ItemNames) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*n = ItemNames{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			*n = ItemNames{}
			return nil //nolint:nilerr // malformed input degrades to empty
		}
		*n = ItemNames{raw: s}
	case '[':
		var list []string
		if err := json.Unmarshal(trimmed, &list); err != nil {
			*n = ItemNames{}
			return nil //nolint:nilerr // malformed input degrades to empty
		}
		*n = ItemNames{list: list, isList: true}
	default:
		*n = ItemNames{}
	}
	return nil
}

// MarshalJSON emits the original shape: an array when the field arrived as a
// list, a string otherwise.
func (n ItemNames) MarshalJSON() ([]byte, error) {
	if n.isList {
		return json.Marshal(n.list)
	}
	return json.Marshal(n.raw)
}

// Deal is a single priced listing extracted from a scanned store flyer.
// Deals are created by the OCR ingestion service and are read-only here.
type Deal struct {
	ID    string    `json:"id"             db:"id"`
	Item  ItemNames `json:"item"           db:"item"`
	Price string    `json:"price"          db:"price"` // free-form OCR text, parse via money.Parse
	Store string    `json:"store"          db:"store"`
	Type  string    `json:"type"           db:"type"` // expected to contain "single" or "combo"
	Unit  string    `json:"unit,omitempty" db:"unit"`
}

// DeclaredCombo reports whether the deal's free-text type classifies it as a
// combo. The field is not strictly enforced upstream, so this is a substring
// check, not an enum.
func (d *Deal) DeclaredCombo() bool {
	return strings.Contains(strings.ToLower(d.Type), "combo")
}

// UnitOrDefault returns the unit-of-sale descriptor, defaulting to "each".
func (d *Deal) UnitOrDefault() string {
	if d.Unit == "" {
		return DefaultUnit
	}
	return d.Unit
}

// PickedItem is a deal the user marked as a representative item to compare.
type PickedItem struct {
	Deal

	SelectedStore string `json:"selected_store,omitempty"`
}

// ComparisonGroup is the derived result for one distinct picked item-set:
// all matching catalog deals, deduplicated and sorted ascending by price.
type ComparisonGroup struct {
	ItemKey      string `json:"item_key"`
	DisplayName  string `json:"display_name"`
	IsCombo      bool   `json:"is_combo"`
	Deals        []Deal `json:"deals"`
	CheapestDeal *Deal  `json:"cheapest_deal,omitempty"`
}

// SavedList is a persisted basket snapshot, shareable as plain text.
type SavedList struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	Items     []Deal    `json:"items"      db:"items"`
	Total     float64   `json:"total"      db:"total"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
