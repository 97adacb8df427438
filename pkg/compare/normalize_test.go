package compare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kagiso-dev/flyer-deals/pkg/compare"
	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

func TestNormalizeNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		item domain.ItemNames
		want []string
	}{
		{
			name: "plain string",
			item: domain.SingleItem("Basmati Rice 2kg"),
			want: []string{"Basmati Rice 2kg"},
		},
		{
			name: "comma-joined string splits",
			item: domain.SingleItem("Bread, Milk , Butter"),
			want: []string{"Bread", "Milk", "Butter"},
		},
		{
			name: "multi-element list trims without splitting",
			item: domain.MultiItem(" Bread ", "Milk"),
			want: []string{"Bread", "Milk"},
		},
		{
			name: "one-element list containing comma splits",
			item: domain.MultiItem("Bread,Milk,Butter"),
			want: []string{"Bread", "Milk", "Butter"},
		},
		{
			name: "empty strings filtered",
			item: domain.MultiItem("Bread", "  ", ""),
			want: []string{"Bread"},
		},
		{
			name: "zero value returns empty",
			item: domain.ItemNames{},
			want: []string{},
		},
		{
			name: "empty list returns empty",
			item: domain.MultiItem(),
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := compare.NormalizeNames(tt.item)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeNames_Idempotent(t *testing.T) {
	t.Parallel()

	first := compare.NormalizeNames(domain.SingleItem("Bread, Milk, Butter"))
	second := compare.NormalizeNames(domain.MultiItem(first...))
	assert.Equal(t, first, second)
}

func TestTokenKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want string
	}{
		{name: "single name lowercased", in: []string{"Rice"}, want: "rice"},
		{name: "sorted and joined", in: []string{"Rice", "Oil"}, want: "oil ||| rice"},
		{name: "empty", in: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, compare.TokenKey(tt.in))
		})
	}
}

func TestTokenKey_OrderAndCaseInsensitive(t *testing.T) {
	t.Parallel()

	a := compare.TokenKey([]string{"Rice", "Oil"})
	b := compare.TokenKey([]string{"oil", "RICE"})
	assert.Equal(t, a, b)
	assert.Equal(t, "oil ||| rice", a)
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Bread + Milk", compare.DisplayName([]string{"Bread", "Milk"}))
	assert.Equal(t, "Rice", compare.DisplayName([]string{"Rice"}))
	assert.Empty(t, compare.DisplayName(nil))
}
