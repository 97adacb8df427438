package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

const maxComparePicks = 200

// Comparer runs a comparison of picked items against the catalog.
type Comparer interface {
	Compare(ctx context.Context, picks []domain.PickedItem) []domain.ComparisonGroup
}

// CompareHandler handles the comparison endpoint.
type CompareHandler struct {
	comparer Comparer
}

// NewCompareHandler creates a new CompareHandler.
func NewCompareHandler(c Comparer) *CompareHandler {
	return &CompareHandler{comparer: c}
}

// CompareInput is the input for a comparison run.
type CompareInput struct {
	Body struct {
		Picks []domain.PickedItem `json:"picks" doc:"Picked deals to compare across stores"`
	}
}

// CompareOutput is the response for a comparison run.
type CompareOutput struct {
	Body struct {
		Groups []domain.ComparisonGroup `json:"groups"`
	}
}

// Compare builds one comparison group per distinct picked item, each
// holding matching deals across stores sorted cheapest first.
func (h *CompareHandler) Compare(
	ctx context.Context,
	input *CompareInput,
) (*CompareOutput, error) {
	if len(input.Body.Picks) > maxComparePicks {
		return nil, huma.Error422UnprocessableEntity("too many picks in one comparison")
	}

	groups := h.comparer.Compare(ctx, input.Body.Picks)
	if groups == nil {
		groups = []domain.ComparisonGroup{}
	}

	resp := &CompareOutput{}
	resp.Body.Groups = groups
	return resp, nil
}

// RegisterCompareRoutes registers the comparison endpoint with the Huma API.
func RegisterCompareRoutes(api huma.API, h *CompareHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "compare-deals",
		Method:      http.MethodPost,
		Path:        "/api/v1/compare",
		Summary:     "Compare picked deals",
		Description: "Groups picked items and returns matching deals across stores sorted cheapest first.",
		Tags:        []string{"compare"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, h.Compare)
}
