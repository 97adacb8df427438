package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kagiso-dev/flyer-deals/pkg/compare"
	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

const defaultDealsLimit = 50

// DealSource provides read access to the current deal catalog.
type DealSource interface {
	Snapshot() []domain.Deal
	Get(id string) (domain.Deal, bool)
}

// DealsHandler handles catalog query endpoints.
type DealsHandler struct {
	catalog DealSource
}

// NewDealsHandler creates a new DealsHandler.
func NewDealsHandler(catalog DealSource) *DealsHandler {
	return &DealsHandler{catalog: catalog}
}

// --- Input/Output types ---

// ListDealsInput is the input for listing deals with optional filters.
type ListDealsInput struct {
	Store  string `query:"store"  doc:"Filter by store name (case-insensitive)"`
	Type   string `query:"type"   doc:"Filter by deal type (case-insensitive)"`
	Query  string `query:"q"      doc:"Substring match against item names"`
	Limit  int    `query:"limit"  doc:"Number of results (default 50)" minimum:"1" maximum:"1000"`
	Offset int    `query:"offset" doc:"Pagination offset"              minimum:"0"`
}

// ListDealsOutput is the response for listing deals.
type ListDealsOutput struct {
	Body struct {
		Deals  []domain.Deal `json:"deals"`
		Total  int           `json:"total"`
		Limit  int           `json:"limit"`
		Offset int           `json:"offset"`
	}
}

// GetDealInput is the input for getting a single deal.
type GetDealInput struct {
	ID string `path:"id" doc:"Deal ID"`
}

// GetDealOutput is the response for getting a single deal.
type GetDealOutput struct {
	Body domain.Deal
}

// --- Handlers ---

// ListDeals returns catalog deals with optional store, type, and name
// filters plus pagination. Order follows the catalog.
func (h *DealsHandler) ListDeals(
	_ context.Context,
	input *ListDealsInput,
) (*ListDealsOutput, error) {
	deals := h.catalog.Snapshot()

	filtered := deals[:0:0]
	for _, d := range deals {
		if !matchDeal(&d, input) {
			continue
		}
		filtered = append(filtered, d)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultDealsLimit
	}

	total := len(filtered)
	page := filtered
	if input.Offset >= len(page) {
		page = nil
	} else {
		page = page[input.Offset:]
	}
	if len(page) > limit {
		page = page[:limit]
	}
	if page == nil {
		page = []domain.Deal{}
	}

	resp := &ListDealsOutput{}
	resp.Body.Deals = page
	resp.Body.Total = total
	resp.Body.Limit = limit
	resp.Body.Offset = input.Offset

	return resp, nil
}

// GetDeal returns a single deal by ID.
func (h *DealsHandler) GetDeal(
	_ context.Context,
	input *GetDealInput,
) (*GetDealOutput, error) {
	deal, ok := h.catalog.Get(input.ID)
	if !ok {
		return nil, huma.Error404NotFound("deal not found")
	}

	return &GetDealOutput{Body: deal}, nil
}

func matchDeal(d *domain.Deal, input *ListDealsInput) bool {
	if input.Store != "" && !strings.EqualFold(d.Store, input.Store) {
		return false
	}

	if input.Type != "" && !strings.EqualFold(d.Type, input.Type) {
		return false
	}

	if input.Query != "" {
		q := strings.ToLower(input.Query)
		found := false
		for _, name := range compare.NormalizeNames(d.Item) {
			if strings.Contains(strings.ToLower(name), q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// RegisterDealRoutes registers catalog endpoints with the Huma API.
func RegisterDealRoutes(api huma.API, h *DealsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-deals",
		Method:      http.MethodGet,
		Path:        "/api/v1/deals",
		Summary:     "List deals",
		Description: "Returns catalog deals with optional store, type, and name filters.",
		Tags:        []string{"deals"},
	}, h.ListDeals)

	huma.Register(api, huma.Operation{
		OperationID: "get-deal",
		Method:      http.MethodGet,
		Path:        "/api/v1/deals/{id}",
		Summary:     "Get a deal by ID",
		Description: "Returns a single catalog deal by its ID.",
		Tags:        []string{"deals"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetDeal)
}
