package client

import (
	"context"

	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

type compareRequest struct {
	Picks []domain.PickedItem `json:"picks"`
}

type compareResponse struct {
	Groups []domain.ComparisonGroup `json:"groups"`
}

// Compare submits picked deals and returns comparison groups, each
// sorted cheapest first.
func (c *Client) Compare(ctx context.Context, picks []domain.PickedItem) ([]domain.ComparisonGroup, error) {
	var resp compareResponse
	if err := c.post(ctx, "/api/v1/compare", compareRequest{Picks: picks}, &resp); err != nil {
		return nil, err
	}
	return resp.Groups, nil
}
