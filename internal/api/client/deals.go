package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

// DealFilters narrows ListDeals results.
type DealFilters struct {
	Store string
	Type  string
	Query string
	Limit int
}

// DealsPage is one page of catalog deals.
type DealsPage struct {
	Deals  []domain.Deal `json:"deals"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// ListDeals returns catalog deals matching the filters.
func (c *Client) ListDeals(ctx context.Context, f DealFilters) (*DealsPage, error) {
	q := url.Values{}
	if f.Store != "" {
		q.Set("store", f.Store)
	}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.Query != "" {
		q.Set("q", f.Query)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}

	path := "/api/v1/deals"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var page DealsPage
	if err := c.get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetDeal returns a single catalog deal by ID.
func (c *Client) GetDeal(ctx context.Context, id string) (*domain.Deal, error) {
	var d domain.Deal
	if err := c.get(ctx, "/api/v1/deals/"+url.PathEscape(id), &d); err != nil {
		return nil, err
	}
	return &d, nil
}
