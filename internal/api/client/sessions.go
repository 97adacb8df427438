package client

import (
	"context"
	"net/url"
	"time"

	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

// SessionState mirrors the server's session representation.
type SessionState struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Basket    []domain.Deal `json:"basket"`
	Total     float64       `json:"total"`
	Budget    *float64      `json:"budget,omitempty"`
	Remaining *float64      `json:"remaining,omitempty"`
}

// BasketState is the basket after a toggle.
type BasketState struct {
	Added     bool          `json:"added"`
	Basket    []domain.Deal `json:"basket"`
	Total     float64       `json:"total"`
	Remaining *float64      `json:"remaining,omitempty"`
}

// CreateSession creates a new shopping session.
func (c *Client) CreateSession(ctx context.Context) (*SessionState, error) {
	var s SessionState
	if err := c.post(ctx, "/api/v1/sessions", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetSession returns the current state of a session.
func (c *Client) GetSession(ctx context.Context, id string) (*SessionState, error) {
	var s SessionState
	if err := c.get(ctx, "/api/v1/sessions/"+url.PathEscape(id), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSession discards a session.
func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/sessions/"+url.PathEscape(id))
}

// ToggleBasket adds or removes a catalog deal from the session basket.
func (c *Client) ToggleBasket(ctx context.Context, sessionID, dealID string) (*BasketState, error) {
	var b BasketState
	path := "/api/v1/sessions/" + url.PathEscape(sessionID) + "/basket/" + url.PathEscape(dealID)
	if err := c.post(ctx, path, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// SetBudget sets the session budget.
func (c *Client) SetBudget(ctx context.Context, sessionID string, amount float64) (*SessionState, error) {
	var s SessionState
	body := map[string]float64{"amount": amount}
	if err := c.put(ctx, "/api/v1/sessions/"+url.PathEscape(sessionID)+"/budget", body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ClearBudget removes the session budget.
func (c *Client) ClearBudget(ctx context.Context, sessionID string) error {
	return c.del(ctx, "/api/v1/sessions/"+url.PathEscape(sessionID)+"/budget")
}
