package client

import (
	"context"
	"net/url"

	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

type listsResponse struct {
	Lists []domain.SavedList `json:"lists"`
}

// SaveList snapshots a session basket into a named saved list.
func (c *Client) SaveList(ctx context.Context, sessionID, name string) (*domain.SavedList, error) {
	var saved domain.SavedList
	body := map[string]string{"name": name}
	if err := c.post(ctx, "/api/v1/sessions/"+url.PathEscape(sessionID)+"/lists", body, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// ListLists returns saved lists, newest first.
func (c *Client) ListLists(ctx context.Context) ([]domain.SavedList, error) {
	var resp listsResponse
	if err := c.get(ctx, "/api/v1/lists", &resp); err != nil {
		return nil, err
	}
	return resp.Lists, nil
}

// GetList returns a saved list by ID.
func (c *Client) GetList(ctx context.Context, id string) (*domain.SavedList, error) {
	var list domain.SavedList
	if err := c.get(ctx, "/api/v1/lists/"+url.PathEscape(id), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ExportList returns the plain text rendering of a saved list.
func (c *Client) ExportList(ctx context.Context, id string) (string, error) {
	return c.getText(ctx, "/api/v1/lists/"+url.PathEscape(id)+"/export")
}

// DeleteList removes a saved list.
func (c *Client) DeleteList(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/lists/"+url.PathEscape(id))
}
