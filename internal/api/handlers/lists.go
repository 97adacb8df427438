package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kagiso-dev/flyer-deals/internal/metrics"
	"github.com/kagiso-dev/flyer-deals/internal/session"
	"github.com/kagiso-dev/flyer-deals/internal/store"
	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

// ListsHandler handles saved list endpoints.
type ListsHandler struct {
	store   store.Store
	manager *session.Manager
}

// NewListsHandler creates a new ListsHandler.
func NewListsHandler(s store.Store, m *session.Manager) *ListsHandler {
	return &ListsHandler{store: s, manager: m}
}

// --- Input/Output types ---

// SaveListInput snapshots a session basket under a name.
type SaveListInput struct {
	ID   string `path:"id" doc:"Session ID"`
	Body struct {
		Name string `json:"name" doc:"Display name for the saved list"`
	}
}

// SaveListOutput is the response for saving a list.
type SaveListOutput struct {
	Status int
	Body   domain.SavedList
}

// ListListsInput is the input for listing saved lists.
type ListListsInput struct {
	Limit int `query:"limit" doc:"Number of results (default 50)" minimum:"1" maximum:"1000"`
}

// ListListsOutput is the response for listing saved lists.
type ListListsOutput struct {
	Body struct {
		Lists []domain.SavedList `json:"lists"`
	}
}

// GetListInput identifies a saved list.
type GetListInput struct {
	ID string `path:"id" doc:"Saved list UUID"`
}

// GetListOutput is the response for reading a saved list.
type GetListOutput struct {
	Body domain.SavedList
}

// ExportListInput identifies a saved list to export.
type ExportListInput struct {
	ID string `path:"id" doc:"Saved list UUID"`
}

// ExportListOutput is a plain text rendering of a saved list.
type ExportListOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// DeleteListInput identifies a saved list to delete.
type DeleteListInput struct {
	ID string `path:"id" doc:"Saved list UUID"`
}

// DeleteListOutput is the response for deleting a saved list.
type DeleteListOutput struct {
	Status int
}

// --- Handlers ---

// SaveList snapshots the session basket into a persistent list.
func (h *ListsHandler) SaveList(
	ctx context.Context,
	input *SaveListInput,
) (*SaveListOutput, error) {
	sess, err := h.manager.Get(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("session not found")
	}

	items := sess.BasketItems()
	if len(items) == 0 {
		return nil, huma.Error422UnprocessableEntity("basket is empty")
	}

	list := &domain.SavedList{
		Name:  input.Body.Name,
		Items: items,
		Total: sess.Total(),
	}

	if err := h.store.SaveList(ctx, list); err != nil {
		return nil, huma.Error500InternalServerError("saving list: " + err.Error())
	}

	metrics.SavedListsTotal.Inc()

	return &SaveListOutput{Status: http.StatusCreated, Body: *list}, nil
}

// ListLists returns saved lists, newest first.
func (h *ListsHandler) ListLists(
	ctx context.Context,
	input *ListListsInput,
) (*ListListsOutput, error) {
	lists, err := h.store.ListLists(ctx, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing saved lists: " + err.Error())
	}

	if lists == nil {
		lists = []domain.SavedList{}
	}

	resp := &ListListsOutput{}
	resp.Body.Lists = lists
	return resp, nil
}

// GetList returns a saved list by ID.
func (h *ListsHandler) GetList(
	ctx context.Context,
	input *GetListInput,
) (*GetListOutput, error) {
	list, err := h.store.GetList(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("list not found")
		}
		return nil, huma.Error500InternalServerError("loading list: " + err.Error())
	}

	return &GetListOutput{Body: *list}, nil
}

// ExportList renders a saved list as a shareable plain text summary.
func (h *ListsHandler) ExportList(
	ctx context.Context,
	input *ExportListInput,
) (*ExportListOutput, error) {
	list, err := h.store.GetList(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("list not found")
		}
		return nil, huma.Error500InternalServerError("loading list: " + err.Error())
	}

	return &ExportListOutput{
		ContentType: "text/plain; charset=utf-8",
		Body:        []byte(session.FormatSummary(list.Items, list.Total)),
	}, nil
}

// DeleteList removes a saved list.
func (h *ListsHandler) DeleteList(
	ctx context.Context,
	input *DeleteListInput,
) (*DeleteListOutput, error) {
	if err := h.store.DeleteList(ctx, input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("list not found")
		}
		return nil, huma.Error500InternalServerError("deleting list: " + err.Error())
	}

	return &DeleteListOutput{Status: http.StatusNoContent}, nil
}

// RegisterListRoutes registers saved list endpoints with the Huma API.
func RegisterListRoutes(api huma.API, h *ListsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "save-list",
		Method:        http.MethodPost,
		Path:          "/api/v1/sessions/{id}/lists",
		Summary:       "Save the basket as a list",
		Description:   "Snapshots the session basket into a persistent named list.",
		Tags:          []string{"lists"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.SaveList)

	huma.Register(api, huma.Operation{
		OperationID: "list-lists",
		Method:      http.MethodGet,
		Path:        "/api/v1/lists",
		Summary:     "List saved lists",
		Description: "Returns saved lists, newest first.",
		Tags:        []string{"lists"},
	}, h.ListLists)

	huma.Register(api, huma.Operation{
		OperationID: "get-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/lists/{id}",
		Summary:     "Get a saved list",
		Description: "Returns a single saved list by its UUID.",
		Tags:        []string{"lists"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetList)

	huma.Register(api, huma.Operation{
		OperationID: "export-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/lists/{id}/export",
		Summary:     "Export a saved list",
		Description: "Renders a saved list as a shareable plain text summary.",
		Tags:        []string{"lists"},
		Errors:      []int{http.StatusNotFound},
	}, h.ExportList)

	huma.Register(api, huma.Operation{
		OperationID: "delete-list",
		Method:      http.MethodDelete,
		Path:        "/api/v1/lists/{id}",
		Summary:     "Delete a saved list",
		Description: "Removes a saved list.",
		Tags:        []string{"lists"},
		Errors:      []int{http.StatusNotFound},
	}, h.DeleteList)
}
