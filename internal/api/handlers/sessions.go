package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kagiso-dev/flyer-deals/internal/session"
	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

// SessionsHandler handles shopping session endpoints: basket toggling
// and budget tracking.
type SessionsHandler struct {
	manager *session.Manager
	catalog DealSource
}

// NewSessionsHandler creates a new SessionsHandler.
func NewSessionsHandler(m *session.Manager, catalog DealSource) *SessionsHandler {
	return &SessionsHandler{manager: m, catalog: catalog}
}

// --- Input/Output types ---

// SessionState is the full client-visible state of a session.
type SessionState struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Basket    []domain.Deal `json:"basket"`
	Total     float64       `json:"total"`
	Budget    *float64      `json:"budget,omitempty"`
	Remaining *float64      `json:"remaining,omitempty"`
}

// CreateSessionOutput is the response for creating a session.
type CreateSessionOutput struct {
	Status int
	Body   SessionState
}

// GetSessionInput identifies a session.
type GetSessionInput struct {
	ID string `path:"id" doc:"Session ID"`
}

// GetSessionOutput is the response for reading a session.
type GetSessionOutput struct {
	Body SessionState
}

// DeleteSessionInput identifies a session to delete.
type DeleteSessionInput struct {
	ID string `path:"id" doc:"Session ID"`
}

// DeleteSessionOutput is the response for deleting a session.
type DeleteSessionOutput struct {
	Status int
}

// ToggleBasketInput identifies a session and a catalog deal.
type ToggleBasketInput struct {
	ID     string `path:"id"     doc:"Session ID"`
	DealID string `path:"dealID" doc:"Catalog deal ID"`
}

// ToggleBasketOutput reports the state of the basket after toggling.
type ToggleBasketOutput struct {
	Body struct {
		Added     bool          `json:"added"`
		Basket    []domain.Deal `json:"basket"`
		Total     float64       `json:"total"`
		Remaining *float64      `json:"remaining,omitempty"`
	}
}

// SetBudgetInput carries the budget amount for a session.
type SetBudgetInput struct {
	ID   string `path:"id" doc:"Session ID"`
	Body struct {
		Amount float64 `json:"amount" doc:"Budget amount, must be positive"`
	}
}

// SetBudgetOutput is the response for setting a budget.
type SetBudgetOutput struct {
	Body SessionState
}

// ClearBudgetInput identifies a session whose budget is cleared.
type ClearBudgetInput struct {
	ID string `path:"id" doc:"Session ID"`
}

// ClearBudgetOutput is the response for clearing a budget.
type ClearBudgetOutput struct {
	Body SessionState
}

// --- Handlers ---

// CreateSession creates a new empty shopping session.
func (h *SessionsHandler) CreateSession(
	context.Context,
	*struct{},
) (*CreateSessionOutput, error) {
	sess := h.manager.Create()
	return &CreateSessionOutput{
		Status: http.StatusCreated,
		Body:   sessionState(sess),
	}, nil
}

// GetSession returns the current state of a session.
func (h *SessionsHandler) GetSession(
	_ context.Context,
	input *GetSessionInput,
) (*GetSessionOutput, error) {
	sess, err := h.manager.Get(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("session not found")
	}
	return &GetSessionOutput{Body: sessionState(sess)}, nil
}

// DeleteSession discards a session.
func (h *SessionsHandler) DeleteSession(
	_ context.Context,
	input *DeleteSessionInput,
) (*DeleteSessionOutput, error) {
	if err := h.manager.Delete(input.ID); err != nil {
		return nil, huma.Error404NotFound("session not found")
	}
	return &DeleteSessionOutput{Status: http.StatusNoContent}, nil
}

// ToggleBasket adds the deal to the basket, or removes it when already
// present. The deal must exist in the current catalog.
func (h *SessionsHandler) ToggleBasket(
	_ context.Context,
	input *ToggleBasketInput,
) (*ToggleBasketOutput, error) {
	sess, err := h.manager.Get(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("session not found")
	}

	deal, ok := h.catalog.Get(input.DealID)
	if !ok {
		return nil, huma.Error404NotFound("deal not found")
	}

	added := sess.ToggleBasket(deal)

	resp := &ToggleBasketOutput{}
	resp.Body.Added = added
	resp.Body.Basket = sess.BasketItems()
	resp.Body.Total = sess.Total()
	resp.Body.Remaining = optionalAmount(sess.Remaining())
	return resp, nil
}

// SetBudget sets the session budget. Non-positive or non-finite
// amounts are rejected and the previous budget is kept.
func (h *SessionsHandler) SetBudget(
	_ context.Context,
	input *SetBudgetInput,
) (*SetBudgetOutput, error) {
	sess, err := h.manager.Get(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("session not found")
	}

	amount := input.Body.Amount
	if err := sess.SetBudget(&amount); err != nil {
		if errors.Is(err, session.ErrInvalidBudget) {
			return nil, huma.Error422UnprocessableEntity("budget must be a positive amount")
		}
		return nil, huma.Error500InternalServerError("setting budget: " + err.Error())
	}

	return &SetBudgetOutput{Body: sessionState(sess)}, nil
}

// ClearBudget removes the session budget.
func (h *SessionsHandler) ClearBudget(
	_ context.Context,
	input *ClearBudgetInput,
) (*ClearBudgetOutput, error) {
	sess, err := h.manager.Get(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("session not found")
	}

	if err := sess.SetBudget(nil); err != nil {
		return nil, huma.Error500InternalServerError("clearing budget: " + err.Error())
	}

	return &ClearBudgetOutput{Body: sessionState(sess)}, nil
}

func sessionState(sess *session.Session) SessionState {
	basket := sess.BasketItems()
	if basket == nil {
		basket = []domain.Deal{}
	}
	return SessionState{
		ID:        sess.ID(),
		CreatedAt: sess.CreatedAt(),
		Basket:    basket,
		Total:     sess.Total(),
		Budget:    optionalAmount(sess.Budget()),
		Remaining: optionalAmount(sess.Remaining()),
	}
}

// optionalAmount lifts a (value, ok) pair into the nullable JSON shape, so
// budget and remaining are omitted while no budget is set.
func optionalAmount(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}

// RegisterSessionRoutes registers session endpoints with the Huma API.
func RegisterSessionRoutes(api huma.API, h *SessionsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-session",
		Method:        http.MethodPost,
		Path:          "/api/v1/sessions",
		Summary:       "Create a session",
		Description:   "Creates a new empty shopping session.",
		Tags:          []string{"sessions"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateSession)

	huma.Register(api, huma.Operation{
		OperationID: "get-session",
		Method:      http.MethodGet,
		Path:        "/api/v1/sessions/{id}",
		Summary:     "Get a session",
		Description: "Returns the basket, total, and budget state of a session.",
		Tags:        []string{"sessions"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetSession)

	huma.Register(api, huma.Operation{
		OperationID: "delete-session",
		Method:      http.MethodDelete,
		Path:        "/api/v1/sessions/{id}",
		Summary:     "Delete a session",
		Description: "Discards a session and its basket.",
		Tags:        []string{"sessions"},
		Errors:      []int{http.StatusNotFound},
	}, h.DeleteSession)

	huma.Register(api, huma.Operation{
		OperationID: "toggle-basket",
		Method:      http.MethodPost,
		Path:        "/api/v1/sessions/{id}/basket/{dealID}",
		Summary:     "Toggle a basket item",
		Description: "Adds the deal to the basket, or removes it when already present.",
		Tags:        []string{"sessions"},
		Errors:      []int{http.StatusNotFound},
	}, h.ToggleBasket)

	huma.Register(api, huma.Operation{
		OperationID: "set-budget",
		Method:      http.MethodPut,
		Path:        "/api/v1/sessions/{id}/budget",
		Summary:     "Set the session budget",
		Description: "Sets the budget used to compute remaining funds.",
		Tags:        []string{"sessions"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.SetBudget)

	huma.Register(api, huma.Operation{
		OperationID: "clear-budget",
		Method:      http.MethodDelete,
		Path:        "/api/v1/sessions/{id}/budget",
		Summary:     "Clear the session budget",
		Description: "Removes the budget from a session.",
		Tags:        []string{"sessions"},
		Errors:      []int{http.StatusNotFound},
	}, h.ClearBudget)
}
