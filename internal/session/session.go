// Package session holds per-user comparison state: picked items, the basket,
// and the optional spending budget. The original screens kept this as ambient
// global state; here it is an explicit object injected into handlers so the
// core stays testable. A session is owned by the user that created it and
// guarded by a mutex only because HTTP handlers may race on the same id.
package session

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/kagiso-dev/flyer-deals/pkg/money"
	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

// ErrInvalidBudget is returned when a budget ceiling is not a positive,
// finite amount. The previous budget value is retained.
var ErrInvalidBudget = errors.New("budget must be a positive amount")

// Session is one user's basket-and-budget state. It lives only for the
// basket session; nothing here is durably saved except explicit list saves.
type Session struct {
	mu sync.Mutex

	id        string
	createdAt time.Time

	picks  []domain.PickedItem
	basket []domain.Deal
	budget *float64
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// CreatedAt returns the session creation time.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// SetPicks replaces the picked items driving the comparison screen.
func (s *Session) SetPicks(picks []domain.PickedItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.picks = make([]domain.PickedItem, len(picks))
	copy(s.picks, picks)
}

// Picks returns a copy of the current picked items.
func (s *Session) Picks() []domain.PickedItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.PickedItem, len(s.picks))
	copy(out, s.picks)
	return out
}

// ClearPicks drops all picked items, as when leaving the comparison screen.
func (s *Session) ClearPicks() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.picks = nil
}

// ToggleBasket adds the deal to the basket if absent and removes it if
// present, keyed by deal id. Returns true when the deal ended up in the
// basket.
func (s *Session) ToggleBasket(deal domain.Deal) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.basket {
		if s.basket[i].ID == deal.ID {
			s.basket = append(s.basket[:i], s.basket[i+1:]...)
			return false
		}
	}
	s.basket = append(s.basket, deal)
	return true
}

// IsInBasket reports whether a deal with the given id is in the basket.
func (s *Session) IsInBasket(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.basket {
		if s.basket[i].ID == id {
			return true
		}
	}
	return false
}

// BasketItems returns a copy of the basket in insertion order.
func (s *Session) BasketItems() []domain.Deal {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Deal, len(s.basket))
	copy(out, s.basket)
	return out
}

// Total returns the sum of the basket items' parsed prices. Unparseable
// prices contribute zero rather than failing.
func (s *Session) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for i := range s.basket {
		total += money.ParseOrZero(s.basket[i].Price)
	}
	return total
}

// SetBudget sets the spending ceiling. A nil amount always succeeds and
// clears the budget; a non-positive or non-finite amount is rejected with
// ErrInvalidBudget and the previous value is retained.
func (s *Session) SetBudget(amount *float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount == nil {
		s.budget = nil
		return nil
	}
	if *amount <= 0 || math.IsNaN(*amount) || math.IsInf(*amount, 0) {
		return ErrInvalidBudget
	}

	v := *amount
	s.budget = &v
	return nil
}

// Budget returns the current ceiling and whether one is set.
func (s *Session) Budget() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.budget == nil {
		return 0, false
	}
	return *s.budget, true
}

// Remaining returns budget minus the basket total. The second return is
// false while no budget is set, in which case nothing should be displayed.
func (s *Session) Remaining() (float64, bool) {
	s.mu.Lock()
	budget := s.budget
	s.mu.Unlock()

	if budget == nil {
		return 0, false
	}
	return *budget - s.Total(), true
}
