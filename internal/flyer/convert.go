package flyer

import (
	"github.com/kagiso-dev/flyer-deals/internal/catalog"
	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

// toDeals converts wire deals into domain deals, resolving loose scalar
// types and applying the ingestion-time unit default.
func toDeals(wire []wireDeal) []domain.Deal {
	deals := make([]domain.Deal, 0, len(wire))
	for i := range wire {
		deals = append(deals, toDeal(&wire[i]))
	}
	return deals
}

func toDeal(w *wireDeal) domain.Deal {
	d := domain.Deal{
		ID:    string(w.ID),
		Item:  w.Item,
		Price: string(w.Price),
		Store: w.Store,
		Type:  w.Type,
		Unit:  w.Unit,
	}
	if d.Unit == "" {
		d.Unit = domain.DefaultUnit
	}
	return d
}

func toEvents(wire []wireEvent) []catalog.Event {
	events := make([]catalog.Event, 0, len(wire))
	for i := range wire {
		w := &wire[i]
		ev := catalog.Event{
			Kind: catalog.EventKind(w.Kind),
			ID:   string(w.ID),
		}
		if w.Deal != nil {
			ev.Deal = toDeal(w.Deal)
			if ev.ID == "" {
				ev.ID = ev.Deal.ID
			}
		}
		events = append(events, ev)
	}
	return events
}
