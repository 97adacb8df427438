package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/kagiso-dev/flyer-deals/internal/api/client"
	"github.com/kagiso-dev/flyer-deals/pkg/compare"
	"github.com/kagiso-dev/flyer-deals/pkg/money"
	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func dealName(d *domain.Deal) string {
	return compare.DisplayName(compare.NormalizeNames(d.Item))
}

func printDealsTable(deals []domain.Deal) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tITEM\tPRICE\tSTORE\tTYPE\tUNIT\n")
	for i := range deals {
		d := &deals[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			d.ID,
			truncate(dealName(d), 40),
			d.Price,
			d.Store,
			d.Type,
			d.UnitOrDefault(),
		)
	}
	return tw.finish()
}

func printDealDetail(d *domain.Deal) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", d.ID)
	tw.writef("Item:\t%s\n", dealName(d))
	tw.writef("Price:\t%s\n", d.Price)
	tw.writef("Store:\t%s\n", d.Store)
	tw.writef("Type:\t%s\n", d.Type)
	tw.writef("Unit:\t%s\n", d.UnitOrDefault())
	return tw.finish()
}

func printGroups(groups []domain.ComparisonGroup) error {
	tw := newTabWriter(os.Stdout)
	for gi := range groups {
		g := &groups[gi]

		kind := "single"
		if g.IsCombo {
			kind = "combo"
		}
		tw.writef("%s (%s)\n", g.DisplayName, kind)

		for di := range g.Deals {
			d := &g.Deals[di]
			marker := " "
			if g.CheapestDeal != nil && d.ID == g.CheapestDeal.ID {
				marker = "*"
			}
			tw.writef("  %s\t%s\t%s\t%s\n", marker, d.Store, d.Price, truncate(dealName(d), 40))
		}

		if gi < len(groups)-1 {
			tw.writef("\n")
		}
	}
	return tw.finish()
}

func printBasket(basket []domain.Deal, total float64, remaining *float64) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("STORE\tITEM\tPRICE\n")
	for i := range basket {
		d := &basket[i]
		tw.writef("%s\t%s\t%s\n", d.Store, truncate(dealName(d), 40), d.Price)
	}
	tw.writef("\nTotal:\t%s\n", money.Format(total))
	if remaining != nil {
		tw.writef("Remaining:\t%s\n", money.Format(*remaining))
	}
	return tw.finish()
}

func printListsTable(lists []domain.SavedList) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tITEMS\tTOTAL\tCREATED\n")
	for i := range lists {
		l := &lists[i]
		tw.writef("%s\t%s\t%d\t%s\t%s\n",
			l.ID,
			l.Name,
			len(l.Items),
			money.Format(l.Total),
			l.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printSessionState(s *apiclient.SessionState) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", s.ID)
	tw.writef("Items:\t%d\n", len(s.Basket))
	tw.writef("Total:\t%s\n", money.Format(s.Total))
	if s.Budget != nil {
		tw.writef("Budget:\t%s\n", money.Format(*s.Budget))
	}
	if s.Remaining != nil {
		tw.writef("Remaining:\t%s\n", money.Format(*s.Remaining))
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
