package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

func compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <deal-id>...",
		Short: "Compare picked deals across stores",
		Long: "Fetches the named catalog deals, then asks the server to group\n" +
			"them and find matching deals across stores, cheapest first.\n" +
			"The cheapest deal in each group is marked with *.",
		Example: `  fdc compare d1 d7 d12`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			ctx := context.Background()

			picks := make([]domain.PickedItem, 0, len(args))
			for _, id := range args {
				d, err := c.GetDeal(ctx, id)
				if err != nil {
					return fmt.Errorf("resolving deal %s: %w", id, err)
				}
				picks = append(picks, domain.PickedItem{Deal: *d})
			}

			groups, err := c.Compare(ctx, picks)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(groups)
			}

			if len(groups) == 0 {
				fmt.Println("No comparison groups.")
				return nil
			}
			return printGroups(groups)
		},
	}
}
