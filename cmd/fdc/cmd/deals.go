package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/kagiso-dev/flyer-deals/internal/api/client"
)

func dealsCmd() *cobra.Command {
	dealsRoot := &cobra.Command{
		Use:   "deals",
		Short: "Browse the deal catalog",
		Long: "Browse and inspect deals currently held in the flyer catalog,\n" +
			"optionally filtered by store, deal type, or item name.",
	}

	dealsRoot.AddCommand(
		dealsListCmd(),
		dealsGetCmd(),
	)

	return dealsRoot
}

func dealsListCmd() *cobra.Command {
	var (
		storeName string
		dealType  string
		query     string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deals with optional filters",
		Example: `  # List all deals
  fdc deals list

  # Filter by store
  fdc deals list --store Boxer

  # Search combos mentioning rice
  fdc deals list --type combo --query rice`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			page, err := c.ListDeals(context.Background(), apiclient.DealFilters{
				Store: storeName,
				Type:  dealType,
				Query: query,
				Limit: limit,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(page)
			}

			if len(page.Deals) == 0 {
				fmt.Println("No deals found.")
				return nil
			}

			fmt.Printf("Showing %d of %d deals\n\n", len(page.Deals), page.Total)
			return printDealsTable(page.Deals)
		},
	}
	cmd.Flags().StringVar(&storeName, "store", "", "store name filter")
	cmd.Flags().StringVar(&dealType, "type", "", "deal type filter")
	cmd.Flags().StringVar(&query, "query", "", "item name filter")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")

	return cmd
}

func dealsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show deal details",
		Example: `  fdc deals get d42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			d, err := c.GetDeal(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(d)
			}
			return printDealDetail(d)
		},
	}
}
