package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func listsCmd() *cobra.Command {
	listsRoot := &cobra.Command{
		Use:   "lists",
		Short: "Manage saved shopping lists",
		Long: "Save session baskets as named lists, browse saved lists, and\n" +
			"export them as shareable plain text.",
	}

	listsRoot.AddCommand(
		listsSaveCmd(),
		listsListCmd(),
		listsGetCmd(),
		listsExportCmd(),
		listsDeleteCmd(),
	)

	return listsRoot
}

func listsSaveCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "save <session-id>",
		Short:   "Save the session basket as a list",
		Example: `  fdc lists save 2f0c... --name "month end shop"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			saved, err := c.SaveList(context.Background(), args[0], name)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(saved)
			}

			fmt.Println("Saved list", saved.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name for the list")

	return cmd
}

func listsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved lists",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			lists, err := c.ListLists(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(lists)
			}

			if len(lists) == 0 {
				fmt.Println("No saved lists.")
				return nil
			}
			return printListsTable(lists)
		},
	}
}

func listsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show a saved list",
		Example: `  fdc lists get 7a1b...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			l, err := c.GetList(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(l)
			}

			fmt.Printf("%s (%s)\n\n", l.Name, l.CreatedAt.Format("2006-01-02"))
			return printBasket(l.Items, l.Total, nil)
		},
	}
}

func listsExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "export <id>",
		Short:   "Export a saved list as plain text",
		Example: `  fdc lists export 7a1b...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			text, err := c.ExportList(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Print(text)
			return nil
		},
	}
}

func listsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a saved list",
		Example: `  fdc lists delete 7a1b...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteList(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Println("Deleted.")
			return nil
		},
	}
}
