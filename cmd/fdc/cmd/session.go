package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func sessionCmd() *cobra.Command {
	sessionRoot := &cobra.Command{
		Use:   "session",
		Short: "Manage shopping sessions",
		Long: "Create shopping sessions, toggle deals in and out of the basket,\n" +
			"and track the running total against a budget.",
	}

	sessionRoot.AddCommand(
		sessionNewCmd(),
		sessionShowCmd(),
		sessionToggleCmd(),
		sessionBudgetCmd(),
	)

	return sessionRoot
}

func sessionNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Create a new session",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			s, err := c.CreateSession(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(s)
			}

			fmt.Println("Created session", s.ID)
			return nil
		},
	}
}

func sessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show <session-id>",
		Short:   "Show the session basket and totals",
		Example: `  fdc session show 2f0c...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			s, err := c.GetSession(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(s)
			}

			if err := printSessionState(s); err != nil {
				return err
			}
			if len(s.Basket) == 0 {
				return nil
			}
			fmt.Println()
			return printBasket(s.Basket, s.Total, s.Remaining)
		},
	}
}

func sessionToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <session-id> <deal-id>",
		Short: "Add or remove a deal from the basket",
		Long: "Toggles a catalog deal in the session basket: adds it when absent,\n" +
			"removes it when already present.",
		Example: `  fdc session toggle 2f0c... d42`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			b, err := c.ToggleBasket(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(b)
			}

			if b.Added {
				fmt.Println("Added to basket.")
			} else {
				fmt.Println("Removed from basket.")
			}
			return printBasket(b.Basket, b.Total, b.Remaining)
		},
	}
}

func sessionBudgetCmd() *cobra.Command {
	budgetRoot := &cobra.Command{
		Use:   "budget",
		Short: "Set or clear the session budget",
	}

	budgetRoot.AddCommand(
		&cobra.Command{
			Use:     "set <session-id> <amount>",
			Short:   "Set the budget",
			Example: `  fdc session budget set 2f0c... 500`,
			Args:    cobra.ExactArgs(2),
			RunE: func(_ *cobra.Command, args []string) error {
				amount, err := strconv.ParseFloat(args[1], 64)
				if err != nil {
					return fmt.Errorf("parsing amount %q: %w", args[1], err)
				}

				c := newClient()
				s, err := c.SetBudget(context.Background(), args[0], amount)
				if err != nil {
					return err
				}

				if jsonOutput() {
					return outputJSON(s)
				}
				return printSessionState(s)
			},
		},
		&cobra.Command{
			Use:     "clear <session-id>",
			Short:   "Clear the budget",
			Example: `  fdc session budget clear 2f0c...`,
			Args:    cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				c := newClient()
				if err := c.ClearBudget(context.Background(), args[0]); err != nil {
					return err
				}

				fmt.Println("Budget cleared.")
				return nil
			},
		},
	)

	return budgetRoot
}
