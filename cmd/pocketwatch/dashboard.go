package main

import (
	"github.com/Veraticus/pocketwatch/internal/dashboard"
	"github.com/Veraticus/pocketwatch/internal/tui"
	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the live dashboard",
		Long: `Open the full-screen dashboard: balances, budgets, goals, category
spending, and recent activity over the trailing thirty days.

Without a session the dashboard runs in guest mode with sample data.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.Run(dashboard.New(client))
		},
	}
}
