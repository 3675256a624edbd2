package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/Veraticus/pocketwatch/internal/cli"
	"github.com/Veraticus/pocketwatch/internal/model"
	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var (
		months int
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the backend with demo data",
		Long: `Create a few demo accounts and several months of plausible transactions.
Useful for trying the dashboard against a fresh backend. Requires a session.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			rng := rand.New(rand.NewSource(seed))

			accounts := []model.AccountCreate{
				{Name: "Everyday Checking", AccountType: model.AccountChecking, Balance: decimal.RequireFromString("3200.00")},
				{Name: "Rainy Day Savings", AccountType: model.AccountSavings, Balance: decimal.RequireFromString("9800.00")},
				{Name: "Travel Card", AccountType: model.AccountCreditCard, Balance: decimal.RequireFromString("-500.00")},
			}

			var checkingID int64
			for _, create := range accounts {
				acct, err := client.CreateAccount(cmd.Context(), create)
				if err != nil {
					return fmt.Errorf("failed to seed account %q: %w", create.Name, err)
				}
				if acct.AccountType == model.AccountChecking {
					checkingID = acct.ID
				}
			}

			merchants := []string{
				"Grocery Run", "Coffee", "Dinner out", "Gas", "Streaming",
				"Pharmacy", "Hardware store", "Book shop", "Gym",
			}

			total := months * 22
			bar := progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan][bold]Seeding transactions...[reset]"),
			)

			now := time.Now().UTC()
			created := 0
			for m := 0; m < months; m++ {
				monthStart := now.AddDate(0, -m, 0)

				// One paycheck per month, then day-to-day spending.
				if _, err := client.CreateTransaction(cmd.Context(), model.TransactionCreate{
					AccountID:   checkingID,
					Amount:      decimal.RequireFromString("4200.00"),
					Type:        model.TransactionIncome,
					Description: "Paycheck",
					Date:        monthStart,
				}); err != nil {
					return fmt.Errorf("failed to seed paycheck: %w", err)
				}

				for d := 1; d < 22; d++ {
					cents := 500 + rng.Intn(15000)
					if _, err := client.CreateTransaction(cmd.Context(), model.TransactionCreate{
						AccountID:   checkingID,
						Amount:      decimal.New(int64(cents), -2),
						Type:        model.TransactionExpense,
						Description: merchants[rng.Intn(len(merchants))],
						Date:        monthStart.AddDate(0, 0, -d),
					}); err != nil {
						return fmt.Errorf("failed after seeding %d transactions: %w", created, err)
					}
					created++
					_ = bar.Add(1)
				}
				created++
				_ = bar.Add(1)
			}
			_ = bar.Finish()
			fmt.Fprintln(os.Stderr)

			fmt.Println(cli.RenderSuccess(fmt.Sprintf("Seeded %d accounts and %d transactions", len(accounts), created)))
			return nil
		},
	}

	cmd.Flags().IntVar(&months, "months", 3, "months of history to generate")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed, for reproducible demos")

	return cmd
}
