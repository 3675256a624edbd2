package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/Veraticus/pocketwatch/internal/cli"
	"github.com/Veraticus/pocketwatch/internal/dashboard"
	"github.com/Veraticus/pocketwatch/internal/model"
	"github.com/spf13/cobra"
)

func reportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Spending and cashflow reports",
	}

	cmd.AddCommand(expensesReportCmd())
	cmd.AddCommand(cashflowReportCmd())
	cmd.AddCommand(summaryCmd())

	return cmd
}

// reportRange resolves --start/--end flags, defaulting to the dashboard's
// trailing window when both are omitted.
func reportRange(start, end string) (time.Time, time.Time, error) {
	if start == "" && end == "" {
		e := time.Now().UTC()
		return e.Add(-dashboard.Window), e, nil
	}

	var s, e time.Time
	var err error
	if start != "" {
		if s, err = parseDate(start); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if end != "" {
		if e, err = parseDate(end); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return s, e, nil
}

func expensesReportCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Expenses grouped by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, e, err := reportRange(start, end)
			if err != nil {
				return err
			}

			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			var rows []model.CategoryExpense
			err = withReadRetry(cmd.Context(), func() error {
				rows, err = client.GetExpensesByCategory(cmd.Context(), s, e)
				return err
			})
			if err != nil {
				return fmt.Errorf("failed to fetch expense report: %w", err)
			}

			if len(rows) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses in this range."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\n",
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Total"))
			for _, row := range rows {
				label := "(uncategorized)"
				if row.CategoryID != nil {
					label = fmt.Sprintf("category %d", *row.CategoryID)
				}
				fmt.Fprintf(w, "%s\t%s\n", label, row.Total.StringFixed(2))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start date (2006-01-02)")
	cmd.Flags().StringVar(&end, "end", "", "end date (2006-01-02)")

	return cmd
}

func cashflowReportCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Income versus expenses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, e, err := reportRange(start, end)
			if err != nil {
				return err
			}

			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			var report model.IncomeVsExpenses
			err = withReadRetry(cmd.Context(), func() error {
				report, err = client.GetIncomeVsExpenses(cmd.Context(), s, e)
				return err
			})
			if err != nil {
				return fmt.Errorf("failed to fetch cashflow report: %w", err)
			}

			fmt.Printf("Income:    %s\n", cli.FormatMoney(report.Income, ""))
			fmt.Printf("Expenses:  %s\n", cli.FormatMoney(report.Expenses.Neg(), ""))
			fmt.Printf("Net:       %s\n", cli.FormatMoney(report.Net, ""))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start date (2006-01-02)")
	cmd.Flags().StringVar(&end, "end", "", "end date (2006-01-02)")

	return cmd
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Headline dashboard numbers, without the TUI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			var summary model.DashboardSummary
			err = withReadRetry(cmd.Context(), func() error {
				summary, err = client.GetDashboardSummary(cmd.Context())
				return err
			})
			if err != nil {
				return fmt.Errorf("failed to fetch summary: %w", err)
			}

			fmt.Printf("Total balance:   %s\n", cli.FormatMoney(summary.TotalBalance, ""))
			fmt.Printf("Month income:    %s\n", cli.FormatMoney(summary.MonthIncome, ""))
			fmt.Printf("Month expenses:  %s\n", cli.FormatMoney(summary.MonthExpenses.Neg(), ""))
			fmt.Printf("Month net:       %s\n", cli.FormatMoney(summary.MonthNet, ""))
			fmt.Printf("Active budgets:  %d\n", summary.ActiveBudgets)
			fmt.Printf("Active goals:    %d\n", summary.ActiveGoals)

			if len(summary.RecentTransactions) > 0 {
				fmt.Println()
				fmt.Println(cli.TitleStyle.Render("Recent transactions"))
				for _, txn := range summary.RecentTransactions {
					fmt.Printf("%s  %12s  %s\n",
						txn.Date.Format("2006-01-02"),
						cli.FormatMoney(signedAmount(txn.Amount, txn.Type), ""),
						txn.Description)
				}
			}
			return nil
		},
	}
}
