package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/pocketwatch/internal/cli"
	"github.com/Veraticus/pocketwatch/internal/model"
	"github.com/spf13/cobra"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage spending budgets",
		Long:  `List, inspect, create, update, and delete recurring spending budgets.`,
	}

	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(getBudgetCmd())
	cmd.AddCommand(addBudgetCmd())
	cmd.AddCommand(updateBudgetCmd())
	cmd.AddCommand(deleteBudgetCmd())

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			var budgets []model.Budget
			err = withReadRetry(cmd.Context(), func() error {
				budgets, err = client.ListBudgets(cmd.Context())
				return err
			})
			if err != nil {
				return fmt.Errorf("failed to list budgets: %w", err)
			}

			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets found. Use 'pocketwatch budgets add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Amount"),
				cli.BoldStyle.Render("Period"),
				cli.BoldStyle.Render("Active"))
			for _, b := range budgets {
				active := "yes"
				if !b.IsActive {
					active = cli.SubtleStyle.Render("no")
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					b.ID, b.Name, cli.FormatMoney(b.Amount, ""), b.Period, active)
			}
			return nil
		},
	}
}

func getBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			var b model.Budget
			err = withReadRetry(cmd.Context(), func() error {
				b, err = client.GetBudget(cmd.Context(), id)
				return err
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render(b.Name))
			fmt.Printf("ID:      %d\n", b.ID)
			fmt.Printf("Amount:  %s per %s\n", cli.FormatMoney(b.Amount, ""), periodNoun(b.Period))
			fmt.Printf("Starts:  %s\n", b.StartDate.Format("2006-01-02"))
			if b.EndDate != nil {
				fmt.Printf("Ends:    %s\n", b.EndDate.Format("2006-01-02"))
			}
			if b.CategoryID != nil {
				fmt.Printf("Category: %d\n", *b.CategoryID)
			}
			if !b.IsActive {
				fmt.Println(cli.WarningStyle.Render("This budget is inactive."))
			}
			return nil
		},
	}
}

func addBudgetCmd() *cobra.Command {
	var (
		name       string
		amount     string
		period     string
		categoryID int64
		start      string
		end        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := parseAmount(amount)
			if err != nil {
				return err
			}
			if period != "" && !model.BudgetPeriod(period).Valid() {
				return fmt.Errorf("invalid period %q, want one of %s", period, budgetPeriodHint())
			}

			create := model.BudgetCreate{
				Name:      name,
				Amount:    value,
				Period:    model.BudgetPeriod(period),
				StartDate: start,
				EndDate:   end,
			}
			if categoryID > 0 {
				create.CategoryID = &categoryID
			}

			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			b, err := client.CreateBudget(cmd.Context(), create)
			if err != nil {
				return fmt.Errorf("failed to create budget: %w", err)
			}

			fmt.Println(cli.RenderSuccess(fmt.Sprintf("Created budget %q (id %d)", b.Name, b.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "budget name")
	cmd.Flags().StringVar(&amount, "amount", "", "limit per period")
	cmd.Flags().StringVar(&period, "period", string(model.BudgetMonthly), "period "+budgetPeriodHint())
	cmd.Flags().Int64Var(&categoryID, "category", 0, "category id")
	cmd.Flags().StringVar(&start, "start", "", "start date (2006-01-02)")
	cmd.Flags().StringVar(&end, "end", "", "end date (2006-01-02)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func updateBudgetCmd() *cobra.Command {
	var (
		name       string
		amount     string
		period     string
		categoryID int64
		start      string
		end        string
		active     bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a budget",
		Long:  `Update a budget. Only the flags you pass are changed.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var update model.BudgetUpdate
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}
			if cmd.Flags().Changed("amount") {
				value, err := parseAmount(amount)
				if err != nil {
					return err
				}
				update.Amount = &value
			}
			if cmd.Flags().Changed("period") {
				p := model.BudgetPeriod(period)
				if !p.Valid() {
					return fmt.Errorf("invalid period %q, want one of %s", period, budgetPeriodHint())
				}
				update.Period = &p
			}
			if cmd.Flags().Changed("category") {
				update.CategoryID = &categoryID
			}
			if cmd.Flags().Changed("start") {
				update.StartDate = &start
			}
			if cmd.Flags().Changed("end") {
				update.EndDate = &end
			}
			if cmd.Flags().Changed("active") {
				update.IsActive = &active
			}

			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			b, err := client.UpdateBudget(cmd.Context(), id, update)
			if err != nil {
				return fmt.Errorf("failed to update budget: %w", err)
			}

			fmt.Println(cli.RenderSuccess(fmt.Sprintf("Updated budget %q", b.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "budget name")
	cmd.Flags().StringVar(&amount, "amount", "", "limit per period")
	cmd.Flags().StringVar(&period, "period", "", "period "+budgetPeriodHint())
	cmd.Flags().Int64Var(&categoryID, "category", 0, "category id")
	cmd.Flags().StringVar(&start, "start", "", "start date (2006-01-02)")
	cmd.Flags().StringVar(&end, "end", "", "end date (2006-01-02)")
	cmd.Flags().BoolVar(&active, "active", true, "whether the budget is active")

	return cmd
}

func deleteBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := client.DeleteBudget(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete budget: %w", err)
			}

			fmt.Println(cli.RenderSuccess(fmt.Sprintf("Deleted budget %d", id)))
			return nil
		},
	}
}

func periodNoun(p model.BudgetPeriod) string {
	switch p {
	case model.BudgetWeekly:
		return "week"
	case model.BudgetYearly:
		return "year"
	default:
		return "month"
	}
}

func budgetPeriodHint() string {
	parts := make([]string, len(model.BudgetPeriods))
	for i, p := range model.BudgetPeriods {
		parts[i] = string(p)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
