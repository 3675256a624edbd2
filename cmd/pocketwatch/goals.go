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

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage savings goals",
		Long:  `List, inspect, create, update, and delete savings goals.`,
	}

	cmd.AddCommand(listGoalsCmd())
	cmd.AddCommand(getGoalCmd())
	cmd.AddCommand(addGoalCmd())
	cmd.AddCommand(updateGoalCmd())
	cmd.AddCommand(deleteGoalCmd())

	return cmd
}

func listGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			var goals []model.Goal
			err = withReadRetry(cmd.Context(), func() error {
				goals, err = client.ListGoals(cmd.Context())
				return err
			})
			if err != nil {
				return fmt.Errorf("failed to list goals: %w", err)
			}

			if len(goals) == 0 {
				fmt.Println(cli.InfoStyle.Render("No goals found. Use 'pocketwatch goals add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Progress"),
				cli.BoldStyle.Render("Target"),
				cli.BoldStyle.Render("Status"))
			for _, g := range goals {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					g.ID, g.Name,
					goalProgress(g),
					cli.FormatMoney(g.TargetAmount, ""),
					g.Status)
			}
			return nil
		},
	}
}

func getGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one goal",
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

			var g model.Goal
			err = withReadRetry(cmd.Context(), func() error {
				g, err = client.GetGoal(cmd.Context(), id)
				return err
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render(g.Name))
			fmt.Printf("ID:       %d\n", g.ID)
			fmt.Printf("Type:     %s\n", g.GoalType)
			fmt.Printf("Saved:    %s of %s (%s)\n",
				cli.FormatMoney(g.CurrentAmount, ""),
				cli.FormatMoney(g.TargetAmount, ""),
				goalProgress(g))
			if g.TargetDate != nil {
				fmt.Printf("Due:      %s\n", g.TargetDate.Format("2006-01-02"))
			}
			fmt.Printf("Status:   %s\n", g.Status)
			if g.Description != "" {
				fmt.Printf("Notes:    %s\n", g.Description)
			}
			return nil
		},
	}
}

func addGoalCmd() *cobra.Command {
	var (
		name        string
		description string
		goalType    string
		target      string
		current     string
		targetDate  string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetAmount, err := parseAmount(target)
			if err != nil {
				return err
			}
			currentAmount, err := parseAmount(current)
			if err != nil {
				return err
			}
			if !model.GoalType(goalType).Valid() {
				return fmt.Errorf("invalid goal type %q, want one of %s", goalType, goalTypeHint())
			}

			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			g, err := client.CreateGoal(cmd.Context(), model.GoalCreate{
				Name:          name,
				Description:   description,
				GoalType:      model.GoalType(goalType),
				TargetAmount:  targetAmount,
				CurrentAmount: currentAmount,
				TargetDate:    targetDate,
			})
			if err != nil {
				return fmt.Errorf("failed to create goal: %w", err)
			}

			fmt.Println(cli.RenderSuccess(fmt.Sprintf("Created goal %q (id %d)", g.Name, g.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "goal name")
	cmd.Flags().StringVar(&description, "description", "", "free-form notes")
	cmd.Flags().StringVar(&goalType, "type", string(model.GoalSavings), "goal type "+goalTypeHint())
	cmd.Flags().StringVar(&target, "target", "", "target amount")
	cmd.Flags().StringVar(&current, "current", "0", "amount saved so far")
	cmd.Flags().StringVar(&targetDate, "target-date", "", "target date (2006-01-02)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func updateGoalCmd() *cobra.Command {
	var (
		name        string
		description string
		goalType    string
		target      string
		current     string
		targetDate  string
		status      string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a goal",
		Long:  `Update a goal. Only the flags you pass are changed.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var update model.GoalUpdate
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}
			if cmd.Flags().Changed("description") {
				update.Description = &description
			}
			if cmd.Flags().Changed("type") {
				t := model.GoalType(goalType)
				if !t.Valid() {
					return fmt.Errorf("invalid goal type %q, want one of %s", goalType, goalTypeHint())
				}
				update.GoalType = &t
			}
			if cmd.Flags().Changed("target") {
				value, err := parseAmount(target)
				if err != nil {
					return err
				}
				update.TargetAmount = &value
			}
			if cmd.Flags().Changed("current") {
				value, err := parseAmount(current)
				if err != nil {
					return err
				}
				update.CurrentAmount = &value
			}
			if cmd.Flags().Changed("target-date") {
				update.TargetDate = &targetDate
			}
			if cmd.Flags().Changed("status") {
				s := model.GoalStatus(status)
				if !s.Valid() {
					return fmt.Errorf("invalid status %q, want one of %s", status, goalStatusHint())
				}
				update.Status = &s
			}

			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			g, err := client.UpdateGoal(cmd.Context(), id, update)
			if err != nil {
				return fmt.Errorf("failed to update goal: %w", err)
			}

			fmt.Println(cli.RenderSuccess(fmt.Sprintf("Updated goal %q", g.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "goal name")
	cmd.Flags().StringVar(&description, "description", "", "free-form notes")
	cmd.Flags().StringVar(&goalType, "type", "", "goal type "+goalTypeHint())
	cmd.Flags().StringVar(&target, "target", "", "target amount")
	cmd.Flags().StringVar(&current, "current", "", "amount saved so far")
	cmd.Flags().StringVar(&targetDate, "target-date", "", "target date (2006-01-02)")
	cmd.Flags().StringVar(&status, "status", "", "status "+goalStatusHint())

	return cmd
}

func deleteGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
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

			if err := client.DeleteGoal(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete goal: %w", err)
			}

			fmt.Println(cli.RenderSuccess(fmt.Sprintf("Deleted goal %d", id)))
			return nil
		},
	}
}

// goalProgress renders current/target as a percentage. A zero target reads
// as complete rather than dividing by zero.
func goalProgress(g model.Goal) string {
	if g.TargetAmount.IsZero() {
		return "100%"
	}
	pct := g.CurrentAmount.Div(g.TargetAmount).Mul(hundred)
	return pct.Round(0).String() + "%"
}

func goalTypeHint() string {
	parts := make([]string, len(model.GoalTypes))
	for i, t := range model.GoalTypes {
		parts[i] = string(t)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func goalStatusHint() string {
	parts := make([]string, len(model.GoalStatuses))
	for i, s := range model.GoalStatuses {
		parts[i] = string(s)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
