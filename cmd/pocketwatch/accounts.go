package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/pocketwatch/internal/cli"
	"github.com/Veraticus/pocketwatch/internal/model"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage financial accounts",
		Long:  `List, inspect, open, update, and close accounts on the backend.`,
	}

	cmd.AddCommand(listAccountsCmd())
	cmd.AddCommand(getAccountCmd())
	cmd.AddCommand(addAccountCmd())
	cmd.AddCommand(updateAccountCmd())
	cmd.AddCommand(deleteAccountCmd())

	return cmd
}

func listAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			var accounts []model.Account
			err = withReadRetry(cmd.Context(), func() error {
				accounts, err = client.ListAccounts(cmd.Context())
				return err
			})
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}

			if len(accounts) == 0 {
				fmt.Println(cli.InfoStyle.Render("No accounts found. Use 'pocketwatch accounts add' to open one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Type"),
				cli.BoldStyle.Render("Balance"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 24),
				strings.Repeat("-", 12),
				strings.Repeat("-", 14))

			total := decimal.Zero
			for _, acct := range accounts {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
					acct.ID, acct.Name, acct.AccountType,
					cli.FormatMoney(acct.Balance, acct.Currency))
				total = total.Add(acct.Balance)
			}
			fmt.Fprintf(w, "\t%s\t\t%s\n", cli.BoldStyle.Render("Total"), cli.FormatMoney(total, ""))
			return nil
		},
	}
}

func getAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one account",
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

			var acct model.Account
			err = withReadRetry(cmd.Context(), func() error {
				acct, err = client.GetAccount(cmd.Context(), id)
				return err
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render(acct.Name))
			fmt.Printf("ID:       %d\n", acct.ID)
			fmt.Printf("Type:     %s\n", acct.AccountType)
			fmt.Printf("Balance:  %s\n", cli.FormatMoney(acct.Balance, acct.Currency))
			if acct.Description != "" {
				fmt.Printf("Notes:    %s\n", acct.Description)
			}
			if !acct.IsActive {
				fmt.Println(cli.WarningStyle.Render("This account is closed."))
			}
			return nil
		},
	}
}

func addAccountCmd() *cobra.Command {
	var (
		name        string
		accountType string
		balance     string
		currency    string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Open a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(balance)
			if err != nil {
				return err
			}

			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			acct, err := client.CreateAccount(cmd.Context(), model.AccountCreate{
				Name:        name,
				AccountType: model.AccountType(accountType),
				Balance:     amount,
				Currency:    currency,
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to create account: %w", err)
			}

			fmt.Println(cli.RenderSuccess(fmt.Sprintf("Opened account %q (id %d)", acct.Name, acct.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account name")
	cmd.Flags().StringVar(&accountType, "type", string(model.AccountChecking), "account type "+accountTypeHint())
	cmd.Flags().StringVar(&balance, "balance", "0", "opening balance")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO currency code (default USD)")
	cmd.Flags().StringVar(&description, "description", "", "free-form notes")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func updateAccountCmd() *cobra.Command {
	var (
		name        string
		accountType string
		balance     string
		currency    string
		description string
		active      bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an account",
		Long:  `Update an account. Only the flags you pass are changed.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var update model.AccountUpdate
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}
			if cmd.Flags().Changed("type") {
				t := model.AccountType(accountType)
				update.AccountType = &t
			}
			if cmd.Flags().Changed("balance") {
				amount, err := parseAmount(balance)
				if err != nil {
					return err
				}
				update.Balance = &amount
			}
			if cmd.Flags().Changed("currency") {
				update.Currency = &currency
			}
			if cmd.Flags().Changed("description") {
				update.Description = &description
			}
			if cmd.Flags().Changed("active") {
				update.IsActive = &active
			}

			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			acct, err := client.UpdateAccount(cmd.Context(), id, update)
			if err != nil {
				return fmt.Errorf("failed to update account: %w", err)
			}

			fmt.Println(cli.RenderSuccess(fmt.Sprintf("Updated account %q", acct.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account name")
	cmd.Flags().StringVar(&accountType, "type", "", "account type "+accountTypeHint())
	cmd.Flags().StringVar(&balance, "balance", "", "current balance")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO currency code")
	cmd.Flags().StringVar(&description, "description", "", "free-form notes")
	cmd.Flags().BoolVar(&active, "active", true, "whether the account is open")

	return cmd
}

func deleteAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Close an account",
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

			if err := client.DeleteAccount(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete account: %w", err)
			}

			fmt.Println(cli.RenderSuccess(fmt.Sprintf("Deleted account %d", id)))
			return nil
		},
	}
}

func accountTypeHint() string {
	parts := make([]string, len(model.AccountTypes))
	for i, t := range model.AccountTypes {
		parts[i] = string(t)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
