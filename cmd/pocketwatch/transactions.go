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

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    `List, inspect, record, update, and delete transactions.`,
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(getTransactionCmd())
	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(updateTransactionCmd())
	cmd.AddCommand(deleteTransactionCmd())

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	var (
		accountID  int64
		categoryID int64
		start      string
		end        string
		skip       int
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := model.TransactionFilter{
				AccountID:  accountID,
				CategoryID: categoryID,
				Skip:       skip,
				Limit:      limit,
			}
			var err error
			if start != "" {
				if filter.StartDate, err = parseDate(start); err != nil {
					return err
				}
			}
			if end != "" {
				if filter.EndDate, err = parseDate(end); err != nil {
					return err
				}
			}

			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			var txns []model.Transaction
			err = withReadRetry(cmd.Context(), func() error {
				txns, err = client.ListTransactions(cmd.Context(), filter)
				return err
			})
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			if len(txns) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Date"),
				cli.BoldStyle.Render("Type"),
				cli.BoldStyle.Render("Amount"),
				cli.BoldStyle.Render("Description"))
			for _, txn := range txns {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					txn.ID,
					txn.Date.Format("2006-01-02"),
					txn.Type,
					cli.FormatMoney(signedAmount(txn.Amount, txn.Type), ""),
					txn.Description)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&accountID, "account", 0, "filter by account id")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "filter by category id")
	cmd.Flags().StringVar(&start, "start", "", "start date (2006-01-02)")
	cmd.Flags().StringVar(&end, "end", "", "end date (2006-01-02)")
	cmd.Flags().IntVar(&skip, "skip", 0, "rows to skip")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum rows")

	return cmd
}

func getTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one transaction",
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

			var txn model.Transaction
			err = withReadRetry(cmd.Context(), func() error {
				txn, err = client.GetTransaction(cmd.Context(), id)
				return err
			})
			if err != nil {
				return err
			}

			fmt.Printf("ID:          %d\n", txn.ID)
			fmt.Printf("Date:        %s\n", txn.Date.Format("2006-01-02"))
			fmt.Printf("Type:        %s\n", txn.Type)
			fmt.Printf("Amount:      %s\n", cli.FormatMoney(signedAmount(txn.Amount, txn.Type), ""))
			fmt.Printf("Account:     %d\n", txn.AccountID)
			if txn.CategoryID != nil {
				fmt.Printf("Category:    %d\n", *txn.CategoryID)
			}
			if txn.Description != "" {
				fmt.Printf("Description: %s\n", txn.Description)
			}
			if txn.Notes != "" {
				fmt.Printf("Notes:       %s\n", txn.Notes)
			}
			return nil
		},
	}
}

func addTransactionCmd() *cobra.Command {
	var (
		accountID   int64
		categoryID  int64
		amount      string
		txType      string
		description string
		date        string
		notes       string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := parseAmount(amount)
			if err != nil {
				return err
			}
			when, err := parseDate(date)
			if err != nil {
				return err
			}
			if !model.TransactionType(txType).Valid() {
				return fmt.Errorf("invalid transaction type %q, want one of %s", txType, transactionTypeHint())
			}

			create := model.TransactionCreate{
				AccountID:   accountID,
				Amount:      value,
				Type:        model.TransactionType(txType),
				Description: description,
				Date:        when,
				Notes:       notes,
			}
			if categoryID > 0 {
				create.CategoryID = &categoryID
			}

			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			txn, err := client.CreateTransaction(cmd.Context(), create)
			if err != nil {
				return fmt.Errorf("failed to record transaction: %w", err)
			}

			fmt.Println(cli.RenderSuccess(fmt.Sprintf("Recorded transaction %d", txn.ID)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&accountID, "account", 0, "account id")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "category id")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (non-negative magnitude)")
	cmd.Flags().StringVar(&txType, "type", string(model.TransactionExpense), "transaction type "+transactionTypeHint())
	cmd.Flags().StringVar(&description, "description", "", "what the money was for")
	cmd.Flags().StringVar(&date, "date", "", "transaction date (2006-01-02)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func updateTransactionCmd() *cobra.Command {
	var (
		accountID   int64
		categoryID  int64
		amount      string
		txType      string
		description string
		date        string
		notes       string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a transaction",
		Long:  `Update a transaction. Only the flags you pass are changed.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var update model.TransactionUpdate
			if cmd.Flags().Changed("account") {
				update.AccountID = &accountID
			}
			if cmd.Flags().Changed("category") {
				update.CategoryID = &categoryID
			}
			if cmd.Flags().Changed("amount") {
				value, err := parseAmount(amount)
				if err != nil {
					return err
				}
				update.Amount = &value
			}
			if cmd.Flags().Changed("type") {
				t := model.TransactionType(txType)
				if !t.Valid() {
					return fmt.Errorf("invalid transaction type %q, want one of %s", txType, transactionTypeHint())
				}
				update.Type = &t
			}
			if cmd.Flags().Changed("description") {
				update.Description = &description
			}
			if cmd.Flags().Changed("date") {
				when, err := parseDate(date)
				if err != nil {
					return err
				}
				update.Date = &when
			}
			if cmd.Flags().Changed("notes") {
				update.Notes = &notes
			}

			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			txn, err := client.UpdateTransaction(cmd.Context(), id, update)
			if err != nil {
				return fmt.Errorf("failed to update transaction: %w", err)
			}

			fmt.Println(cli.RenderSuccess(fmt.Sprintf("Updated transaction %d", txn.ID)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&accountID, "account", 0, "account id")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "category id")
	cmd.Flags().StringVar(&amount, "amount", "", "amount")
	cmd.Flags().StringVar(&txType, "type", "", "transaction type "+transactionTypeHint())
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringVar(&date, "date", "", "transaction date (2006-01-02)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")

	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
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

			if err := client.DeleteTransaction(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}

			fmt.Println(cli.RenderSuccess(fmt.Sprintf("Deleted transaction %d", id)))
			return nil
		},
	}
}

func transactionTypeHint() string {
	parts := make([]string, len(model.TransactionTypes))
	for i, t := range model.TransactionTypes {
		parts[i] = string(t)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
