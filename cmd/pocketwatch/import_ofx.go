package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/pocketwatch/internal/cli"
	"github.com/Veraticus/pocketwatch/internal/model"
	"github.com/Veraticus/pocketwatch/internal/ofx"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importOFXCmd() *cobra.Command {
	var (
		accountID int64
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import transactions from OFX or QFX (Quicken) files exported from your bank
and record them against one of your accounts.

Examples:
  # Import a single file
  pocketwatch import-ofx --account 3 ~/Downloads/chase_jan_2024.qfx

  # Import everything a bank exported
  pocketwatch import-ofx --account 3 ~/Downloads/chase_*.qfx

  # Preview without writing anything
  pocketwatch import-ofx --account 3 --dry-run statement.ofx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Expand globs and collect all files
			var allFiles []string
			for _, pattern := range args {
				matches, err := filepath.Glob(pattern)
				if err != nil {
					return fmt.Errorf("invalid pattern %s: %w", pattern, err)
				}
				if len(matches) == 0 {
					if _, err := os.Stat(pattern); err == nil {
						allFiles = append(allFiles, pattern)
					} else {
						slog.Warn("No files found matching pattern", "pattern", pattern)
					}
				} else {
					allFiles = append(allFiles, matches...)
				}
			}
			if len(allFiles) == 0 {
				return fmt.Errorf("no files found to import")
			}

			parser := ofx.NewParser()
			seen := make(map[string]bool)
			var entries []ofx.Entry

			for _, filePath := range allFiles {
				f, err := os.Open(filePath)
				if err != nil {
					slog.Error("Failed to open file", "file", filePath, "error", err)
					continue
				}
				parsed, err := parser.Parse(f)
				_ = f.Close()
				if err != nil {
					slog.Error("Failed to parse OFX file", "file", filePath, "error", err)
					continue
				}

				added := 0
				for _, entry := range parsed {
					// FITIDs are the bank's dedup keys; the same statement
					// exported twice must not double-post.
					if entry.FITID != "" && seen[entry.FITID] {
						continue
					}
					seen[entry.FITID] = true
					entries = append(entries, entry)
					added++
				}
				slog.Info("Parsed statement",
					"file", filepath.Base(filePath),
					"entries", len(parsed),
					"new", added)
			}

			if len(entries) == 0 {
				fmt.Println(cli.InfoStyle.Render("Nothing to import."))
				return nil
			}

			if dryRun {
				for _, entry := range entries {
					fmt.Printf("%s  %-8s %12s  %s\n",
						entry.Date.Format("2006-01-02"),
						entry.Type,
						entry.Amount.StringFixed(2),
						entry.Description)
				}
				fmt.Println(cli.RenderInfo(fmt.Sprintf("Dry run: %d transactions would be imported.", len(entries))))
				return nil
			}

			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			bar := progressbar.NewOptions(len(entries),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan][bold]Importing transactions...[reset]"),
			)

			imported := 0
			for _, entry := range entries {
				_, err := client.CreateTransaction(cmd.Context(), model.TransactionCreate{
					AccountID:   accountID,
					Amount:      entry.Amount,
					Type:        entry.Type,
					Description: entry.Description,
					Date:        entry.Date,
					Notes:       "imported from OFX (" + entry.FITID + ")",
				})
				if err != nil {
					_ = bar.Clear()
					return fmt.Errorf("failed after importing %d of %d transactions: %w", imported, len(entries), err)
				}
				imported++
				_ = bar.Add(1)
			}
			_ = bar.Finish()
			fmt.Fprintln(os.Stderr)

			fmt.Println(cli.RenderSuccess(fmt.Sprintf("Imported %d transactions into account %d", imported, accountID)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&accountID, "account", 0, "account id to import into")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "preview the import without saving")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}
