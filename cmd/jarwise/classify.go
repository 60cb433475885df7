package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/jarwise/internal/cli"
	"github.com/Veraticus/jarwise/internal/service"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "classify [description]",
		Short: "Categorize uncategorized transactions, or classify a description",
		Long: `Without arguments, fill in the category of every stored transaction whose category
is empty or Other and has a confident match. With a description, print the category it
would get.

Examples:
  jarwise classify
  jarwise classify "Uber ride to airport"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if len(args) > 0 {
				result := a.classifier.Classify(strings.Join(args, " "))
				writeLine(out, fmt.Sprintf("%s (%.0f%% confidence)", cli.BoldStyle.Render(result.Category), result.Confidence*100))
				return nil
			}

			txns, err := a.store.GetTransactions(ctx, service.TransactionFilter{})
			if err != nil {
				return fmt.Errorf("failed to load transactions: %w", err)
			}

			categorized := a.engine.Categorize(txns)
			updated := 0
			for i, txn := range categorized {
				if txn.Category == txns[i].Category {
					continue
				}
				if !dryRun {
					if err := a.store.UpdateTransactionCategory(ctx, txn.ID, txn.Category); err != nil {
						return err
					}
				}
				slog.Debug("Categorized transaction", "id", txn.ID, "category", txn.Category)
				updated++
			}

			if dryRun {
				writeLine(out, cli.FormatInfo(fmt.Sprintf("Dry run: %d transactions would be categorized", updated)))
				return nil
			}
			writeLine(out, cli.FormatSuccess(fmt.Sprintf("Categorized %d transactions", updated)))
			writeLine(out, cli.RenderStats(a.classifier.Stats(categorized)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Report without saving")

	return cmd
}

func learnCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "learn <description> <category>",
		Short: "Teach the classifier a category for a description",
		Long: `Record that descriptions starting like this one belong to category. The
first three words of the description, lowercased, become the learned key.

Examples:
  jarwise learn "Zomato dinner" Entertainment
  jarwise learn --list`,
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if list {
				learned := a.classifier.Learned()
				if len(learned) == 0 {
					writeLine(out, cli.SubtleStyle.Render("Nothing learned yet."))
				}
				for _, o := range learned {
					writeLine(out, fmt.Sprintf("%-30s %s", o.Key, o.Category))
				}
				return nil
			}

			if err := a.classifier.Learn(ctx, args[0], args[1]); err != nil {
				return err
			}
			writeLine(out, cli.FormatSuccess(fmt.Sprintf("Learned %q → %s", args[0], args[1])))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "List learned categories")

	return cmd
}

func suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Suggest category corrections for stored transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			txns, err := a.store.GetTransactions(ctx, service.TransactionFilter{})
			if err != nil {
				return fmt.Errorf("failed to load transactions: %w", err)
			}

			writeLine(cmd.OutOrStdout(), cli.RenderRecategorizations(a.classifier.SuggestRecategorization(txns)))
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show how much of the ledger the classifier covers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			txns, err := a.store.GetTransactions(ctx, service.TransactionFilter{})
			if err != nil {
				return fmt.Errorf("failed to load transactions: %w", err)
			}

			out := cmd.OutOrStdout()
			writeLine(out, cli.RenderStats(a.classifier.Stats(txns)))
			writeLine(out, cli.SubtleStyle.Render(fmt.Sprintf("%d rules, %d learned categories",
				a.classifier.RuleCount(), len(a.classifier.Learned()))))
			return nil
		},
	}
}
