package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/jarwise/internal/cli"
	"github.com/Veraticus/jarwise/internal/common"
	"github.com/Veraticus/jarwise/internal/model"
	"github.com/Veraticus/jarwise/internal/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var (
		income   bool
		category string
		date     string
	)

	cmd := &cobra.Command{
		Use:   "add <amount> <description>",
		Short: "Record a transaction by hand",
		Long: `Record an expense (or income with --income). Without --category the
description is classified automatically; an explicit category is also learned
for future transactions with the same description.

Examples:
  jarwise add 250 "Swiggy dinner"
  jarwise add 45000 "October salary" --income
  jarwise add 1200 "Zomato party order" --category Entertainment`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			description := strings.Join(args[1:], " ")

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			when, err := parseDate(date, a.engine.Now())
			if err != nil {
				return err
			}

			txn := model.Transaction{
				ID:          uuid.NewString(),
				Date:        when,
				Amount:      amount,
				Description: description,
				Type:        model.TransactionExpense,
				Category:    category,
			}
			if income {
				txn.Type = model.TransactionIncome
			}

			if category == "" {
				txn.Category = a.classifier.Classify(description).Category
			} else if err := a.classifier.Learn(ctx, description, category); err != nil {
				return err
			}

			if _, err := a.store.SaveTransactions(ctx, []model.Transaction{txn}); err != nil {
				return fmt.Errorf("failed to save transaction: %w", err)
			}

			writeLine(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Added %s %s as %s (%s)",
				txn.Type, model.FormatAmount(txn.Amount), txn.Category, txn.ID)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&income, "income", false, "Record as income instead of an expense")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category (learned for similar descriptions)")
	cmd.Flags().StringVar(&date, "date", "", "Transaction date (YYYY-MM-DD, default today)")

	return cmd
}

func listCmd() *cobra.Command {
	var (
		fromDate string
		toDate   string
		category string
		txnType  string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			filter, err := buildFilter(fromDate, toDate, category, txnType, limit, a.engine.Now())
			if err != nil {
				return err
			}

			txns, err := a.store.GetTransactions(ctx, filter)
			if err != nil {
				return fmt.Errorf("failed to load transactions: %w", err)
			}

			writeLine(cmd.OutOrStdout(), cli.RenderTransactions(txns))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromDate, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toDate, "to", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Only this category")
	cmd.Flags().StringVarP(&txnType, "type", "t", "", "Only this type (income, expense)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum transactions to show")

	return cmd
}

// buildFilter converts list flags into a storage filter. The end date is
// inclusive of the whole day.
func buildFilter(fromDate, toDate, category, txnType string, limit int, now time.Time) (service.TransactionFilter, error) {
	filter := service.TransactionFilter{
		Category: category,
		Limit:    limit,
	}

	if fromDate != "" {
		parsed, err := parseDate(fromDate, now)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &parsed
	}
	if toDate != "" {
		parsed, err := parseDate(toDate, now)
		if err != nil {
			return filter, err
		}
		endOfDay := parsed.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &endOfDay
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return filter, fmt.Errorf("from date must be before to date")
	}

	if txnType != "" {
		typ := model.TransactionType(txnType)
		if !typ.Valid() {
			return filter, fmt.Errorf("invalid type %q (use income or expense)", txnType)
		}
		filter.Type = typ
	}
	if limit < 0 {
		return filter, fmt.Errorf("limit must not be negative")
	}

	return filter, nil
}

func recategorizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recategorize <transaction-id> <category>",
		Short: "Correct a transaction's category and learn from it",
		Long: `Set the category of a stored transaction. The correction is learned, so
future transactions with a similar description get the same category.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, category := args[0], args[1]

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			txn, err := a.store.GetTransactionByID(ctx, id)
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return common.NewUserError(fmt.Sprintf("No transaction with id %s", id), err)
				}
				return err
			}

			if err := a.store.UpdateTransactionCategory(ctx, id, category); err != nil {
				return err
			}
			if err := a.classifier.Learn(ctx, txn.Description, category); err != nil {
				return err
			}

			writeLine(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("%s: %s → %s", txn.Description, txn.Category, category)))
			return nil
		},
	}
}
