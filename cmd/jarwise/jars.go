package main

import (
	"errors"
	"fmt"

	"github.com/Veraticus/jarwise/internal/analytics"
	"github.com/Veraticus/jarwise/internal/cli"
	"github.com/Veraticus/jarwise/internal/common"
	"github.com/Veraticus/jarwise/internal/model"
	"github.com/Veraticus/jarwise/internal/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func jarsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jars",
		Short: "Manage savings jars",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listJars(cmd)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List jars and their progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listJars(cmd)
		},
	})
	cmd.AddCommand(jarsSetCmd())
	cmd.AddCommand(jarsAddCmd())
	cmd.AddCommand(jarsSuggestCmd())
	cmd.AddCommand(jarsDeleteCmd())

	return cmd
}

func listJars(cmd *cobra.Command) error {
	ctx := cmd.Context()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	jars, err := a.store.GetJars(ctx)
	if err != nil {
		return fmt.Errorf("failed to load jars: %w", err)
	}
	writeLine(cmd.OutOrStdout(), cli.RenderJars(jars))
	return nil
}

func jarsSetCmd() *cobra.Command {
	var (
		target   string
		current  string
		priority int
		color    string
	)

	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Create or update a jar",
		Long: `Create a jar or update an existing one. Flags that are not given keep the
jar's stored values. Current is clamped to [0, target].

Examples:
  jarwise jars set Emergency --target 90000 --priority 1
  jarwise jars set Savings --current 12000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			jar := model.Jar{Name: args[0], Priority: 1}
			existing, err := a.store.GetJar(ctx, args[0])
			switch {
			case err == nil:
				jar = *existing
			case !errors.Is(err, common.ErrNotFound):
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("target") {
				if jar.Target, err = parseAmount(target); err != nil {
					return err
				}
			}
			if flags.Changed("current") {
				if jar.Current, err = parseAmount(current); err != nil {
					return err
				}
			}
			if flags.Changed("priority") {
				jar.Priority = priority
			}
			if flags.Changed("color") {
				jar.Color = color
			}

			if err := a.store.SaveJar(ctx, jar); err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), cli.RenderJars([]model.Jar{jar.Clamped()}))
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Target amount")
	cmd.Flags().StringVar(&current, "current", "", "Amount currently in the jar")
	cmd.Flags().IntVar(&priority, "priority", 1, "Funding priority (1 is highest)")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex)")

	return cmd
}

// jarAllocationCategory is the expense category of money moved into a jar.
const jarAllocationCategory = "Savings"

func jarsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <amount>",
		Short: "Move money from your balance into a jar",
		Long: `Deposit amount into a jar. The deposit is recorded as a Savings expense and
may not exceed your current balance. The jar never holds more than its target.

Examples:
  jarwise jars add Emergency 5000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			if !amount.IsPositive() {
				return common.NewUserError("Deposit must be greater than zero", common.ErrInvalidAmount)
			}

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			jar, err := a.store.GetJar(ctx, name)
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return common.NewUserError(fmt.Sprintf("No jar named %s", name), err)
				}
				return err
			}

			txns, err := a.store.GetTransactions(ctx, service.TransactionFilter{})
			if err != nil {
				return fmt.Errorf("failed to load transactions: %w", err)
			}
			balance := analytics.Balance(txns)
			if amount.GreaterThan(balance) {
				return common.NewUserError(
					fmt.Sprintf("Not enough balance to add %s (available %s)", model.FormatAmount(amount), model.FormatAmount(balance)),
					common.ErrInsufficientBalance)
			}

			updated := *jar
			updated.Current = jar.Current.Add(amount)
			updated = updated.Clamped()
			if err := a.store.SaveJar(ctx, updated); err != nil {
				return err
			}

			deposit := model.Transaction{
				ID:          uuid.NewString(),
				Date:        a.engine.Now(),
				Amount:      amount,
				Type:        model.TransactionExpense,
				Category:    jarAllocationCategory,
				Description: fmt.Sprintf("Added to %s jar", name),
			}
			if _, err := a.store.SaveTransactions(ctx, []model.Transaction{deposit}); err != nil {
				return fmt.Errorf("failed to record jar deposit: %w", err)
			}

			writeLine(cmd.OutOrStdout(), cli.RenderJars([]model.Jar{updated}))
			return nil
		},
	}
}

func jarsSuggestCmd() *cobra.Command {
	var apply bool

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest jars sized from income and fixed expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			txns, _, err := a.snapshot(ctx)
			if err != nil {
				return err
			}
			profile := a.engine.Profile(txns)
			out := cmd.OutOrStdout()
			if !profile.MonthlyIncome.IsPositive() {
				writeLine(out, cli.FormatInfo("Not enough income history to size jars yet."))
				return nil
			}

			suggested := analytics.SuggestJarAllocations(profile.MonthlyIncome, profile.FixedExpenses)
			writeLine(out, cli.RenderJars(suggested))

			if !apply {
				return nil
			}
			saved := 0
			for _, jar := range suggested {
				// Jars sized from fixed expenses are empty until fixed costs appear.
				if !jar.Target.IsPositive() {
					continue
				}
				if err := a.store.SaveJar(ctx, jar); err != nil {
					return err
				}
				saved++
			}
			writeLine(out, cli.FormatSuccess(fmt.Sprintf("Saved %d jars", saved)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Save the suggested jars")

	return cmd
}

func jarsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a jar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.store.DeleteJar(ctx, args[0]); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return common.NewUserError(fmt.Sprintf("No jar named %s", args[0]), err)
				}
				return err
			}
			writeLine(cmd.OutOrStdout(), cli.FormatSuccess("Deleted jar "+args[0]))
			return nil
		},
	}
}
