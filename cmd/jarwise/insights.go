package main

import (
	"strings"

	"github.com/Veraticus/jarwise/internal/cli"
	"github.com/Veraticus/jarwise/internal/coach"
	"github.com/Veraticus/jarwise/internal/engine"
	"github.com/spf13/cobra"
)

// insightCommand builds a read-only command that renders one view of the
// engine's insights.
func insightCommand(use, short string, render func(in engine.Insights) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			in, _, err := a.insights(ctx)
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), render(in))
			return nil
		},
	}
}

func summaryCmd() *cobra.Command {
	return insightCommand("summary", "Show balance, safe-to-spend, spending breakdown and alerts", cli.RenderSummary)
}

func forecastCmd() *cobra.Command {
	return insightCommand("forecast", "Forecast income and spending and flag unusual transactions", cli.RenderForecast)
}

func optimizeCmd() *cobra.Command {
	return insightCommand("optimize", "Suggest ways to rebalance jars and spending", func(in engine.Insights) string {
		return cli.RenderSuggestions(in.Optimizations)
	})
}

func planCmd() *cobra.Command {
	return insightCommand("plan", "Build this week's spending plan", func(in engine.Insights) string {
		return cli.RenderPlan(in.WeeklyPlan, in.DailyLimit)
	})
}

func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the money coach a question",
		Long: `Ask a question in plain language about your money.

Examples:
  jarwise ask "Can I afford ₹3000 headphones?"
  jarwise ask "How much can I spend this week?"
  jarwise ask "What's my biggest expense?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			in, jars, err := a.insights(ctx)
			if err != nil {
				return err
			}

			answer := coach.Respond(strings.Join(args, " "), coach.FromInsights(in, jars))
			writeLine(cmd.OutOrStdout(), cli.RenderAnswer(answer))
			return nil
		},
	}
}
