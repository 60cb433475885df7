package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Veraticus/jarwise/internal/coach"
	"github.com/Veraticus/jarwise/internal/engine"
	"github.com/Veraticus/jarwise/internal/model"
	"github.com/charmbracelet/lipgloss"
)

const dateLayout = "2006-01-02"

// RenderTransactions renders transactions as a table, newest last.
func RenderTransactions(txns []model.Transaction) string {
	if len(txns) == 0 {
		return SubtleStyle.Render("No transactions.")
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-10s  %-8s  %12s  %-14s  %s", "Date", "Type", "Amount", "Category", "Description")))
	b.WriteString("\n")
	for _, txn := range txns {
		amount := model.FormatAmount(txn.Amount)
		if txn.IsExpense() {
			amount = "-" + amount
		}
		category := txn.Category
		if category == "" {
			category = SubtleStyle.Render("-")
		}
		fmt.Fprintf(&b, "%-10s  %-8s  %12s  %-14s  %s\n",
			txn.Date.Format(dateLayout), txn.Type, amountStyle(txn).Render(amount), category, txn.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

func amountStyle(txn model.Transaction) lipgloss.Style {
	if txn.IsIncome() {
		return SuccessStyle
	}
	return lipgloss.NewStyle()
}

// RenderJars renders jars with progress towards their targets.
func RenderJars(jars []model.Jar) string {
	if len(jars) == 0 {
		return SubtleStyle.Render("No jars configured.")
	}

	var b strings.Builder
	for _, jar := range jars {
		style := lipgloss.NewStyle().Bold(true)
		if strings.HasPrefix(jar.Color, "#") {
			style = style.Foreground(lipgloss.Color(jar.Color))
		}
		status := WarningStyle.Render("short " + model.FormatAmount(jar.Shortfall()))
		if jar.Funded() {
			status = SuccessStyle.Render(SuccessIcon + " funded")
		}
		fmt.Fprintf(&b, "%s %s  %s / %s  (priority %d)  %s\n",
			JarIcon, style.Render(jar.Name),
			model.FormatAmount(jar.Current), model.FormatAmount(jar.Target),
			jar.Priority, status)
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderSummary renders the headline numbers of an insight snapshot.
func RenderSummary(in engine.Insights) string {
	lines := []string{
		fmt.Sprintf("Balance:          %s", BoldStyle.Render(model.FormatAmount(in.Profile.Balance))),
		fmt.Sprintf("Monthly income:   %s", model.FormatAmount(in.Profile.MonthlyIncome)),
		fmt.Sprintf("Fixed expenses:   %s", model.FormatAmount(in.Profile.FixedExpenses)),
		fmt.Sprintf("Safe to spend:    %s/day", BoldStyle.Render(model.FormatAmount(in.SafeToSpend))),
		fmt.Sprintf("Daily limit:      %s (%s)", model.FormatAmount(in.DailyLimit.Limit), in.DailyLimit.Reasoning),
	}
	if in.CashRunout != nil {
		lines = append(lines, WarningStyle.Render(fmt.Sprintf("Cash runs out in: %d days (%.0f%% confidence)",
			in.CashRunout.DaysUntilRunout, in.CashRunout.Confidence*100)))
	}

	sections := []string{RenderBox(ChartIcon+" Summary", strings.Join(lines, "\n"))}
	if len(in.Shares) > 0 {
		sections = append(sections, RenderShares(in.Shares))
	}
	if len(in.Alerts) > 0 {
		sections = append(sections, RenderAlerts(in.Alerts))
	}
	return strings.Join(sections, "\n\n")
}

// RenderShares renders the 30-day category breakdown.
func RenderShares(shares []model.CategoryShare) string {
	var b strings.Builder
	b.WriteString(TitleStyle.UnsetMargins().Render("Spending by category (30 days)"))
	b.WriteString("\n")
	for _, share := range shares {
		fmt.Fprintf(&b, "  %-14s %10s  %5.1f%%\n", share.Category, model.FormatAmount(share.Amount), share.Percentage)
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderAlerts renders alerts styled by severity.
func RenderAlerts(alerts []model.Alert) string {
	lines := make([]string, 0, len(alerts))
	for _, alert := range alerts {
		switch alert.Type {
		case model.AlertWarning:
			lines = append(lines, FormatWarning(alert.Message))
		case model.AlertSuccess:
			lines = append(lines, FormatSuccess(alert.Message))
		default:
			lines = append(lines, FormatInfo(alert.Message))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderForecast renders income and per-category expense predictions.
func RenderForecast(in engine.Insights) string {
	var b strings.Builder
	b.WriteString(FormatTitle(fmt.Sprintf("Forecast (next %d days)", in.ForecastDays)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Income:           %s\n", formatPrediction(in.IncomeForecast))
	fmt.Fprintf(&b, "Income (30 days): %s\n", formatPrediction(in.MonthlyIncomeForecast))
	fmt.Fprintf(&b, "Expenses:         %s\n", model.FormatAmount(in.PredictedExpenses))
	for _, f := range in.ExpenseForecasts {
		fmt.Fprintf(&b, "  %-14s %s\n", f.Category, formatPrediction(f.Prediction))
	}

	if len(in.Patterns) > 0 {
		b.WriteString("\n")
		b.WriteString(TitleStyle.UnsetMargins().Render("Patterns"))
		b.WriteString("\n")
		for _, p := range in.Patterns {
			fmt.Fprintf(&b, "  %-14s avg %s, %.1f/week, mostly %s, %s\n",
				p.Category, model.FormatAmount(p.AverageAmount), p.Frequency, p.DominantDay, p.Trend)
		}
	}

	if len(in.Anomalies) > 0 {
		b.WriteString("\n")
		b.WriteString(WarningStyle.Render("Unusual transactions"))
		b.WriteString("\n")
		for _, txn := range in.Anomalies {
			fmt.Fprintf(&b, "  %s  %-14s %s  %s\n",
				txn.Date.Format(dateLayout), txn.Category, model.FormatAmount(txn.Amount), txn.Description)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatPrediction(p model.Prediction) string {
	return fmt.Sprintf("%s (%s, %.0f%% confidence)", model.FormatAmount(p.Value), p.Trend, p.Confidence*100)
}

// RenderSuggestions renders optimizer suggestions in their ranked order.
func RenderSuggestions(suggestions []model.Suggestion) string {
	if len(suggestions) == 0 {
		return FormatSuccess("No optimizations needed. Keep it up!")
	}

	var b strings.Builder
	for i, s := range suggestions {
		title := BoldStyle.Render(s.Title)
		fmt.Fprintf(&b, "%d. %s %s\n", i+1, title, priorityLabel(s.Priority))
		fmt.Fprintf(&b, "   %s\n", s.Description)
		if s.MonthlyImpact.IsPositive() {
			fmt.Fprintf(&b, "   %s\n", SubtleStyle.Render("Monthly impact: "+model.FormatAmount(s.MonthlyImpact)))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func priorityLabel(p model.Priority) string {
	label := "[" + string(p) + "]"
	switch p {
	case model.PriorityHigh:
		return ErrorStyle.Render(label)
	case model.PriorityMedium:
		return WarningStyle.Render(label)
	default:
		return SubtleStyle.Render(label)
	}
}

// RenderPlan renders a weekly plan with categories in name order.
func RenderPlan(plan model.WeeklyPlan, limit model.DailyLimit) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weekly budget: %s\n", BoldStyle.Render(model.FormatAmount(plan.TotalBudget)))
	fmt.Fprintf(&b, "Daily limit:   %s\n", model.FormatAmount(limit.Limit))
	b.WriteString(SubtleStyle.Render(limit.Reasoning))
	b.WriteString("\n")

	categories := make([]string, 0, len(plan.Categories))
	for category := range plan.Categories {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	if len(categories) > 0 {
		b.WriteString("\n")
	}
	for _, category := range categories {
		fmt.Fprintf(&b, "  %-14s %s\n", category, model.FormatAmount(plan.Categories[category]))
	}

	if len(plan.Recommendations) > 0 {
		b.WriteString("\n")
	}
	for _, rec := range plan.Recommendations {
		b.WriteString(FormatInfo(rec))
		b.WriteString("\n")
	}
	return RenderBox(JarIcon+" Weekly plan", strings.TrimRight(b.String(), "\n"))
}

// RenderRecategorizations renders suggested category changes.
func RenderRecategorizations(recs []model.Recategorization) string {
	if len(recs) == 0 {
		return FormatSuccess("All categories look right.")
	}
	var b strings.Builder
	for _, rec := range recs {
		fmt.Fprintf(&b, "%s  %s: %s → %s (%.0f%%)\n",
			rec.Transaction.ID, rec.Transaction.Description,
			rec.Transaction.Category, BoldStyle.Render(rec.SuggestedCategory), rec.Confidence*100)
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderStats renders categorization coverage.
func RenderStats(stats model.CategorizationStats) string {
	return fmt.Sprintf("%d of %d transactions auto-categorized (%.1f%%)",
		stats.AutoCategorized, stats.Total, stats.Accuracy)
}

// RenderAnswer renders a coach reply.
func RenderAnswer(answer coach.Answer) string {
	return InfoStyle.Render(CoachIcon) + " " + answer.Text
}
