// Package optimizer turns analytics and forecasts into ranked budget suggestions,
// a daily spending limit and a weekly category plan.
package optimizer

import (
	"fmt"
	"sort"
	"time"

	"github.com/Veraticus/jarwise/internal/analytics"
	"github.com/Veraticus/jarwise/internal/forecast"
	"github.com/Veraticus/jarwise/internal/model"
	"github.com/shopspring/decimal"
)

// Suggestion thresholds.
const (
	reductionSharePercent     = 25
	highReductionSharePercent = 35
	smallPurchaseCount        = 15
	emergencyFundMonths       = 3
	weeksPerMonth             = 4
)

var (
	jarTargetCeiling      = model.Pct(0.8)
	jarTargetBaseline     = model.Pct(0.6)
	jarTargetCut          = model.Pct(0.2)
	reductionCut          = model.Pct(0.3)
	smallPurchaseCut      = model.Pct(0.4)
	emergencySavingsShare = model.Pct(0.1)

	smallPurchaseLimit      = decimal.NewFromInt(200)
	emergencyShortfallFloor = decimal.NewFromInt(1000)
	savingsSuggestionFloor  = decimal.NewFromInt(500)
	hundred                 = decimal.NewFromInt(100)
)

// GenerateOptimizations runs every suggestion check and returns the results ordered
// by priority, most urgent first, then by monthly impact.
func GenerateOptimizations(
	txns []model.Transaction,
	jars []model.Jar,
	monthlyIncome, fixedExpenses decimal.Decimal,
	now time.Time,
) []model.Suggestion {
	var suggestions []model.Suggestion

	suggestions = append(suggestions, jarAdequacy(jars, monthlyIncome, fixedExpenses)...)
	suggestions = append(suggestions, spendingReductions(txns, now)...)

	if s, ok := emergencyBuildUp(jars, monthlyIncome, fixedExpenses); ok {
		suggestions = append(suggestions, s)
	}
	if s, ok := savingsIncrease(txns, monthlyIncome, fixedExpenses, now); ok {
		suggestions = append(suggestions, s)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		ri, rj := suggestions[i].Priority.Rank(), suggestions[j].Priority.Rank()
		if ri != rj {
			return ri > rj
		}
		return suggestions[i].MonthlyImpact.GreaterThan(suggestions[j].MonthlyImpact)
	})

	return suggestions
}

// jarAdequacy checks that jar targets fit the disposable income and that the
// emergency jar is sized for three months of fixed expenses.
func jarAdequacy(jars []model.Jar, monthlyIncome, fixedExpenses decimal.Decimal) []model.Suggestion {
	var out []model.Suggestion

	totalTargets := model.TotalTargets(jars)
	disposable := monthlyIncome.Sub(fixedExpenses)

	if totalTargets.GreaterThan(disposable.Mul(jarTargetCeiling)) {
		out = append(out, model.Suggestion{
			Kind:     model.KindJarAllocation,
			Priority: model.PriorityHigh,
			Title:    "Jar Targets Too Ambitious",
			Description: fmt.Sprintf(
				"Your jar targets (%s) exceed 80%% of your disposable income (%s). Consider reducing targets by 20%% to make them more achievable.",
				model.FormatAmount(totalTargets), model.FormatAmount(disposable)),
			MonthlyImpact: totalTargets.Sub(disposable.Mul(jarTargetBaseline)).Mul(jarTargetCut),
			Actionable:    true,
		})
	}

	ideal := fixedExpenses.Mul(decimal.NewFromInt(emergencyFundMonths))
	if emergency, ok := model.FindJar(jars, model.JarEmergency); ok && emergency.Target.LessThan(ideal) {
		out = append(out, model.Suggestion{
			Kind:     model.KindEmergencyFund,
			Priority: model.PriorityMedium,
			Title:    "Increase Emergency Fund Target",
			Description: fmt.Sprintf(
				"Your emergency fund target (%s) should cover 3 months of fixed expenses (%s). Consider increasing it by %s.",
				model.FormatAmount(emergency.Target), model.FormatAmount(ideal),
				model.FormatAmount(ideal.Sub(emergency.Target))),
			MonthlyImpact: decimal.Zero,
			Actionable:    true,
		})
	}

	return out
}

// spendingReductions proposes cuts in large discretionary categories and in
// frequent small purchases over the last week.
func spendingReductions(txns []model.Transaction, now time.Time) []model.Suggestion {
	var out []model.Suggestion

	for _, share := range analytics.SpendingPatterns(txns, now) {
		if share.Percentage <= reductionSharePercent || !model.Contains(model.DiscretionaryReductionCategories, share.Category) {
			continue
		}

		weeklySavings := share.Amount.Mul(reductionCut)
		priority := model.PriorityMedium
		if share.Percentage > highReductionSharePercent {
			priority = model.PriorityHigh
		}

		out = append(out, model.Suggestion{
			Kind:     model.KindSpendingReduction,
			Priority: priority,
			Title:    fmt.Sprintf("Reduce %s Spending", share.Category),
			Description: fmt.Sprintf(
				"You're spending %.0f%% (%s) on %s. Reducing by 30%% could save %s weekly.",
				share.Percentage, model.FormatAmount(share.Amount), share.Category,
				model.FormatAmount(weeklySavings)),
			MonthlyImpact: weeklySavings.Mul(decimal.NewFromInt(weeksPerMonth)),
			Actionable:    true,
		})
	}

	var small []model.Transaction
	for _, txn := range analytics.Trailing(txns, model.TransactionExpense, now, analytics.WeekDays) {
		if txn.Amount.LessThan(smallPurchaseLimit) {
			small = append(small, txn)
		}
	}

	if len(small) > smallPurchaseCount {
		total := analytics.Sum(small)
		weeklySavings := total.Mul(smallPurchaseCut)
		out = append(out, model.Suggestion{
			Kind:     model.KindSpendingReduction,
			Priority: model.PriorityMedium,
			Title:    "Reduce Frequent Small Purchases",
			Description: fmt.Sprintf(
				"You made %d small purchases (%s) this week. Reducing these by 40%% could save %s weekly.",
				len(small), model.FormatAmount(total), model.FormatAmount(weeklySavings)),
			MonthlyImpact: weeklySavings.Mul(decimal.NewFromInt(weeksPerMonth)),
			Actionable:    true,
		})
	}

	return out
}

// emergencyBuildUp plans monthly contributions toward three months of fixed expenses.
// Without income there is no savings rate to plan against, so nothing is suggested.
func emergencyBuildUp(jars []model.Jar, monthlyIncome, fixedExpenses decimal.Decimal) (model.Suggestion, bool) {
	emergency, ok := model.FindJar(jars, model.JarEmergency)
	if !ok || !monthlyIncome.IsPositive() {
		return model.Suggestion{}, false
	}

	ideal := fixedExpenses.Mul(decimal.NewFromInt(emergencyFundMonths))
	shortfall := ideal.Sub(emergency.Current)
	if !shortfall.GreaterThan(emergencyShortfallFloor) {
		return model.Suggestion{}, false
	}

	months := shortfall.Div(monthlyIncome.Mul(emergencySavingsShare)).Ceil()
	priority := model.PriorityMedium
	if emergency.Current.LessThan(fixedExpenses) {
		priority = model.PriorityHigh
	}

	return model.Suggestion{
		Kind:     model.KindEmergencyFund,
		Priority: priority,
		Title:    "Build Emergency Fund",
		Description: fmt.Sprintf(
			"Your emergency fund has %s but should have %s (3 months of expenses). Save %s/month to reach this in %s months.",
			model.FormatAmount(emergency.Current), model.FormatAmount(ideal),
			model.FormatAmount(shortfall.Div(months)), months.String()),
		MonthlyImpact: decimal.Zero,
		Actionable:    true,
	}, true
}

// savingsIncrease suggests a savings rate when the last 30 days left money over.
func savingsIncrease(txns []model.Transaction, monthlyIncome, fixedExpenses decimal.Decimal, now time.Time) (model.Suggestion, bool) {
	spent := analytics.Sum(analytics.Trailing(txns, model.TransactionExpense, now, analytics.MonthDays))
	if !monthlyIncome.Sub(spent).IsPositive() {
		return model.Suggestion{}, false
	}

	optimal := forecast.OptimalSavingsRate(monthlyIncome, fixedExpenses, spent.Sub(fixedExpenses))
	if !optimal.GreaterThan(savingsSuggestionFloor) {
		return model.Suggestion{}, false
	}

	return model.Suggestion{
		Kind:     model.KindSavingsIncrease,
		Priority: model.PriorityMedium,
		Title:    "Increase Monthly Savings",
		Description: fmt.Sprintf(
			"Based on your income and expenses, you can comfortably save %s/month. This is %s%% of your income.",
			model.FormatAmount(optimal), optimal.Div(monthlyIncome).Mul(hundred).StringFixed(0)),
		MonthlyImpact: optimal,
		Actionable:    true,
	}, true
}
