package optimizer

import (
	"time"

	"github.com/Veraticus/jarwise/internal/analytics"
	"github.com/Veraticus/jarwise/internal/model"
	"github.com/shopspring/decimal"
)

// Weekly plan recommendation texts.
const (
	TightBudgetRecommendation       = "Your weekly budget is tight. Focus on essential expenses only."
	MealPlanningRecommendation      = "Consider meal planning to reduce food costs."
	FreeEntertainmentRecommendation = "Look for free or low-cost entertainment options."
)

var (
	weeklyBudgetShare         = model.Pct(0.7)
	essentialShare            = model.Pct(0.7)
	discretionaryShare        = model.Pct(0.3)
	tightBudgetRatio          = model.Pct(0.3)
	foodCeilingRatio          = model.Pct(0.4)
	entertainmentCeilingRatio = model.Pct(0.2)
)

// WeeklyPlan budgets the coming week. Seventy percent of a quarter of the
// jar-adjusted balance is split 70/30 between essential and discretionary
// categories, each group divided by last week's spending mix. Categories with no
// spending last week receive no allocation.
func WeeklyPlan(
	balance decimal.Decimal,
	jars []model.Jar,
	txns []model.Transaction,
	monthlyIncome decimal.Decimal,
	now time.Time,
) model.WeeklyPlan {
	shares := analytics.SpendingPatterns(txns, now)
	weeks := decimal.NewFromInt(weeksPerMonth)

	weeklyBudget := decimal.Max(decimal.Zero,
		balance.Sub(model.TotalShortfall(jars)).Mul(weeklyBudgetShare).Div(weeks))

	categories := make(map[string]decimal.Decimal)
	allocate(categories, shares, model.EssentialPlanCategories, weeklyBudget.Mul(essentialShare))
	allocate(categories, shares, model.DiscretionaryPlanCategories, weeklyBudget.Mul(discretionaryShare))

	var recommendations []string
	if weeklyBudget.LessThan(monthlyIncome.Div(weeks).Mul(tightBudgetRatio)) {
		recommendations = append(recommendations, TightBudgetRecommendation)
	}
	if food, ok := categories[model.CategoryFood]; ok && food.GreaterThan(weeklyBudget.Mul(foodCeilingRatio)) {
		recommendations = append(recommendations, MealPlanningRecommendation)
	}
	if fun, ok := categories[model.CategoryEntertainment]; ok && fun.GreaterThan(weeklyBudget.Mul(entertainmentCeilingRatio)) {
		recommendations = append(recommendations, FreeEntertainmentRecommendation)
	}

	return model.WeeklyPlan{
		TotalBudget:     weeklyBudget,
		Categories:      categories,
		Recommendations: recommendations,
	}
}

// allocate splits budget across group in proportion to each category's recent spend.
// A group whose recent spend totals zero allocates nothing.
func allocate(dst map[string]decimal.Decimal, shares []model.CategoryShare, group []string, budget decimal.Decimal) {
	groupTotal := decimal.Zero
	for _, share := range shares {
		if model.Contains(group, share.Category) {
			groupTotal = groupTotal.Add(share.Amount)
		}
	}
	if groupTotal.IsZero() {
		return
	}

	for _, category := range group {
		if share, ok := analytics.FindShare(shares, category); ok {
			dst[category] = share.Amount.Mul(budget).Div(groupTotal)
		}
	}
}
