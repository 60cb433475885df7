package optimizer

import (
	"github.com/Veraticus/jarwise/internal/analytics"
	"github.com/Veraticus/jarwise/internal/model"
	"github.com/shopspring/decimal"
)

// spendableShare keeps a 20% buffer out of the daily limit.
var spendableShare = model.Pct(0.8)

// limitBands are checked in order; the first band whose ceiling exceeds the limit wins.
var limitBands = []struct {
	ceiling   decimal.Decimal
	reasoning string
}{
	{decimal.NewFromInt(200), "Very tight budget. Focus on essentials only."},
	{decimal.NewFromInt(500), "Moderate budget. Be mindful of discretionary spending."},
	{decimal.NewFromInt(1000), "Comfortable budget. You have room for some treats."},
}

const healthyReasoning = "Healthy budget. Consider increasing savings."

// DailySpendingLimit spreads the balance left after jar shortfalls, adjusted by the
// predicted net cash flow, over horizonDays with a 20% buffer. A non-positive
// horizon falls back to the default of 7 days.
func DailySpendingLimit(
	balance decimal.Decimal,
	jars []model.Jar,
	predictedIncome, predictedExpenses decimal.Decimal,
	horizonDays int,
) model.DailyLimit {
	if horizonDays <= 0 {
		horizonDays = analytics.DefaultHorizonDays
	}

	available := balance.Sub(model.TotalShortfall(jars))
	adjusted := available.Add(predictedIncome.Sub(predictedExpenses))
	limit := decimal.Max(decimal.Zero, adjusted.Mul(spendableShare).Div(decimal.NewFromInt(int64(horizonDays))))

	return model.DailyLimit{Limit: limit, Reasoning: reasoningFor(limit)}
}

func reasoningFor(limit decimal.Decimal) string {
	for _, band := range limitBands {
		if limit.LessThan(band.ceiling) {
			return band.reasoning
		}
	}
	return healthyReasoning
}
