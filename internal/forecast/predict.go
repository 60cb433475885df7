package forecast

import (
	"log/slog"
	"time"

	"github.com/Veraticus/jarwise/internal/analytics"
	"github.com/Veraticus/jarwise/internal/model"
	"github.com/shopspring/decimal"
)

const (
	minIncomeHistory  = 3
	minExpenseHistory = 2
)

var monthDays = decimal.NewFromInt(analytics.MonthDays)

// PredictIncome estimates income over the next daysAhead days from the trailing
// 30-day average, nudged by 5% in the direction of the recent trend.
// Fewer than three income transactions in the whole history yields NoPrediction.
func PredictIncome(txns []model.Transaction, daysAhead int, now time.Time) model.Prediction {
	var income []model.Transaction
	for _, txn := range txns {
		if txn.IsIncome() {
			income = append(income, txn)
		}
	}
	if len(income) < minIncomeHistory {
		slog.Debug("Not enough income history to predict", "count", len(income))
		return model.NoPrediction()
	}

	recent := analytics.Trailing(analytics.SortByDate(income), model.TransactionIncome, now, analytics.MonthDays)
	avgDaily := analytics.Sum(recent).Div(monthDays)

	first, second := splitSums(recent)
	trend := incomeBand.classify(first, second)

	return model.Prediction{
		Value:      avgDaily.Mul(multiplier(trend, 0.05)).Mul(decimal.NewFromInt(int64(daysAhead))),
		Confidence: minFloat(float64(len(recent))/10, 1),
		Trend:      trend,
	}
}

// PredictCategoryExpense estimates spend in one category over the next daysAhead days.
// It needs at least two expenses in that category and scales by 10% along the trend.
func PredictCategoryExpense(txns []model.Transaction, category string, daysAhead int, now time.Time) model.Prediction {
	var spent []model.Transaction
	for _, txn := range txns {
		if txn.IsExpense() && txn.Category == category {
			spent = append(spent, txn)
		}
	}
	if len(spent) < minExpenseHistory {
		return model.NoPrediction()
	}

	recent := analytics.Trailing(analytics.SortByDate(spent), model.TransactionExpense, now, analytics.MonthDays)
	avgDaily := analytics.Sum(recent).Div(monthDays)

	first, second := splitSums(recent)
	trend := expenseBand.classify(first, second)

	return model.Prediction{
		Value:      avgDaily.Mul(decimal.NewFromInt(int64(daysAhead))).Mul(multiplier(trend, 0.1)),
		Confidence: minFloat(float64(len(recent))/8, 1),
		Trend:      trend,
	}
}
