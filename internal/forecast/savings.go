package forecast

import (
	"time"

	"github.com/Veraticus/jarwise/internal/analytics"
	"github.com/Veraticus/jarwise/internal/model"
	"github.com/shopspring/decimal"
)

const (
	minRunoutSample = 3
	// runoutHorizonDays is the cutoff beyond which a runout is not reported.
	runoutHorizonDays = 30
)

// OptimalSavingsRate recommends a monthly savings amount: a quarter of disposable
// income, capped at 30% of income. It returns 0 when nothing is disposable.
func OptimalSavingsRate(monthlyIncome, fixedExpenses, variableExpenses decimal.Decimal) decimal.Decimal {
	disposable := monthlyIncome.Sub(fixedExpenses).Sub(variableExpenses)
	if !disposable.IsPositive() {
		return decimal.Zero
	}

	rate := decimal.Min(disposable.Mul(model.Pct(0.25)), monthlyIncome.Mul(model.Pct(0.3)))
	return decimal.Max(decimal.Zero, rate)
}

// PredictCashRunout estimates the days until the balance is spent at last week's
// burn rate. It returns nil with too little data, a non-positive balance, or when
// the runout is 30 days or more away.
func PredictCashRunout(balance decimal.Decimal, txns []model.Transaction, now time.Time) *model.CashRunout {
	recent := analytics.Trailing(txns, model.TransactionExpense, now, analytics.WeekDays)
	if len(recent) < minRunoutSample || !balance.IsPositive() {
		return nil
	}

	weekTotal := analytics.Sum(recent)
	if !weekTotal.IsPositive() {
		return nil
	}

	// balance / (weekTotal / 7), kept in one division so whole-day results stay exact.
	days := int(balance.Mul(decimal.NewFromInt(analytics.WeekDays)).Div(weekTotal).Floor().IntPart())
	if days >= runoutHorizonDays {
		return nil
	}

	return &model.CashRunout{
		DaysUntilRunout: days,
		Confidence:      minFloat(float64(len(recent))/10, 0.9),
	}
}
