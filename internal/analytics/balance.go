package analytics

import (
	"time"

	"github.com/Veraticus/jarwise/internal/model"
	"github.com/shopspring/decimal"
)

// DefaultHorizonDays is the spending horizon used when none is given.
const DefaultHorizonDays = 7

// Balance returns total income minus total expense over the whole history.
func Balance(txns []model.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range txns {
		switch txn.Type {
		case model.TransactionIncome:
			balance = balance.Add(txn.Amount)
		case model.TransactionExpense:
			balance = balance.Sub(txn.Amount)
		}
	}
	return balance
}

// MonthlyIncome sums income received in the trailing 30 days.
func MonthlyIncome(txns []model.Transaction, now time.Time) decimal.Decimal {
	return Sum(Trailing(txns, model.TransactionIncome, now, MonthDays))
}

// FixedExpenses sums trailing-30-day expenses in rent, emi, bills and subscription.
func FixedExpenses(txns []model.Transaction, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range Trailing(txns, model.TransactionExpense, now, MonthDays) {
		if model.IsFixedCategory(txn.Category) {
			total = total.Add(txn.Amount)
		}
	}
	return total
}

// BuildProfile recomputes the profile snapshot from the history.
func BuildProfile(txns []model.Transaction, now time.Time) model.Profile {
	return model.Profile{
		Balance:       Balance(txns),
		MonthlyIncome: MonthlyIncome(txns, now),
		FixedExpenses: FixedExpenses(txns, now),
		LastUpdated:   now,
	}
}

// SafeToSpend returns the daily amount that can be spent over horizonDays without
// eating into any jar shortfall. It is never negative.
func SafeToSpend(balance decimal.Decimal, jars []model.Jar, horizonDays int) decimal.Decimal {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	spare := balance.Sub(model.TotalShortfall(jars))
	if !spare.IsPositive() {
		return decimal.Zero
	}
	return spare.Div(decimal.NewFromInt(int64(horizonDays)))
}
