// Package analytics computes descriptive signals from a transaction history:
// balances, trailing-window aggregates, category shares, jar suggestions and alerts.
//
// Every function is a pure transform of its arguments. Trailing windows are
// measured back from the supplied now, so results are deterministic.
package analytics

import (
	"sort"
	"time"

	"github.com/Veraticus/jarwise/internal/model"
	"github.com/shopspring/decimal"
)

// Window lengths in days.
const (
	WeekDays  = 7
	MonthDays = 30
)

// Trailing returns the transactions of the given type dated within the last days
// days before now, in input order. Future-dated entries are kept.
func Trailing(txns []model.Transaction, typ model.TransactionType, now time.Time, days int) []model.Transaction {
	cutoff := now.AddDate(0, 0, -days)

	var out []model.Transaction
	for _, txn := range txns {
		if txn.Type != typ || txn.Date.Before(cutoff) {
			continue
		}
		out = append(out, txn)
	}
	return out
}

// SortByDate returns a copy ordered by date; ties keep insertion order.
func SortByDate(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	copy(out, txns)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Sum adds up transaction amounts.
func Sum(txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		total = total.Add(txn.Amount)
	}
	return total
}

// Percentage returns part/whole*100, or 0 when whole is zero.
func Percentage(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100)).InexactFloat64()
}
