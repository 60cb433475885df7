package analytics

import (
	"sort"
	"time"

	"github.com/Veraticus/jarwise/internal/model"
	"github.com/shopspring/decimal"
)

// SpendingPatterns breaks trailing-7-day expenses down by category, largest first.
// Percentages are 0 when the window total is zero.
func SpendingPatterns(txns []model.Transaction, now time.Time) []model.CategoryShare {
	recent := Trailing(txns, model.TransactionExpense, now, WeekDays)

	totals := make(map[string]decimal.Decimal)
	var order []string
	total := decimal.Zero

	for _, txn := range recent {
		if _, seen := totals[txn.Category]; !seen {
			order = append(order, txn.Category)
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
		total = total.Add(txn.Amount)
	}

	shares := make([]model.CategoryShare, 0, len(order))
	for _, category := range order {
		amount := totals[category]
		shares = append(shares, model.CategoryShare{
			Category:   category,
			Amount:     amount,
			Percentage: Percentage(amount, total),
		})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Amount.GreaterThan(shares[j].Amount)
	})

	return shares
}

// FindShare returns the share for category, if present.
func FindShare(shares []model.CategoryShare, category string) (model.CategoryShare, bool) {
	for _, share := range shares {
		if share.Category == category {
			return share, true
		}
	}
	return model.CategoryShare{}, false
}
