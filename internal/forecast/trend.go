// Package forecast produces short-horizon predictions and outlier flags from a
// transaction history. Each signal uses its own trend thresholds; they are tuned
// per signal and intentionally not shared.
package forecast

import (
	"github.com/Veraticus/jarwise/internal/model"
	"github.com/shopspring/decimal"
)

// trendBand holds the ratio thresholds that classify second-half against first-half.
type trendBand struct {
	up   decimal.Decimal
	down decimal.Decimal
}

func band(up, down float64) trendBand {
	return trendBand{up: decimal.NewFromFloat(up), down: decimal.NewFromFloat(down)}
}

var (
	incomeBand  = band(1.1, 0.9)
	expenseBand = band(1.15, 0.85)
	patternBand = band(1.2, 0.8)
)

// classify compares second against first scaled by the band.
func (b trendBand) classify(first, second decimal.Decimal) model.Trend {
	switch {
	case second.GreaterThan(first.Mul(b.up)):
		return model.TrendIncreasing
	case second.LessThan(first.Mul(b.down)):
		return model.TrendDecreasing
	default:
		return model.TrendStable
	}
}

// splitSums sums the two halves of txns split at len/2 (the first half is the smaller one).
func splitSums(txns []model.Transaction) (first, second decimal.Decimal) {
	mid := len(txns) / 2
	first, second = decimal.Zero, decimal.Zero
	for i, txn := range txns {
		if i < mid {
			first = first.Add(txn.Amount)
		} else {
			second = second.Add(txn.Amount)
		}
	}
	return first, second
}

// multiplier maps a trend onto a scaling factor of plus or minus step.
func multiplier(trend model.Trend, step float64) decimal.Decimal {
	switch trend {
	case model.TrendIncreasing:
		return decimal.NewFromFloat(1 + step)
	case model.TrendDecreasing:
		return decimal.NewFromFloat(1 - step)
	default:
		return decimal.NewFromInt(1)
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
