package forecast

import (
	"sort"
	"time"

	"github.com/Veraticus/jarwise/internal/analytics"
	"github.com/Veraticus/jarwise/internal/model"
	"github.com/shopspring/decimal"
)

// weeksPerWindow converts a 30-day count into a weekly frequency.
const weeksPerWindow = 4

type categorySeries struct {
	amounts []decimal.Decimal
	days    []time.Weekday
}

// DetectPatterns summarizes trailing-30-day spending per category and orders the
// result by estimated monthly impact (average amount times weekly frequency).
func DetectPatterns(txns []model.Transaction, now time.Time) []model.Pattern {
	recent := analytics.SortByDate(analytics.Trailing(txns, model.TransactionExpense, now, analytics.MonthDays))

	series := make(map[string]*categorySeries)
	var order []string
	for _, txn := range recent {
		s, ok := series[txn.Category]
		if !ok {
			s = &categorySeries{}
			series[txn.Category] = s
			order = append(order, txn.Category)
		}
		s.amounts = append(s.amounts, txn.Amount)
		s.days = append(s.days, txn.Date.In(now.Location()).Weekday())
	}

	patterns := make([]model.Pattern, 0, len(order))
	for _, category := range order {
		s := series[category]
		patterns = append(patterns, model.Pattern{
			Category:      category,
			AverageAmount: mean(s.amounts),
			Frequency:     float64(len(s.amounts)) / weeksPerWindow,
			DominantDay:   dominantDay(s.days),
			Trend:         amountTrend(s.amounts),
		})
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].MonthlyImpact().GreaterThan(patterns[j].MonthlyImpact())
	})

	return patterns
}

func mean(amounts []decimal.Decimal) decimal.Decimal {
	if len(amounts) == 0 {
		return decimal.Zero
	}
	return decimal.Sum(decimal.Zero, amounts...).Div(decimal.NewFromInt(int64(len(amounts))))
}

// dominantDay returns the most frequent weekday; ties go to the day seen first.
func dominantDay(days []time.Weekday) time.Weekday {
	counts := make(map[time.Weekday]int)
	best, bestCount := time.Sunday, 0
	for _, day := range days {
		counts[day]++
	}
	for _, day := range days {
		if counts[day] > bestCount {
			best, bestCount = day, counts[day]
		}
	}
	return best
}

// amountTrend compares the mean of the later half of the amounts with the earlier half.
func amountTrend(amounts []decimal.Decimal) model.Trend {
	mid := len(amounts) / 2
	if mid == 0 {
		return model.TrendStable
	}
	return patternBand.classify(mean(amounts[:mid]), mean(amounts[mid:]))
}
