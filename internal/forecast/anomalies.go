package forecast

import (
	"math"
	"time"

	"github.com/Veraticus/jarwise/internal/analytics"
	"github.com/Veraticus/jarwise/internal/model"
)

const (
	minAnomalySample = 5
	anomalySigmas    = 2.0
)

// DetectAnomalies flags trailing-30-day expenses whose amount exceeds the window
// mean by more than two population standard deviations. Input order is preserved.
func DetectAnomalies(txns []model.Transaction, now time.Time) []model.Transaction {
	recent := analytics.Trailing(txns, model.TransactionExpense, now, analytics.MonthDays)
	if len(recent) < minAnomalySample {
		return nil
	}

	amounts := make([]float64, len(recent))
	var sum float64
	for i, txn := range recent {
		amounts[i] = txn.Amount.InexactFloat64()
		sum += amounts[i]
	}
	mu := sum / float64(len(amounts))

	var variance float64
	for _, a := range amounts {
		variance += (a - mu) * (a - mu)
	}
	variance /= float64(len(amounts))

	threshold := mu + anomalySigmas*math.Sqrt(variance)

	var anomalies []model.Transaction
	for i, txn := range recent {
		if amounts[i] > threshold {
			anomalies = append(anomalies, txn)
		}
	}
	return anomalies
}
