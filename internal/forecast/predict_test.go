package forecast

import (
	"testing"

	"github.com/Veraticus/jarwise/internal/model"
	"github.com/Veraticus/jarwise/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPredictIncome(t *testing.T) {
	tests := []struct {
		name           string
		wantValue      string
		wantTrend      model.Trend
		ledger         *testutil.Ledger
		wantConfidence float64
	}{
		{
			name:           "stable salary",
			ledger:         testutil.NewLedger(testutil.Now).Income("10000", 28).Income("10000", 21).Income("10000", 14).Income("10000", 7),
			wantValue:      "9333.33",
			wantTrend:      model.TrendStable,
			wantConfidence: 0.4,
		},
		{
			name:           "increasing second half",
			ledger:         testutil.NewLedger(testutil.Now).Income("12000", 5).Income("10000", 25).Income("10000", 15),
			wantValue:      "7840",
			wantTrend:      model.TrendIncreasing,
			wantConfidence: 0.3,
		},
		{
			name:           "decreasing second half",
			ledger:         testutil.NewLedger(testutil.Now).Income("20000", 20).Income("20000", 15).Income("5000", 10).Income("5000", 5),
			wantValue:      "11083.33",
			wantTrend:      model.TrendDecreasing,
			wantConfidence: 0.4,
		},
		{
			name:           "history exists but nothing recent",
			ledger:         testutil.NewLedger(testutil.Now).Income("10000", 90).Income("10000", 60).Income("10000", 31),
			wantValue:      "0",
			wantTrend:      model.TrendStable,
			wantConfidence: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PredictIncome(tt.ledger.Build(), 7, testutil.Now)
			testutil.AssertDecimal(t, tt.wantValue, got.Value.Round(2))
			assert.Equal(t, tt.wantTrend, got.Trend)
			assert.InDelta(t, tt.wantConfidence, got.Confidence, 1e-9)
		})
	}
}

func TestPredictIncome_InsufficientHistory(t *testing.T) {
	txns := testutil.NewLedger(testutil.Now).
		Income("50000", 1).
		Income("50000", 2).
		Expense("Food", "100", 1).
		Build()

	got := PredictIncome(txns, 7, testutil.Now)
	assert.True(t, got.Value.IsZero())
	assert.Zero(t, got.Confidence)
	assert.Equal(t, model.TrendStable, got.Trend)
}

func TestPredictIncome_ConfidenceCapsAtOne(t *testing.T) {
	ledger := testutil.NewLedger(testutil.Now)
	for day := 1; day <= 12; day++ {
		ledger.Income("1000", day)
	}

	got := PredictIncome(ledger.Build(), 30, testutil.Now)
	assert.InDelta(t, 1.0, got.Confidence, 1e-9)
	testutil.AssertDecimal(t, "12000", got.Value.Round(2))
}

func TestPredictCategoryExpense(t *testing.T) {
	stable := testutil.NewLedger(testutil.Now).
		Expense("Food", "200", 20).
		Expense("Food", "200", 10).
		Expense("Transport", "5000", 5).
		Build()

	got := PredictCategoryExpense(stable, "Food", 7, testutil.Now)
	testutil.AssertDecimal(t, "93.33", got.Value.Round(2))
	assert.Equal(t, model.TrendStable, got.Trend)
	assert.InDelta(t, 0.25, got.Confidence, 1e-9)

	rising := testutil.NewLedger(testutil.Now).
		Expense("Food", "300", 10).
		Expense("Food", "100", 20).
		Build()

	got = PredictCategoryExpense(rising, "Food", 7, testutil.Now)
	testutil.AssertDecimal(t, "102.67", got.Value.Round(2))
	assert.Equal(t, model.TrendIncreasing, got.Trend)

	falling := testutil.NewLedger(testutil.Now).
		Expense("Food", "300", 20).
		Expense("Food", "100", 10).
		Build()

	got = PredictCategoryExpense(falling, "Food", 7, testutil.Now)
	testutil.AssertDecimal(t, "84", got.Value.Round(2))
	assert.Equal(t, model.TrendDecreasing, got.Trend)
}

func TestPredictCategoryExpense_InsufficientHistory(t *testing.T) {
	txns := testutil.NewLedger(testutil.Now).
		Expense("Food", "200", 3).
		Expense("Shopping", "200", 3).
		Build()

	got := PredictCategoryExpense(txns, "Food", 7, testutil.Now)
	assert.True(t, got.Value.IsZero())
	assert.Zero(t, got.Confidence)
	assert.Equal(t, model.TrendStable, got.Trend)
}
