package forecast

import (
	"testing"

	"github.com/Veraticus/jarwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimalSavingsRate(t *testing.T) {
	tests := []struct {
		name     string
		income   string
		fixed    string
		variable string
		want     string
	}{
		{name: "quarter of disposable", income: "50000", fixed: "20000", variable: "10000", want: "5000"},
		{name: "large disposable", income: "100000", fixed: "0", variable: "0", want: "25000"},
		{name: "nothing disposable", income: "10000", fixed: "6000", variable: "4000", want: "0"},
		{name: "overspent", income: "10000", fixed: "8000", variable: "4000", want: "0"},
		{name: "no income", income: "0", fixed: "0", variable: "0", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OptimalSavingsRate(testutil.Dec(tt.income), testutil.Dec(tt.fixed), testutil.Dec(tt.variable))
			testutil.AssertDecimal(t, tt.want, got)
		})
	}
}

func TestPredictCashRunout(t *testing.T) {
	week := testutil.NewLedger(testutil.Now).
		Expense("Food", "100", 1).
		Expense("Transport", "200", 3).
		Expense("Shopping", "400", 6).
		Expense("Rent", "20000", 12).
		Build()

	runout := PredictCashRunout(testutil.Dec("2000"), week, testutil.Now)
	require.NotNil(t, runout)
	assert.Equal(t, 20, runout.DaysUntilRunout)
	assert.InDelta(t, 0.3, runout.Confidence, 1e-9)

	runout = PredictCashRunout(testutil.Dec("2999.99"), week, testutil.Now)
	require.NotNil(t, runout)
	assert.Equal(t, 29, runout.DaysUntilRunout)

	assert.Nil(t, PredictCashRunout(testutil.Dec("3000"), week, testutil.Now), "30 days is not urgent")
	assert.Nil(t, PredictCashRunout(testutil.Dec("0"), week, testutil.Now))
	assert.Nil(t, PredictCashRunout(testutil.Dec("-10"), week, testutil.Now))
}

func TestPredictCashRunout_SparseOrZeroSpend(t *testing.T) {
	sparse := testutil.NewLedger(testutil.Now).
		Expense("Food", "100", 1).
		Expense("Food", "100", 2).
		Build()
	assert.Nil(t, PredictCashRunout(testutil.Dec("100"), sparse, testutil.Now))

	free := testutil.NewLedger(testutil.Now).
		Expense("Food", "0", 1).
		Expense("Food", "0", 2).
		Expense("Food", "0", 3).
		Build()
	assert.Nil(t, PredictCashRunout(testutil.Dec("100"), free, testutil.Now))
}

func TestPredictCashRunout_ConfidenceCap(t *testing.T) {
	ledger := testutil.NewLedger(testutil.Now)
	for i := 0; i < 12; i++ {
		ledger.Expense("Food", "100", i%6+1)
	}

	runout := PredictCashRunout(testutil.Dec("1000"), ledger.Build(), testutil.Now)
	require.NotNil(t, runout)
	assert.Equal(t, 5, runout.DaysUntilRunout)
	assert.InDelta(t, 0.9, runout.Confidence, 1e-9)
}
