package forecast

import (
	"testing"
	"time"

	"github.com/Veraticus/jarwise/internal/model"
	"github.com/Veraticus/jarwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPatterns(t *testing.T) {
	// testutil.Now is a Monday.
	txns := testutil.NewLedger(testutil.Now).
		Expense("Food", "300", 1).
		Expense("Food", "100", 14).
		Expense("Rent", "12000", 3).
		Expense("Food", "300", 2).
		Expense("Transport", "80", 20).
		Expense("Food", "100", 7).
		Expense("Transport", "40", 10).
		Expense("Shopping", "9000", 45).
		Income("50000", 1).
		Build()

	patterns := DetectPatterns(txns, testutil.Now)
	require.Len(t, patterns, 3)

	rent := patterns[0]
	assert.Equal(t, "Rent", rent.Category)
	testutil.AssertDecimal(t, "12000", rent.AverageAmount)
	assert.InDelta(t, 0.25, rent.Frequency, 1e-9)
	assert.Equal(t, time.Friday, rent.DominantDay)
	assert.Equal(t, model.TrendStable, rent.Trend)

	food := patterns[1]
	assert.Equal(t, "Food", food.Category)
	testutil.AssertDecimal(t, "200", food.AverageAmount)
	assert.InDelta(t, 1.0, food.Frequency, 1e-9)
	assert.Equal(t, time.Monday, food.DominantDay)
	assert.Equal(t, model.TrendIncreasing, food.Trend)

	transport := patterns[2]
	assert.Equal(t, "Transport", transport.Category)
	testutil.AssertDecimal(t, "60", transport.AverageAmount)
	assert.Equal(t, model.TrendDecreasing, transport.Trend)
}

func TestDetectPatterns_DominantDayTieGoesToFirstSeen(t *testing.T) {
	txns := testutil.NewLedger(testutil.Now).
		Expense("Entertainment", "500", 1).
		Expense("Entertainment", "500", 2).
		Build()

	patterns := DetectPatterns(txns, testutil.Now)
	require.Len(t, patterns, 1)
	// Sorted by date, the Saturday entry (two days ago) is seen first.
	assert.Equal(t, time.Saturday, patterns[0].DominantDay)
	assert.Equal(t, model.TrendStable, patterns[0].Trend)
}

func TestDetectPatterns_Empty(t *testing.T) {
	assert.Empty(t, DetectPatterns(nil, testutil.Now))
}

func TestDetectPatterns_DominantDayUsesClockLocation(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, ist)
	// Sunday 20:30 UTC is Monday 02:00 in IST.
	txns := []model.Transaction{{
		ID:          "txn-001",
		Date:        time.Date(2026, 10, 18, 20, 30, 0, 0, time.UTC),
		Amount:      testutil.Dec("150"),
		Type:        model.TransactionExpense,
		Category:    model.CategoryFood,
		Description: "chai",
	}}

	patterns := DetectPatterns(txns, now)
	require.Len(t, patterns, 1)
	assert.Equal(t, time.Monday, patterns[0].DominantDay)

	patterns = DetectPatterns(txns, now.UTC())
	require.Len(t, patterns, 1)
	assert.Equal(t, time.Sunday, patterns[0].DominantDay)
}
