package classification

import (
	"testing"

	"github.com/Veraticus/jarwise/internal/model"
	"github.com/Veraticus/jarwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoCategorize(t *testing.T) {
	c := New(DefaultRules(), nil)
	txns := testutil.NewLedger(testutil.Now).
		Described("", "Swiggy order", "350", 1).
		Described(model.CategoryOther, "Metro card recharge", "200", 1).
		Described("Food", "Netflix", "649", 2).
		Described("", "bought a lamp", "900", 3).
		Described(model.CategoryOther, "xyz 123", "50", 4).
		Build()

	got := c.AutoCategorize(txns)
	require.Len(t, got, len(txns))

	assert.Equal(t, "Food", got[0].Category)
	assert.Equal(t, "Transport", got[1].Category)
	assert.Equal(t, "Food", got[2].Category, "existing category is kept")
	assert.Equal(t, "", got[3].Category, "0.6 is below the bar")
	assert.Equal(t, model.CategoryOther, got[4].Category)

	// Input untouched.
	assert.Equal(t, "", txns[0].Category)

	// Running it twice changes nothing further.
	assert.Equal(t, got, c.AutoCategorize(got))
}

func TestSuggestRecategorization(t *testing.T) {
	c := New(DefaultRules(), nil)
	txns := testutil.NewLedger(testutil.Now).
		Described("Shopping", "Electricity board", "1200", 1).
		Described("Food", "Swiggy", "300", 1).
		Described("Food", "Amazon order", "999", 2).
		Described("Other", "team lunch", "400", 2).
		Described("Shopping", "bought shoes", "2500", 3).
		Build()

	got := c.SuggestRecategorization(txns)
	require.Len(t, got, 3)

	assert.Equal(t, "txn-001", got[0].Transaction.ID)
	assert.Equal(t, "Bills", got[0].SuggestedCategory)
	assert.InDelta(t, 0.95, got[0].Confidence, 1e-9)
	assert.Equal(t, "txn-003", got[1].Transaction.ID)
	assert.Equal(t, "Shopping", got[1].SuggestedCategory)
	assert.Equal(t, "txn-004", got[2].Transaction.ID)
	assert.Equal(t, "Food", got[2].SuggestedCategory)
}

func TestStats(t *testing.T) {
	c := New(DefaultRules(), nil)

	t.Run("empty", func(t *testing.T) {
		got := c.Stats(nil)
		assert.Equal(t, model.CategorizationStats{}, got)
	})

	t.Run("mixed", func(t *testing.T) {
		txns := testutil.NewLedger(testutil.Now).
			Described("Food", "Swiggy", "300", 1).
			Described("Transport", "Uber", "150", 1).
			Described("Shopping", "bought lamp", "500", 1).
			Described("Food", "Netflix", "649", 1).
			Build()

		got := c.Stats(txns)
		assert.Equal(t, 4, got.Total)
		assert.Equal(t, 2, got.AutoCategorized)
		assert.InDelta(t, 50.0, got.Accuracy, 1e-9)
	})
}
