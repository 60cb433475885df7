package optimizer

import (
	"testing"

	"github.com/Veraticus/jarwise/internal/model"
	"github.com/Veraticus/jarwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(suggestions []model.Suggestion) []string {
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Title
	}
	return out
}

func findSuggestion(t *testing.T, suggestions []model.Suggestion, title string) model.Suggestion {
	t.Helper()
	for _, s := range suggestions {
		if s.Title == title {
			return s
		}
	}
	require.Failf(t, "suggestion not found", "no suggestion titled %q in %v", title, titles(suggestions))
	return model.Suggestion{}
}

func TestGenerateOptimizations_Ordering(t *testing.T) {
	txns := testutil.NewLedger(testutil.Now).
		Expense("Entertainment", "4000", 1).
		Expense("Food", "2000", 2).
		Expense("Transport", "4000", 3).
		Build()
	jars := []model.Jar{
		testutil.Jar(model.JarRent, "15000", "5000", 1),
		testutil.Jar(model.JarEmergency, "10000", "0", 2),
	}

	got := GenerateOptimizations(txns, jars, testutil.Dec("50000"), testutil.Dec("15000"), testutil.Now)

	assert.Equal(t, []string{
		"Reduce Entertainment Spending",
		"Build Emergency Fund",
		"Increase Monthly Savings",
		"Increase Emergency Fund Target",
	}, titles(got))

	reduce := got[0]
	assert.Equal(t, model.KindSpendingReduction, reduce.Kind)
	assert.Equal(t, model.PriorityHigh, reduce.Priority)
	testutil.AssertDecimal(t, "4800", reduce.MonthlyImpact)
	assert.Equal(t, "You're spending 40% (₹4000) on Entertainment. Reducing by 30% could save ₹1200 weekly.", reduce.Description)

	build := got[1]
	assert.Equal(t, model.KindEmergencyFund, build.Kind)
	assert.Equal(t, model.PriorityHigh, build.Priority)
	assert.Equal(t, "Your emergency fund has ₹0 but should have ₹45000 (3 months of expenses). Save ₹5000/month to reach this in 9 months.", build.Description)

	savings := got[2]
	assert.Equal(t, model.KindSavingsIncrease, savings.Kind)
	testutil.AssertDecimal(t, "10000", savings.MonthlyImpact)
	assert.Contains(t, savings.Description, "This is 20% of your income.")

	target := got[3]
	assert.Equal(t, model.PriorityMedium, target.Priority)
	testutil.AssertDecimal(t, "0", target.MonthlyImpact)
	assert.True(t, target.Actionable)
}

func TestGenerateOptimizations_AmbitiousJars(t *testing.T) {
	jars := []model.Jar{
		testutil.Jar("Vacation", "20000", "0", 1),
		testutil.Jar("Gadgets", "10000", "0", 2),
	}

	got := GenerateOptimizations(nil, jars, testutil.Dec("20000"), testutil.Dec("5000"), testutil.Now)

	s := findSuggestion(t, got, "Jar Targets Too Ambitious")
	assert.Equal(t, model.KindJarAllocation, s.Kind)
	assert.Equal(t, model.PriorityHigh, s.Priority)
	testutil.AssertDecimal(t, "4200", s.MonthlyImpact)
	assert.Equal(t, got[0].Title, s.Title)
}

func TestGenerateOptimizations_SmallPurchases(t *testing.T) {
	ledger := testutil.NewLedger(testutil.Now)
	for i := 0; i < 16; i++ {
		ledger.Expense("Transport", "100", i%7)
	}
	ledger.Expense("Transport", "200", 1)

	got := GenerateOptimizations(ledger.Build(), nil, testutil.Dec("0"), testutil.Dec("0"), testutil.Now)

	require.Len(t, got, 1)
	assert.Equal(t, "Reduce Frequent Small Purchases", got[0].Title)
	assert.Equal(t, model.PriorityMedium, got[0].Priority)
	testutil.AssertDecimal(t, "2560", got[0].MonthlyImpact)
	assert.Equal(t, "You made 16 small purchases (₹1600) this week. Reducing these by 40% could save ₹640 weekly.", got[0].Description)
}

func TestGenerateOptimizations_FifteenSmallPurchasesIsFine(t *testing.T) {
	ledger := testutil.NewLedger(testutil.Now)
	for i := 0; i < 15; i++ {
		ledger.Expense("Transport", "50", 1)
	}

	got := GenerateOptimizations(ledger.Build(), nil, testutil.Dec("0"), testutil.Dec("0"), testutil.Now)
	assert.Empty(t, got)
}

func TestGenerateOptimizations_EmergencyFund(t *testing.T) {
	t.Run("medium when a month is covered", func(t *testing.T) {
		jars := []model.Jar{testutil.Jar(model.JarEmergency, "50000", "20000", 1)}
		got := GenerateOptimizations(nil, jars, testutil.Dec("100000"), testutil.Dec("10000"), testutil.Now)

		s := findSuggestion(t, got, "Build Emergency Fund")
		assert.Equal(t, model.PriorityMedium, s.Priority)
		assert.Contains(t, s.Description, "Save ₹10000/month to reach this in 1 months.")
		assert.NotContains(t, titles(got), "Increase Emergency Fund Target")
	})

	t.Run("small shortfall", func(t *testing.T) {
		jars := []model.Jar{testutil.Jar(model.JarEmergency, "30000", "29500", 1)}
		got := GenerateOptimizations(nil, jars, testutil.Dec("100000"), testutil.Dec("10000"), testutil.Now)
		assert.NotContains(t, titles(got), "Build Emergency Fund")
	})

	t.Run("no income", func(t *testing.T) {
		jars := []model.Jar{testutil.Jar(model.JarEmergency, "100", "0", 1)}
		got := GenerateOptimizations(nil, jars, testutil.Dec("0"), testutil.Dec("5000"), testutil.Now)
		assert.NotContains(t, titles(got), "Build Emergency Fund")
		assert.Contains(t, titles(got), "Increase Emergency Fund Target")
	})

	t.Run("no emergency jar", func(t *testing.T) {
		got := GenerateOptimizations(nil, nil, testutil.Dec("100000"), testutil.Dec("10000"), testutil.Now)
		assert.NotContains(t, titles(got), "Build Emergency Fund")
		assert.NotContains(t, titles(got), "Increase Emergency Fund Target")
	})
}

func TestGenerateOptimizations_NoSavingsWhenOverspent(t *testing.T) {
	txns := testutil.NewLedger(testutil.Now).
		Expense("Rent", "30000", 10).
		Build()

	got := GenerateOptimizations(txns, nil, testutil.Dec("20000"), testutil.Dec("30000"), testutil.Now)
	assert.NotContains(t, titles(got), "Increase Monthly Savings")
}

func TestGenerateOptimizations_DoesNotMutateInput(t *testing.T) {
	txns := testutil.NewLedger(testutil.Now).
		Expense("Shopping", "3000", 1).
		Expense("Food", "1000", 2).
		Build()
	jars := []model.Jar{testutil.Jar(model.JarEmergency, "1000", "0", 1)}
	before := append([]model.Transaction(nil), txns...)
	beforeJars := append([]model.Jar(nil), jars...)

	_ = GenerateOptimizations(txns, jars, testutil.Dec("40000"), testutil.Dec("10000"), testutil.Now)

	assert.Equal(t, before, txns)
	assert.Equal(t, beforeJars, jars)
}
