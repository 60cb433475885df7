package coach

import (
	"testing"

	"github.com/Veraticus/jarwise/internal/engine"
	"github.com/Veraticus/jarwise/internal/model"
	"github.com/Veraticus/jarwise/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func snapshot() Snapshot {
	return Snapshot{
		Balance:       testutil.Dec("12000"),
		SafeToSpend:   testutil.Dec("1000"),
		MonthlyIncome: testutil.Dec("50000"),
		FixedExpenses: testutil.Dec("15000"),
		Jars: []model.Jar{
			testutil.Jar(model.JarRent, "10000", "8000", 1),
			testutil.Jar(model.JarSavings, "6000", "3000", 2),
		},
		Shares: []model.CategoryShare{
			{Category: "Food", Amount: testutil.Dec("4500"), Percentage: 45},
			{Category: "Transport", Amount: testutil.Dec("5500"), Percentage: 55},
		},
	}
}

func TestRespond(t *testing.T) {
	tests := []struct {
		name     string
		question string
		intent   Intent
		text     string
	}{
		{
			name:     "affordable amount",
			question: "Can I afford ₹5000 headphones?",
			intent:   IntentAfford,
			text:     "Yes, you can afford ₹5000. Your safe weekly spending limit is ₹7000. Just make sure your essential jars stay funded!",
		},
		{
			name:     "limit is inclusive",
			question: "can i buy a 7000 phone",
			intent:   IntentAfford,
			text:     "Yes, you can afford ₹7000. Your safe weekly spending limit is ₹7000. Just make sure your essential jars stay funded!",
		},
		{
			name:     "too expensive",
			question: "Can I afford a 9000 bike",
			intent:   IntentAfford,
			text:     "I'd advise against spending ₹9000 right now. Your safe weekly limit is ₹7000. This purchase would put your rent/bills at risk.",
		},
		{
			name:     "afford without amount",
			question: "Can I afford a vacation?",
			intent:   IntentAfford,
			text:     "Based on your current balance (₹12000) and jar targets, you can safely spend ₹7000 this week.",
		},
		{
			name:     "weekend",
			question: "How much can I spend this weekend?",
			intent:   IntentSpendWeek,
			text:     "You can safely spend ₹7000 this week (about ₹1000 per day). This keeps your essential jars on track for rent, bills, and savings.",
		},
		{
			name:     "today",
			question: "How much is safe today?",
			intent:   IntentSpendDay,
			text:     "Your safe daily spending limit is ₹1000. This ensures you'll have enough for your upcoming obligations.",
		},
		{
			name:     "general spend",
			question: "How much should I spend?",
			intent:   IntentSpendGeneral,
			text:     "Based on your pattern, you can safely spend ₹1000 per day or ₹7000 per week.",
		},
		{
			name:     "savings",
			question: "How are my savings doing?",
			intent:   IntentSavings,
			text:     "Your savings jar is 50% funded (₹3000 of ₹6000). Try adding ₹100 daily to reach your goal this month.",
		},
		{
			name:     "spending",
			question: "Where is my spending going?",
			intent:   IntentSpending,
			text:     "Your biggest expense category is Food at ₹4500 (45% of recent spending). This seems high - could you reduce it?",
		},
		{
			name:     "biggest expense",
			question: "What's my biggest expense?",
			intent:   IntentSpending,
			text:     "Your biggest expense category is Food at ₹4500 (45% of recent spending). This seems high - could you reduce it?",
		},
		{
			name:     "balance",
			question: "How much money left?",
			intent:   IntentBalance,
			text:     "Your current balance is ₹12000. After setting aside ₹5000 for your jars, you have ₹7000 for flexible spending.",
		},
		{
			name:     "income",
			question: "What do I earn?",
			intent:   IntentIncome,
			text:     "Your monthly income is approximately ₹50000. You're in good shape!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Respond(tt.question, snapshot())
			assert.Equal(t, tt.intent, got.Intent)
			assert.Equal(t, tt.text, got.Text)
		})
	}
}

func TestRespond_SavingsWithoutJarFallsThrough(t *testing.T) {
	s := snapshot()
	s.Jars = s.Jars[:1]

	got := Respond("how is my saving vs expense", s)
	assert.Equal(t, IntentSpending, got.Intent)

	got = Respond("should I save more?", s)
	assert.Equal(t, IntentHelp, got.Intent)
	assert.Contains(t, got.Text, "Your current safe daily spending is ₹1000.")
}

func TestRespond_SpendingWithoutData(t *testing.T) {
	s := snapshot()
	s.Shares = nil

	got := Respond("show my expenses", s)
	assert.Equal(t, IntentSpending, got.Intent)
	assert.Equal(t, "I need more transaction data to analyze your spending patterns. Add some expenses to get personalized insights!", got.Text)
}

func TestRespond_ModestTopShare(t *testing.T) {
	s := snapshot()
	s.Shares = []model.CategoryShare{{Category: "Bills", Amount: testutil.Dec("2000"), Percentage: 40}}

	got := Respond("spending?", s)
	assert.Equal(t, "Your biggest expense category is Bills at ₹2000 (40% of recent spending). This looks reasonable.", got.Text)
}

func TestRespond_IncomeUnderPressure(t *testing.T) {
	s := snapshot()
	s.FixedExpenses = testutil.Dec("25000")

	got := Respond("my income", s)
	assert.Equal(t, "Your monthly income is approximately ₹50000. Consider increasing income or reducing fixed expenses.", got.Text)
}

func TestFromInsights(t *testing.T) {
	in := engine.Insights{
		Profile: model.Profile{
			Balance:       testutil.Dec("100"),
			MonthlyIncome: testutil.Dec("200"),
			FixedExpenses: testutil.Dec("50"),
		},
		SafeToSpend: testutil.Dec("10"),
		Shares:      []model.CategoryShare{{Category: "Food"}},
	}
	jars := []model.Jar{testutil.Jar("Savings", "100", "0", 1)}

	s := FromInsights(in, jars)
	testutil.AssertDecimal(t, "100", s.Balance)
	testutil.AssertDecimal(t, "10", s.SafeToSpend)
	testutil.AssertDecimal(t, "200", s.MonthlyIncome)
	testutil.AssertDecimal(t, "50", s.FixedExpenses)
	assert.Equal(t, jars, s.Jars)
	assert.Equal(t, in.Shares, s.Shares)
}
