// Package coach answers free-text money questions from precomputed engine signals.
//
// A question is matched against an ordered list of intents; the first intent whose
// predicate accepts the question renders the answer.
package coach

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Veraticus/jarwise/internal/engine"
	"github.com/Veraticus/jarwise/internal/model"
	"github.com/shopspring/decimal"
)

// Intent identifies which kind of question was asked.
type Intent string

// Intents in match order.
const (
	IntentAfford       Intent = "afford"
	IntentSpendWeek    Intent = "spend_week"
	IntentSpendDay     Intent = "spend_day"
	IntentSpendGeneral Intent = "spend_general"
	IntentSavings      Intent = "savings"
	IntentSpending     Intent = "spending"
	IntentBalance      Intent = "balance"
	IntentIncome       Intent = "income"
	IntentHelp         Intent = "help"
)

// Snapshot is the subset of engine output the coach talks about.
type Snapshot struct {
	Balance       decimal.Decimal
	SafeToSpend   decimal.Decimal
	MonthlyIncome decimal.Decimal
	FixedExpenses decimal.Decimal
	Jars          []model.Jar
	Shares        []model.CategoryShare
}

// FromInsights builds a snapshot from an engine result.
func FromInsights(in engine.Insights, jars []model.Jar) Snapshot {
	return Snapshot{
		Balance:       in.Profile.Balance,
		SafeToSpend:   in.SafeToSpend,
		MonthlyIncome: in.Profile.MonthlyIncome,
		FixedExpenses: in.Profile.FixedExpenses,
		Jars:          jars,
		Shares:        in.Shares,
	}
}

// Answer is the coach's reply.
type Answer struct {
	Intent Intent
	Text   string
}

type question struct {
	raw   string
	lower string
}

func (q question) has(words ...string) bool {
	for _, w := range words {
		if strings.Contains(q.lower, w) {
			return true
		}
	}
	return false
}

type rule struct {
	matches func(q question, s Snapshot) bool
	answer  func(q question, s Snapshot) string
	intent  Intent
}

var amountPattern = regexp.MustCompile(`₹?(\d+)`)

var (
	daysPerWeek        = decimal.NewFromInt(7)
	daysPerMonth       = decimal.NewFromInt(30)
	hundred            = decimal.NewFromInt(100)
	incomeCoverageRate = decimal.NewFromInt(2)
)

const topSharePercent = 40

// rules are evaluated in order; the first match wins.
var rules = []rule{
	{
		intent:  IntentAfford,
		matches: func(q question, _ Snapshot) bool { return q.has("can i afford", "can i buy") },
		answer:  answerAfford,
	},
	{
		intent:  IntentSpendWeek,
		matches: func(q question, _ Snapshot) bool { return asksHowMuch(q) && q.has("week") },
		answer: func(_ question, s Snapshot) string {
			return fmt.Sprintf("You can safely spend %s this week (about %s per day). This keeps your essential jars on track for rent, bills, and savings.",
				model.FormatAmount(weekly(s)), model.FormatAmount(s.SafeToSpend))
		},
	},
	{
		intent:  IntentSpendDay,
		matches: func(q question, _ Snapshot) bool { return asksHowMuch(q) && q.has("today", "day") },
		answer: func(_ question, s Snapshot) string {
			return fmt.Sprintf("Your safe daily spending limit is %s. This ensures you'll have enough for your upcoming obligations.",
				model.FormatAmount(s.SafeToSpend))
		},
	},
	{
		intent:  IntentSpendGeneral,
		matches: func(q question, _ Snapshot) bool { return asksHowMuch(q) },
		answer: func(_ question, s Snapshot) string {
			return fmt.Sprintf("Based on your pattern, you can safely spend %s per day or %s per week.",
				model.FormatAmount(s.SafeToSpend), model.FormatAmount(weekly(s)))
		},
	},
	{
		intent: IntentSavings,
		matches: func(q question, s Snapshot) bool {
			_, ok := model.FindJar(s.Jars, model.JarSavings)
			return ok && q.has("save", "saving")
		},
		answer: answerSavings,
	},
	{
		intent:  IntentSpending,
		matches: func(q question, _ Snapshot) bool { return q.has("spending", "expense") },
		answer:  answerSpending,
	},
	{
		intent:  IntentBalance,
		matches: func(q question, _ Snapshot) bool { return q.has("balance", "money left") },
		answer: func(_ question, s Snapshot) string {
			reserved := model.TotalShortfall(s.Jars)
			return fmt.Sprintf("Your current balance is %s. After setting aside %s for your jars, you have %s for flexible spending.",
				model.FormatAmount(s.Balance), model.FormatAmount(reserved), model.FormatAmount(s.Balance.Sub(reserved)))
		},
	},
	{
		intent:  IntentIncome,
		matches: func(q question, _ Snapshot) bool { return q.has("income", "earn") },
		answer: func(_ question, s Snapshot) string {
			verdict := "Consider increasing income or reducing fixed expenses."
			if s.MonthlyIncome.GreaterThan(s.FixedExpenses.Mul(incomeCoverageRate)) {
				verdict = "You're in good shape!"
			}
			return fmt.Sprintf("Your monthly income is approximately %s. %s", model.FormatAmount(s.MonthlyIncome), verdict)
		},
	},
}

// Respond answers question using the signals in s.
func Respond(text string, s Snapshot) Answer {
	q := question{raw: text, lower: strings.ToLower(text)}
	for _, r := range rules {
		if r.matches(q, s) {
			return Answer{Intent: r.intent, Text: r.answer(q, s)}
		}
	}
	return Answer{Intent: IntentHelp, Text: helpText(s)}
}

func asksHowMuch(q question) bool {
	return q.has("how much") && q.has("spend", "safe")
}

func weekly(s Snapshot) decimal.Decimal {
	return s.SafeToSpend.Mul(daysPerWeek)
}

func answerAfford(q question, s Snapshot) string {
	limit := weekly(s)

	match := amountPattern.FindStringSubmatch(q.raw)
	if match == nil {
		return fmt.Sprintf("Based on your current balance (%s) and jar targets, you can safely spend %s this week.",
			model.FormatAmount(s.Balance), model.FormatAmount(limit))
	}

	amount := decimal.RequireFromString(match[1])
	if amount.LessThanOrEqual(limit) {
		return fmt.Sprintf("Yes, you can afford %s. Your safe weekly spending limit is %s. Just make sure your essential jars stay funded!",
			model.FormatAmount(amount), model.FormatAmount(limit))
	}
	return fmt.Sprintf("I'd advise against spending %s right now. Your safe weekly limit is %s. This purchase would put your rent/bills at risk.",
		model.FormatAmount(amount), model.FormatAmount(limit))
}

func answerSavings(_ question, s Snapshot) string {
	jar, _ := model.FindJar(s.Jars, model.JarSavings)

	progress := decimal.Zero
	if jar.Target.IsPositive() {
		progress = jar.Current.Div(jar.Target).Mul(hundred)
	}

	return fmt.Sprintf("Your savings jar is %s%% funded (%s of %s). Try adding %s daily to reach your goal this month.",
		progress.StringFixed(0), model.FormatAmount(jar.Current), model.FormatAmount(jar.Target),
		model.FormatAmount(jar.Shortfall().Div(daysPerMonth)))
}

func answerSpending(_ question, s Snapshot) string {
	if len(s.Shares) == 0 {
		return "I need more transaction data to analyze your spending patterns. Add some expenses to get personalized insights!"
	}

	top := s.Shares[0]
	verdict := "This looks reasonable."
	if top.Percentage > topSharePercent {
		verdict = "This seems high - could you reduce it?"
	}
	return fmt.Sprintf("Your biggest expense category is %s at %s (%.0f%% of recent spending). %s",
		top.Category, model.FormatAmount(top.Amount), top.Percentage, verdict)
}

func helpText(s Snapshot) string {
	return fmt.Sprintf(`I'm here to help with your finances! You can ask me:
• "Can I afford ₹X?"
• "How much can I spend this week?"
• "How are my savings doing?"
• "What's my biggest expense?"
• "What's my balance?"

Your current safe daily spending is %s.`, model.FormatAmount(s.SafeToSpend))
}
