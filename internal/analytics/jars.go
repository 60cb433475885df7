package analytics

import (
	"github.com/Veraticus/jarwise/internal/model"
	"github.com/shopspring/decimal"
)

// SuggestJarAllocations proposes the default four jars from income and fixed costs.
func SuggestJarAllocations(monthlyIncome, fixedExpenses decimal.Decimal) []model.Jar {
	return []model.Jar{
		{Name: model.JarRent, Target: fixedExpenses.Mul(model.Pct(0.6)), Current: decimal.Zero, Priority: 1, Color: "red"},
		{Name: model.JarBills, Target: fixedExpenses.Mul(model.Pct(0.4)), Current: decimal.Zero, Priority: 2, Color: "orange"},
		{Name: model.JarSavings, Target: monthlyIncome.Mul(model.Pct(0.2)), Current: decimal.Zero, Priority: 3, Color: "green"},
		{Name: model.JarEmergency, Target: monthlyIncome.Mul(model.Pct(0.1)), Current: decimal.Zero, Priority: 4, Color: "blue"},
	}
}
