package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trend describes the direction of a series over a trailing window.
type Trend string

// Trend values.
const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// Prediction is a point estimate with a confidence in [0, 1].
type Prediction struct {
	Trend      Trend
	Value      decimal.Decimal
	Confidence float64
}

// NoPrediction is returned when there is not enough history to predict anything.
func NoPrediction() Prediction {
	return Prediction{Value: decimal.Zero, Confidence: 0, Trend: TrendStable}
}

// Pattern summarizes recent spending in one category.
type Pattern struct {
	Category      string
	Trend         Trend
	AverageAmount decimal.Decimal
	Frequency     float64 // transactions per week
	DominantDay   time.Weekday
}

// MonthlyImpact approximates the monthly spend the pattern represents.
func (p Pattern) MonthlyImpact() decimal.Decimal {
	return p.AverageAmount.Mul(decimal.NewFromFloat(p.Frequency))
}

// CategoryShare is a category's slice of recent expense.
type CategoryShare struct {
	Category   string
	Amount     decimal.Decimal
	Percentage float64
}

// AlertType classifies an alert for display.
type AlertType string

// Alert types.
const (
	AlertWarning AlertType = "warning"
	AlertInfo    AlertType = "info"
	AlertSuccess AlertType = "success"
)

// Alert is a rule-triggered notice about the user's finances.
type Alert struct {
	Date    time.Time
	ID      string
	Type    AlertType
	Message string
}

// SuggestionKind groups optimization suggestions.
type SuggestionKind string

// Suggestion kinds.
const (
	KindJarAllocation     SuggestionKind = "jar_allocation"
	KindSpendingReduction SuggestionKind = "spending_reduction"
	KindSavingsIncrease   SuggestionKind = "savings_increase"
	KindEmergencyFund     SuggestionKind = "emergency_fund"
)

// Priority ranks suggestions; high sorts first.
type Priority string

// Priority values.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns a comparable weight, higher is more urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Suggestion is an actionable budget optimization.
type Suggestion struct {
	Kind          SuggestionKind
	Priority      Priority
	Title         string
	Description   string
	MonthlyImpact decimal.Decimal
	Actionable    bool
}

// CashRunout estimates how many days the balance lasts at the current burn rate.
type CashRunout struct {
	DaysUntilRunout int
	Confidence      float64
}

// DailyLimit is a recommended daily spend with a human-readable explanation.
type DailyLimit struct {
	Reasoning string
	Limit     decimal.Decimal
}

// WeeklyPlan is a weekly budget split by category.
type WeeklyPlan struct {
	Categories      map[string]decimal.Decimal
	TotalBudget     decimal.Decimal
	Recommendations []string
}
