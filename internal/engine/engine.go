// Package engine composes classification, analytics, forecasting and optimization
// into a single insight snapshot for a transaction history.
package engine

import (
	"log/slog"
	"time"

	"github.com/Veraticus/jarwise/internal/analytics"
	"github.com/Veraticus/jarwise/internal/forecast"
	"github.com/Veraticus/jarwise/internal/model"
	"github.com/Veraticus/jarwise/internal/optimizer"
	"github.com/shopspring/decimal"
)

// Engine computes insights from immutable snapshots of transactions and jars.
// It holds no state beyond its configuration and classifier.
type Engine struct {
	classifier   Classifier
	clock        func() time.Time
	horizonDays  int
	forecastDays int
}

// Config holds configuration options for the engine.
type Config struct {
	Clock        func() time.Time
	HorizonDays  int
	ForecastDays int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		HorizonDays:  analytics.DefaultHorizonDays,
		ForecastDays: analytics.WeekDays,
		Clock:        time.Now,
	}
}

// New creates an engine with the default configuration.
func New(classifier Classifier) *Engine {
	return NewWithConfig(classifier, DefaultConfig())
}

// NewWithConfig creates an engine with custom configuration. Zero values fall back
// to the defaults.
func NewWithConfig(classifier Classifier, config Config) *Engine {
	defaults := DefaultConfig()
	if config.HorizonDays <= 0 {
		config.HorizonDays = defaults.HorizonDays
	}
	if config.ForecastDays <= 0 {
		config.ForecastDays = defaults.ForecastDays
	}
	if config.Clock == nil {
		config.Clock = defaults.Clock
	}

	return &Engine{
		classifier:   classifier,
		clock:        config.Clock,
		horizonDays:  config.HorizonDays,
		forecastDays: config.ForecastDays,
	}
}

// CategoryForecast is the expected spend in one category over the forecast window.
type CategoryForecast struct {
	Category   string
	Prediction model.Prediction
}

// Insights is everything the engine knows about a history at one instant.
type Insights struct {
	GeneratedAt           time.Time
	Profile               model.Profile
	SafeToSpend           decimal.Decimal
	PredictedExpenses     decimal.Decimal
	Shares                []model.CategoryShare
	Patterns              []model.Pattern
	Anomalies             []model.Transaction
	ExpenseForecasts      []CategoryForecast
	Alerts                []model.Alert
	Optimizations         []model.Suggestion
	SuggestedJars         []model.Jar
	Recategorizations     []model.Recategorization
	IncomeForecast        model.Prediction
	MonthlyIncomeForecast model.Prediction
	CashRunout            *model.CashRunout
	DailyLimit            model.DailyLimit
	WeeklyPlan            model.WeeklyPlan
	Categorization        model.CategorizationStats
	HorizonDays           int
	ForecastDays          int
}

// Now returns the engine's current instant.
func (e *Engine) Now() time.Time {
	return e.clock()
}

// Profile recomputes the profile snapshot for txns.
func (e *Engine) Profile(txns []model.Transaction) model.Profile {
	return analytics.BuildProfile(txns, e.clock())
}

// Categorize fills in missing categories on txns. Without a classifier it returns
// an unchanged copy.
func (e *Engine) Categorize(txns []model.Transaction) []model.Transaction {
	if e.classifier == nil {
		return append([]model.Transaction(nil), txns...)
	}
	return e.classifier.AutoCategorize(txns)
}

// Analyze computes the full insight snapshot. Neither argument is modified.
func (e *Engine) Analyze(txns []model.Transaction, jars []model.Jar) Insights {
	now := e.clock()
	profile := analytics.BuildProfile(txns, now)
	patterns := forecast.DetectPatterns(txns, now)

	forecasts := make([]CategoryForecast, 0, len(patterns))
	predictedExpenses := decimal.Zero
	for _, p := range patterns {
		prediction := forecast.PredictCategoryExpense(txns, p.Category, e.forecastDays, now)
		forecasts = append(forecasts, CategoryForecast{Category: p.Category, Prediction: prediction})
		predictedExpenses = predictedExpenses.Add(prediction.Value)
	}

	incomeForecast := forecast.PredictIncome(txns, e.forecastDays, now)

	insights := Insights{
		GeneratedAt:           now,
		Profile:               profile,
		SafeToSpend:           analytics.SafeToSpend(profile.Balance, jars, e.horizonDays),
		PredictedExpenses:     predictedExpenses,
		Shares:                analytics.SpendingPatterns(txns, now),
		Patterns:              patterns,
		Anomalies:             forecast.DetectAnomalies(txns, now),
		ExpenseForecasts:      forecasts,
		Alerts:                analytics.GenerateAlerts(profile.Balance, txns, jars, now),
		Optimizations:         optimizer.GenerateOptimizations(txns, jars, profile.MonthlyIncome, profile.FixedExpenses, now),
		SuggestedJars:         analytics.SuggestJarAllocations(profile.MonthlyIncome, profile.FixedExpenses),
		IncomeForecast:        incomeForecast,
		MonthlyIncomeForecast: forecast.PredictIncome(txns, analytics.MonthDays, now),
		CashRunout:            forecast.PredictCashRunout(profile.Balance, txns, now),
		DailyLimit:            optimizer.DailySpendingLimit(profile.Balance, jars, incomeForecast.Value, predictedExpenses, e.horizonDays),
		WeeklyPlan:            optimizer.WeeklyPlan(profile.Balance, jars, txns, profile.MonthlyIncome, now),
		HorizonDays:           e.horizonDays,
		ForecastDays:          e.forecastDays,
	}

	if e.classifier != nil {
		insights.Recategorizations = e.classifier.SuggestRecategorization(txns)
		insights.Categorization = e.classifier.Stats(txns)
	}

	slog.Debug("Computed insights",
		"transactions", len(txns),
		"jars", len(jars),
		"patterns", len(patterns),
		"alerts", len(insights.Alerts),
		"suggestions", len(insights.Optimizations))

	return insights
}
