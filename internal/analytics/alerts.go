package analytics

import (
	"fmt"
	"time"

	"github.com/Veraticus/jarwise/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Alert thresholds.
var (
	lowBalanceThreshold     = decimal.NewFromInt(1000)
	healthyBalanceThreshold = decimal.NewFromInt(5000)
)

const topCategoryAlertPercent = 40

// GenerateAlerts runs each alert rule independently and returns every alert that fires,
// in rule order.
func GenerateAlerts(balance decimal.Decimal, txns []model.Transaction, jars []model.Jar, now time.Time) []model.Alert {
	var alerts []model.Alert

	add := func(typ model.AlertType, message string) {
		alerts = append(alerts, model.Alert{
			ID:      uuid.NewString(),
			Type:    typ,
			Message: message,
			Date:    now,
		})
	}

	if balance.LessThan(lowBalanceThreshold) {
		add(model.AlertWarning, fmt.Sprintf(
			"Your balance is low (%s). Consider reducing non-essential spending.",
			model.FormatAmount(balance)))
	}

	if rent, ok := model.FindJar(jars, model.JarRent); ok && rent.Current.LessThan(rent.Target.Mul(model.Pct(0.5))) {
		shortfall := rent.Target.Sub(rent.Current)
		add(model.AlertWarning, fmt.Sprintf(
			"You need %s more for rent. Try saving %s per day.",
			model.FormatAmount(shortfall),
			model.FormatAmount(shortfall.Div(decimal.NewFromInt(WeekDays)))))
	}

	if shares := SpendingPatterns(txns, now); len(shares) > 0 && shares[0].Percentage > topCategoryAlertPercent {
		add(model.AlertInfo, fmt.Sprintf(
			"%.0f%% of your recent spending is on %s. Consider if this aligns with your goals.",
			shares[0].Percentage, shares[0].Category))
	}

	if allFunded(jars) && balance.GreaterThan(healthyBalanceThreshold) {
		add(model.AlertSuccess, fmt.Sprintf(
			"Great job! All your jars are funded and you have %s available.",
			model.FormatAmount(balance)))
	}

	return alerts
}

func allFunded(jars []model.Jar) bool {
	for _, jar := range jars {
		if !jar.Funded() {
			return false
		}
	}
	return true
}
