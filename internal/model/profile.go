package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile is a snapshot derived from the transaction history. It is never authoritative.
type Profile struct {
	LastUpdated   time.Time
	Balance       decimal.Decimal
	MonthlyIncome decimal.Decimal
	FixedExpenses decimal.Decimal
}
