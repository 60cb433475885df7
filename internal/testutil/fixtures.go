// Package testutil provides fixtures and assertions shared by the package tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/Veraticus/jarwise/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// Now is the fixed reference instant used across tests (a Monday).
var Now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

// Dec parses a decimal literal and panics on malformed input.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// AssertDecimal fails the test when got is not numerically equal to want.
func AssertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) bool {
	t.Helper()
	return assert.True(t, Dec(want).Equal(got),
		append([]any{fmt.Sprintf("expected %s, got %s", want, got.String())}, msgAndArgs...)...)
}

// Ledger builds transactions relative to a reference instant.
// IDs are assigned sequentially in insertion order.
type Ledger struct {
	now  time.Time
	txns []model.Transaction
}

// NewLedger creates a ledger anchored at now.
func NewLedger(now time.Time) *Ledger {
	return &Ledger{now: now}
}

// Income records income received daysAgo days before the reference instant.
func (l *Ledger) Income(amount string, daysAgo int) *Ledger {
	return l.add(model.TransactionIncome, "Salary", "salary credit", amount, daysAgo)
}

// Expense records an expense daysAgo days before the reference instant.
func (l *Ledger) Expense(category, amount string, daysAgo int) *Ledger {
	return l.add(model.TransactionExpense, category, category+" purchase", amount, daysAgo)
}

// Described records an expense with an explicit description.
func (l *Ledger) Described(category, description, amount string, daysAgo int) *Ledger {
	return l.add(model.TransactionExpense, category, description, amount, daysAgo)
}

func (l *Ledger) add(typ model.TransactionType, category, description, amount string, daysAgo int) *Ledger {
	l.txns = append(l.txns, model.Transaction{
		ID:          fmt.Sprintf("txn-%03d", len(l.txns)+1),
		Date:        l.now.AddDate(0, 0, -daysAgo),
		Amount:      Dec(amount),
		Type:        typ,
		Category:    category,
		Description: description,
	})
	return l
}

// Build returns a copy of the recorded transactions.
func (l *Ledger) Build() []model.Transaction {
	out := make([]model.Transaction, len(l.txns))
	copy(out, l.txns)
	return out
}

// Jar is a shorthand constructor for jar fixtures.
func Jar(name, target, current string, priority int) model.Jar {
	return model.Jar{
		Name:     name,
		Target:   Dec(target),
		Current:  Dec(current),
		Priority: priority,
	}
}
