// Package model defines the core data structures for the jarwise application.
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	// TransactionIncome represents money received.
	TransactionIncome TransactionType = "income"
	// TransactionExpense represents money spent.
	TransactionExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction represents a single income or expense entry.
// Amount is always non-negative; the direction is carried by Type.
type Transaction struct {
	Date        time.Time
	Amount      decimal.Decimal
	ID          string
	Category    string
	Description string
	Type        TransactionType
}

// IsIncome reports whether the transaction is income.
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionIncome
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionExpense
}

// WithCategory returns a copy of the transaction with the category replaced.
func (t Transaction) WithCategory(category string) Transaction {
	t.Category = category
	return t
}

// Validate performs the producer-side checks a transaction must pass
// before it enters the analytic pipeline.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTransaction)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if !t.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, t.Type)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: negative amount %s", ErrInvalidTransaction, t.Amount)
	}
	return nil
}
