package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	valid := Transaction{
		ID:     "txn-1",
		Date:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Amount: d("120.50"),
		Type:   TransactionExpense,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		mutate func(*Transaction)
		name   string
	}{
		{name: "missing id", mutate: func(t *Transaction) { t.ID = "" }},
		{name: "missing date", mutate: func(t *Transaction) { t.Date = time.Time{} }},
		{name: "unknown type", mutate: func(t *Transaction) { t.Type = "transfer" }},
		{name: "negative amount", mutate: func(t *Transaction) { t.Amount = d("-1") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := valid
			tt.mutate(&txn)
			assert.ErrorIs(t, txn.Validate(), ErrInvalidTransaction)
		})
	}
}

func TestTransaction_WithCategoryDoesNotMutate(t *testing.T) {
	original := Transaction{ID: "a", Category: "Other"}
	updated := original.WithCategory("Food")

	assert.Equal(t, "Other", original.Category)
	assert.Equal(t, "Food", updated.Category)
}

func TestIsFixedCategory(t *testing.T) {
	assert.True(t, IsFixedCategory("Rent"))
	assert.True(t, IsFixedCategory("EMI"))
	assert.True(t, IsFixedCategory("bills"))
	assert.True(t, IsFixedCategory("SUBSCRIPTION"))
	assert.False(t, IsFixedCategory("Food"))
}

func TestPriority_Rank(t *testing.T) {
	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Zero(t, Priority("unknown").Rank())
}

func TestCategoryRule_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rule    CategoryRule
		wantErr bool
	}{
		{name: "valid", rule: CategoryRule{Category: "Pets", Confidence: 0.9, Keywords: []string{"vet"}}},
		{name: "missing category", rule: CategoryRule{Confidence: 0.9, Keywords: []string{"vet"}}, wantErr: true},
		{name: "no keywords", rule: CategoryRule{Category: "Pets", Confidence: 0.9}, wantErr: true},
		{name: "empty keyword", rule: CategoryRule{Category: "Pets", Confidence: 0.99, Keywords: []string{""}}, wantErr: true},
		{name: "whitespace keyword", rule: CategoryRule{Category: "Pets", Confidence: 0.5, Keywords: []string{"vet", " \t"}}, wantErr: true},
		{name: "zero confidence", rule: CategoryRule{Category: "Pets", Keywords: []string{"vet"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRule)
				return
			}
			assert.NoError(t, err)
		})
	}
}
