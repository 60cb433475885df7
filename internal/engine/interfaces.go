package engine

import "github.com/Veraticus/jarwise/internal/model"

// Classifier defines the contract for transaction categorization.
type Classifier interface {
	Classify(description string) model.Classification
	AutoCategorize(txns []model.Transaction) []model.Transaction
	SuggestRecategorization(txns []model.Transaction) []model.Recategorization
	Stats(txns []model.Transaction) model.CategorizationStats
}
