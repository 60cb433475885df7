package classification

import "github.com/Veraticus/jarwise/internal/model"

// Confidence bars for batch operations.
const (
	autoCategorizeThreshold = 0.7
	recategorizeThreshold   = 0.8
)

// AutoCategorize fills in empty or "Other" categories when the classifier is
// more than 70% confident. The input slice is not modified.
func (c *Classifier) AutoCategorize(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	for i, txn := range txns {
		out[i] = txn
		if txn.Category != "" && txn.Category != model.CategoryOther {
			continue
		}
		if guess := c.Classify(txn.Description); guess.Confidence > autoCategorizeThreshold {
			out[i] = txn.WithCategory(guess.Category)
		}
	}
	return out
}

// SuggestRecategorization lists transactions whose stored category disagrees with a
// guess the classifier is more than 80% confident about.
func (c *Classifier) SuggestRecategorization(txns []model.Transaction) []model.Recategorization {
	var suggestions []model.Recategorization
	for _, txn := range txns {
		guess := c.Classify(txn.Description)
		if guess.Confidence > recategorizeThreshold && guess.Category != txn.Category {
			suggestions = append(suggestions, model.Recategorization{
				Transaction:       txn,
				SuggestedCategory: guess.Category,
				Confidence:        guess.Confidence,
			})
		}
	}
	return suggestions
}

// Stats counts how many stored categories match a confident classifier guess.
func (c *Classifier) Stats(txns []model.Transaction) model.CategorizationStats {
	stats := model.CategorizationStats{Total: len(txns)}
	for _, txn := range txns {
		guess := c.Classify(txn.Description)
		if guess.Category == txn.Category && guess.Confidence > autoCategorizeThreshold {
			stats.AutoCategorized++
		}
	}
	if stats.Total > 0 {
		stats.Accuracy = float64(stats.AutoCategorized) / float64(stats.Total) * 100
	}
	return stats
}
