package model

// Classification is the classifier's guess for a description.
type Classification struct {
	Category   string
	Confidence float64
}

// Recategorization proposes a different category for an existing transaction.
type Recategorization struct {
	SuggestedCategory string
	Transaction       Transaction
	Confidence        float64
}

// CategorizationStats summarizes how well stored categories agree with the classifier.
type CategorizationStats struct {
	Total           int
	AutoCategorized int
	Accuracy        float64
}
