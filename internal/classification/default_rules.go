package classification

import "github.com/Veraticus/jarwise/internal/model"

// DefaultRules returns the built-in keyword table. Order matters: when two rules
// declare the same confidence, the earlier rule wins.
func DefaultRules() []model.CategoryRule {
	return []model.CategoryRule{
		// Food & dining
		{Category: "Food", Confidence: 0.9, Keywords: []string{"restaurant", "cafe", "food", "pizza", "burger", "swiggy", "zomato", "uber eats", "grocery", "supermarket"}},
		{Category: "Food", Confidence: 0.85, Keywords: []string{"breakfast", "lunch", "dinner", "snack", "meal"}},

		// Transport
		{Category: "Transport", Confidence: 0.9, Keywords: []string{"uber", "ola", "taxi", "metro", "bus", "train", "fuel", "petrol", "diesel", "gas"}},
		{Category: "Transport", Confidence: 0.85, Keywords: []string{"parking", "toll", "auto"}},

		// Bills & utilities
		{Category: "Bills", Confidence: 0.95, Keywords: []string{"electricity", "water", "gas bill", "internet", "wifi", "broadband", "mobile bill", "phone bill"}},
		{Category: "Bills", Confidence: 0.8, Keywords: []string{"utility", "maintenance"}},

		// Housing
		{Category: "Rent", Confidence: 0.95, Keywords: []string{"rent", "lease", "housing"}},

		// Entertainment
		{Category: "Entertainment", Confidence: 0.9, Keywords: []string{"movie", "cinema", "netflix", "prime", "spotify", "gaming", "game", "concert", "show"}},
		{Category: "Entertainment", Confidence: 0.7, Keywords: []string{"subscription", "membership"}},

		// Shopping
		{Category: "Shopping", Confidence: 0.85, Keywords: []string{"amazon", "flipkart", "shopping", "clothes", "fashion", "shoes", "electronics"}},
		{Category: "Shopping", Confidence: 0.6, Keywords: []string{"purchase", "bought"}},

		// Healthcare
		{Category: "Healthcare", Confidence: 0.9, Keywords: []string{"doctor", "hospital", "clinic", "medicine", "pharmacy", "medical", "health"}},

		// Loans
		{Category: "EMI", Confidence: 0.95, Keywords: []string{"emi", "loan", "installment", "credit card"}},

		// Income
		{Category: "Salary", Confidence: 0.9, Keywords: []string{"salary", "wage", "payment received", "income", "freelance", "bonus"}},
		{Category: "Other Income", Confidence: 0.6, Keywords: []string{"transfer in", "received"}},
	}
}
