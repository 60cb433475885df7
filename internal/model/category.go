package model

import "strings"

// Well-known category labels used by the analytics rules.
const (
	CategoryOther         = "Other"
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryBills         = "Bills"
	CategoryRent          = "Rent"
	CategoryEntertainment = "Entertainment"
	CategoryShopping      = "Shopping"
	CategoryEMI           = "EMI"
	CategorySubscription  = "Subscription"
)

// Well-known jar names.
const (
	JarRent      = "Rent"
	JarBills     = "Bills"
	JarSavings   = "Savings"
	JarEmergency = "Emergency"
)

// fixedCategories are compared case-insensitively.
var fixedCategories = map[string]bool{
	"rent":         true,
	"emi":          true,
	"bills":        true,
	"subscription": true,
}

// IsFixedCategory reports whether spending in the category counts as a fixed expense.
func IsFixedCategory(category string) bool {
	return fixedCategories[strings.ToLower(category)]
}

// DiscretionaryReductionCategories are the categories eligible for spending-cut suggestions.
var DiscretionaryReductionCategories = []string{CategoryEntertainment, CategoryShopping, CategoryFood}

// EssentialPlanCategories receive the essential share of the weekly plan.
var EssentialPlanCategories = []string{CategoryFood, CategoryTransport, CategoryBills}

// DiscretionaryPlanCategories receive the discretionary share of the weekly plan.
var DiscretionaryPlanCategories = []string{CategoryEntertainment, CategoryShopping}

// Contains reports whether name is present in categories.
func Contains(categories []string, name string) bool {
	for _, c := range categories {
		if c == name {
			return true
		}
	}
	return false
}
