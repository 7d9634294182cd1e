package constants

import "strings"

// Category is the classification label assigned to a document.
type Category string

const (
	CapitalCall  Category = "capital_call"
	Distribution Category = "distribution"
	Other        Category = "other"
)

var allCategories = []Category{CapitalCall, Distribution, Other}

func Categories() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps free-form labels to a known category.
func Canonicalize(input string) (Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return Other, false
	}

	synonyms := map[string]Category{
		"call":                CapitalCall,
		"capital call":        CapitalCall,
		"drawdown":            CapitalCall,
		"dist":                Distribution,
		"distribution notice": Distribution,
	}
	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range allCategories {
		if normalized == string(cat) {
			return cat, true
		}
	}
	return Other, false
}
