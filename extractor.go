package main

import "strings"

// ExtractFoodName pulls a candidate food name out of a free-text query.
// The first preposition that is not the final token wins: everything
// after it is the candidate ("calories in brown rice" -> "brown rice").
// With no preposition, a query of up to three tokens is assumed to be the
// food itself. Returns "" when there is no confident extraction.
func ExtractFoodName(rules *Rules, query string) string {
	lower := strings.ToLower(query)
	words := strings.Fields(lower)

	for i, word := range words {
		if rules.IsPreposition(word) && i < len(words)-1 {
			return strings.Join(words[i+1:], " ")
		}
	}

	if len(words) <= 3 {
		return lower
	}
	return ""
}
