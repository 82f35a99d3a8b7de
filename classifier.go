package main

import "strings"

// FoodClassifier decides whether a message is about nutrition at all, and
// whether it is a greeting. Static keyword hits answer without a remote
// call; everything else is delegated token by token through the cache.
type FoodClassifier struct {
	rules *Rules
	cache *FoodTermCache
}

func NewFoodClassifier(rules *Rules, cache *FoodTermCache) *FoodClassifier {
	return &FoodClassifier{rules: rules, cache: cache}
}

// IsNutritionRelated reports whether the message is in-domain. Checks run
// cheapest first: static keywords, then individual tokens, then adjacent
// bigrams, short-circuiting on the first food hit.
func (fc *FoodClassifier) IsNutritionRelated(message string) bool {
	lower := strings.ToLower(message)

	for _, keyword := range fc.rules.NutritionKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	words := strings.Fields(lower)
	for _, word := range words {
		if len(word) < 3 || fc.rules.IsStopWord(word) {
			continue
		}
		if fc.cache.LookupOrClassify(word) {
			return true
		}
	}

	// Pairs are only skipped when both halves are stop words, so
	// "calories of" still gets tested while "of the" does not.
	if len(words) > 1 {
		for i := 0; i < len(words)-1; i++ {
			if fc.rules.IsStopWord(words[i]) && fc.rules.IsStopWord(words[i+1]) {
				continue
			}
			if fc.cache.LookupOrClassify(words[i] + " " + words[i+1]) {
				return true
			}
		}
	}

	return false
}

// IsGreeting reports whether the message is a greeting. Multi-word
// greetings match anywhere in the message; single-word greetings must
// match a whole token or the entire message, so "hellochocolate" is not
// a greeting.
func (fc *FoodClassifier) IsGreeting(message string) bool {
	lower := strings.ToLower(message)
	words := strings.Fields(lower)

	for _, greeting := range fc.rules.Greetings {
		if greeting == lower {
			return true
		}
		if strings.Contains(greeting, " ") {
			if strings.Contains(lower, greeting) {
				return true
			}
			continue
		}
		for _, word := range words {
			if word == greeting {
				return true
			}
		}
	}
	return false
}
