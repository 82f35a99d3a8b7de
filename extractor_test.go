package main

import "testing"

func TestExtractFoodName(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		query string
		want  string
	}{
		{"calories in brown rice", "brown rice"},
		{"nutrition of a Big Mac", "a big mac"},
		{"tell me about couscous", "couscous"},
		{"Chocolate Cake", "chocolate cake"},
		{"burger", "burger"},
		// First preposition wins and the scan stops there.
		{"facts about rice with beans", "rice with beans"},
		// A trailing preposition is not a split point.
		{"what is this about", ""},
		{"miso soup with", "miso soup with"},
		// Too long and no preposition: no confident extraction.
		{"please compare white rice and brown rice", ""},
	}
	for _, tt := range tests {
		if got := ExtractFoodName(rules, tt.query); got != tt.want {
			t.Errorf("ExtractFoodName(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}
