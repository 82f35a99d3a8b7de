package main

import "strings"

// Nutrient keys shared by the static table, the Spoonacular normalization
// rules, and the formatter display order.
const (
	NutrientCalories     = "calories"
	NutrientFat          = "fat"
	NutrientSaturatedFat = "saturated_fat"
	NutrientCarbs        = "carbs"
	NutrientSugars       = "sugars"
	NutrientProtein      = "protein"
	NutrientFiber        = "fiber"
	NutrientSodium       = "sodium"
	NutrientCalcium      = "calcium"
	NutrientMagnesium    = "magnesium"
)

// nutrientDisplayOrder is the fixed order nutrients are rendered in.
var nutrientDisplayOrder = []string{
	NutrientCalories,
	NutrientFat,
	NutrientSaturatedFat,
	NutrientCarbs,
	NutrientSugars,
	NutrientProtein,
	NutrientFiber,
	NutrientSodium,
	NutrientCalcium,
	NutrientMagnesium,
}

var nutrientLabels = map[string]string{
	NutrientCalories:     "Calories",
	NutrientFat:          "Fat",
	NutrientSaturatedFat: "Saturated Fat",
	NutrientCarbs:        "Carbohydrates",
	NutrientSugars:       "Sugars",
	NutrientProtein:      "Proteins",
	NutrientFiber:        "Fiber",
	NutrientSodium:       "Sodium",
	NutrientCalcium:      "Calcium",
	NutrientMagnesium:    "Magnesium",
}

var nutrientUnits = map[string]string{
	NutrientCalories:     "kcal",
	NutrientFat:          "g",
	NutrientSaturatedFat: "g",
	NutrientCarbs:        "g",
	NutrientSugars:       "g",
	NutrientProtein:      "g",
	NutrientFiber:        "g",
	NutrientSodium:       "mg",
	NutrientCalcium:      "mg",
	NutrientMagnesium:    "mg",
}

// NutritionRecord is one resolved food entry. Name is always non-empty.
// Nutrients holds only the keys that are actually known; amounts are per
// 100g/ml and non-negative. Records are never mutated after construction.
type NutritionRecord struct {
	Name        string
	Brand       string
	Nutrients   map[string]float64
	Description string
}

// Amount returns the amount for a nutrient key and whether it is present.
func (r *NutritionRecord) Amount(key string) (float64, bool) {
	v, ok := r.Nutrients[key]
	return v, ok
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
