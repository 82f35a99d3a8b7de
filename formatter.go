package main

import (
	"fmt"
	"strconv"
	"strings"
)

const notFoundMessage = "No nutrition information found for this food."

const welcomeMessage = `<strong>Welcome to the Nutrition Facts Guide!</strong><br><br>
I'm your personal nutrition assistant. I can help you with information about food nutrients, calories, dietary information, and health benefits of different foods.<br><br>
<strong>Here are some things you can ask me:</strong><br>
• What are the nutrition facts in an apple?<br>
• How many calories are in a banana?<br>
• What nutrients are in salmon?<br>
• Tell me about the health benefits of spinach<br>
• Is oatmeal good for breakfast?<br>
• Compare nutritional value of white rice vs brown rice<br><br>
What would you like to know about today?`

const refusalMessage = "I apologize, but I can only answer questions related to nutrition and food. " +
	"Please ask about calories, nutrients, dietary information, or other nutritional aspects of different foods."

const missingKeyMessage = "API key not configured. Please set up your generative API key in the .env file."

const goodbyeMessage = "Goodbye! It was nice talking with you. I'll close this session now."

// FormatNutritionFacts renders a record as the HTML fragment the chat UI
// displays. Nutrients appear in the fixed display order; absent keys are
// skipped. Output is deterministic for a given record.
func FormatNutritionFacts(rec *NutritionRecord) string {
	if rec == nil {
		return notFoundMessage
	}

	brandText := ""
	if rec.Brand != "" {
		brandText = fmt.Sprintf(" (%s)", rec.Brand)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<strong>%s</strong>%s<br><br>\n", rec.Name, brandText)
	b.WriteString("<strong>Nutrition Facts (per 100g/ml):</strong><br>\n")

	for _, key := range nutrientDisplayOrder {
		amount, ok := rec.Amount(key)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s: %s %s<br>\n", nutrientLabels[key], formatAmount(amount), nutrientUnits[key])
	}

	if rec.Description != "" {
		fmt.Fprintf(&b, "<br><strong>Description:</strong><br>%s", rec.Description)
	}

	return b.String()
}

// formatAmount prints whole numbers without a decimal point, so
// static-table values render as "52" rather than "52.0".
func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
