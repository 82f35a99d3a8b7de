package main

import (
	"strings"
	"testing"
)

func TestFormatNutritionFactsApple(t *testing.T) {
	rec := DefaultNutritionTable().Get("apple")
	got := FormatNutritionFacts(rec)

	if !strings.Contains(got, "<strong>Apple</strong>") {
		t.Fatalf("expected name heading, got:\n%s", got)
	}
	if !strings.Contains(got, "Nutrition Facts (per 100g/ml):") {
		t.Fatalf("expected facts header, got:\n%s", got)
	}
	if !strings.Contains(got, "Calories: 52 kcal") {
		t.Fatalf("expected calories line, got:\n%s", got)
	}
	if !strings.Contains(got, "Fat: 0.2 g") {
		t.Fatalf("expected fat line, got:\n%s", got)
	}
	// Apple has no sodium entry, so no sodium line may appear.
	if strings.Contains(got, "Sodium:") {
		t.Fatalf("expected absent nutrients to be skipped, got:\n%s", got)
	}
	if !strings.Contains(got, "<strong>Description:</strong>") {
		t.Fatalf("expected description block, got:\n%s", got)
	}
}

func TestFormatNutritionFactsBrandAndOrder(t *testing.T) {
	rec := DefaultNutritionTable().Get("sidi ali")
	got := FormatNutritionFacts(rec)

	if !strings.Contains(got, "<strong>Sidi Ali Mineral Water</strong> (Sidi Ali)") {
		t.Fatalf("expected brand in parentheses, got:\n%s", got)
	}

	// Display order is fixed: sodium before calcium before magnesium.
	sodium := strings.Index(got, "Sodium: 0.5 mg")
	calcium := strings.Index(got, "Calcium: 4.2 mg")
	magnesium := strings.Index(got, "Magnesium: 1.3 mg")
	if sodium < 0 || calcium < 0 || magnesium < 0 {
		t.Fatalf("expected all mineral lines, got:\n%s", got)
	}
	if !(sodium < calcium && calcium < magnesium) {
		t.Fatalf("expected fixed display order, got:\n%s", got)
	}
}

func TestFormatNutritionFactsDeterministic(t *testing.T) {
	rec := DefaultNutritionTable().Get("banana")
	first := FormatNutritionFacts(rec)
	for i := 0; i < 5; i++ {
		if FormatNutritionFacts(rec) != first {
			t.Fatal("expected deterministic output for the same record")
		}
	}
}

func TestFormatNutritionFactsNil(t *testing.T) {
	if got := FormatNutritionFacts(nil); got != notFoundMessage {
		t.Fatalf("expected not-found message, got %q", got)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{52, "52"},
		{0, "0"},
		{0.2, "0.2"},
		{2.4, "2.4"},
		{89.5, "89.5"},
	}
	for _, tt := range tests {
		if got := formatAmount(tt.in); got != tt.want {
			t.Errorf("formatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
