package usecase

import (
	"strings"
	"testing"

	"github.com/phperfect/backend/internal/domain"
)

func TestEnrich(t *testing.T) {
	t.Run("computes pH difference and suitability", func(t *testing.T) {
		products := []domain.Product{
			{Name: "Ideal Match", PHLevel: 5.25},
			{Name: "Very Good Match", PHLevel: 5.5},
			{Name: "Good Match", PHLevel: 5.75},
			{Name: "Moderate Match", PHLevel: 6.0},
		}

		enriched := Enrich(products, 5.0)
		if len(enriched) != 4 {
			t.Fatalf("Enrich() returned %d products, want 4", len(enriched))
		}

		wants := []struct {
			diff        float64
			suitability string
		}{
			{0.25, domain.SuitabilityExcellent},
			{0.5, domain.SuitabilityVeryGood},
			{0.75, domain.SuitabilityGood},
			{1.0, domain.SuitabilityModerate},
		}

		for i, want := range wants {
			if enriched[i].PHDifference != want.diff {
				t.Errorf("product %d: PHDifference = %v, want %v", i, enriched[i].PHDifference, want.diff)
			}
			if enriched[i].Suitability != want.suitability {
				t.Errorf("product %d: Suitability = %q, want %q", i, enriched[i].Suitability, want.suitability)
			}
		}
	})

	t.Run("difference is absolute", func(t *testing.T) {
		products := []domain.Product{
			{Name: "Below Target", PHLevel: 4.5},
			{Name: "Above Target", PHLevel: 6.5},
		}

		enriched := Enrich(products, 5.5)
		if len(enriched) != 2 {
			t.Fatalf("Enrich() returned %d products, want 2", len(enriched))
		}
		if enriched[0].PHDifference != 1.0 || enriched[1].PHDifference != 1.0 {
			t.Errorf("PHDifference = %v and %v, want 1.0 for both",
				enriched[0].PHDifference, enriched[1].PHDifference)
		}
	})

	t.Run("skips unnamed and placeholder products", func(t *testing.T) {
		products := []domain.Product{
			{Name: "", PHLevel: 5.5},
			{Name: "Unknown Product", PHLevel: 5.5},
			{Name: "unknown product", PHLevel: 5.5},
			{Name: "Real Shampoo", PHLevel: 5.5},
		}

		enriched := Enrich(products, 5.5)
		if len(enriched) != 1 {
			t.Fatalf("Enrich() returned %d products, want 1", len(enriched))
		}
		if enriched[0].Name != "Real Shampoo" {
			t.Errorf("kept product = %q, want Real Shampoo", enriched[0].Name)
		}
	})

	t.Run("does not mutate input products", func(t *testing.T) {
		products := []domain.Product{{Name: "Shampoo", Brand: "Brandy", PHLevel: 5.5}}

		enriched := Enrich(products, 5.0)
		enriched[0].Name = "Changed"
		enriched[0].PHDifference = 99

		if products[0].Name != "Shampoo" {
			t.Errorf("input product mutated: Name = %q", products[0].Name)
		}
	})

	t.Run("empty input yields empty non-nil slice", func(t *testing.T) {
		enriched := Enrich(nil, 5.5)
		if enriched == nil {
			t.Fatal("Enrich() = nil, want empty slice")
		}
		if len(enriched) != 0 {
			t.Errorf("Enrich() length = %d, want 0", len(enriched))
		}
	})
}

func TestScalpCondition(t *testing.T) {
	tests := []struct {
		name          string
		scalpPH       float64
		wantCondition string
	}{
		{"very acidic is dry", 4.0, "dry scalp"},
		{"just below dry boundary", 4.4, "dry scalp"},
		{"high pH is oily", 6.5, "oily scalp"},
		{"upper-mid band is slightly oily", 5.7, "slightly oily scalp"},
		{"boundary 5.5 is slightly oily", 5.5, "slightly oily scalp"},
		{"low-mid band is sensitive", 4.7, "sensitive scalp"},
		{"center band is balanced", 5.2, "balanced scalp"},
		{"boundary 6.0 is balanced band", 6.0, "balanced scalp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			condition, needs := scalpCondition(tt.scalpPH)
			if condition != tt.wantCondition {
				t.Errorf("scalpCondition(%v) condition = %q, want %q", tt.scalpPH, condition, tt.wantCondition)
			}
			if needs == "" {
				t.Errorf("scalpCondition(%v) needs = empty, want non-empty", tt.scalpPH)
			}
		})
	}
}

func TestDescribeProduct(t *testing.T) {
	t.Run("includes rating and price when present", func(t *testing.T) {
		product := domain.Product{
			Name:     "Balancing Shampoo",
			Category: "Shampoo",
			PHLevel:  5.5,
			Rating:   rating(4.5),
			Price:    "$24.50",
		}

		desc := describeProduct(product, 5.5, 0.0)

		if !strings.Contains(desc, "This shampoo is an ideal pH match") {
			t.Errorf("description missing ideal-match phrasing: %q", desc)
		}
		if !strings.Contains(desc, "rating of 4.5 stars") {
			t.Errorf("description missing rating: %q", desc)
		}
		if !strings.Contains(desc, "Available for $24.50") {
			t.Errorf("description missing price: %q", desc)
		}
	})

	t.Run("omits rating and sentinel price", func(t *testing.T) {
		product := domain.Product{
			Name:     "Mystery Rinse",
			Category: "unknown",
			PHLevel:  5.5,
			Price:    domain.PriceNotAvailable,
		}

		desc := describeProduct(product, 5.5, 0.5)

		if strings.Contains(desc, "rating") {
			t.Errorf("description should not mention rating: %q", desc)
		}
		if strings.Contains(desc, "Available for") {
			t.Errorf("description should not mention price: %q", desc)
		}
		// Unknown category reads as a generic product
		if !strings.Contains(desc, "This product") {
			t.Errorf("description should use generic category: %q", desc)
		}
	})
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{5.5, "5.5"},
		{5.0, "5"},
		{4.75, "4.75"},
	}

	for _, tt := range tests {
		if got := formatFloat(tt.value); got != tt.want {
			t.Errorf("formatFloat(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
