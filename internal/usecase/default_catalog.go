package usecase

import "github.com/phperfect/backend/internal/domain"

// rating is a helper for optional rating literals
func rating(v float64) *float64 {
	return &v
}

// DefaultCatalog returns the fixed fallback product set used whenever the
// upstream catalogs cannot supply enough candidates. Pure and immutable at
// runtime: it is the pipeline's guarantee of a non-empty product list.
func DefaultCatalog(source string) []domain.Product {
	return []domain.Product{
		{
			ID:          "default-1",
			Name:        "pH Balanced Shampoo",
			Brand:       "Healthy Hair",
			Category:    "Shampoo",
			Ingredients: "Water, Sodium Laureth Sulfate, Cocamidopropyl Betaine, Glycerin, Aloe Vera Extract",
			PHLevel:     5.5,
			Rating:      rating(4.5),
			Price:       "$24.50",
			Source:      source,
		},
		{
			ID:          "default-2",
			Name:        "Moisturizing Conditioner",
			Brand:       "Healthy Hair",
			Category:    "Conditioner",
			Ingredients: "Water, Cetearyl Alcohol, Behentrimonium Chloride, Coconut Oil, Argan Oil",
			PHLevel:     4.5,
			Rating:      rating(4.2),
			Price:       "$26.00",
			Source:      source,
		},
		{
			ID:          "default-3",
			Name:        "Anti-Dandruff Treatment",
			Brand:       "ScalpCare",
			Category:    "Treatment",
			Ingredients: "Water, Salicylic Acid, Zinc Pyrithione, Tea Tree Oil, Aloe Vera",
			PHLevel:     5.0,
			Rating:      rating(4.0),
			Price:       "$32.00",
			Source:      source,
		},
		{
			ID:          "default-4",
			Name:        "Scalp Balancing Serum",
			Brand:       "pHBalance",
			Category:    "Serum",
			Ingredients: "Water, Glycerin, Niacinamide, Panthenol, Hyaluronic Acid",
			PHLevel:     5.2,
			Rating:      rating(4.7),
			Price:       "$38.00",
			Source:      source,
		},
		{
			ID:          "default-5",
			Name:        "Clarifying Shampoo",
			Brand:       "CleanScalp",
			Category:    "Shampoo",
			Ingredients: "Water, Apple Cider Vinegar, Tea Tree Oil, Peppermint Oil",
			PHLevel:     4.8,
			Rating:      rating(4.3),
			Price:       "$22.00",
			Source:      source,
		},
	}
}
