package domain

// Source tags identifying which upstream catalog produced a record
const (
	SourceOpenBeauty = "OpenBeauty"
	SourceSephora    = "Sephora"
	SourceDefault    = "Default"
)

// Sentinel display values used when upstream data is missing.
// Named constants so comparisons never rely on scattered literals.
const (
	IngredientsNotAvailable = "Ingredients not available"
	PriceNotAvailable       = "Price not available"
	UnknownBrand            = "Unknown Brand"
)

// FallbackAdvice replaces generated advice when the advice provider fails.
// Product delivery is never blocked by an advice failure.
const FallbackAdvice = "Unable to generate additional recommendations."

// Suitability labels bucketing pH difference into four tiers
const (
	SuitabilityExcellent = "Excellent match"
	SuitabilityVeryGood  = "Very good match"
	SuitabilityGood      = "Good match"
	SuitabilityModerate  = "Moderate match"
)

// Product is the canonical, source-agnostic product record produced by the
// per-source normalizers. Every Product handed to enrichment has a non-empty
// Name and a numeric PHLevel.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Ingredients string   `json:"ingredients"`
	PHLevel     float64  `json:"ph_level"`
	ImageURL    string   `json:"image_url"`
	Rating      *float64 `json:"rating,omitempty"`
	Price       string   `json:"price,omitempty"`
	Source      string   `json:"source"`
}

// EnrichedProduct layers pH scoring on top of a Product. Instances are built
// fresh by the enrichment engine; the source Product is never mutated.
type EnrichedProduct struct {
	Product
	PHDifference float64 `json:"ph_difference"`
	Suitability  string  `json:"suitability"`
	Description  string  `json:"description"`
}

// RecommendationResult is the final payload returned to the caller.
// JSON field names match the original mobile-client wire format.
type RecommendationResult struct {
	AdviceText          string            `json:"advice_text"`
	RecommendedProducts []EnrichedProduct `json:"recommended_products"`
	ScalpPH             float64           `json:"scalp_ph"`
	Symptoms            []string          `json:"symptoms"`
}
