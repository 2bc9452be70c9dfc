package sephora

import (
	"encoding/json"
	"strings"

	"github.com/phperfect/backend/internal/domain"
)

// SearchResponse covers the envelope variants the Sephora API has been
// observed returning: a top-level products array, a data wrapper, or items.
type SearchResponse struct {
	Products []json.RawMessage `json:"products"`
	Items    []json.RawMessage `json:"items"`
	Data     *struct {
		Products []json.RawMessage `json:"products"`
	} `json:"data"`
}

// Records returns whichever product array the response carried
func (r *SearchResponse) Records() []json.RawMessage {
	switch {
	case len(r.Products) > 0:
		return r.Products
	case r.Data != nil && len(r.Data.Products) > 0:
		return r.Data.Products
	default:
		return r.Items
	}
}

// RawProduct is a loosely structured Sephora record. Optional and nested
// fields are pointers or raw JSON so absence and shape mismatches are
// explicit rather than guessed at.
type RawProduct struct {
	ProductID   string   `json:"productId"`
	AltID       string   `json:"id"`
	DisplayName string   `json:"displayName"`
	AltName     string   `json:"name"`
	BrandName   string   `json:"brandName"`
	AltBrand    string   `json:"brand"`
	ProductType string   `json:"productType"`
	Rating      *float64 `json:"rating"`
	Reviews     *struct {
		Rating *float64 `json:"rating"`
	} `json:"reviews"`
	CurrentSku *struct {
		ListPrice string `json:"listPrice"`
	} `json:"currentSku"`
	HeroImage *struct {
		ImageURL string `json:"imageUrl"`
	} `json:"heroImage"`
	ImageURL string          `json:"imageUrl"`
	Image    json.RawMessage `json:"image"`

	Ingredients       string `json:"ingredients"`
	IngredientsList   string `json:"ingredientsList"`
	IngredientListAlt string `json:"ingredient_list"`
	LongDescription   string `json:"longDescription"`
	ShortDescription  string `json:"shortDescription"`
	Description       string `json:"description"`
}

// categoryRule maps a product keyword to its category and typical pH.
// Checked in order; first match wins.
var categoryRules = []struct {
	keyword  string
	category string
	ph       float64
}{
	{"shampoo", "Shampoo", 5.5},
	{"conditioner", "Conditioner", 4.5},
	{"treatment", "Treatment", 5.0},
	{"mask", "Mask", 5.0},
	{"oil", "Oil", 5.0},
	{"serum", "Serum", 5.0},
}

// Normalize converts a raw Sephora record into a canonical Product. The
// original search query refines pH estimation for scalp-care items.
// Returns false when the record must be discarded.
func Normalize(raw RawProduct, query string) (domain.Product, bool) {
	name := strings.TrimSpace(firstNonEmpty(raw.DisplayName, raw.AltName))
	if name == "" || strings.EqualFold(name, "unknown product") {
		return domain.Product{}, false
	}

	brand := firstNonEmpty(raw.BrandName, raw.AltBrand)
	if brand == "" {
		brand = domain.UnknownBrand
	}

	category, phLevel := Categorize(name, raw.ProductType, query)

	price := domain.PriceNotAvailable
	if raw.CurrentSku != nil && raw.CurrentSku.ListPrice != "" {
		price = raw.CurrentSku.ListPrice
	}

	return domain.Product{
		ID:          firstNonEmpty(raw.ProductID, raw.AltID),
		Name:        name,
		Brand:       brand,
		Category:    category,
		Ingredients: extractIngredients(raw),
		PHLevel:     phLevel,
		ImageURL:    extractImageURL(raw),
		Rating:      extractRating(raw),
		Price:       price,
		Source:      domain.SourceSephora,
	}, true
}

// Categorize determines a product's category and estimated pH from its name,
// declared type, and the search query that produced it. Scalp-care pH is
// refined by oily/dry/dandruff keywords; the query wins over name and type
// when both carry one.
func Categorize(name, productType, query string) (string, float64) {
	nameLower := strings.ToLower(name)
	typeLower := strings.ToLower(productType)

	// Default category and pH for hair products
	category := "Hair Care"
	phLevel := 5.5

	matched := false
	for _, rule := range categoryRules {
		if strings.Contains(nameLower, rule.keyword) || strings.Contains(typeLower, rule.keyword) {
			category = rule.category
			phLevel = rule.ph
			matched = true
			break
		}
	}

	if !matched && (strings.Contains(nameLower, "scalp") || strings.Contains(typeLower, "scalp")) {
		category = "Scalp Care"

		// Further refinement for scalp products
		switch {
		case strings.Contains(nameLower, "oily") || strings.Contains(typeLower, "oily"):
			phLevel = 5.0
		case strings.Contains(nameLower, "dry") || strings.Contains(typeLower, "dry"):
			phLevel = 5.8
		case strings.Contains(nameLower, "dandruff") || strings.Contains(typeLower, "dandruff"):
			phLevel = 5.2
		}
	}

	// The original query provides stronger context than product wording
	if query != "" && category == "Scalp Care" {
		queryLower := strings.ToLower(query)
		switch {
		case strings.Contains(queryLower, "oily"):
			phLevel = 5.0
		case strings.Contains(queryLower, "dry"):
			phLevel = 5.8
		case strings.Contains(queryLower, "dandruff"):
			phLevel = 5.2
		}
	}

	return category, phLevel
}

// extractIngredients checks the dedicated ingredient fields in order, then
// falls back to description fields that mention ingredients, then to the
// sentinel value.
func extractIngredients(raw RawProduct) string {
	for _, field := range []string{raw.Ingredients, raw.IngredientsList, raw.IngredientListAlt} {
		if field != "" {
			return field
		}
	}

	for _, desc := range []string{raw.LongDescription, raw.ShortDescription, raw.Description} {
		if desc != "" && strings.Contains(strings.ToLower(desc), "ingredient") {
			return desc
		}
	}

	return domain.IngredientsNotAvailable
}

// extractImageURL resolves the image URL from the hero-image object, the flat
// field, or an image field that may be an object or a plain string
func extractImageURL(raw RawProduct) string {
	if raw.HeroImage != nil && raw.HeroImage.ImageURL != "" {
		return raw.HeroImage.ImageURL
	}

	if raw.ImageURL != "" {
		return raw.ImageURL
	}

	if len(raw.Image) > 0 {
		var obj struct {
			URL string `json:"url"`
		}
		if err := json.Unmarshal(raw.Image, &obj); err == nil && obj.URL != "" {
			return obj.URL
		}

		var plain string
		if err := json.Unmarshal(raw.Image, &plain); err == nil {
			return plain
		}
	}

	return ""
}

// firstNonEmpty returns the first non-empty string of the pair
func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// extractRating prefers the top-level rating over the nested reviews rating
func extractRating(raw RawProduct) *float64 {
	if raw.Rating != nil {
		return raw.Rating
	}
	if raw.Reviews != nil {
		return raw.Reviews.Rating
	}
	return nil
}
