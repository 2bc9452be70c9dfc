package openbeauty

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/phperfect/backend/internal/domain"
)

// SearchResponse is the Open Beauty Facts search envelope. Records are kept
// raw so one malformed record cannot abort decoding of the whole batch.
type SearchResponse struct {
	Products []json.RawMessage `json:"products"`
	Count    int               `json:"count"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// RawProduct is a loosely structured Open Beauty Facts record. Fields that
// vary in shape upstream are held as json.RawMessage and resolved with
// explicit presence checks.
type RawProduct struct {
	ID              string          `json:"_id"`
	ProductName     string          `json:"product_name"`
	GenericName     string          `json:"generic_name"`
	Brands          string          `json:"brands"`
	Categories      string          `json:"categories"`
	CategoriesTags  []string        `json:"categories_tags"`
	IngredientsText string          `json:"ingredients_text"`
	PH              json.RawMessage `json:"ph"`
	ImageURL        string          `json:"image_url"`
}

// Physically plausible pH range accepted from free text
const (
	minPlausiblePH = 3.0
	maxPlausiblePH = 8.0
	defaultPH      = 5.5
)

// phPatterns match pH mentions like "pH 5.5", "pH balanced (5.5)",
// "pH level of 4.5". Checked in order; first in-range value wins.
var phPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)pH\s*?(\d+\.?\d*)`),
	regexp.MustCompile(`(?i)pH\s+balance.*?(\d+\.?\d*)`),
	regexp.MustCompile(`(?i)pH\s+level.*?(\d+\.?\d*)`),
}

// categoryPH maps category keywords to typical product pH values
var categoryPH = []struct {
	keyword string
	ph      float64
}{
	{"shampoo", 5.5},
	{"conditioner", 4.5},
	{"hair mask", 4.8},
	{"treatment", 5.0},
	{"oil", 5.0},
	{"serum", 5.0},
	{"spray", 5.5},
}

// Normalize converts a raw Open Beauty Facts record into a canonical Product.
// Returns false when the record must be discarded (empty or placeholder name).
func Normalize(raw RawProduct) (domain.Product, bool) {
	name := strings.TrimSpace(raw.ProductName)
	if name == "" || strings.EqualFold(name, "unknown product") {
		return domain.Product{}, false
	}

	brand := raw.Brands
	if brand == "" {
		brand = domain.UnknownBrand
	}

	ingredients := raw.IngredientsText
	if ingredients == "" {
		ingredients = domain.IngredientsNotAvailable
	}

	return domain.Product{
		ID:          raw.ID,
		Name:        name,
		Brand:       brand,
		Category:    extractCategory(raw),
		Ingredients: ingredients,
		PHLevel:     extractPHLevel(raw),
		ImageURL:    raw.ImageURL,
		Price:       domain.PriceNotAvailable,
		Source:      domain.SourceOpenBeauty,
	}, true
}

// extractCategory takes the first category tag, stripping the language prefix
func extractCategory(raw RawProduct) string {
	if len(raw.CategoriesTags) > 0 {
		return strings.TrimPrefix(raw.CategoriesTags[0], "en:")
	}
	return "unknown"
}

// extractPHLevel resolves a product's pH using the fallback chain:
// explicit field, free-text scan, category estimate, default.
func extractPHLevel(raw RawProduct) float64 {
	if ph, ok := parseExplicitPH(raw.PH); ok {
		return ph
	}

	for _, text := range []string{raw.ProductName, raw.GenericName, raw.IngredientsText} {
		if text == "" {
			continue
		}
		if ph, ok := findPHInText(text); ok {
			return ph
		}
	}

	return estimatePHByCategory(raw)
}

// parseExplicitPH accepts the upstream "ph" field as either a JSON number or
// a numeric string
func parseExplicitPH(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return num, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if num, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return num, true
		}
	}

	return 0, false
}

// findPHInText scans free text for a pH mention in the plausible range
func findPHInText(text string) (float64, bool) {
	for _, pattern := range phPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		if value >= minPlausiblePH && value <= maxPlausiblePH {
			return value, true
		}
	}
	return 0, false
}

// estimatePHByCategory estimates pH from the record's category strings,
// falling back to the hair-product average
func estimatePHByCategory(raw RawProduct) float64 {
	var categories []string
	if raw.Categories != "" {
		categories = append(categories, strings.ToLower(raw.Categories))
	}
	for _, tag := range raw.CategoriesTags {
		categories = append(categories, strings.ToLower(strings.TrimPrefix(tag, "en:")))
	}

	for _, category := range categories {
		for _, entry := range categoryPH {
			if strings.Contains(category, entry.keyword) {
				return entry.ph
			}
		}
	}

	return defaultPH
}
