package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/phperfect/backend/internal/domain"
)

// Suitability thresholds on pH difference. Strict less-than, checked in
// ascending order; the first matching bucket wins.
const (
	thresholdExcellent = 0.3
	thresholdVeryGood  = 0.7
	thresholdGood      = 1.0
)

// Enrich computes pH distance, a suitability label, and a description for
// each product against the target scalp pH. Products with a missing or
// placeholder name are skipped as a defensive re-check of normalization.
// The input products are never mutated; each EnrichedProduct is a fresh copy.
func Enrich(products []domain.Product, targetPH float64) []domain.EnrichedProduct {
	enriched := make([]domain.EnrichedProduct, 0, len(products))
	for _, product := range products {
		if product.Name == "" || strings.EqualFold(product.Name, "unknown product") {
			continue
		}

		phDifference := math.Abs(product.PHLevel - targetPH)
		enriched = append(enriched, domain.EnrichedProduct{
			Product:      product,
			PHDifference: phDifference,
			Suitability:  suitabilityFor(phDifference),
			Description:  describeProduct(product, targetPH, phDifference),
		})
	}
	return enriched
}

// suitabilityFor buckets a pH difference into one of four tiers
func suitabilityFor(phDifference float64) string {
	switch {
	case phDifference < thresholdExcellent:
		return domain.SuitabilityExcellent
	case phDifference < thresholdVeryGood:
		return domain.SuitabilityVeryGood
	case phDifference < thresholdGood:
		return domain.SuitabilityGood
	default:
		return domain.SuitabilityModerate
	}
}

// scalpCondition derives the scalp-condition label and care need from the
// measured pH. Five disjoint bands cover the whole scale.
func scalpCondition(scalpPH float64) (condition, needs string) {
	switch {
	case scalpPH < 4.5:
		return "dry scalp", "moisturize and restore your scalp's natural barrier"
	case scalpPH > 6.0:
		return "oily scalp", "balance oil production and restore optimal pH"
	case scalpPH >= 5.5:
		return "slightly oily scalp", "gently balance your scalp pH"
	case scalpPH < 5.0:
		return "sensitive scalp", "soothe sensitivity while restoring pH balance"
	default:
		return "balanced scalp", "maintain your healthy scalp pH"
	}
}

// describeProduct generates the recommendation prose for one product
func describeProduct(product domain.Product, scalpPH, phDifference float64) string {
	condition, needs := scalpCondition(scalpPH)

	var effectiveness string
	switch {
	case phDifference < thresholdExcellent:
		effectiveness = "is an ideal pH match"
	case phDifference < thresholdVeryGood:
		effectiveness = "has a very good pH balance"
	case phDifference < thresholdGood:
		effectiveness = "has a suitable pH level"
	default:
		effectiveness = "can help address"
	}

	category := strings.ToLower(product.Category)
	if category == "unknown" || category == "" {
		category = "product"
	}

	var ratingInfo string
	if product.Rating != nil {
		ratingInfo = fmt.Sprintf(" It has a rating of %s stars.", formatFloat(*product.Rating))
	}

	var priceInfo string
	if product.Price != "" && product.Price != domain.PriceNotAvailable {
		priceInfo = fmt.Sprintf(" Available for %s.", product.Price)
	}

	return fmt.Sprintf(
		"This %s %s for your %s with pH %.1f. With a product pH of %s, it can help %s.%s%s",
		category, effectiveness, condition, scalpPH,
		formatFloat(product.PHLevel), needs, ratingInfo, priceInfo,
	)
}

// formatFloat renders a float without trailing zeros (5.5, not 5.50)
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
