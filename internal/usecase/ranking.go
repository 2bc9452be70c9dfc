package usecase

import (
	"sort"

	"github.com/phperfect/backend/internal/domain"
)

// Result size bounds
const (
	// TopRecommendations caps the final recommended product list
	TopRecommendations = 10

	// PromptProductCount is how many top products the advice prompt embeds
	PromptProductCount = 3

	// MinCandidateCount is the aggregate candidate threshold below which the
	// default catalog is appended
	MinCandidateCount = 5
)

// Rank sorts enriched products by ascending pH difference and truncates to
// limit. The sort is stable: ties keep their input order, so source order
// remains the tie-break. The input slice is not modified.
func Rank(enriched []domain.EnrichedProduct, limit int) []domain.EnrichedProduct {
	ranked := make([]domain.EnrichedProduct, len(enriched))
	copy(ranked, enriched)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PHDifference < ranked[j].PHDifference
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
