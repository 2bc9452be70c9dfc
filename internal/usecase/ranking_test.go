package usecase

import (
	"testing"

	"github.com/phperfect/backend/internal/domain"
)

func enrichedWith(name string, diff float64) domain.EnrichedProduct {
	return domain.EnrichedProduct{
		Product:      domain.Product{Name: name},
		PHDifference: diff,
	}
}

func TestRank(t *testing.T) {
	t.Run("sorts by ascending pH difference", func(t *testing.T) {
		input := []domain.EnrichedProduct{
			enrichedWith("far", 1.2),
			enrichedWith("close", 0.1),
			enrichedWith("mid", 0.6),
		}

		ranked := Rank(input, TopRecommendations)

		wantOrder := []string{"close", "mid", "far"}
		for i, want := range wantOrder {
			if ranked[i].Name != want {
				t.Errorf("ranked[%d] = %q, want %q", i, ranked[i].Name, want)
			}
		}
	})

	t.Run("ties keep input order", func(t *testing.T) {
		input := []domain.EnrichedProduct{
			enrichedWith("first", 0.5),
			enrichedWith("second", 0.5),
			enrichedWith("third", 0.5),
		}

		ranked := Rank(input, TopRecommendations)

		wantOrder := []string{"first", "second", "third"}
		for i, want := range wantOrder {
			if ranked[i].Name != want {
				t.Errorf("ranked[%d] = %q, want %q", i, ranked[i].Name, want)
			}
		}
	})

	t.Run("truncates to limit", func(t *testing.T) {
		var input []domain.EnrichedProduct
		for i := 0; i < 15; i++ {
			input = append(input, enrichedWith("p", float64(i)))
		}

		ranked := Rank(input, TopRecommendations)
		if len(ranked) != TopRecommendations {
			t.Errorf("Rank() length = %d, want %d", len(ranked), TopRecommendations)
		}
	})

	t.Run("limit above length keeps everything", func(t *testing.T) {
		input := []domain.EnrichedProduct{
			enrichedWith("a", 0.1),
			enrichedWith("b", 0.2),
		}

		ranked := Rank(input, TopRecommendations)
		if len(ranked) != 2 {
			t.Errorf("Rank() length = %d, want 2", len(ranked))
		}
	})

	t.Run("does not modify the input slice", func(t *testing.T) {
		input := []domain.EnrichedProduct{
			enrichedWith("far", 2.0),
			enrichedWith("close", 0.1),
		}

		_ = Rank(input, TopRecommendations)

		if input[0].Name != "far" || input[1].Name != "close" {
			t.Errorf("input order changed: %q, %q", input[0].Name, input[1].Name)
		}
	})
}
