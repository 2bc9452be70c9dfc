package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/phperfect/backend/internal/domain"
	"go.uber.org/zap"
)

// adviceSystemPrompt is the system role string sent with every advice request
const adviceSystemPrompt = "You are a scalp health expert providing personalized hair care advice."

// ingredientPreviewLen is how much ingredient text the prompt embeds per product
const ingredientPreviewLen = 100

// AdviceService builds the recommendation prompt and turns the advice
// provider's free-text response into an advice string. Provider failures
// never propagate: the fallback string is substituted instead.
type AdviceService struct {
	client    domain.AdviceGenerator
	maxTokens int
}

// NewAdviceService creates a new advice service
func NewAdviceService(client domain.AdviceGenerator, maxTokens int) *AdviceService {
	if maxTokens <= 0 {
		maxTokens = 1000
	}
	return &AdviceService{
		client:    client,
		maxTokens: maxTokens,
	}
}

// Advise requests advice text for the given scalp pH, symptoms, and
// top-ranked products. On any provider failure it returns the fixed fallback
// string so the caller can still deliver products.
func (s *AdviceService) Advise(ctx context.Context, scalpPH float64, symptoms []string, top []domain.EnrichedProduct) string {
	prompt := BuildPrompt(scalpPH, symptoms, top)

	advice, err := s.client.GenerateAdvice(ctx, adviceSystemPrompt, prompt, s.maxTokens)
	if err != nil {
		zap.L().Warn("advice generation failed, using fallback",
			zap.Float64("scalp_ph", scalpPH), zap.Error(err))
		return domain.FallbackAdvice
	}

	return advice
}

// BuildPrompt creates the advice prompt from the scalp pH, reported symptoms,
// and up to three top-ranked products. The prompt explicitly forbids the
// model from proposing its own product list; the system supplies that
// separately, and a second list would conflict with it.
func BuildPrompt(scalpPH float64, symptoms []string, products []domain.EnrichedProduct) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The user has a scalp pH of %s, which indicates a %s.\n",
		formatFloat(scalpPH), promptCondition(scalpPH))

	if len(symptoms) > 0 {
		fmt.Fprintf(&b, "\nThey report the following symptoms: %s.\n", strings.Join(symptoms, ", "))
	}

	b.WriteString("\nBased on their scalp pH, these are some recommended products we found from our database:\n")

	if len(products) > PromptProductCount {
		products = products[:PromptProductCount]
	}
	for i, product := range products {
		var ratingInfo string
		if product.Rating != nil {
			ratingInfo = fmt.Sprintf(" | Rating: %s stars", formatFloat(*product.Rating))
		}
		var priceInfo string
		if product.Price != "" && product.Price != domain.PriceNotAvailable {
			priceInfo = fmt.Sprintf(" | Price: %s", product.Price)
		}

		fmt.Fprintf(&b, "\n%d. %s by %s (pH: %s) - Source: %s%s%s\n",
			i+1, product.Name, product.Brand, formatFloat(product.PHLevel),
			product.Source, ratingInfo, priceInfo)
		fmt.Fprintf(&b, "   Description: %s with ingredients: %s...\n",
			product.Category, ingredientPreview(product.Ingredients))
	}

	b.WriteString(`
Please provide:

1. A brief explanation of what this scalp pH means for their hair health.

2. A concise overview of why the products from our database are suitable for this pH level and symptoms.

3. General recommendations for hair care routines based on this scalp pH.

4. Tips for effectively using hair products with this scalp pH.

Format your response to be conversational and informative. Do NOT list additional specific product recommendations - we will present our own product list to the user separately.
`)

	return b.String()
}

// promptCondition derives the condition label embedded in the prompt.
// Same five bands as the description generator, worded for the model.
func promptCondition(scalpPH float64) string {
	switch {
	case scalpPH < 4.5:
		return "dry and potentially irritated scalp"
	case scalpPH > 6.0:
		return "oily scalp"
	case scalpPH >= 5.5:
		return "slightly oily scalp"
	case scalpPH < 5.0:
		return "sensitive scalp"
	default:
		return "balanced scalp"
	}
}

// ingredientPreview truncates ingredient text to the prompt budget,
// respecting rune boundaries
func ingredientPreview(ingredients string) string {
	runes := []rune(ingredients)
	if len(runes) <= ingredientPreviewLen {
		return ingredients
	}
	return string(runes[:ingredientPreviewLen])
}
