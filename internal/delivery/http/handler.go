package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phperfect/backend/internal/domain"
)

// Recommender is the slice of the recommendation service the handlers need
type Recommender interface {
	Recommend(ctx context.Context, scalpPH float64, symptoms []string) (*domain.RecommendationResult, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recommender Recommender
}

// NewHandler creates a new HTTP handler
func NewHandler(recommender Recommender) *Handler {
	return &Handler{recommender: recommender}
}

// recommendationRequest is the POST /recommendations body. ScalpPH is a
// pointer so a missing field can default to 5.5 instead of 0.
type recommendationRequest struct {
	ScalpPH  *float64 `json:"scalp_ph"`
	Symptoms []string `json:"symptoms"`
}

// defaultScalpPH is assumed when the request omits a measurement
const defaultScalpPH = 5.5

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "phperfect-backend",
		"version": "1.0.0",
	})
}

// GetRecommendations handles recommendation requests
func (h *Handler) GetRecommendations(c *gin.Context) {
	if h.recommender == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Recommendation service not available",
		})
		return
	}

	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	scalpPH := defaultScalpPH
	if req.ScalpPH != nil {
		scalpPH = *req.ScalpPH
	}
	if scalpPH < 0 || scalpPH > 14 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("scalp_ph must be between 0 and 14, got %g", scalpPH),
		})
		return
	}

	symptoms := req.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}

	result, err := h.recommender.Recommend(c.Request.Context(), scalpPH, symptoms)
	if err != nil {
		// The service still returns a best-effort result on failure; ship it
		// alongside the error so the client always has products to show.
		if result == nil {
			result = &domain.RecommendationResult{
				AdviceText:          domain.FallbackAdvice,
				RecommendedProducts: []domain.EnrichedProduct{},
				ScalpPH:             scalpPH,
				Symptoms:            symptoms,
			}
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":                err.Error(),
			"advice_text":          result.AdviceText,
			"recommended_products": result.RecommendedProducts,
			"scalp_ph":             result.ScalpPH,
			"symptoms":             result.Symptoms,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
