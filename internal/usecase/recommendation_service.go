package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/phperfect/backend/internal/domain"
	"go.uber.org/zap"
)

// Fixed-category pull and per-query result counts for candidate collection
const (
	beautyCategory = "shampoo"
	beautyCount    = 3
	sephoraCount   = 3
	symptomCount   = 2
)

// symptomQueries maps recognized symptom keywords to targeted catalog
// queries. Checked in order against each reported symptom.
var symptomQueries = []struct {
	keyword string
	query   string
}{
	{"dandruff", "dandruff shampoo"},
	{"dryness", "dry scalp treatment"},
	{"itchiness", "itchy scalp relief"},
}

// RecommendationServiceConfig holds configuration for the recommendation service
type RecommendationServiceConfig struct {
	CacheTTL time.Duration

	// SavePath, when set, persists every completed result to this file
	SavePath string
}

// RecommendationService orchestrates the full pipeline: collect candidates
// from the catalogs, enrich and rank them against the target pH, and attach
// generated advice. Fallback is applied at every stage that can fail, so the
// returned payload is always structurally valid.
type RecommendationService struct {
	cache    domain.CacheRepository
	beauty   domain.CategoryCatalog
	sephora  domain.QueryCatalog
	advice   *AdviceService
	cacheTTL time.Duration
	savePath string
}

// NewRecommendationService creates a new recommendation service with dependencies
func NewRecommendationService(
	cache domain.CacheRepository,
	beauty domain.CategoryCatalog,
	sephora domain.QueryCatalog,
	advice *AdviceService,
	config RecommendationServiceConfig,
) *RecommendationService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}

	return &RecommendationService{
		cache:    cache,
		beauty:   beauty,
		sephora:  sephora,
		advice:   advice,
		cacheTTL: cacheTTL,
		savePath: config.SavePath,
	}
}

// Recommend runs one recommendation request to completion. A failure in any
// single upstream fetch degrades to omitting that source's contribution; the
// default catalog backstops a thin candidate pool; an advice failure is
// substituted with the fallback string. Only an unexpected panic turns the
// call into an error, and even then the returned result carries a
// best-effort product list.
func (s *RecommendationService) Recommend(ctx context.Context, scalpPH float64, symptoms []string) (result *domain.RecommendationResult, err error) {
	var enriched []domain.EnrichedProduct

	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("recommendation pipeline panicked", zap.Any("panic", r))

			partial := enriched
			if len(partial) == 0 {
				partial = Enrich(DefaultCatalog(domain.SourceDefault), scalpPH)
			}
			result = &domain.RecommendationResult{
				AdviceText:          domain.FallbackAdvice,
				RecommendedProducts: Rank(partial, TopRecommendations),
				ScalpPH:             scalpPH,
				Symptoms:            symptoms,
			}
			err = fmt.Errorf("unexpected error in recommendation pipeline: %v", r)
		}
	}()

	candidates := s.collectCandidates(ctx, scalpPH, symptoms)

	// Backstop: the pipeline never works from an empty or near-empty pool
	if len(candidates) < MinCandidateCount {
		zap.L().Warn("thin candidate pool, appending default catalog",
			zap.Int("candidates", len(candidates)))
		candidates = append(candidates, DefaultCatalog(domain.SourceDefault)...)
	}

	enriched = Enrich(candidates, scalpPH)
	top := Rank(enriched, TopRecommendations)

	adviceText := s.advice.Advise(ctx, scalpPH, symptoms, Rank(enriched, PromptProductCount))

	result = &domain.RecommendationResult{
		AdviceText:          adviceText,
		RecommendedProducts: top,
		ScalpPH:             scalpPH,
		Symptoms:            symptoms,
	}

	if s.savePath != "" {
		SaveRecommendations(result, s.savePath)
	}

	return result, nil
}

// collectCandidates gathers raw candidates from all applicable sources,
// sequentially and with per-source degradation
func (s *RecommendationService) collectCandidates(ctx context.Context, scalpPH float64, symptoms []string) []domain.Product {
	var candidates []domain.Product

	// One fixed-category pull from Open Beauty Facts
	candidates = append(candidates, s.fetchByCategory(ctx, beautyCategory, beautyCount)...)

	// One pH-banded query to Sephora
	candidates = append(candidates, s.fetchByQuery(ctx, bandedQuery(scalpPH), sephoraCount)...)

	// One targeted query per recognized symptom keyword
	for _, sq := range symptomQueries {
		if containsKeyword(symptoms, sq.keyword) {
			candidates = append(candidates, s.fetchByQuery(ctx, sq.query, symptomCount)...)
		}
	}

	return candidates
}

// bandedQuery selects the Sephora search query for the measured pH
func bandedQuery(scalpPH float64) string {
	switch {
	case scalpPH > 6.0:
		return "oily scalp"
	case scalpPH < 4.5:
		return "dry scalp"
	default:
		return "scalp care"
	}
}

// containsKeyword reports whether any symptom mentions the keyword
func containsKeyword(symptoms []string, keyword string) bool {
	for _, symptom := range symptoms {
		if strings.Contains(strings.ToLower(symptom), keyword) {
			return true
		}
	}
	return false
}

// fetchByCategory pulls from the category catalog through the lookup cache.
// Fetch errors degrade to an empty contribution.
func (s *RecommendationService) fetchByCategory(ctx context.Context, category string, count int) []domain.Product {
	key := fmt.Sprintf("catalog:%s:%s", domain.SourceOpenBeauty, category)
	if products, ok := s.fromCache(ctx, key); ok {
		return products
	}

	products, err := s.beauty.SearchByCategory(ctx, category, count)
	if err != nil {
		zap.L().Warn("category catalog fetch failed, omitting contribution",
			zap.String("category", category), zap.Error(err))
		return nil
	}

	s.toCache(ctx, key, products)
	return products
}

// fetchByQuery pulls from the query catalog through the lookup cache.
// Fetch errors degrade to an empty contribution.
func (s *RecommendationService) fetchByQuery(ctx context.Context, query string, count int) []domain.Product {
	key := fmt.Sprintf("catalog:%s:%s", domain.SourceSephora, query)
	if products, ok := s.fromCache(ctx, key); ok {
		return products
	}

	products, err := s.sephora.SearchByQuery(ctx, query, count)
	if err != nil {
		zap.L().Warn("query catalog fetch failed, omitting contribution",
			zap.String("query", query), zap.Error(err))
		return nil
	}

	s.toCache(ctx, key, products)
	return products
}

// fromCache retrieves a cached product list. The cache stores generic JSON
// shapes, so the value is round-tripped back into Products.
func (s *RecommendationService) fromCache(ctx context.Context, key string) ([]domain.Product, bool) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, false
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, false
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, false
	}

	zap.L().Debug("catalog cache hit", zap.String("key", key), zap.Int("products", len(products)))
	return products, true
}

// toCache stores a product list. Empty results are not cached so a degraded
// source gets retried on the next request.
func (s *RecommendationService) toCache(ctx context.Context, key string, products []domain.Product) {
	if len(products) == 0 {
		return
	}
	if err := s.cache.Set(ctx, key, products, s.cacheTTL); err != nil {
		zap.L().Warn("failed to cache catalog results", zap.String("key", key), zap.Error(err))
	}
}
