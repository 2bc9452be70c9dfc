package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations.
// Backed by an in-memory map by default; a redis backing is available for
// deployments where the lookup cache should survive restarts.
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CategoryCatalog searches a product catalog by category tag
// (Open Beauty Facts). Implementations return canonical Products.
type CategoryCatalog interface {
	SearchByCategory(ctx context.Context, category string, count int) ([]Product, error)
}

// QueryCatalog searches a product catalog by free-text query (Sephora).
// Implementations return canonical Products.
type QueryCatalog interface {
	SearchByQuery(ctx context.Context, query string, count int) ([]Product, error)
}

// AdviceGenerator produces free-form advice text from a system role string
// and a user prompt, within a token budget.
type AdviceGenerator interface {
	GenerateAdvice(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}
