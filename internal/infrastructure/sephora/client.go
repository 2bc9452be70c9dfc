package sephora

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/phperfect/backend/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client handles communication with the Sephora catalog on RapidAPI.
// Constructed without an API key it degrades to an empty capability:
// every search returns no products instead of an error.
type Client struct {
	client      *resty.Client
	apiKey      string
	rateLimiter *rate.Limiter
}

// NewClient creates a new Sephora API client
func NewClient(apiKey, baseURL, host string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("x-rapidapi-key", apiKey).
		SetHeader("x-rapidapi-host", host)

	// RapidAPI free tiers throttle aggressively; pace requests instead of
	// sleeping between result items.
	limiter := rate.NewLimiter(rate.Limit(5), 1)

	return &Client{
		client:      client,
		apiKey:      apiKey,
		rateLimiter: limiter,
	}
}

// SearchByQuery searches products by free-text query and normalizes the
// response into canonical Products. Records that cannot be normalized are
// skipped individually.
func (c *Client) SearchByQuery(ctx context.Context, query string, count int) ([]domain.Product, error) {
	if c.apiKey == "" {
		zap.L().Debug("sephora API key not configured, skipping search",
			zap.String("query", query))
		return nil, nil
	}

	if query == "" {
		query = "scalp care"
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":           query,
			"pageSize":    fmt.Sprintf("%d", count),
			"currentPage": "1",
		}).
		Get("/us/products/v2/search")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}

	if resp.StatusCode() != http.StatusOK {
		zap.L().Warn("sephora returned error status",
			zap.Int("status", resp.StatusCode()), zap.String("query", query))
		return nil, fmt.Errorf("%w: status %d", domain.ErrSourceUnavailable, resp.StatusCode())
	}

	var searchResp SearchResponse
	if err := json.Unmarshal(resp.Body(), &searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	records := searchResp.Records()
	products := normalizeBatch(records, query)

	zap.L().Info("fetched sephora products",
		zap.String("query", query),
		zap.Int("raw", len(records)),
		zap.Int("normalized", len(products)))
	return products, nil
}

// normalizeBatch normalizes each raw record, skipping per-record failures
func normalizeBatch(raws []json.RawMessage, query string) []domain.Product {
	products := make([]domain.Product, 0, len(raws))
	for i, raw := range raws {
		var record RawProduct
		if err := json.Unmarshal(raw, &record); err != nil {
			zap.L().Warn("skipping malformed sephora record",
				zap.Int("index", i), zap.Error(err))
			continue
		}

		product, ok := Normalize(record, query)
		if !ok {
			continue
		}
		products = append(products, product)
	}
	return products
}
