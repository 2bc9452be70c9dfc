package openbeauty

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/phperfect/backend/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client handles communication with the Open Beauty Facts API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new Open Beauty Facts API client.
// The API is public but asks integrators to stay under ~100 requests
// per minute for search endpoints.
func NewClient(baseURL string) *Client {
	limiter := rate.NewLimiter(rate.Limit(1.5), 5) // burst of 5 requests

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose logging of upstream requests and responses
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// exponentialBackoff returns the wait duration before retry attempt n
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500<<(attempt-1)) * time.Millisecond
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "pHPerfect/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}

	return resp, nil
}

// SearchByCategory searches hair products by category tag and normalizes the
// response into canonical Products. Records that cannot be normalized are
// skipped individually; the batch is never aborted by a single bad record.
func (c *Client) SearchByCategory(ctx context.Context, category string, count int) ([]domain.Product, error) {
	if category == "" {
		category = "Hair"
	}

	// Build request URL
	endpoint := fmt.Sprintf("%s/search", c.baseURL)
	params := url.Values{}
	params.Add("categories_tags", category)
	params.Add("page_size", fmt.Sprintf("%d", count))

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		// Wait for rate limiter
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				zap.L().Debug("openbeauty request error",
					zap.Int("attempt", attempt), zap.Error(err))
			}
			lastErr = err
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		// Retry on non-200 responses
		if resp.StatusCode != http.StatusOK {
			zap.L().Warn("openbeauty returned error status",
				zap.Int("status", resp.StatusCode), zap.String("category", category))
			lastErr = fmt.Errorf("%w: status %d", domain.ErrSourceUnavailable, resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		var searchResp SearchResponse
		if err := json.Unmarshal(body, &searchResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		products := c.normalizeBatch(searchResp.Products)
		zap.L().Info("fetched openbeauty products",
			zap.String("category", category),
			zap.Int("raw", len(searchResp.Products)),
			zap.Int("normalized", len(products)))
		return products, nil
	}

	return nil, lastErr
}

// normalizeBatch normalizes each raw record, skipping per-record failures
func (c *Client) normalizeBatch(raws []json.RawMessage) []domain.Product {
	products := make([]domain.Product, 0, len(raws))
	for i, raw := range raws {
		var record RawProduct
		if err := json.Unmarshal(raw, &record); err != nil {
			zap.L().Warn("skipping malformed openbeauty record",
				zap.Int("index", i), zap.Error(err))
			continue
		}

		product, ok := Normalize(record)
		if !ok {
			continue
		}
		products = append(products, product)
	}
	return products
}
