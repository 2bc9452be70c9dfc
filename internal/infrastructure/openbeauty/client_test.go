package openbeauty

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("https://api.example.com")

	assert.NotNil(t, client)
	assert.Equal(t, "https://api.example.com", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.False(t, client.debug)
}

func TestSetDebug(t *testing.T) {
	client := NewClient("https://api.example.com")

	assert.False(t, client.debug)

	client.SetDebug(true)
	assert.True(t, client.debug)

	client.SetDebug(false)
	assert.False(t, client.debug)
}

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, 1000 * time.Millisecond},
		{3, 2000 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			result := exponentialBackoff(tt.attempt)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSearchByCategory_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "shampoo", r.URL.Query().Get("categories_tags"))
		assert.Equal(t, "3", r.URL.Query().Get("page_size"))
		assert.Equal(t, "pHPerfect/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"count": 2,
			"products": [
				{"_id": "p1", "product_name": "Mild Shampoo", "brands": "Brandy", "categories_tags": ["en:shampoos"]},
				{"_id": "p2", "product_name": "Deep Conditioner", "categories_tags": ["en:conditioners"]}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	products, err := client.SearchByCategory(ctx, "shampoo", 3)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Mild Shampoo", products[0].Name)
	assert.Equal(t, "Brandy", products[0].Brand)
	assert.Equal(t, 5.5, products[0].PHLevel)
	assert.Equal(t, "Deep Conditioner", products[1].Name)
	assert.Equal(t, 4.5, products[1].PHLevel)
}

func TestSearchByCategory_SkipsMalformedRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// Second record has a structurally wrong field type
		w.Write([]byte(`{
			"products": [
				{"_id": "good", "product_name": "Good Shampoo"},
				{"_id": "bad", "product_name": 12345},
				{"_id": "discard", "product_name": "Unknown Product"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	products, err := client.SearchByCategory(context.Background(), "shampoo", 5)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Good Shampoo", products[0].Name)
}

func TestSearchByCategory_RetriesOnServerError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products": [{"_id": "p1", "product_name": "Recovered Shampoo"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	products, err := client.SearchByCategory(context.Background(), "shampoo", 1)

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	require.Len(t, products, 1)
	assert.Equal(t, "Recovered Shampoo", products[0].Name)
}

func TestSearchByCategory_ExhaustsRetries(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	products, err := client.SearchByCategory(context.Background(), "shampoo", 1)

	assert.Error(t, err)
	assert.Nil(t, products)
	assert.Equal(t, 3, attempts)
}

func TestSearchByCategory_EmptyCategoryDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Hair", r.URL.Query().Get("categories_tags"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	products, err := client.SearchByCategory(context.Background(), "", 3)

	require.NoError(t, err)
	assert.Empty(t, products)
}
