package sephora

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phperfect/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-key", "https://sephora.example.com", "sephora.example.com")

	assert.NotNil(t, client)
	assert.Equal(t, "test-key", client.apiKey)
	assert.NotNil(t, client.client)
	assert.NotNil(t, client.rateLimiter)
}

func TestSearchByQuery_NoAPIKey(t *testing.T) {
	// Without a key the source degrades to an empty contribution, not an error
	client := NewClient("", "https://sephora.example.com", "sephora.example.com")

	products, err := client.SearchByQuery(context.Background(), "scalp care", 3)

	assert.NoError(t, err)
	assert.Nil(t, products)
}

func TestSearchByQuery_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/us/products/v2/search", r.URL.Path)
		assert.Equal(t, "oily scalp", r.URL.Query().Get("q"))
		assert.Equal(t, "3", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "1", r.URL.Query().Get("currentPage"))
		assert.Equal(t, "test-key", r.Header.Get("x-rapidapi-key"))
		assert.Equal(t, "sephora.example.com", r.Header.Get("x-rapidapi-host"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"products": [
				{"productId": "P1", "displayName": "Scalp Scrub", "brandName": "Ouai", "rating": 4.4},
				{"productId": "P2", "displayName": "Balancing Shampoo", "brandName": "Briogeo"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "sephora.example.com")

	products, err := client.SearchByQuery(context.Background(), "oily scalp", 3)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Scalp Scrub", products[0].Name)
	assert.Equal(t, "Ouai", products[0].Brand)
	assert.Equal(t, "Scalp Care", products[0].Category)
	assert.Equal(t, 5.0, products[0].PHLevel) // refined by the oily query
	require.NotNil(t, products[0].Rating)
	assert.Equal(t, 4.4, *products[0].Rating)
	assert.Equal(t, "Shampoo", products[1].Category)
}

func TestSearchByQuery_DataWrapperEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"products": [{"id": "alt-1", "name": "Clarifying Shampoo"}]}}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "sephora.example.com")

	products, err := client.SearchByQuery(context.Background(), "scalp care", 3)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "alt-1", products[0].ID)
	assert.Equal(t, "Clarifying Shampoo", products[0].Name)
}

func TestSearchByQuery_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "sephora.example.com")

	products, err := client.SearchByQuery(context.Background(), "scalp care", 3)

	assert.Nil(t, products)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestSearchByQuery_MalformedEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "sephora.example.com")

	products, err := client.SearchByQuery(context.Background(), "scalp care", 3)

	assert.Error(t, err)
	assert.Nil(t, products)
}

func TestSearchByQuery_SkipsMalformedRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"products": [
				{"productId": "P1", "displayName": "Good Shampoo"},
				{"productId": "P2", "displayName": ["not", "a", "string"]}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "sephora.example.com")

	products, err := client.SearchByQuery(context.Background(), "scalp care", 3)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Good Shampoo", products[0].Name)
}

func TestSearchByQuery_EmptyQueryDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "scalp care", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products": []}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "sephora.example.com")

	products, err := client.SearchByQuery(context.Background(), "", 3)

	require.NoError(t, err)
	assert.Empty(t, products)
}
