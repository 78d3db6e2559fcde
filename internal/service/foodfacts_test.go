package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFoodFactsServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		assert.Equal(t, "/cgi/search.pl", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"products": [
				{
					"product_name": "Whole Milk",
					"brands": "DairyCo",
					"nutriments": {
						"energy-kcal_100g": 64,
						"proteins_100g": 3.3,
						"carbohydrates_100g": 4.8,
						"fat_100g": 3.6
					}
				},
				{"product_name": "", "brands": "NoName"}
			]
		}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFoodFactsSearch(t *testing.T) {
	var hits int32
	server := newFoodFactsServer(t, &hits)
	svc := NewFoodFactsService(server.URL)

	products, err := svc.Search(context.Background(), "Milk")
	require.NoError(t, err)
	require.Len(t, products, 1, "nameless products are dropped")
	assert.Equal(t, "Whole Milk", products[0].Name)
	assert.InDelta(t, 64, products[0].Calories, 0.01)
	assert.InDelta(t, 3.3, products[0].Protein, 0.01)
}

func TestFoodFactsCacheHit(t *testing.T) {
	var hits int32
	server := newFoodFactsServer(t, &hits)
	svc := NewFoodFactsService(server.URL)

	ctx := context.Background()
	_, err := svc.Search(ctx, "milk")
	require.NoError(t, err)

	// Same query in different case hits the cache.
	_, err = svc.Search(ctx, "  MILK ")
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestFoodFactsCacheExpiry(t *testing.T) {
	var hits int32
	server := newFoodFactsServer(t, &hits)
	svc := NewFoodFactsService(server.URL)
	svc.ttl = -time.Second

	ctx := context.Background()
	_, err := svc.Search(ctx, "milk")
	require.NoError(t, err)

	// Entry is already expired, so the next read refetches.
	_, err = svc.Search(ctx, "milk")
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestFoodFactsEmptyQuery(t *testing.T) {
	svc := NewFoodFactsService("http://localhost:0")
	_, err := svc.Search(context.Background(), "   ")
	assert.Error(t, err)
}
