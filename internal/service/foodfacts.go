package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// FoodProduct is a nutrition record from Open Food Facts, per 100g.
type FoodProduct struct {
	Name     string  `json:"name"`
	Brand    string  `json:"brand"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// FoodFactsService looks up foods on the Open Food Facts API. Results are
// cached in memory for 24 hours, keyed by the lowercased query. Entries
// expire lazily on read; there is no background eviction.
type FoodFactsService struct {
	baseURL string
	client  *http.Client

	mu    sync.Mutex
	cache map[string]cachedProducts
	ttl   time.Duration
}

type cachedProducts struct {
	products  []FoodProduct
	expiresAt time.Time
}

func NewFoodFactsService(baseURL string) *FoodFactsService {
	if baseURL == "" {
		baseURL = "https://world.openfoodfacts.org"
	}
	return &FoodFactsService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: make(map[string]cachedProducts),
		ttl:   24 * time.Hour,
	}
}

// Search queries Open Food Facts by name, serving from the cache when a
// fresh entry exists.
func (s *FoodFactsService) Search(ctx context.Context, query string) ([]FoodProduct, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if key == "" {
		return nil, fmt.Errorf("query must not be empty")
	}

	if products, ok := s.cachedLookup(key); ok {
		return products, nil
	}

	products, err := s.fetch(ctx, key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[key] = cachedProducts{
		products:  products,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()

	return products, nil
}

func (s *FoodFactsService) cachedLookup(key string) ([]FoodProduct, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.cache[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.cache, key)
		return nil, false
	}
	return entry.products, true
}

func (s *FoodFactsService) fetch(ctx context.Context, query string) ([]FoodProduct, error) {
	params := url.Values{}
	params.Set("search_terms", query)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page_size", "5")

	searchURL := fmt.Sprintf("%s/cgi/search.pl?%s", s.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "PlateMate/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query food facts: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("food facts request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var result struct {
		Products []struct {
			ProductName string `json:"product_name"`
			Brands      string `json:"brands"`
			Nutriments  struct {
				Calories float64 `json:"energy-kcal_100g"`
				Protein  float64 `json:"proteins_100g"`
				Carbs    float64 `json:"carbohydrates_100g"`
				Fat      float64 `json:"fat_100g"`
			} `json:"nutriments"`
		} `json:"products"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	products := make([]FoodProduct, 0, len(result.Products))
	for _, p := range result.Products {
		if p.ProductName == "" {
			continue
		}
		products = append(products, FoodProduct{
			Name:     p.ProductName,
			Brand:    p.Brands,
			Calories: p.Nutriments.Calories,
			Protein:  p.Nutriments.Protein,
			Carbs:    p.Nutriments.Carbs,
			Fat:      p.Nutriments.Fat,
		})
	}

	return products, nil
}
