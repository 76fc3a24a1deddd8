package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	product_cache "github.com/Leafline-Dispensary/leafline-storefront-backend/cache"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/config"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
)

func testConfig(baseURL, venueID string) config.DispenseConfig {
	return config.DispenseConfig{
		BaseURL:  baseURL,
		APIKey:   "test-key",
		VenueID:  venueID,
		Timeout:  5 * time.Second,
		CacheTTL: time.Minute,
	}
}

func TestListProducts(t *testing.T) {
	product_cache.Invalidate()
	t.Cleanup(product_cache.Invalidate)

	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "venue-1", r.URL.Query().Get("venueId"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]any{
			"data": []models.Product{
				{ID: "p1", Name: "OG Kush", Type: "FLOWER"},
				{ID: "p2", Name: "Citrus Cart", Type: "VAPE"},
			},
		})
	}))
	defer server.Close()

	client := NewDispenseClient(testConfig(server.URL, "venue-1"))
	ctx := context.Background()

	products, err := client.ListProducts(ctx, ProductQuery{})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)

	// Second identical call is served from the cache.
	products, err = client.ListProducts(ctx, ProductQuery{})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), hits.Load())
}

func TestListProductsQueryParams(t *testing.T) {
	product_cache.Invalidate()
	t.Cleanup(product_cache.Invalidate)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cat-1", r.URL.Query().Get("categoryId"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode(map[string]any{"data": []models.Product{}})
	}))
	defer server.Close()

	client := NewDispenseClient(testConfig(server.URL, "venue-2"))
	products, err := client.ListProducts(context.Background(), ProductQuery{CategoryID: "cat-1", Limit: 50})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestGetRetriesServerErrors(t *testing.T) {
	product_cache.Invalidate()
	t.Cleanup(product_cache.Invalidate)

	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"data": []models.Product{{ID: "p1"}}})
	}))
	defer server.Close()

	client := NewDispenseClient(testConfig(server.URL, "venue-3"))
	products, err := client.ListProducts(context.Background(), ProductQuery{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(3), hits.Load())
}

func TestGetFailsFastOnClientErrors(t *testing.T) {
	product_cache.Invalidate()
	t.Cleanup(product_cache.Invalidate)

	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewDispenseClient(testConfig(server.URL, "venue-4"))
	_, err := client.GetProduct(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, int64(1), hits.Load(), "4xx responses must not be retried")
}

func TestGetProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/p1", r.URL.Path)
		json.NewEncoder(w).Encode(models.Product{ID: "p1", Name: "OG Kush"})
	}))
	defer server.Close()

	client := NewDispenseClient(testConfig(server.URL, "venue-5"))
	product, err := client.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "OG Kush", product.Name)
}

func TestCreateCart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/carts", r.URL.Path)

		var payload upstreamCartRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "venue-6", payload.VenueID)
		assert.Equal(t, "store-mpls", payload.StoreID)
		require.Len(t, payload.Items, 1)
		assert.Equal(t, 2, payload.Items[0].Quantity)

		json.NewEncoder(w).Encode(models.CartResponse{
			ID:          "cart-1",
			CheckoutURL: "https://checkout.example.com/cart-1",
			ItemCount:   2,
		})
	}))
	defer server.Close()

	client := NewDispenseClient(testConfig(server.URL, "venue-6"))
	cart, err := client.CreateCart(context.Background(), models.CartRequest{
		StoreID: "store-mpls",
		Items:   []models.CartItem{{ProductID: "p1", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "cart-1", cart.ID)
	assert.Equal(t, "https://checkout.example.com/cart-1", cart.CheckoutURL)
}

func TestCreateCartUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"item out of stock"}`))
	}))
	defer server.Close()

	client := NewDispenseClient(testConfig(server.URL, "venue-7"))
	_, err := client.CreateCart(context.Background(), models.CartRequest{StoreID: "s1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}
