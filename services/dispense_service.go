package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	product_cache "github.com/Leafline-Dispensary/leafline-storefront-backend/cache"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/config"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
)

// DispenseClient talks to the upstream Dispense commerce API. It owns the
// resource-management policies the catalog engine deliberately doesn't:
// TTL response caching, coalescing of identical in-flight GETs, retry
// with backoff on 429/5xx, and a client-side request rate cap.
type DispenseClient struct {
	cfg     config.DispenseConfig
	http    *http.Client
	limiter *rate.Limiter
	group   singleflight.Group
}

const maxAttempts = 3

func NewDispenseClient(cfg config.DispenseConfig) *DispenseClient {
	return &DispenseClient{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(10), 20), // upstream allows ~10 rps sustained
	}
}

// ProductQuery is the subset of upstream list parameters the storefront
// uses. Filtering beyond these happens in memory via the catalog engine.
type ProductQuery struct {
	CategoryID string
	Limit      int
}

func (q ProductQuery) encode(venueID string) string {
	v := url.Values{}
	v.Set("venueId", venueID)
	if q.CategoryID != "" {
		v.Set("categoryId", q.CategoryID)
	}
	if q.Limit > 0 {
		v.Set("limit", fmt.Sprintf("%d", q.Limit))
	}
	return v.Encode()
}

type productListPayload struct {
	Data []models.Product `json:"data"`
}

// ListProducts fetches the venue's product list. Results are cached for
// the configured TTL and concurrent identical requests share one upstream
// call.
func (c *DispenseClient) ListProducts(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	key := "/products?" + q.encode(c.cfg.VenueID)

	if cached, ok := product_cache.Get(key); ok {
		return cached, nil
	}

	res, err, _ := c.group.Do(key, func() (any, error) {
		body, err := c.get(ctx, key)
		if err != nil {
			return nil, err
		}
		var payload productListPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, fmt.Errorf("decode product list: %w", err)
		}
		product_cache.Set(key, payload.Data)
		return payload.Data, nil
	})
	if err != nil {
		return nil, err
	}
	return res.([]models.Product), nil
}

// GetProduct fetches a single product by upstream id.
func (c *DispenseClient) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	path := "/products/" + url.PathEscape(id) + "?venueId=" + url.QueryEscape(c.cfg.VenueID)
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	var product models.Product
	if err := json.Unmarshal(body, &product); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}
	return &product, nil
}

type upstreamCartItem struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId,omitempty"`
	Quantity  int    `json:"quantity"`
}

type upstreamCartRequest struct {
	VenueID string             `json:"venueId"`
	StoreID string             `json:"storeId"`
	Items   []upstreamCartItem `json:"items"`
}

// CreateCart creates an upstream cart and returns the hosted checkout
// URL. Payment is entirely the upstream's problem.
func (c *DispenseClient) CreateCart(ctx context.Context, req models.CartRequest) (*models.CartResponse, error) {
	payload := upstreamCartRequest{
		VenueID: c.cfg.VenueID,
		StoreID: req.StoreID,
	}
	for _, item := range req.Items {
		payload.Items = append(payload.Items, upstreamCartItem{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal cart: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/carts", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build cart request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read cart response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[dispense] cart create failed: %d %s", resp.StatusCode, truncate(respBody))
		return nil, fmt.Errorf("upstream cart create returned %d", resp.StatusCode)
	}

	var cart models.CartResponse
	if err := json.Unmarshal(respBody, &cart); err != nil {
		return nil, fmt.Errorf("decode cart response: %w", err)
	}
	return &cart, nil
}

// get performs a GET with the client rate cap and retry-with-backoff on
// 429 and 5xx. 4xx other than 429 fail immediately, retrying a bad
// request only burns quota.
func (c *DispenseClient) get(ctx context.Context, path string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * 500 * time.Millisecond
			backoff += time.Duration(rand.Int63n(int64(backoff) / 2))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		c.setHeaders(req)

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = fmt.Errorf("upstream returned %d", resp.StatusCode)
			continue
		case resp.StatusCode >= 400:
			return nil, fmt.Errorf("upstream returned %d: %s", resp.StatusCode, truncate(body))
		case readErr != nil:
			lastErr = readErr
			continue
		}
		return body, nil
	}
	return nil, fmt.Errorf("dispense request failed after %d attempts: %w", maxAttempts, lastErr)
}

func (c *DispenseClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

func truncate(b []byte) string {
	const max = 300
	if len(b) > max {
		return string(b[:max]) + "…"
	}
	return string(b)
}
