package product_cache

import (
	"sync"
	"time"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
)

// Keyed TTL cache for upstream product lists. Keys are the canonical
// upstream query string, so identical catalog requests within the TTL
// never leave the process. Entries are replaced whole; product slices
// are treated as immutable once cached.

const DefaultTTL = 2 * time.Minute

type entry struct {
	products  []models.Product
	fetchedAt time.Time
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
	ttl     = DefaultTTL
)

// SetTTL overrides the default entry lifetime (tests use a short one).
func SetTTL(d time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	ttl = d
}

func Get(key string) ([]models.Product, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[key]
	if !ok || time.Since(e.fetchedAt) >= ttl {
		return nil, false
	}
	return e.products, true
}

func Set(key string, products []models.Product) {
	mu.Lock()
	defer mu.Unlock()
	entries[key] = entry{products: products, fetchedAt: time.Now()}

	// Opportunistic sweep so a long-running process doesn't accumulate
	// dead keys for queries nobody repeats.
	for k, e := range entries {
		if time.Since(e.fetchedAt) >= ttl {
			delete(entries, k)
		}
	}
}

// Invalidate drops everything. Called when the venue configuration
// changes under us.
func Invalidate() {
	mu.Lock()
	defer mu.Unlock()
	entries = map[string]entry{}
}
