package product_cache

import (
	"testing"
	"time"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
)

func TestCacheRoundTrip(t *testing.T) {
	t.Cleanup(func() {
		SetTTL(DefaultTTL)
		Invalidate()
	})

	t.Run("set then get within TTL", func(t *testing.T) {
		Invalidate()
		products := []models.Product{{ID: "p1"}, {ID: "p2"}}
		Set("/products?venueId=v1", products)

		got, ok := Get("/products?venueId=v1")
		if !ok {
			t.Fatal("Get returned miss for a fresh entry")
		}
		if len(got) != 2 || got[0].ID != "p1" {
			t.Errorf("Get = %v", got)
		}
	})

	t.Run("misses on unknown keys", func(t *testing.T) {
		if _, ok := Get("/products?venueId=other"); ok {
			t.Error("Get hit for an unknown key")
		}
	})

	t.Run("entries expire after the TTL", func(t *testing.T) {
		Invalidate()
		SetTTL(5 * time.Millisecond)
		Set("k", []models.Product{{ID: "p1"}})

		time.Sleep(15 * time.Millisecond)
		if _, ok := Get("k"); ok {
			t.Error("Get hit an expired entry")
		}
	})

	t.Run("invalidate drops everything", func(t *testing.T) {
		SetTTL(DefaultTTL)
		Set("a", []models.Product{{ID: "p1"}})
		Set("b", []models.Product{{ID: "p2"}})
		Invalidate()
		if _, ok := Get("a"); ok {
			t.Error("Get hit after Invalidate")
		}
		if _, ok := Get("b"); ok {
			t.Error("Get hit after Invalidate")
		}
	})
}
