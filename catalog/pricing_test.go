package catalog

import (
	"testing"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
)

func TestDisplayNode(t *testing.T) {
	t.Run("a discounted tier wins over everything", func(t *testing.T) {
		p := &models.Product{
			Price: 40,
			Tiers: []models.PriceNode{
				{ID: "t1", Price: 35},
				{ID: "t2", Price: 30, DiscountAmountFinal: 5},
			},
			Variants: []models.PriceNode{{ID: "v1", Price: 25, DiscountValueFinal: 10}},
		}
		if got := DisplayNode(p); got.ID != "t2" {
			t.Errorf("DisplayNode = %q, want t2", got.ID)
		}
	})

	t.Run("a discounted variant wins when no tier is discounted", func(t *testing.T) {
		p := &models.Product{
			Price:    40,
			Tiers:    []models.PriceNode{{ID: "t1", Price: 35}},
			Variants: []models.PriceNode{{ID: "v1", Price: 25, DiscountTypeFinal: "percent", DiscountValueFinal: 10}},
		}
		if got := DisplayNode(p); got.ID != "v1" {
			t.Errorf("DisplayNode = %q, want v1", got.ID)
		}
	})

	t.Run("a priced base record beats undiscounted tiers", func(t *testing.T) {
		p := &models.Product{
			ID:    "base",
			Price: 40,
			Tiers: []models.PriceNode{{ID: "t1", Price: 35}},
		}
		if got := DisplayNode(p); got.ID != "base" {
			t.Errorf("DisplayNode = %q, want base", got.ID)
		}
	})

	t.Run("an unpriced base defers to the first tier", func(t *testing.T) {
		p := &models.Product{
			ID:    "base",
			Tiers: []models.PriceNode{{ID: "t1", Price: 35}, {ID: "t2", Price: 60}},
		}
		if got := DisplayNode(p); got.ID != "t1" {
			t.Errorf("DisplayNode = %q, want t1", got.ID)
		}
	})

	t.Run("a bare product yields its own base node", func(t *testing.T) {
		p := &models.Product{ID: "base"}
		if got := DisplayNode(p); got.ID != "base" {
			t.Errorf("DisplayNode = %q, want base", got.ID)
		}
	})
}

func TestFinalPrice(t *testing.T) {
	t.Run("an explicit discounts entry outranks node finals", func(t *testing.T) {
		p := &models.Product{
			Price:               50,
			Discounts:           []models.Discount{{Type: "percent", Amount: 20}},
			DiscountAmountFinal: 5,
		}
		if got := FinalPrice(p); got != 40 {
			t.Errorf("FinalPrice = %v, want 40", got)
		}
	})

	t.Run("amount-type discounts subtract", func(t *testing.T) {
		p := &models.Product{
			Price:     50,
			Discounts: []models.Discount{{Type: "amount", Amount: 12.5}},
		}
		if got := FinalPrice(p); got != 37.5 {
			t.Errorf("FinalPrice = %v, want 37.5", got)
		}
	})

	t.Run("discountAmountFinal subtracts from the node price", func(t *testing.T) {
		p := &models.Product{Price: 60, DiscountAmountFinal: 15}
		if got := FinalPrice(p); got != 45 {
			t.Errorf("FinalPrice = %v, want 45", got)
		}
	})

	t.Run("discountValueFinal applies as percent when typed so", func(t *testing.T) {
		p := &models.Product{Price: 100, DiscountValueFinal: 25, DiscountTypeFinal: "percent"}
		if got := FinalPrice(p); got != 75 {
			t.Errorf("FinalPrice = %v, want 75", got)
		}
	})

	t.Run("discountValueFinal subtracts when not percent", func(t *testing.T) {
		p := &models.Product{Price: 100, DiscountValueFinal: 30}
		if got := FinalPrice(p); got != 70 {
			t.Errorf("FinalPrice = %v, want 70", got)
		}
	})

	t.Run("the discounted tier's price is the one discounted", func(t *testing.T) {
		p := &models.Product{
			Price: 40,
			Tiers: []models.PriceNode{{Price: 30, DiscountAmountFinal: 5}},
		}
		if got := FinalPrice(p); got != 25 {
			t.Errorf("FinalPrice = %v, want 25", got)
		}
	})

	t.Run("never negative", func(t *testing.T) {
		p := &models.Product{
			Price:     10,
			Discounts: []models.Discount{{Type: "amount", Amount: 25}},
		}
		if got := FinalPrice(p); got != 0 {
			t.Errorf("FinalPrice = %v, want 0", got)
		}
	})

	t.Run("no discounts means the display node price", func(t *testing.T) {
		p := &models.Product{Price: 42}
		if got := FinalPrice(p); got != 42 {
			t.Errorf("FinalPrice = %v, want 42", got)
		}
	})
}
