package catalog

import "github.com/Leafline-Dispensary/leafline-storefront-backend/models"

// Discount precedence: an explicit discounts[] entry wins, then the
// display node's amount final, then its percent/value final, else the
// base price. The order is load-bearing: a product can carry a discount
// in all four places at once and must still price deterministically.

// DisplayNode picks the price/discount-bearing sub-object that represents
// the product: a tier or variant carrying its own discount finals wins
// over the base record, then the base record when it is priced, then the
// first priced tier or variant.
func DisplayNode(p *models.Product) models.PriceNode {
	if p == nil {
		return models.PriceNode{}
	}
	for _, tier := range p.Tiers {
		if nodeDiscounted(tier) {
			return tier
		}
	}
	for _, v := range p.Variants {
		if nodeDiscounted(v) {
			return v
		}
	}
	if p.Price > 0 || (len(p.Tiers) == 0 && len(p.Variants) == 0) {
		return baseNode(p)
	}
	if len(p.Tiers) > 0 {
		return p.Tiers[0]
	}
	return p.Variants[0]
}

// FinalPrice resolves the effective sale price for the product's display
// node. Never negative.
func FinalPrice(p *models.Product) float64 {
	if p == nil {
		return 0
	}
	if len(p.Discounts) > 0 {
		return clampPrice(applyDiscount(basePrice(p), p.Discounts[0]))
	}
	node := DisplayNode(p)
	switch {
	case node.DiscountAmountFinal > 0:
		return clampPrice(node.Price - node.DiscountAmountFinal)
	case node.DiscountValueFinal > 0:
		if node.DiscountTypeFinal == "percent" {
			return clampPrice(node.Price * (1 - node.DiscountValueFinal/100))
		}
		return clampPrice(node.Price - node.DiscountValueFinal)
	}
	return clampPrice(node.Price)
}

func applyDiscount(price float64, d models.Discount) float64 {
	if d.Type == "percent" {
		return price * (1 - d.Amount/100)
	}
	return price - d.Amount
}

func basePrice(p *models.Product) float64 {
	if p.Price > 0 {
		return p.Price
	}
	return DisplayNode(p).Price
}

func baseNode(p *models.Product) models.PriceNode {
	return models.PriceNode{
		ID:                  p.ID,
		Weight:              p.Weight,
		WeightUnit:          p.WeightUnit,
		WeightFormatted:     p.WeightFormatted,
		Price:               p.Price,
		DiscountAmountFinal: p.DiscountAmountFinal,
		DiscountValueFinal:  p.DiscountValueFinal,
		DiscountTypeFinal:   p.DiscountTypeFinal,
	}
}

func nodeDiscounted(n models.PriceNode) bool {
	return n.DiscountAmountFinal != 0 || n.DiscountValueFinal != 0 || n.DiscountTypeFinal != ""
}

func clampPrice(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
