package catalog

import (
	"fmt"
	"strings"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
)

// ApplyFilters runs the composite filter predicate over a product list:
// AND across dimensions, OR within a dimension's value list. A dimension
// with no selected values is a no-op. With no active filters the input
// slice is returned as-is.
func ApplyFilters(products []models.Product, f models.FacetedFilters) []models.Product {
	if f.IsZero() {
		return products
	}
	out := make([]models.Product, 0, len(products))
	for i := range products {
		if matchesFilters(&products[i], f) {
			out = append(out, products[i])
		}
	}
	return out
}

func matchesFilters(p *models.Product, f models.FacetedFilters) bool {
	if len(f.Categories) > 0 && !matchesCategory(p, f.Categories) {
		return false
	}
	if f.SaleOnly && !IsOnSale(p) {
		return false
	}
	if len(f.Brands) > 0 && !matchesBrand(p, f.Brands) {
		return false
	}
	if len(f.Strains) > 0 && !matchesStrain(p, f.Strains) {
		return false
	}
	if len(f.Weights) > 0 && !matchesWeight(p, f.Weights) {
		return false
	}
	if len(f.Terpenes) > 0 && !matchesTerpene(p, f.Terpenes) {
		return false
	}
	if len(f.Effects) > 0 && !matchesEffect(p, f.Effects) {
		return false
	}
	return true
}

func matchesCategory(p *models.Product, wanted []string) bool {
	label := CategoryLabel(p)
	if label == "" {
		return false
	}
	for _, w := range wanted {
		if strings.EqualFold(label, strings.TrimSpace(w)) {
			return true
		}
	}
	return false
}

func matchesBrand(p *models.Product, wanted []string) bool {
	if p.Brand == nil || p.Brand.Name == "" {
		return false
	}
	for _, w := range wanted {
		if strings.EqualFold(p.Brand.Name, strings.TrimSpace(w)) {
			return true
		}
	}
	return false
}

// matchesStrain is the most permissive dimension. Each selected value is
// accepted on a match against the raw strain or cannabisType fields; for
// the three canonical buckets it additionally falls back to the derived
// strain type and a full text blob, because many products only mention
// strain lineage in free-text description, not structured fields.
func matchesStrain(p *models.Product, wanted []string) bool {
	rawStrain := strings.ToLower(p.Strain)
	rawType := strings.ToLower(p.CannabisType)
	derived := strings.ToLower(StrainTypeOf(p))
	blob := strings.ToLower(p.Name + " " + p.Description + " " + p.CannabisType + " " + p.Strain)

	for _, w := range wanted {
		v := strings.ToLower(strings.TrimSpace(w))
		if v == "" {
			continue
		}
		if rawStrain != "" && strings.Contains(rawStrain, v) {
			return true
		}
		if rawType != "" && strings.Contains(rawType, v) {
			return true
		}
		switch v {
		case "sativa", "indica", "hybrid":
			if strings.Contains(derived, v) || strings.Contains(rawType, v) || strings.Contains(blob, v) {
				return true
			}
		}
	}
	return false
}

func matchesWeight(p *models.Product, wanted []string) bool {
	label := weightLabel(p)
	if label == "" {
		return false
	}
	for _, w := range wanted {
		if strings.EqualFold(label, strings.TrimSpace(w)) {
			return true
		}
	}
	return false
}

func matchesTerpene(p *models.Product, wanted []string) bool {
	if p.Labs == nil || len(p.Labs.Terpenes) == 0 {
		return false
	}
	for _, w := range wanted {
		for _, t := range p.Labs.Terpenes {
			if strings.EqualFold(strings.TrimSpace(t), strings.TrimSpace(w)) {
				return true
			}
		}
	}
	return false
}

// matchesEffect uses bidirectional substring containment so that a
// selected "relax" matches the tag "relaxing" and a selected "relaxing"
// still matches the tag "relax".
func matchesEffect(p *models.Product, wanted []string) bool {
	tags := Tags(p)
	if len(tags) == 0 {
		return false
	}
	for _, w := range wanted {
		v := strings.ToLower(strings.TrimSpace(w))
		if v == "" {
			continue
		}
		for _, tag := range tags {
			if strings.Contains(tag, v) || strings.Contains(v, tag) {
				return true
			}
		}
	}
	return false
}

// weightLabel is the formatted weight shoppers filter on, e.g. "3.5g".
func weightLabel(p *models.Product) string {
	if p.WeightFormatted != "" {
		return p.WeightFormatted
	}
	if p.Weight > 0 {
		return fmt.Sprintf("%g%s", p.Weight, p.WeightUnit)
	}
	return ""
}
