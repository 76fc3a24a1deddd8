package catalog

import (
	"sort"
	"strings"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
)

// productFacets is the per-product facet derivation shared by the option
// and count builders. Both MUST derive values through this one path so a
// value can never appear in options without a count entry, or count > 0
// without an option.
type productFacets struct {
	category string
	brand    string
	strain   string
	terpenes []string
	weight   string
	effects  []string
}

func facetsOf(p *models.Product) productFacets {
	pf := productFacets{
		category: CategoryLabel(p),
		strain:   StrainTypeOf(p),
		weight:   weightLabel(p),
	}
	if p.Brand != nil {
		pf.brand = strings.TrimSpace(p.Brand.Name)
	}
	if p.Labs != nil {
		for _, t := range p.Labs.Terpenes {
			if t = strings.TrimSpace(t); t != "" {
				pf.terpenes = append(pf.terpenes, t)
			}
		}
	}
	for _, tag := range Tags(p) {
		pf.effects = append(pf.effects, capitalize(tag))
	}
	return pf
}

// BuildFacetOptions derives the distinct display values per dimension in
// one scan. Categories are always the full static list, not derived, so
// empty categories still render as disabled options.
func BuildFacetOptions(products []models.Product) models.FacetOptions {
	brands := map[string]struct{}{}
	strains := map[string]struct{}{}
	terpenes := map[string]struct{}{}
	weights := map[string]struct{}{}
	effects := map[string]struct{}{}

	for i := range products {
		pf := facetsOf(&products[i])
		addValue(brands, pf.brand)
		addValue(strains, pf.strain)
		addValue(weights, pf.weight)
		for _, t := range pf.terpenes {
			addValue(terpenes, t)
		}
		for _, e := range pf.effects {
			addValue(effects, e)
		}
	}

	opts := models.FacetOptions{
		Categories: make([]string, 0, len(CategoryDefs)),
		Brands:     sortedValues(brands),
		Strains:    sortedValues(strains),
		Terpenes:   sortedValues(terpenes),
		Weights:    sortedValues(weights),
		Effects:    sortedValues(effects),
	}
	for _, def := range CategoryDefs {
		opts.Categories = append(opts.Categories, def.Name)
	}
	return opts
}

// BuildFacetCounts counts contributing products per facet value using the
// same derivation as BuildFacetOptions, then zero-fills every static
// category absent from the scan.
func BuildFacetCounts(products []models.Product) models.FacetCounts {
	counts := models.FacetCounts{
		Categories: make(map[string]int, len(CategoryDefs)),
		Brands:     map[string]int{},
		Strains:    map[string]int{},
		Terpenes:   map[string]int{},
		Weights:    map[string]int{},
		Effects:    map[string]int{},
	}
	for _, def := range CategoryDefs {
		counts.Categories[def.Name] = 0
	}

	for i := range products {
		pf := facetsOf(&products[i])
		countValue(counts.Categories, pf.category)
		countValue(counts.Brands, pf.brand)
		countValue(counts.Strains, pf.strain)
		countValue(counts.Weights, pf.weight)
		for _, t := range pf.terpenes {
			countValue(counts.Terpenes, t)
		}
		// A product contributes once per distinct effect even when the
		// upstream list repeats a tag.
		seen := map[string]struct{}{}
		for _, e := range pf.effects {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			countValue(counts.Effects, e)
		}
	}
	return counts
}

func addValue(set map[string]struct{}, v string) {
	if v != "" {
		set[v] = struct{}{}
	}
}

func countValue(m map[string]int, v string) {
	if v != "" {
		m[v]++
	}
}

func sortedValues(set map[string]struct{}) []string {
	vals := make([]string, 0, len(set))
	for v := range set {
		vals = append(vals, v)
	}
	sort.Slice(vals, func(i, j int) bool {
		li, lj := strings.ToLower(vals[i]), strings.ToLower(vals[j])
		if li == lj {
			return vals[i] < vals[j]
		}
		return li < lj
	})
	return vals
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
