// Package catalog is the product facet engine: pure classification,
// filtering and faceting over in-memory product lists fetched from the
// upstream Dispense catalog. Every function here is total: ambiguous or
// missing data yields a zero value, never a panic. All of it is safe to
// call concurrently, since nothing mutates shared state.
package catalog

import (
	"strings"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
)

// ProductType is the normalized internal classification of a product.
// The empty string means "unclassified"; callers must never coerce that
// to a default category.
type ProductType string

const (
	TypeFlower      ProductType = "flower"
	TypePreRoll     ProductType = "preRoll"
	TypeVape        ProductType = "vape"
	TypeEdible      ProductType = "edible"
	TypeTincture    ProductType = "tincture"
	TypeBeverage    ProductType = "beverage"
	TypeConcentrate ProductType = "concentrate"
	TypeTopical     ProductType = "topical"
)

// CategoryDef maps a shopper-facing label and URL slug to the backend's
// opaque category identifier. Slug and ID are stable keys used for both
// upstream requests and facet classification; Name is the only value ever
// shown to users or matched against free-text category filters.
type CategoryDef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	ID   string `json:"id"`
}

// CategoryDefs is the fixed storefront category set. Order is display order.
var CategoryDefs = []CategoryDef{
	{Name: "Flower", Slug: "flower", ID: "64a1f0c2e5b3a90012d4f101"},
	{Name: "Vaporizers", Slug: "vaporizers", ID: "64a1f0c2e5b3a90012d4f102"},
	{Name: "Pre Rolls", Slug: "pre-rolls", ID: "64a1f0c2e5b3a90012d4f103"},
	{Name: "Concentrates", Slug: "concentrates", ID: "64a1f0c2e5b3a90012d4f104"},
	{Name: "Edibles", Slug: "edibles", ID: "64a1f0c2e5b3a90012d4f105"},
	{Name: "Beverages", Slug: "beverages", ID: "64a1f0c2e5b3a90012d4f106"},
	{Name: "Tinctures", Slug: "tinctures", ID: "64a1f0c2e5b3a90012d4f107"},
}

// typeByEnum resolves the upstream `type` enum exactly. Venues are not
// consistent about plurals or underscores, so the common spellings are
// all listed.
var typeByEnum = map[string]ProductType{
	"FLOWER":       TypeFlower,
	"PRE_ROLL":     TypePreRoll,
	"PRE_ROLLS":    TypePreRoll,
	"PREROLL":      TypePreRoll,
	"VAPE":         TypeVape,
	"VAPES":        TypeVape,
	"VAPORIZER":    TypeVape,
	"VAPORIZERS":   TypeVape,
	"EDIBLE":       TypeEdible,
	"EDIBLES":      TypeEdible,
	"TINCTURE":     TypeTincture,
	"TINCTURES":    TypeTincture,
	"BEVERAGE":     TypeBeverage,
	"BEVERAGES":    TypeBeverage,
	"CONCENTRATE":  TypeConcentrate,
	"CONCENTRATES": TypeConcentrate,
	"TOPICAL":      TypeTopical,
	"TOPICALS":     TypeTopical,
}

type fragmentRule struct {
	Type      ProductType
	Fragments []string
}

// fragmentRules is evaluated top to bottom against raw category/subType
// text; first match wins, so rule order is part of the contract.
var fragmentRules = []fragmentRule{
	{TypeFlower, []string{"flower"}},
	{TypePreRoll, []string{"pre", "roll"}},
	{TypeVape, []string{"vape", "vapor"}},
	{TypeEdible, []string{"edible"}},
	{TypeTincture, []string{"tincture"}},
	{TypeBeverage, []string{"beverage", "drink"}},
	{TypeConcentrate, []string{"concentrate"}},
	{TypeTopical, []string{"topical"}},
}

// typeNames maps the internal type to the storefront display name.
var typeNames = map[ProductType]string{
	TypeFlower:      "Flower",
	TypePreRoll:     "Pre Rolls",
	TypeVape:        "Vaporizers",
	TypeEdible:      "Edibles",
	TypeTincture:    "Tinctures",
	TypeBeverage:    "Beverages",
	TypeConcentrate: "Concentrates",
	TypeTopical:     "Topicals",
}

var categoryNameByID = func() map[string]string {
	m := make(map[string]string, len(CategoryDefs))
	for _, def := range CategoryDefs {
		m[def.ID] = def.Name
	}
	return m
}()

// TypeOf resolves a product's normalized type by trying, in order: an
// exact match on the upstream enum, a fragment match against the raw
// category text, then the same fragment match against subType. Backend
// taxonomies are inconsistent across product sources, so classification
// degrades through multiple signals instead of failing one lookup.
func TypeOf(p *models.Product) ProductType {
	if p == nil {
		return ""
	}
	if t, ok := typeByEnum[strings.ToUpper(strings.TrimSpace(p.Type))]; ok {
		return t
	}
	if t := matchFragments(p.Category); t != "" {
		return t
	}
	return matchFragments(p.SubType)
}

func matchFragments(raw string) ProductType {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	for _, rule := range fragmentRules {
		for _, frag := range rule.Fragments {
			if strings.Contains(s, frag) {
				return rule.Type
			}
		}
	}
	return ""
}

// CategoryLabel resolves the display category. A direct categoryId lookup
// is authoritative when present; otherwise the heuristic type mapping is
// used. Empty string means unclassified.
func CategoryLabel(p *models.Product) string {
	if p == nil {
		return ""
	}
	if p.CategoryID != "" {
		if name, ok := categoryNameByID[p.CategoryID]; ok {
			return name
		}
	}
	if t := TypeOf(p); t != "" {
		return typeNames[t]
	}
	return ""
}

// StrainTypeOf derives the strain bucket from cannabisType + strain text.
// "Leaning" variants are checked before the plain types so that
// "indica leaning hybrid" never classifies as pure Indica.
func StrainTypeOf(p *models.Product) string {
	if p == nil {
		return ""
	}
	blob := strings.ToLower(p.CannabisType + " " + p.Strain)
	switch {
	case strings.Contains(blob, "indica leaning"), strings.Contains(blob, "indica-leaning"):
		return "Indica leaning"
	case strings.Contains(blob, "sativa leaning"), strings.Contains(blob, "sativa-leaning"):
		return "Sativa leaning"
	case strings.Contains(blob, "indica"):
		return "Indica"
	case strings.Contains(blob, "sativa"):
		return "Sativa"
	case strings.Contains(blob, "hybrid"):
		return "Hybrid"
	}
	return ""
}

// Tags normalizes the product's effect list to lowercase trimmed strings.
// Order-preserving; duplicates are the caller's problem.
func Tags(p *models.Product) []string {
	if p == nil || len(p.Effects) == 0 {
		return nil
	}
	tags := make([]string, 0, len(p.Effects))
	for _, e := range p.Effects {
		t := strings.ToLower(strings.TrimSpace(e))
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// THCTotal parses the product's THC value. With useMax the thcMax field is
// preferred, falling back to thc only when thcMax is entirely absent. An
// unparseable value in the preferred field (a range string) yields nil
// rather than falling through; the engine never guesses.
func THCTotal(p *models.Product, useMax bool) *float64 {
	if p == nil || p.Labs == nil {
		return nil
	}
	return parseLab(p.Labs.THC, p.Labs.THCMax, useMax)
}

// CBDTotal parses the product's CBD value, preferring cbdMax.
func CBDTotal(p *models.Product) *float64 {
	if p == nil || p.Labs == nil {
		return nil
	}
	return parseLab(p.Labs.CBD, p.Labs.CBDMax, true)
}

func parseLab(base, max models.FlexNumber, useMax bool) *float64 {
	pick := base
	if useMax && !max.IsZero() {
		pick = max
	} else if pick.IsZero() {
		pick = max
	}
	v, ok := pick.Float()
	if !ok {
		return nil
	}
	return &v
}

// IsOnSale is a cheap existence check over the four places a discount can
// live; computing the discounted price is FinalPrice's job.
func IsOnSale(p *models.Product) bool {
	if p == nil {
		return false
	}
	return len(p.Discounts) > 0 ||
		p.DiscountAmountFinal != 0 ||
		p.DiscountValueFinal != 0 ||
		p.DiscountTypeFinal != ""
}
