package models

// ═══════════════════════════════════════════════════════════
// Faceted filter models (storefront)
// ═══════════════════════════════════════════════════════════

// FacetedFilters is the canonical structured filter the catalog engine
// accepts. All values are user-facing display strings, never backend IDs;
// matching is case-insensitive. A nil/empty dimension is a no-op.
type FacetedFilters struct {
	Categories []string `json:"categories,omitempty" form:"category"`
	Brands     []string `json:"brands,omitempty" form:"brand"`
	Strains    []string `json:"strains,omitempty" form:"strain"`
	Terpenes   []string `json:"terpenes,omitempty" form:"terpene"`
	Weights    []string `json:"weights,omitempty" form:"weight"`
	Effects    []string `json:"effects,omitempty" form:"effect"`
	SaleOnly   bool     `json:"saleOnly,omitempty" form:"saleOnly"`
}

// IsZero reports whether no dimension is active.
func (f FacetedFilters) IsZero() bool {
	return len(f.Categories) == 0 && len(f.Brands) == 0 && len(f.Strains) == 0 &&
		len(f.Terpenes) == 0 && len(f.Weights) == 0 && len(f.Effects) == 0 && !f.SaleOnly
}

// FacetOptions holds the distinct display values per facet dimension,
// derived fresh from a product list. Categories are always the full
// static list so empty categories still render (disabled/zero) in UI.
type FacetOptions struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	Strains    []string `json:"strains"`
	Terpenes   []string `json:"terpenes"`
	Weights    []string `json:"weights"`
	Effects    []string `json:"effects"`
}

// FacetCounts counts matching products per facet value. Always rebuilt
// from the unfiltered list, never mutated incrementally.
type FacetCounts struct {
	Categories map[string]int `json:"categories"`
	Brands     map[string]int `json:"brands"`
	Strains    map[string]int `json:"strains"`
	Terpenes   map[string]int `json:"terpenes"`
	Weights    map[string]int `json:"weights"`
	Effects    map[string]int `json:"effects"`
}

// FilterMetadata is the storefront filter payload: options plus counts,
// both derived from the same product scan.
type FilterMetadata struct {
	Options FacetOptions `json:"options"`
	Counts  FacetCounts  `json:"counts"`
	Total   int          `json:"total"`
}
