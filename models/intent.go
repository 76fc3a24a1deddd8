package models

// ═══════════════════════════════════════════════════════════
// Intent routing models
// ═══════════════════════════════════════════════════════════

// Intent is the coarse classification of a free-text shopper message.
type Intent string

const (
	IntentStoreInfo             Intent = "STORE_INFO"
	IntentProductInfo           Intent = "PRODUCT_INFO"
	IntentEducationWithProducts Intent = "EDUCATION_WITH_PRODUCTS"
	IntentProductShopping       Intent = "PRODUCT_SHOPPING"
	IntentGeneralEducation      Intent = "GENERAL_EDUCATION"
)

// ExtractedFilters is the router's best-effort reading of a message. It is
// a superset of FacetedFilters: shopping intent plus conversational
// metadata (EffectIntent, Query). The two models are deliberately
// decoupled so the router vocabulary can grow without changing the
// catalog filter contract.
type ExtractedFilters struct {
	Category       string   `json:"category,omitempty"`
	StrainType     string   `json:"strainType,omitempty"`
	Terpenes       []string `json:"terpenes,omitempty"`
	Weight         string   `json:"weight,omitempty"`
	Brand          string   `json:"brand,omitempty"`
	DiscountedOnly bool     `json:"discountedOnly,omitempty"`
	MaxTHC         *float64 `json:"maxThc,omitempty"`
	PriceMin       *float64 `json:"priceMin,omitempty"`
	PriceMax       *float64 `json:"priceMax,omitempty"`

	EffectIntent string `json:"effectIntent,omitempty"`
	Query        string `json:"query,omitempty"`
}

// Shoppable reports whether the extraction is specific enough to justify
// rendering a product rail alongside (or instead of) an answer.
func (e ExtractedFilters) Shoppable() bool {
	return e.EffectIntent != "" || e.StrainType != "" || e.Category != "" ||
		len(e.Terpenes) > 0 || e.DiscountedOnly || e.Brand != ""
}

// Faceted adapts the extraction into the catalog engine's filter contract.
func (e ExtractedFilters) Faceted() FacetedFilters {
	f := FacetedFilters{
		Terpenes: e.Terpenes,
		SaleOnly: e.DiscountedOnly,
	}
	if e.Category != "" {
		f.Categories = []string{e.Category}
	}
	if e.StrainType != "" {
		f.Strains = []string{e.StrainType}
	}
	if e.Brand != "" {
		f.Brands = []string{e.Brand}
	}
	if e.Weight != "" {
		f.Weights = []string{e.Weight}
	}
	return f
}

// IntentResult is what the router hands back to the search surface.
type IntentResult struct {
	Intent                   Intent           `json:"intent"`
	Extracted                ExtractedFilters `json:"extracted"`
	NeedsStoreDisambiguation bool             `json:"needsStoreDisambiguation,omitempty"`
	StoreIDGuess             string           `json:"storeIdGuess,omitempty"`
}
