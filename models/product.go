package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ═══════════════════════════════════════════════════════════
// Dispense Product Record
// ═══════════════════════════════════════════════════════════
//
// Products come from the upstream Dispense catalog API and are read-only
// here. Every field is effectively optional: upstream data quality varies
// by venue and product source, so nothing below may be assumed present.

type Product struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// Classification signals. `type` is the upstream enum when the venue
	// sets one; category/categoryId/subType are the raw backend taxonomy.
	Type       string `json:"type,omitempty"`
	Category   string `json:"category,omitempty"`
	CategoryID string `json:"categoryId,omitempty"`
	SubType    string `json:"subType,omitempty"`

	Strain       string `json:"strain,omitempty"`
	CannabisType string `json:"cannabisType,omitempty"`

	Brand   *Brand   `json:"brand,omitempty"`
	Effects []string `json:"effects,omitempty"`
	Labs    *Labs    `json:"labs,omitempty"`

	Weight          float64 `json:"weight,omitempty"`
	WeightUnit      string  `json:"weightUnit,omitempty"`
	WeightFormatted string  `json:"weightFormatted,omitempty"`

	Price     float64    `json:"price,omitempty"`
	Image     string     `json:"image,omitempty"`
	Discounts []Discount `json:"discounts,omitempty"`

	DiscountAmountFinal float64 `json:"discountAmountFinal,omitempty"`
	DiscountValueFinal  float64 `json:"discountValueFinal,omitempty"`
	DiscountTypeFinal   string  `json:"discountTypeFinal,omitempty"`

	Tiers    []PriceNode `json:"tiers,omitempty"`
	Variants []PriceNode `json:"variants,omitempty"`
}

type Brand struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Labs carries lab-test results. THC/CBD values arrive as numbers, numeric
// strings, percent strings ("18.5%") or range strings ("10-15%"), hence
// FlexNumber rather than float64.
type Labs struct {
	THC      FlexNumber `json:"thc,omitempty"`
	THCMax   FlexNumber `json:"thcMax,omitempty"`
	CBD      FlexNumber `json:"cbd,omitempty"`
	CBDMax   FlexNumber `json:"cbdMax,omitempty"`
	Terpenes []string   `json:"terpenes,omitempty"`
}

type Discount struct {
	ID     string  `json:"id,omitempty"`
	Name   string  `json:"name,omitempty"`
	Type   string  `json:"type,omitempty"` // "amount" | "percent"
	Amount float64 `json:"amount,omitempty"`
}

// PriceNode is a price/discount-bearing sub-object: a weight tier or a
// variant. One of these (or the base product) is chosen as the display
// node when resolving a final price.
type PriceNode struct {
	ID                  string  `json:"id,omitempty"`
	Name                string  `json:"name,omitempty"`
	Weight              float64 `json:"weight,omitempty"`
	WeightUnit          string  `json:"weightUnit,omitempty"`
	WeightFormatted     string  `json:"weightFormatted,omitempty"`
	Price               float64 `json:"price,omitempty"`
	DiscountAmountFinal float64 `json:"discountAmountFinal,omitempty"`
	DiscountValueFinal  float64 `json:"discountValueFinal,omitempty"`
	DiscountTypeFinal   string  `json:"discountTypeFinal,omitempty"`
}

// ═══════════════════════════════════════════════════════════
// FlexNumber: number-or-string JSON value
// ═══════════════════════════════════════════════════════════

// FlexNumber preserves the raw lab value token so the catalog engine can
// decide what is parseable. Range strings are deliberately NOT reduced to
// a single number anywhere in this type.
type FlexNumber string

func (f *FlexNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		*f = FlexNumber(strings.TrimSpace(raw))
		return nil
	}
	*f = FlexNumber(s)
	return nil
}

func (f FlexNumber) MarshalJSON() ([]byte, error) {
	if f == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseFloat(string(f), 64); err == nil {
		return []byte(f), nil
	}
	return json.Marshal(string(f))
}

// IsZero reports whether no value was present upstream.
func (f FlexNumber) IsZero() bool { return strings.TrimSpace(string(f)) == "" }

// Float parses the value as a single comparable number. Percent suffixes
// are stripped. Range strings ("10-15%") are unparseable by contract: a
// range cannot be faithfully reduced to one number, so callers needing a
// point estimate must decide their own policy.
func (f FlexNumber) Float() (float64, bool) {
	s := strings.TrimSpace(string(f))
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// An interior dash means a range. Lab values are never negative, so a
	// leading dash is junk either way.
	if strings.ContainsAny(s, "-–—") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
