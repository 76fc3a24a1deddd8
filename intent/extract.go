package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
)

var (
	priceUnderPattern = regexp.MustCompile(`(?:under|below|less than|at most|no more than)\s*\$?\s*(\d+(?:\.\d+)?)`)
	priceOverPattern  = regexp.MustCompile(`(?:over|above|more than|at least)\s*\$?\s*(\d+(?:\.\d+)?)`)
	gramWeightPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:g|gram|grams)\b`)
)

// ExtractFilters maps a raw shopper message to a best-effort structured
// filter set. It runs unconditionally before intent classification:
// even an educational question ("what is limonene") should surface a
// terpene filter for education-with-products rendering.
//
// Extraction order matters: effect/mood keywords run before explicit
// strain tokens, so "help me sleep" infers Indica from the effect mapping
// and an explicit "sativa" token only applies when no effect already set
// a strain type.
func ExtractFilters(message string) models.ExtractedFilters {
	ex := models.ExtractedFilters{Query: strings.TrimSpace(message)}
	msg := strings.ToLower(ex.Query)
	if msg == "" {
		return ex
	}

	// 1. Effect/mood table, first rule wins.
	for _, rule := range EffectRules {
		if containsAny(msg, rule.Keywords) {
			ex.EffectIntent = rule.Intent
			ex.StrainType = rule.StrainType
			break
		}
	}

	// 2. Explicit strain token, only if the effect table left it open.
	if ex.StrainType == "" {
		for _, sk := range StrainKeywords {
			if strings.Contains(msg, sk.Keyword) {
				ex.StrainType = sk.StrainType
				break
			}
		}
	}

	// 3. Category, longest keyword phrase first so "vape oil" beats "oil".
	for _, kw := range categoryKeywordsByLength {
		if strings.Contains(msg, kw) {
			ex.Category = CategoryKeywords[kw]
			break
		}
	}

	// 4. Terpenes by substring.
	for _, name := range TerpeneNames {
		if strings.Contains(msg, strings.ToLower(name)) {
			ex.Terpenes = append(ex.Terpenes, name)
		}
	}

	// 5. Discount flag.
	ex.DiscountedOnly = containsAny(msg, DiscountKeywords)

	// 6. Price bounds.
	if m := priceUnderPattern.FindStringSubmatch(msg); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			ex.PriceMax = &v
		}
	}
	if m := priceOverPattern.FindStringSubmatch(msg); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			ex.PriceMin = &v
		}
	}

	// 7. Weight: explicit gram amounts, then shorthand phrases.
	if m := gramWeightPattern.FindStringSubmatch(msg); m != nil {
		ex.Weight = m[1] + "g"
	} else {
		for _, wp := range WeightPhrases {
			if strings.Contains(msg, wp.Phrase) {
				ex.Weight = wp.Label
				break
			}
		}
	}

	// 8. Conservative THC ceiling on low-potency / beginner intent.
	switch {
	case containsAny(msg, BeginnerKeywords):
		ex.MaxTHC = floatPtr(15)
	case containsAny(msg, LowPotencyKeywords):
		ex.MaxTHC = floatPtr(20)
	}

	// 9. A short query that matched nothing above reads as a brand name.
	if ex.Brand == "" && wordCount(msg) <= 3 &&
		ex.Category == "" && ex.StrainType == "" && len(ex.Terpenes) == 0 &&
		ex.EffectIntent == "" && !ex.DiscountedOnly && ex.Weight == "" &&
		ex.PriceMin == nil && ex.PriceMax == nil &&
		!strings.HasSuffix(msg, "?") {
		ex.Brand = ex.Query
	}

	return ex
}

func containsAny(msg string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func floatPtr(v float64) *float64 { return &v }
