package intent

import "sort"

// ═══════════════════════════════════════════════════════════
// Keyword / effect lexicon
// ═══════════════════════════════════════════════════════════
//
// The router is a decision list over ordered keyword tables, not a scored
// classifier. Everything here is exposed as data so rule order and content
// stay independently testable; the order of EffectRules and the
// longest-first category matching are part of the routing contract.
// Matching is plain substring over the lowercase whole message; partial
// stems ("energiz", "sedat") are intentional so plurals and -ing forms hit.

// EffectRule maps mood/goal keywords to a preferred strain type and an
// effect vocabulary for downstream filtering. First matching rule wins.
type EffectRule struct {
	Intent     string
	Keywords   []string
	StrainType string
	Effects    []string
}

var EffectRules = []EffectRule{
	{"sleep", []string{"sleep", "insomnia", "sedat", "knock me out", "bedtime", "nighttime"}, "Indica", []string{"sleepy", "relaxed"}},
	{"relax", []string{"relax", "unwind", "chill", "calm", "stress", "wind down"}, "Indica", []string{"relaxed", "calm"}},
	{"energy", []string{"energy", "energiz", "uplift", "wake up", "morning", "get going"}, "Sativa", []string{"energetic", "uplifted"}},
	{"focus", []string{"focus", "concentrat", "productiv", "study", "get things done"}, "Sativa", []string{"focused", "clear-headed"}},
	{"creativity", []string{"creativ", "inspir", "brainstorm"}, "Sativa", []string{"creative", "euphoric"}},
	{"pain", []string{"pain", "ache", "sore", "inflammation", "cramp"}, "Indica", []string{"relaxed", "body high"}},
	{"anxiety", []string{"anxiety", "anxious", "nervous", "panic", "overthink"}, "Hybrid", []string{"calm", "relaxed"}},
	{"appetite", []string{"appetite", "munchies", "nausea", "hungry"}, "Indica", []string{"hungry", "relaxed"}},
	{"social", []string{"social", "party", "giggly", "talkative"}, "Sativa", []string{"giggly", "talkative"}},
}

// StrainKeyword pairs an explicit strain-type token with its display
// value. Applied only when no effect rule already set a strain type.
type StrainKeyword struct {
	Keyword    string
	StrainType string
}

var StrainKeywords = []StrainKeyword{
	{"indica", "Indica"},
	{"sativa", "Sativa"},
	{"hybrid", "Hybrid"},
}

// CategoryKeywords maps free-text tokens to the display category names of
// catalog.CategoryDefs. Lookup goes longest keyword first so "vape oil"
// wins over "oil".
var CategoryKeywords = map[string]string{
	"flower": "Flower", "bud": "Flower", "nug": "Flower", "eighth": "Flower",

	"vape oil": "Vaporizers", "vape pen": "Vaporizers", "vaporizer": "Vaporizers",
	"vape": "Vaporizers", "cartridge": "Vaporizers", "cart": "Vaporizers",
	"disposable": "Vaporizers", "pod": "Vaporizers",

	"pre roll": "Pre Rolls", "pre-roll": "Pre Rolls", "preroll": "Pre Rolls",
	"joint": "Pre Rolls", "blunt": "Pre Rolls",

	"concentrate": "Concentrates", "wax": "Concentrates", "shatter": "Concentrates",
	"rosin": "Concentrates", "live resin": "Concentrates", "dab": "Concentrates",
	"badder": "Concentrates", "diamonds": "Concentrates",

	"edible": "Edibles", "gummies": "Edibles", "gummy": "Edibles",
	"chocolate": "Edibles", "cookie": "Edibles", "brownie": "Edibles",

	"beverage": "Beverages", "drink": "Beverages", "seltzer": "Beverages",
	"soda": "Beverages", "lemonade": "Beverages",

	"tincture": "Tinctures", "sublingual": "Tinctures", "drops": "Tinctures",
	"oil": "Tinctures",
}

// categoryKeywordsByLength is CategoryKeywords' keys sorted longest first;
// ties break alphabetically so matching stays deterministic.
var categoryKeywordsByLength = func() []string {
	keys := make([]string, 0, len(CategoryKeywords))
	for k := range CategoryKeywords {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// TerpeneNames are matched by simple substring; values are the display
// names the catalog facets use.
var TerpeneNames = []string{
	"Myrcene", "Limonene", "Caryophyllene", "Pinene", "Linalool",
	"Terpinolene", "Humulene", "Ocimene", "Bisabolol", "Farnesene",
}

// DiscountKeywords flip the discounted-only flag.
var DiscountKeywords = []string{
	"sale", "discount", "deal", "special", "promo", "bogo", "clearance", "coupon", "cheap",
}

// BeginnerKeywords cap extracted THC at 15; LowPotencyKeywords at 20.
// The split: explicit first-timer language gets the conservative ceiling,
// general low-potency wording a softer one.
var (
	BeginnerKeywords   = []string{"first time", "beginner", "newbie", "new to", "microdose", "micro dose"}
	LowPotencyKeywords = []string{"low thc", "low potency", "low dose", "mild", "not too strong", "light high"}
)

// WeightPhrase maps shorthand amounts to the formatted weight label the
// catalog filters on. Ordered: longer phrases before their substrings.
type WeightPhrase struct {
	Phrase string
	Label  string
}

var WeightPhrases = []WeightPhrase{
	{"half ounce", "14g"},
	{"half oz", "14g"},
	{"quarter ounce", "7g"},
	{"quarter oz", "7g"},
	{"quarter", "7g"},
	{"eighth", "3.5g"},
	{"ounce", "28g"},
}

// genericProductWords count as product-domain signals for the router's
// final fallback even when they extract no filter.
var genericProductWords = []string{
	"weed", "cannabis", "marijuana", "thc", "cbd", "strain", "product", "terpene",
}
