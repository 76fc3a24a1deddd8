// Package intent classifies free-text shopper messages and extracts
// structured catalog filters from them. It is a priority-ordered decision
// list (first match wins, there are no scores) and the order below is
// user-facing behavior: swapping it would, for example, misroute a
// store-hours question into a product search.
package intent

import (
	"regexp"
	"strings"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
)

var storeInfoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(what time|when).*(open|clos)`),
	regexp.MustCompile(`\bhours?\b`),
	regexp.MustCompile(`\b(address|located|location|directions)\b`),
	regexp.MustCompile(`\bwhere (are you|is the (store|shop|dispensary))\b`),
	regexp.MustCompile(`\b(phone number|call (you|the store))\b`),
	regexp.MustCompile(`\bis\s+[\w\s]{1,30}\s+open\b`),
}

var productInfoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`how (much|strong).*(thc|cbd|is)`),
	regexp.MustCompile(`\b(potency|how potent)\b`),
	regexp.MustCompile(`\bdo you (have|carry|sell|stock)\b`),
	regexp.MustCompile(`\b(in stock|still available|back in stock)\b`),
}

// productInfoExclusions: generic shopping verbs that make PRODUCT_SHOPPING
// the better fit even when a product-info pattern also matches.
var productInfoExclusions = []string{"show me", "find"}

var shoppingVerbs = []string{
	"show me", "find", "looking for", "i want", "i need", "buy", "shop",
	"browse", "recommend", "suggest", "get me", "got any", "pick out",
}

var educationPrefixes = []string{
	"what is", "what are", "what does", "what's", "whats", "how does",
	"how do", "why ", "explain", "difference between", "tell me about",
}

// Router routes messages against a configured store list. The store list
// is injected so the location keyword table stays data, not control flow.
type Router struct {
	stores []models.StoreLocation
}

func NewRouter(stores []models.StoreLocation) *Router {
	return &Router{stores: stores}
}

// Route classifies a raw message and extracts filters. It never fails: an
// empty or unrecognizable message degrades to GENERAL_EDUCATION with an
// empty extraction.
func (r *Router) Route(message string) models.IntentResult {
	extracted := ExtractFilters(message)
	res := models.IntentResult{
		Intent:    models.IntentGeneralEducation,
		Extracted: extracted,
	}

	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return res
	}

	// 1. Store questions beat everything, including question phrasing.
	if matchesAny(msg, storeInfoPatterns) {
		res.Intent = models.IntentStoreInfo
		if id := r.guessStore(msg); id != "" {
			res.StoreIDGuess = id
		} else if len(r.stores) > 1 {
			res.NeedsStoreDisambiguation = true
		}
		return res
	}

	// 2. Questions about a specific product's potency/availability,
	// unless shopping verbs make a product search the better read.
	if matchesAny(msg, productInfoPatterns) && !containsAny(msg, productInfoExclusions) {
		res.Intent = models.IntentProductInfo
		return res
	}

	educational := looksEducational(msg)
	shoppable := extracted.Shoppable()

	// 3. An educational question that extracted shoppable filters drives
	// both an answer and a product rail.
	if educational && shoppable {
		res.Intent = models.IntentEducationWithProducts
		return res
	}

	// 4. Shopping: explicit verbs, shoppable non-questions, or a terse
	// query naming something from the product domain.
	if containsAny(msg, shoppingVerbs) ||
		(shoppable && !educational) ||
		(wordCount(msg) <= 3 && hasProductKeyword(msg)) {
		res.Intent = models.IntentProductShopping
		return res
	}

	// 5. Pure education.
	if educational {
		return res
	}

	// 6. Last resort: any product keyword at all still means shopping.
	if hasProductKeyword(msg) {
		res.Intent = models.IntentProductShopping
	}
	return res
}

func (r *Router) guessStore(msg string) string {
	for _, store := range r.stores {
		for _, kw := range store.Keywords {
			if kw != "" && strings.Contains(msg, strings.ToLower(kw)) {
				return store.ID
			}
		}
	}
	return ""
}

func looksEducational(msg string) bool {
	for _, prefix := range educationPrefixes {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	// Short question-mark-terminated strings read as questions too.
	return strings.HasSuffix(msg, "?") && wordCount(msg) <= 8
}

func hasProductKeyword(msg string) bool {
	for _, kw := range categoryKeywordsByLength {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	for _, sk := range StrainKeywords {
		if strings.Contains(msg, sk.Keyword) {
			return true
		}
	}
	for _, name := range TerpeneNames {
		if strings.Contains(msg, strings.ToLower(name)) {
			return true
		}
	}
	return containsAny(msg, genericProductWords)
}

func matchesAny(msg string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(msg) {
			return true
		}
	}
	return false
}
