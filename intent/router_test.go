package intent

import (
	"testing"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
)

func testRouter() *Router {
	return NewRouter([]models.StoreLocation{
		{ID: "store-mpls", Name: "Minneapolis", Keywords: []string{"minneapolis", "downtown", "uptown"}},
		{ID: "store-stp", Name: "St Paul", Keywords: []string{"st paul", "saint paul"}},
	})
}

func TestRouteStoreInfo(t *testing.T) {
	r := testRouter()

	t.Run("hours questions route to store info", func(t *testing.T) {
		res := r.Route("what time do you close")
		if res.Intent != models.IntentStoreInfo {
			t.Fatalf("Intent = %q, want STORE_INFO", res.Intent)
		}
		if !res.NeedsStoreDisambiguation {
			t.Error("NeedsStoreDisambiguation = false, want true with multiple stores")
		}
	})

	t.Run("a location keyword resolves the store", func(t *testing.T) {
		res := r.Route("is the Minneapolis store open today")
		if res.Intent != models.IntentStoreInfo {
			t.Fatalf("Intent = %q, want STORE_INFO", res.Intent)
		}
		if res.StoreIDGuess != "store-mpls" {
			t.Errorf("StoreIDGuess = %q, want store-mpls", res.StoreIDGuess)
		}
		if res.NeedsStoreDisambiguation {
			t.Error("NeedsStoreDisambiguation = true, want false once a store is guessed")
		}
	})

	t.Run("store questions beat product phrasing", func(t *testing.T) {
		res := r.Route("what are your hours for flower pickup")
		if res.Intent != models.IntentStoreInfo {
			t.Errorf("Intent = %q, want STORE_INFO", res.Intent)
		}
	})
}

func TestRouteProductInfo(t *testing.T) {
	r := testRouter()

	t.Run("potency questions route to product info", func(t *testing.T) {
		res := r.Route("how much thc is in blue dream")
		if res.Intent != models.IntentProductInfo {
			t.Errorf("Intent = %q, want PRODUCT_INFO", res.Intent)
		}
	})

	t.Run("availability questions route to product info", func(t *testing.T) {
		res := r.Route("do you carry wedding cake")
		if res.Intent != models.IntentProductInfo {
			t.Errorf("Intent = %q, want PRODUCT_INFO", res.Intent)
		}
	})

	t.Run("shopping verbs override the product-info read", func(t *testing.T) {
		res := r.Route("show me what you have in stock")
		if res.Intent != models.IntentProductShopping {
			t.Errorf("Intent = %q, want PRODUCT_SHOPPING", res.Intent)
		}
	})
}

func TestRouteShoppingAndEducation(t *testing.T) {
	r := testRouter()

	t.Run("educational question with shoppable filters", func(t *testing.T) {
		res := r.Route("what is sativa")
		if res.Intent != models.IntentEducationWithProducts {
			t.Fatalf("Intent = %q, want EDUCATION_WITH_PRODUCTS", res.Intent)
		}
		if res.Extracted.StrainType != "Sativa" {
			t.Errorf("StrainType = %q, want Sativa", res.Extracted.StrainType)
		}
	})

	t.Run("explicit shopping verbs", func(t *testing.T) {
		res := r.Route("show me sativa products")
		if res.Intent != models.IntentProductShopping {
			t.Errorf("Intent = %q, want PRODUCT_SHOPPING", res.Intent)
		}
	})

	t.Run("shoppable non-questions shop", func(t *testing.T) {
		res := r.Route("help me sleep tonight")
		if res.Intent != models.IntentProductShopping {
			t.Errorf("Intent = %q, want PRODUCT_SHOPPING", res.Intent)
		}
		if res.Extracted.EffectIntent != "sleep" {
			t.Errorf("EffectIntent = %q, want sleep", res.Extracted.EffectIntent)
		}
	})

	t.Run("terse product-domain queries shop", func(t *testing.T) {
		res := r.Route("gummies")
		if res.Intent != models.IntentProductShopping {
			t.Errorf("Intent = %q, want PRODUCT_SHOPPING", res.Intent)
		}
	})

	t.Run("pure education without filters", func(t *testing.T) {
		res := r.Route("what is the entourage effect")
		if res.Intent != models.IntentGeneralEducation {
			t.Errorf("Intent = %q, want GENERAL_EDUCATION", res.Intent)
		}
	})

	t.Run("product keywords are a last-resort shopping signal", func(t *testing.T) {
		res := r.Route("i could really go for some weed right about now")
		if res.Intent != models.IntentProductShopping {
			t.Errorf("Intent = %q, want PRODUCT_SHOPPING", res.Intent)
		}
	})

	t.Run("empty input degrades to general education", func(t *testing.T) {
		res := r.Route("   ")
		if res.Intent != models.IntentGeneralEducation {
			t.Errorf("Intent = %q, want GENERAL_EDUCATION", res.Intent)
		}
	})

	t.Run("unrecognizable chatter stays general education", func(t *testing.T) {
		res := r.Route("my cousin visited from out of town last weekend and we had a lovely dinner")
		if res.Intent != models.IntentGeneralEducation {
			t.Errorf("Intent = %q, want GENERAL_EDUCATION", res.Intent)
		}
	})
}
