package catalog

import (
	"testing"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
)

func TestTypeOf(t *testing.T) {
	t.Run("resolves the upstream enum exactly", func(t *testing.T) {
		cases := map[string]ProductType{
			"FLOWER":      TypeFlower,
			"PRE_ROLL":    TypePreRoll,
			"PRE_ROLLS":   TypePreRoll,
			"vapes":       TypeVape,
			" Edibles ":   TypeEdible,
			"TINCTURES":   TypeTincture,
			"BEVERAGE":    TypeBeverage,
			"CONCENTRATE": TypeConcentrate,
			"topicals":    TypeTopical,
		}
		for enum, want := range cases {
			got := TypeOf(&models.Product{Type: enum})
			if got != want {
				t.Errorf("TypeOf(type=%q) = %q, want %q", enum, got, want)
			}
		}
	})

	t.Run("falls back to category fragments when the enum is unknown", func(t *testing.T) {
		got := TypeOf(&models.Product{Type: "OTHER", Category: "Premium Pre-Roll Packs"})
		if got != TypePreRoll {
			t.Errorf("TypeOf = %q, want %q", got, TypePreRoll)
		}
	})

	t.Run("falls back to subType when category yields nothing", func(t *testing.T) {
		got := TypeOf(&models.Product{Category: "House Picks", SubType: "Live Resin Vapes"})
		if got != TypeVape {
			t.Errorf("TypeOf = %q, want %q", got, TypeVape)
		}
	})

	t.Run("fragment rule order decides ambiguous text", func(t *testing.T) {
		// "flower" outranks "drink" because the flower rule sits first.
		got := TypeOf(&models.Product{Category: "flower infused drink"})
		if got != TypeFlower {
			t.Errorf("TypeOf = %q, want %q", got, TypeFlower)
		}
	})

	t.Run("returns empty when nothing matches", func(t *testing.T) {
		if got := TypeOf(&models.Product{Category: "Accessories"}); got != "" {
			t.Errorf("TypeOf = %q, want empty", got)
		}
		if got := TypeOf(nil); got != "" {
			t.Errorf("TypeOf(nil) = %q, want empty", got)
		}
	})
}

func TestCategoryLabel(t *testing.T) {
	t.Run("categoryId lookup is authoritative", func(t *testing.T) {
		p := &models.Product{CategoryID: "64a1f0c2e5b3a90012d4f105", Type: "FLOWER"}
		if got := CategoryLabel(p); got != "Edibles" {
			t.Errorf("CategoryLabel = %q, want Edibles", got)
		}
	})

	t.Run("unknown categoryId falls through to the type heuristic", func(t *testing.T) {
		p := &models.Product{CategoryID: "ffffffffffffffffffffffff", Type: "FLOWER"}
		if got := CategoryLabel(p); got != "Flower" {
			t.Errorf("CategoryLabel = %q, want Flower", got)
		}
	})

	t.Run("unclassified products get no label", func(t *testing.T) {
		if got := CategoryLabel(&models.Product{Name: "Grinder"}); got != "" {
			t.Errorf("CategoryLabel = %q, want empty", got)
		}
	})
}

func TestStrainTypeOf(t *testing.T) {
	cases := []struct {
		name    string
		product models.Product
		want    string
	}{
		{"leaning beats plain indica", models.Product{CannabisType: "Indica Leaning Hybrid"}, "Indica leaning"},
		{"hyphenated leaning", models.Product{Strain: "sativa-leaning"}, "Sativa leaning"},
		{"plain indica", models.Product{CannabisType: "INDICA"}, "Indica"},
		{"sativa from strain text", models.Product{Strain: "Sativa blend"}, "Sativa"},
		{"hybrid", models.Product{CannabisType: "hybrid"}, "Hybrid"},
		{"no signal", models.Product{Name: "Battery"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StrainTypeOf(&tc.product); got != tc.want {
				t.Errorf("StrainTypeOf = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTags(t *testing.T) {
	t.Run("lowercases, trims and drops empties, preserving order", func(t *testing.T) {
		p := &models.Product{Effects: []string{" Relaxed ", "SLEEPY", "", "relaxed"}}
		got := Tags(p)
		want := []string{"relaxed", "sleepy", "relaxed"}
		if len(got) != len(want) {
			t.Fatalf("Tags = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Tags[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("nil for products without effects", func(t *testing.T) {
		if got := Tags(&models.Product{}); got != nil {
			t.Errorf("Tags = %v, want nil", got)
		}
	})
}

func TestTHCTotal(t *testing.T) {
	t.Run("nil without labs", func(t *testing.T) {
		if got := THCTotal(&models.Product{}, true); got != nil {
			t.Errorf("THCTotal = %v, want nil", *got)
		}
	})

	t.Run("useMax prefers thcMax", func(t *testing.T) {
		p := &models.Product{Labs: &models.Labs{THC: "18", THCMax: "24.5%"}}
		got := THCTotal(p, true)
		if got == nil || *got != 24.5 {
			t.Errorf("THCTotal = %v, want 24.5", got)
		}
	})

	t.Run("an unparseable preferred field yields nil, no fallthrough", func(t *testing.T) {
		p := &models.Product{Labs: &models.Labs{THC: "18", THCMax: "10-15%"}}
		if got := THCTotal(p, true); got != nil {
			t.Errorf("THCTotal = %v, want nil for range thcMax", *got)
		}
	})

	t.Run("useMax falls back to thc only when thcMax is absent", func(t *testing.T) {
		p := &models.Product{Labs: &models.Labs{THC: "18.5%"}}
		got := THCTotal(p, true)
		if got == nil || *got != 18.5 {
			t.Errorf("THCTotal = %v, want 18.5", got)
		}
	})

	t.Run("without useMax the base field wins", func(t *testing.T) {
		p := &models.Product{Labs: &models.Labs{THC: "17", THCMax: "24"}}
		got := THCTotal(p, false)
		if got == nil || *got != 17 {
			t.Errorf("THCTotal = %v, want 17", got)
		}
	})
}

func TestCBDTotal(t *testing.T) {
	p := &models.Product{Labs: &models.Labs{CBD: "1.2", CBDMax: "2.4"}}
	got := CBDTotal(p)
	if got == nil || *got != 2.4 {
		t.Errorf("CBDTotal = %v, want 2.4", got)
	}
}

func TestIsOnSale(t *testing.T) {
	cases := []struct {
		name    string
		product models.Product
		want    bool
	}{
		{"no discount signals", models.Product{Price: 40}, false},
		{"discounts list", models.Product{Discounts: []models.Discount{{Type: "percent", Amount: 10}}}, true},
		{"amount final", models.Product{DiscountAmountFinal: 5}, true},
		{"value final", models.Product{DiscountValueFinal: 10}, true},
		{"type final only", models.Product{DiscountTypeFinal: "percent"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsOnSale(&tc.product); got != tc.want {
				t.Errorf("IsOnSale = %v, want %v", got, tc.want)
			}
		})
	}
}
