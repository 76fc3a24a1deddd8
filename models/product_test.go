package models

import (
	"encoding/json"
	"testing"
)

func TestFlexNumberUnmarshal(t *testing.T) {
	var labs Labs

	t.Run("accepts numbers and strings alike", func(t *testing.T) {
		raw := `{"thc": 22.5, "thcMax": "24.1%", "cbd": " 0.8 ", "cbdMax": null}`
		if err := json.Unmarshal([]byte(raw), &labs); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if labs.THC != "22.5" {
			t.Errorf("THC = %q, want 22.5", labs.THC)
		}
		if labs.THCMax != "24.1%" {
			t.Errorf("THCMax = %q, want 24.1%%", labs.THCMax)
		}
		if labs.CBD != "0.8" {
			t.Errorf("CBD = %q, want trimmed 0.8", labs.CBD)
		}
		if !labs.CBDMax.IsZero() {
			t.Errorf("CBDMax = %q, want zero", labs.CBDMax)
		}
	})

	t.Run("preserves range strings verbatim", func(t *testing.T) {
		raw := `{"thc": "10-15%"}`
		if err := json.Unmarshal([]byte(raw), &labs); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if labs.THC != "10-15%" {
			t.Errorf("THC = %q, want 10-15%%", labs.THC)
		}
	})
}

func TestFlexNumberFloat(t *testing.T) {
	cases := []struct {
		name  string
		value FlexNumber
		want  float64
		ok    bool
	}{
		{"plain number", "18", 18, true},
		{"decimal", "18.5", 18.5, true},
		{"percent suffix stripped", "18.5%", 18.5, true},
		{"padded percent", " 22 % ", 22, true},
		{"range is unparseable", "10-15%", 0, false},
		{"en dash range", "10–15", 0, false},
		{"empty", "", 0, false},
		{"junk", "n/a", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.value.Float()
			if ok != tc.ok || got != tc.want {
				t.Errorf("Float() = (%v, %v), want (%v, %v)", got, ok, tc.want, tc.ok)
			}
		})
	}
}
