package catalog

import (
	"errors"
	"math"
	"testing"
)

func TestEffectivePrice(t *testing.T) {
	promoPrice := 1.98

	tests := []struct {
		name      string
		item      Item
		expected  float64
		expectErr bool
	}{
		{"Regular price only", Item{ID: "a", RegularPrice: 2.32}, 2.32, false},
		{"Promo price wins", Item{ID: "b", RegularPrice: 2.32, PromoPrice: &promoPrice}, 1.98, false},
		{"No price at all", Item{ID: "c"}, 0, true},
		{"Negative regular price", Item{ID: "d", RegularPrice: -1.00}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := tt.item.EffectivePrice()
			if tt.expectErr {
				if err == nil {
					t.Fatalf("EffectivePrice() = %v, expected an error", price)
				}
				var missing *MissingPriceError
				if !errors.As(err, &missing) {
					t.Errorf("error = %v, expected MissingPriceError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("EffectivePrice() error = %v", err)
			}
			if math.Abs(price-tt.expected) > 0.001 {
				t.Errorf("EffectivePrice() = %v, expected %v", price, tt.expected)
			}
		})
	}
}

func TestEffectivePriceZeroPromo(t *testing.T) {
	zero := 0.0
	it := Item{ID: "zero", RegularPrice: 2.00, PromoPrice: &zero}

	// A present-but-zero promo price is a data error, not a free item.
	if _, err := it.EffectivePrice(); err == nil {
		t.Errorf("expected an error for a zero promo price")
	}
}

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	if len(cat.Items) != 14 {
		t.Fatalf("Default() has %d items, expected 14", len(cat.Items))
	}
	if errs := cat.Validate(); len(errs) > 0 {
		t.Errorf("Default() fails validation: %v", errs)
	}

	if got := len(cat.SNAPEligible()); got != 14 {
		t.Errorf("SNAP-eligible count = %d, expected 14", got)
	}
	if got := len(cat.WICEligible()); got != 6 {
		t.Errorf("WIC-eligible count = %d, expected 6", got)
	}

	stores := cat.ByStore()
	if len(stores["Walmart"]) != 7 || len(stores["Target"]) != 7 {
		t.Errorf("ByStore() = Walmart %d, Target %d, expected 7 each",
			len(stores["Walmart"]), len(stores["Target"]))
	}

	// Catalog order is part of the allocation contract.
	if cat.Items[0].ID != "walmart_001" || cat.Items[7].ID != "target_001" {
		t.Errorf("catalog order changed: first %s, eighth %s", cat.Items[0].ID, cat.Items[7].ID)
	}
}

func TestDefaultCatalogIsolation(t *testing.T) {
	first := Default()
	first.Items[0].Name = "mutated"

	second := Default()
	if second.Items[0].Name == "mutated" {
		t.Errorf("Default() shares backing data between calls")
	}
}

func TestValidate(t *testing.T) {
	promoHigh := 5.00
	promoNeg := -1.00

	tests := []struct {
		name     string
		items    []Item
		wantErrs int
	}{
		{"Valid", []Item{{ID: "a", RegularPrice: 1.00}}, 0},
		{"Empty id", []Item{{Name: "nameless", RegularPrice: 1.00}}, 1},
		{"Duplicate ids", []Item{{ID: "a", RegularPrice: 1.00}, {ID: "a", RegularPrice: 2.00}}, 1},
		{"Negative regular price", []Item{{ID: "a", RegularPrice: -1.00}}, 1},
		{"Promo above regular", []Item{{ID: "a", RegularPrice: 1.00, PromoPrice: &promoHigh}}, 1},
		{"Negative promo", []Item{{ID: "a", RegularPrice: 1.00, PromoPrice: &promoNeg}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := Catalog{Items: tt.items}
			if errs := cat.Validate(); len(errs) != tt.wantErrs {
				t.Errorf("Validate() = %v, expected %d errors", errs, tt.wantErrs)
			}
		})
	}
}
