// Package catalog defines the grocery catalog data structures and provides
// the static store data plus optional file-based catalog loading.
package catalog

import (
	"fmt"
)

// Item is a single catalog entry. Items are immutable once loaded; nothing
// in the request path mutates them.
type Item struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Brand        string   `yaml:"brand"`
	Size         string   `yaml:"size"`
	RegularPrice float64  `yaml:"regularPrice"`
	PromoPrice   *float64 `yaml:"promoPrice,omitempty"`
	Category     string   `yaml:"category"`
	SNAPEligible bool     `yaml:"snapEligible"`
	WICEligible  bool     `yaml:"wicEligible"`
	Store        string   `yaml:"store"`
}

// MissingPriceError indicates an item that carries neither a usable promo
// price nor a usable regular price. Callers skip such items rather than
// substituting a fallback price.
type MissingPriceError struct {
	ItemID string
}

func (e *MissingPriceError) Error() string {
	return fmt.Sprintf("item %s has no usable price", e.ItemID)
}

// EffectivePrice resolves the price used for budgeting: the promotional
// price when present, otherwise the regular price. A non-positive result
// is a data-quality error, never a value to budget with.
func (item Item) EffectivePrice() (float64, error) {
	price := item.RegularPrice
	if item.PromoPrice != nil {
		price = *item.PromoPrice
	}
	if price <= 0 {
		return 0, &MissingPriceError{ItemID: item.ID}
	}
	return price, nil
}

// Catalog is an ordered, read-only collection of items. Order is
// significant: price ties during allocation resolve in catalog order.
type Catalog struct {
	Items []Item
}

// SNAPEligible returns the SNAP-eligible items in catalog order.
func (c Catalog) SNAPEligible() []Item {
	var items []Item
	for _, item := range c.Items {
		if item.SNAPEligible {
			items = append(items, item)
		}
	}
	return items
}

// WICEligible returns the WIC-eligible items in catalog order.
func (c Catalog) WICEligible() []Item {
	var items []Item
	for _, item := range c.Items {
		if item.WICEligible {
			items = append(items, item)
		}
	}
	return items
}

// ByStore partitions the catalog by store name, preserving catalog order
// within each store. Used for display and price comparison only.
func (c Catalog) ByStore() map[string][]Item {
	stores := make(map[string][]Item)
	for _, item := range c.Items {
		stores[item.Store] = append(stores[item.Store], item)
	}
	return stores
}

// Validate checks catalog integrity: unique ids, non-negative prices, and
// promo prices that do not exceed the regular price. It returns all
// problems found rather than stopping at the first.
func (c Catalog) Validate() []error {
	var errs []error
	seen := make(map[string]bool)
	for _, item := range c.Items {
		if item.ID == "" {
			errs = append(errs, fmt.Errorf("item %q has an empty id", item.Name))
			continue
		}
		if seen[item.ID] {
			errs = append(errs, fmt.Errorf("duplicate item id %s", item.ID))
		}
		seen[item.ID] = true
		if item.RegularPrice < 0 {
			errs = append(errs, fmt.Errorf("item %s has negative regular price %.2f", item.ID, item.RegularPrice))
		}
		if item.PromoPrice != nil {
			if *item.PromoPrice < 0 {
				errs = append(errs, fmt.Errorf("item %s has negative promo price %.2f", item.ID, *item.PromoPrice))
			}
			if *item.PromoPrice > item.RegularPrice {
				errs = append(errs, fmt.Errorf("item %s promo price %.2f exceeds regular price %.2f",
					item.ID, *item.PromoPrice, item.RegularPrice))
			}
		}
	}
	return errs
}
