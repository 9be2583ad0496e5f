// Package testutil provides helpers for building test catalogs and
// inspecting selections.
package testutil

import (
	"fmt"

	"github.com/sreesadhan7/GrocerEase-AI/internal/allocator"
	"github.com/sreesadhan7/GrocerEase-AI/internal/catalog"
)

// PricedItem builds a minimal catalog item with the given effective price
// and eligibility flags. The id encodes the index so duplicates never
// collide.
func PricedItem(index int, price float64, snapEligible, wicEligible bool) catalog.Item {
	return catalog.Item{
		ID:           fmt.Sprintf("test_%03d", index),
		Name:         fmt.Sprintf("Test Item %d", index),
		RegularPrice: price,
		Category:     "Test",
		SNAPEligible: snapEligible,
		WICEligible:  wicEligible,
		Store:        "TestMart",
	}
}

// BuildCatalog constructs a catalog of priced items, all SNAP and WIC
// eligible, in the given order.
func BuildCatalog(prices ...float64) catalog.Catalog {
	items := make([]catalog.Item, 0, len(prices))
	for i, price := range prices {
		items = append(items, PricedItem(i, price, true, true))
	}
	return catalog.Catalog{Items: items}
}

// PoolPrices extracts the prices assigned to one pool, in selection order.
func PoolPrices(sel allocator.Selection, pool allocator.Pool) []float64 {
	var prices []float64
	for _, line := range sel.Lines {
		if line.Pool == pool {
			prices = append(prices, line.Price)
		}
	}
	return prices
}

// PoolIDs extracts the item ids assigned to one pool, in selection order.
func PoolIDs(sel allocator.Selection, pool allocator.Pool) []string {
	var ids []string
	for _, line := range sel.Lines {
		if line.Pool == pool {
			ids = append(ids, line.Item.ID)
		}
	}
	return ids
}
