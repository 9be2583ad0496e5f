// Package allocator implements the budget-constrained grocery selection
// core: a greedy cheapest-first assignment of eligible items to the SNAP
// and WIC budget pools.
package allocator

import (
	"sort"

	"github.com/sreesadhan7/GrocerEase-AI/internal/catalog"
	"github.com/sreesadhan7/GrocerEase-AI/pkg/mathutil"
)

// Pool identifies which benefit pool paid for a selected item.
type Pool string

const (
	PoolSNAP Pool = "SNAP"
	PoolWIC  Pool = "WIC"
)

// Line is one selected item together with the pool it was assigned to and
// the effective price it was budgeted at.
type Line struct {
	Item  catalog.Item
	Pool  Pool
	Price float64
}

// PoolTotals tracks one pool's running state for a single allocation run.
// Spent never exceeds Limit.
type PoolTotals struct {
	Limit float64
	Spent float64
}

// Remaining returns the unspent balance for the pool.
func (p PoolTotals) Remaining() float64 {
	return mathutil.Round(p.Limit - p.Spent)
}

// Selection is the result of one allocation run. Lines are ordered by
// assignment: SNAP picks first (cheapest first), then WIC picks.
type Selection struct {
	Lines   []Line
	SNAP    PoolTotals
	WIC     PoolTotals
	Skipped []string // ids of items excluded for missing/invalid prices
}

// TotalCost returns the sum of effective prices across both pools.
func (s Selection) TotalCost() float64 {
	return mathutil.Round(s.SNAP.Spent + s.WIC.Spent)
}

// ItemCount returns the number of selected lines.
func (s Selection) ItemCount() int {
	return len(s.Lines)
}

// Options carries optional allocation inputs. Preferences is accepted for
// interface stability but does not currently alter selection.
type Options struct {
	Preferences string
}

// pricedItem pairs an item with its resolved effective price. Input order
// is catalog order; the stable sort in scanPool preserves it on ties.
type pricedItem struct {
	item  catalog.Item
	price float64
}

// Allocate assigns items to the SNAP and WIC pools using a greedy
// cheapest-first policy. Each input slice must already be filtered to the
// items eligible for its pool. Both pools are constrained independently;
// an item eligible for both pools is assigned to at most one of them per
// run (the SNAP scan runs first and claims the item id).
//
// Negative limits are treated as 0. Items whose effective price cannot be
// resolved, or is non-positive, are excluded and reported in
// Selection.Skipped. Infeasible input produces an empty selection, never
// an error.
func Allocate(snapItems, wicItems []catalog.Item, snapLimit, wicLimit float64, opts Options) Selection {
	if snapLimit < 0 {
		snapLimit = 0
	}
	if wicLimit < 0 {
		wicLimit = 0
	}

	sel := Selection{
		SNAP: PoolTotals{Limit: mathutil.Round(snapLimit)},
		WIC:  PoolTotals{Limit: mathutil.Round(wicLimit)},
	}

	used := make(map[string]bool)

	snapPriced, skipped := priceItems(snapItems)
	sel.Skipped = append(sel.Skipped, skipped...)
	sel.SNAP.Spent = scanPool(&sel, snapPriced, PoolSNAP, sel.SNAP.Limit, used)

	wicPriced, skipped := priceItems(wicItems)
	sel.Skipped = append(sel.Skipped, skipped...)
	sel.WIC.Spent = scanPool(&sel, wicPriced, PoolWIC, sel.WIC.Limit, used)

	return sel
}

// priceItems resolves effective prices and drops unpriceable items.
func priceItems(items []catalog.Item) ([]pricedItem, []string) {
	var priced []pricedItem
	var skipped []string
	for _, item := range items {
		price, err := item.EffectivePrice()
		if err != nil {
			skipped = append(skipped, item.ID)
			continue
		}
		priced = append(priced, pricedItem{item: item, price: price})
	}
	return priced, skipped
}

// scanPool performs the greedy cheapest-first scan for one pool and
// appends accepted lines to the selection. The scan never terminates
// early on a budget miss: a skip costs nothing and keeps malformed
// entries from masking later affordable items.
func scanPool(sel *Selection, priced []pricedItem, pool Pool, limit float64, used map[string]bool) float64 {
	sorted := make([]pricedItem, len(priced))
	copy(sorted, priced)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].price < sorted[j].price
	})

	spent := 0.0
	for _, candidate := range sorted {
		if used[candidate.item.ID] {
			continue
		}
		if !mathutil.Fits(spent, candidate.price, limit) {
			continue
		}
		sel.Lines = append(sel.Lines, Line{Item: candidate.item, Pool: pool, Price: candidate.price})
		spent = mathutil.Round(spent + candidate.price)
		used[candidate.item.ID] = true
	}
	return spent
}
