// Package output provides utilities for formatting and displaying
// scenario results.
package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sreesadhan7/GrocerEase-AI/internal/allocator"
	"github.com/sreesadhan7/GrocerEase-AI/internal/scenario"
	"github.com/sreesadhan7/GrocerEase-AI/pkg/format"
)

// scenarioOrder fixes the display order regardless of map iteration.
var scenarioOrder = []string{"snap_only", "wic_only", "combined"}

// PrettyFormat renders a human-readable report for every scenario plus a
// store comparison for the best one.
func PrettyFormat(set scenario.Set, snapBudget, wicBudget float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Budgets: SNAP %s, WIC %s (total %s)\n",
		format.Currency(snapBudget), format.Currency(wicBudget), format.Currency(snapBudget+wicBudget))

	for _, name := range scenarioOrder {
		sc, ok := set.Scenarios[name]
		if !ok {
			continue
		}
		marker := ""
		if name == set.Best {
			marker = " (best)"
		}
		fmt.Fprintf(&b, "\n--- Scenario %s%s ---\n", name, marker)
		fmt.Fprintf(&b, "Budget %s | %d items | cost %s | remaining %s\n",
			format.Currency(sc.Budget), sc.ItemCount,
			format.Currency(sc.TotalCost), format.Currency(sc.Remaining))

		for _, group := range groupByCategory(sc.Selection.Lines) {
			fmt.Fprintf(&b, "%s:\n", group.category)
			for _, line := range group.lines {
				fmt.Fprintf(&b, "  - %s | %s at %s | paid with %s\n",
					line.Item.Name, format.Currency(line.Price), line.Item.Store, line.Pool)
			}
		}
	}

	if best, ok := set.BestScenario(); ok {
		b.WriteString(storeComparison(best.Selection.Lines))
	}

	return b.String()
}

// CsvFormat renders every scenario's selection as comma-separated rows.
func CsvFormat(set scenario.Set) string {
	var b strings.Builder
	b.WriteString(`"scenario","item","category","store","pool","price"` + "\n")
	for _, name := range scenarioOrder {
		sc, ok := set.Scenarios[name]
		if !ok {
			continue
		}
		for _, line := range sc.Selection.Lines {
			fmt.Fprintf(&b, `"%s","%s","%s","%s","%s","%s"`+"\n",
				name, line.Item.Name, line.Item.Category, line.Item.Store,
				line.Pool, format.NumericCurrency(line.Price))
		}
	}
	return b.String()
}

type categoryGroup struct {
	category string
	lines    []allocator.Line
}

func groupByCategory(lines []allocator.Line) []categoryGroup {
	index := make(map[string]int)
	var groups []categoryGroup
	for _, line := range lines {
		i, ok := index[line.Item.Category]
		if !ok {
			i = len(groups)
			index[line.Item.Category] = i
			groups = append(groups, categoryGroup{category: line.Item.Category})
		}
		groups[i].lines = append(groups[i].lines, line)
	}
	return groups
}

// storeComparison summarizes per-store spend and average item price for
// the best scenario, mirroring the assistant's Walmart-vs-Target advice.
func storeComparison(lines []allocator.Line) string {
	if len(lines) == 0 {
		return ""
	}

	type storeTotals struct {
		cost  float64
		count int
	}
	totals := make(map[string]*storeTotals)
	for _, line := range lines {
		st, ok := totals[line.Item.Store]
		if !ok {
			st = &storeTotals{}
			totals[line.Item.Store] = st
		}
		st.cost += line.Price
		st.count++
	}

	stores := make([]string, 0, len(totals))
	for store := range totals {
		stores = append(stores, store)
	}
	sort.Strings(stores)

	var b strings.Builder
	b.WriteString("\nStore comparison:\n")
	bestStore := ""
	bestAvg := 0.0
	for _, store := range stores {
		st := totals[store]
		avg := st.cost / float64(st.count)
		fmt.Fprintf(&b, "  %s: %d items, %s total (avg %s/item)\n",
			store, st.count, format.Currency(st.cost), format.Currency(avg))
		if bestStore == "" || avg < bestAvg {
			bestStore = store
			bestAvg = avg
		}
	}
	if len(stores) > 1 {
		fmt.Fprintf(&b, "  Best average price: %s\n", bestStore)
	}
	return b.String()
}
