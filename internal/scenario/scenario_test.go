package scenario

import (
	"math"
	"testing"

	"github.com/sreesadhan7/GrocerEase-AI/internal/catalog"
	"github.com/sreesadhan7/GrocerEase-AI/pkg/constants"
	"github.com/sreesadhan7/GrocerEase-AI/pkg/testutil"
)

func TestBuildProducesAllScenarios(t *testing.T) {
	set := Build(nil, catalog.Default(), 30.00, 20.00, "")

	for _, name := range []string{constants.ScenarioSNAPOnly, constants.ScenarioWICOnly, constants.ScenarioCombined} {
		if _, ok := set.Scenarios[name]; !ok {
			t.Errorf("missing scenario %s", name)
		}
	}
	if len(set.Scenarios) != 3 {
		t.Errorf("built %d scenarios, expected 3", len(set.Scenarios))
	}
	if set.Best != constants.ScenarioCombined {
		t.Errorf("best scenario = %s, expected %s", set.Best, constants.ScenarioCombined)
	}
}

// Known allocation over the built-in catalog: SNAP $30 fits the 11
// cheapest SNAP-eligible items ($28.15); WIC $20 fits all 6 WIC-eligible
// items ($14.91).
func TestBuildDefaultCatalogTotals(t *testing.T) {
	set := Build(nil, catalog.Default(), 30.00, 20.00, "")

	snapOnly := set.Scenarios[constants.ScenarioSNAPOnly]
	if snapOnly.ItemCount != 11 {
		t.Errorf("snap_only items = %d, expected 11", snapOnly.ItemCount)
	}
	if math.Abs(snapOnly.TotalCost-28.15) > 0.001 {
		t.Errorf("snap_only cost = %v, expected 28.15", snapOnly.TotalCost)
	}
	if math.Abs(snapOnly.Remaining-1.85) > 0.001 {
		t.Errorf("snap_only remaining = %v, expected 1.85", snapOnly.Remaining)
	}

	wicOnly := set.Scenarios[constants.ScenarioWICOnly]
	if wicOnly.ItemCount != 6 {
		t.Errorf("wic_only items = %d, expected 6", wicOnly.ItemCount)
	}
	if math.Abs(wicOnly.TotalCost-14.91) > 0.001 {
		t.Errorf("wic_only cost = %v, expected 14.91", wicOnly.TotalCost)
	}
}

func TestBuildBudgetInvariant(t *testing.T) {
	tests := []struct {
		name       string
		snapBudget float64
		wicBudget  float64
	}{
		{"Both active", 30.00, 20.00},
		{"SNAP only", 12.50, 0},
		{"WIC only", 0, 8.00},
		{"Tiny budgets", 0.50, 0.25},
		{"Huge budgets", 1000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Build(nil, catalog.Default(), tt.snapBudget, tt.wicBudget, "")
			for name, sc := range set.Scenarios {
				if sc.Selection.SNAP.Spent > sc.Selection.SNAP.Limit+0.001 {
					t.Errorf("%s: SNAP spent %v over limit %v", name, sc.Selection.SNAP.Spent, sc.Selection.SNAP.Limit)
				}
				if sc.Selection.WIC.Spent > sc.Selection.WIC.Limit+0.001 {
					t.Errorf("%s: WIC spent %v over limit %v", name, sc.Selection.WIC.Spent, sc.Selection.WIC.Limit)
				}
				if sc.TotalCost > sc.Budget+0.001 {
					t.Errorf("%s: total cost %v over budget %v", name, sc.TotalCost, sc.Budget)
				}
			}
		})
	}
}

func TestBuildBestScenarioRule(t *testing.T) {
	tests := []struct {
		name       string
		snapBudget float64
		wicBudget  float64
		expected   string
	}{
		{"Both budgets prefer combined", 30, 20, constants.ScenarioCombined},
		{"Both budgets, WIC larger, still combined", 20, 30, constants.ScenarioCombined},
		{"SNAP only", 30, 0, constants.ScenarioSNAPOnly},
		{"WIC only", 0, 20, constants.ScenarioWICOnly},
		{"Neither", 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Build(nil, catalog.Default(), tt.snapBudget, tt.wicBudget, "")
			if set.Best != tt.expected {
				t.Errorf("best = %q, expected %q", set.Best, tt.expected)
			}
		})
	}
}

func TestBuildZeroBudgets(t *testing.T) {
	set := Build(nil, catalog.Default(), 0, 0, "")

	if len(set.Scenarios) != 0 {
		t.Errorf("zero budgets built scenarios: %v", set.Scenarios)
	}
	if _, ok := set.BestScenario(); ok {
		t.Errorf("zero budgets produced a best scenario")
	}
}

func TestBuildNegativeBudgetsTreatedAsZero(t *testing.T) {
	set := Build(nil, catalog.Default(), -10, -5, "")

	if len(set.Scenarios) != 0 {
		t.Errorf("negative budgets built scenarios: %v", set.Scenarios)
	}
}

func TestBuildEmptyCatalog(t *testing.T) {
	set := Build(nil, catalog.Catalog{}, 30.00, 20.00, "")

	// Scenarios exist but hold nothing; the caller decides how to
	// message an empty result.
	if len(set.Scenarios) != 3 {
		t.Fatalf("built %d scenarios, expected 3", len(set.Scenarios))
	}
	for name, sc := range set.Scenarios {
		if sc.ItemCount != 0 {
			t.Errorf("%s selected %d items from an empty catalog", name, sc.ItemCount)
		}
		if math.Abs(sc.Remaining-sc.Budget) > 0.001 {
			t.Errorf("%s remaining = %v, expected full budget %v", name, sc.Remaining, sc.Budget)
		}
	}
}

func TestBuildCombinedSharesItems(t *testing.T) {
	// Three dual-eligible items: the combined scenario must not buy the
	// same item twice across the two pools.
	cat := testutil.BuildCatalog(1.00, 2.00, 3.00)
	set := Build(nil, cat, 10.00, 10.00, "")

	combined := set.Scenarios[constants.ScenarioCombined]
	seen := make(map[string]bool)
	for _, line := range combined.Selection.Lines {
		if seen[line.Item.ID] {
			t.Errorf("item %s assigned to both pools", line.Item.ID)
		}
		seen[line.Item.ID] = true
	}
	if combined.ItemCount != 3 {
		t.Errorf("combined items = %d, expected 3", combined.ItemCount)
	}
}

func TestBuildDeterminism(t *testing.T) {
	first := Build(nil, catalog.Default(), 30.00, 20.00, "")
	second := Build(nil, catalog.Default(), 30.00, 20.00, "")

	if first.Best != second.Best {
		t.Fatalf("best differs: %s vs %s", first.Best, second.Best)
	}
	for name, sc := range first.Scenarios {
		other := second.Scenarios[name]
		if sc.ItemCount != other.ItemCount || sc.TotalCost != other.TotalCost {
			t.Errorf("%s differs between runs", name)
		}
		for i, line := range sc.Selection.Lines {
			if other.Selection.Lines[i].Item.ID != line.Item.ID {
				t.Errorf("%s line %d differs: %s vs %s", name, i, line.Item.ID, other.Selection.Lines[i].Item.ID)
			}
		}
	}
}
