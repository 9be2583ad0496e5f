// Package scenario builds the spending scenarios for a budget request and
// selects the best one for downstream display and nutrition analysis.
package scenario

import (
	"go.uber.org/zap"

	"github.com/sreesadhan7/GrocerEase-AI/internal/allocator"
	"github.com/sreesadhan7/GrocerEase-AI/internal/catalog"
	"github.com/sreesadhan7/GrocerEase-AI/pkg/constants"
	"github.com/sreesadhan7/GrocerEase-AI/pkg/mathutil"
)

// Scenario is one complete allocation outcome for a combination of
// active budgets.
type Scenario struct {
	Name      string
	Budget    float64
	Selection allocator.Selection
	TotalCost float64
	Remaining float64
	ItemCount int
}

// Set holds every scenario computed for a request plus the name of the
// chosen best scenario.
type Set struct {
	Scenarios map[string]Scenario
	Best      string
}

// BestScenario returns the chosen scenario and whether one exists.
func (s Set) BestScenario() (Scenario, bool) {
	sc, ok := s.Scenarios[s.Best]
	return sc, ok
}

// Build computes the snap_only, wic_only, and combined scenarios for the
// given budgets. A budget of 0 (or less) means that program was not
// requested and its scenarios are omitted. Each scenario is computed
// independently from the catalog; an empty catalog yields empty
// scenarios, not an error.
//
// Best-scenario rule: combined when both budgets are active, otherwise
// the single-program scenario with the larger limit (SNAP wins ties).
func Build(logger *zap.Logger, cat catalog.Catalog, snapBudget, wicBudget float64, preferences string) Set {
	if logger == nil {
		logger = zap.NewNop()
	}
	if snapBudget < 0 {
		snapBudget = 0
	}
	if wicBudget < 0 {
		wicBudget = 0
	}

	opts := allocator.Options{Preferences: preferences}
	set := Set{Scenarios: make(map[string]Scenario)}

	snapEligible := cat.SNAPEligible()
	wicEligible := cat.WICEligible()

	if mathutil.IsPositive(snapBudget) {
		sel := allocator.Allocate(snapEligible, nil, snapBudget, 0, opts)
		set.Scenarios[constants.ScenarioSNAPOnly] = newScenario(constants.ScenarioSNAPOnly, snapBudget, sel)
	}

	if mathutil.IsPositive(wicBudget) {
		sel := allocator.Allocate(nil, wicEligible, 0, wicBudget, opts)
		set.Scenarios[constants.ScenarioWICOnly] = newScenario(constants.ScenarioWICOnly, wicBudget, sel)
	}

	if mathutil.IsPositive(snapBudget) && mathutil.IsPositive(wicBudget) {
		sel := allocator.Allocate(snapEligible, wicEligible, snapBudget, wicBudget, opts)
		set.Scenarios[constants.ScenarioCombined] = newScenario(constants.ScenarioCombined, snapBudget+wicBudget, sel)
	}

	switch {
	case hasScenario(set, constants.ScenarioCombined):
		set.Best = constants.ScenarioCombined
	case snapBudget >= wicBudget && hasScenario(set, constants.ScenarioSNAPOnly):
		set.Best = constants.ScenarioSNAPOnly
	case hasScenario(set, constants.ScenarioWICOnly):
		set.Best = constants.ScenarioWICOnly
	}

	for name, sc := range set.Scenarios {
		logger.Debug("scenario computed",
			zap.String("op", "scenario.Build"),
			zap.String("scenario", name),
			zap.Int("items", sc.ItemCount),
			zap.Float64("totalCost", sc.TotalCost),
			zap.Float64("remaining", sc.Remaining),
		)
		if len(sc.Selection.Skipped) > 0 {
			logger.Warn("items excluded for missing or invalid prices",
				zap.String("op", "scenario.Build"),
				zap.String("scenario", name),
				zap.Strings("itemIds", sc.Selection.Skipped),
			)
		}
	}

	if set.Best != "" {
		best := set.Scenarios[set.Best]
		logger.Info("best scenario selected",
			zap.String("op", "scenario.Build"),
			zap.String("scenario", set.Best),
			zap.Int("items", best.ItemCount),
			zap.Float64("totalCost", best.TotalCost),
		)
	}

	return set
}

func newScenario(name string, budget float64, sel allocator.Selection) Scenario {
	return Scenario{
		Name:      name,
		Budget:    mathutil.Round(budget),
		Selection: sel,
		TotalCost: sel.TotalCost(),
		Remaining: mathutil.Round(budget - sel.TotalCost()),
		ItemCount: sel.ItemCount(),
	}
}

func hasScenario(set Set, name string) bool {
	_, ok := set.Scenarios[name]
	return ok
}
