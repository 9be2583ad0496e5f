// Package snapshot writes and reads the flat JSON hand-off consumed by
// the nutrition analysis stage. The field names are a stable contract:
// a separate process reads this file.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sreesadhan7/GrocerEase-AI/internal/allocator"
	"github.com/sreesadhan7/GrocerEase-AI/internal/scenario"
	"github.com/sreesadhan7/GrocerEase-AI/pkg/constants"
	"github.com/sreesadhan7/GrocerEase-AI/pkg/mathutil"
)

// ListItem is one selected item in the flattened shopping list.
type ListItem struct {
	Name         string  `json:"name"`
	Brand        string  `json:"brand,omitempty"`
	Size         string  `json:"size,omitempty"`
	Price        float64 `json:"price"`
	Store        string  `json:"store"`
	Category     string  `json:"category"`
	SNAPEligible bool    `json:"snap_eligible"`
	WICEligible  bool    `json:"wic_eligible"`
	PaymentType  string  `json:"payment_type"`
}

// ScenarioSummary is the flattened form of one computed scenario.
type ScenarioSummary struct {
	Budget    float64    `json:"budget"`
	Items     []ListItem `json:"items"`
	TotalCost float64    `json:"total_cost"`
	Remaining float64    `json:"remaining"`
	ItemCount int        `json:"item_count"`
}

// CostBreakdown summarizes the best scenario against the input budgets.
type CostBreakdown struct {
	TotalCost     float64 `json:"total_cost"`
	SNAPBudget    float64 `json:"snap_budget"`
	WICBudget     float64 `json:"wic_budget"`
	RemainingSNAP float64 `json:"remaining_snap"`
	RemainingWIC  float64 `json:"remaining_wic"`
	BestScenario  string  `json:"best_scenario"`
}

// Snapshot is the complete hand-off document.
type Snapshot struct {
	RequestID     string                     `json:"request_id,omitempty"`
	ShoppingList  []ListItem                 `json:"shopping_list"`
	AllScenarios  map[string]ScenarioSummary `json:"all_scenarios"`
	CostBreakdown CostBreakdown              `json:"cost_breakdown"`
	Timestamp     string                     `json:"timestamp"`
}

// FromScenarioSet flattens a scenario set into the hand-off shape. The
// shopping list is the best scenario's selection in assignment order.
func FromScenarioSet(set scenario.Set, snapBudget, wicBudget float64, requestID string) Snapshot {
	snap := Snapshot{
		RequestID:    requestID,
		ShoppingList: []ListItem{},
		AllScenarios: make(map[string]ScenarioSummary),
		Timestamp:    time.Now().Format(time.RFC3339),
	}

	for name, sc := range set.Scenarios {
		snap.AllScenarios[name] = ScenarioSummary{
			Budget:    sc.Budget,
			Items:     flattenLines(sc.Selection.Lines),
			TotalCost: sc.TotalCost,
			Remaining: sc.Remaining,
			ItemCount: sc.ItemCount,
		}
	}

	best, ok := set.BestScenario()
	if ok {
		snap.ShoppingList = flattenLines(best.Selection.Lines)
	}

	snap.CostBreakdown = CostBreakdown{
		TotalCost:     best.TotalCost,
		SNAPBudget:    mathutil.Round(snapBudget),
		WICBudget:     mathutil.Round(wicBudget),
		RemainingSNAP: best.Selection.SNAP.Remaining(),
		RemainingWIC:  best.Selection.WIC.Remaining(),
		BestScenario:  set.Best,
	}

	// Single-pool scenarios leave the other pool's limit at 0; report the
	// untouched budget as fully remaining. With no scenarios at all, both
	// budgets are untouched.
	if !ok || best.Name == constants.ScenarioSNAPOnly {
		snap.CostBreakdown.RemainingWIC = mathutil.Round(wicBudget)
	}
	if !ok || best.Name == constants.ScenarioWICOnly {
		snap.CostBreakdown.RemainingSNAP = mathutil.Round(snapBudget)
	}

	return snap
}

func flattenLines(lines []allocator.Line) []ListItem {
	items := make([]ListItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, ListItem{
			Name:         line.Item.Name,
			Brand:        line.Item.Brand,
			Size:         line.Item.Size,
			Price:        line.Price,
			Store:        line.Item.Store,
			Category:     line.Item.Category,
			SNAPEligible: line.Item.SNAPEligible,
			WICEligible:  line.Item.WICEligible,
			PaymentType:  string(line.Pool),
		})
	}
	return items
}

// Write persists the snapshot as indented JSON at path.
func Write(path string, snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}

// Read loads a snapshot previously written with Write.
func Read(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return snap, nil
}
