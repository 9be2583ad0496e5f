// Package nutrition analyzes a shopping list produced by the budget
// tracker. It matches purchased items to a static facts table and
// summarizes protein, calories, and dietary suitability.
package nutrition

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sreesadhan7/GrocerEase-AI/internal/snapshot"
)

// ItemReport pairs one shopping-list item with its matched facts.
type ItemReport struct {
	Item  snapshot.ListItem
	Facts Facts
}

// Report is the outcome of analyzing one shopping list.
type Report struct {
	Items     []ItemReport
	Unmatched []string // item names with no facts entry

	TotalProteinG  float64
	TotalCalories  float64
	AllDiabetesOK  bool
	AllHeartOK     bool
	HighProteinCnt int
}

// Analyze matches each shopping-list item to the facts table by name
// keyword and aggregates per-serving totals. Items without a facts entry
// are reported, not dropped silently.
func Analyze(logger *zap.Logger, list []snapshot.ListItem) Report {
	if logger == nil {
		logger = zap.NewNop()
	}

	report := Report{AllDiabetesOK: true, AllHeartOK: true}
	for _, item := range list {
		facts, ok := lookup(item.Name)
		if !ok {
			report.Unmatched = append(report.Unmatched, item.Name)
			logger.Debug("no nutrition facts for item",
				zap.String("op", "nutrition.Analyze"),
				zap.String("item", item.Name),
			)
			continue
		}
		report.Items = append(report.Items, ItemReport{Item: item, Facts: facts})
		report.TotalProteinG += facts.ProteinG
		report.TotalCalories += facts.Calories
		if !facts.DiabetesFriendly {
			report.AllDiabetesOK = false
		}
		if !facts.HeartHealthy {
			report.AllHeartOK = false
		}
		if facts.HighProtein {
			report.HighProteinCnt++
		}
	}

	if len(report.Items) == 0 {
		report.AllDiabetesOK = false
		report.AllHeartOK = false
	}

	return report
}

func lookup(name string) (Facts, bool) {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lower, kw.substr) {
			return factsTable[kw.key], true
		}
	}
	return Facts{}, false
}
