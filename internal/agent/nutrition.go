package agent

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/sreesadhan7/GrocerEase-AI/internal/nutrition"
	"github.com/sreesadhan7/GrocerEase-AI/internal/snapshot"
	"github.com/sreesadhan7/GrocerEase-AI/pkg/format"
)

// NutritionAnalystName identifies the nutrition agent in responses.
const NutritionAnalystName = "nutrition_analyst"

// nutritionKeywords drive routing toward the nutrition analyst.
var nutritionKeywords = []string{
	"nutrition", "nutritious", "healthy", "health", "diabetes", "diabetic",
	"heart", "vitamin", "protein", "fiber", "calories", "diet", "dietary",
	"meal plan", "substitut",
}

// budgetRedirects are the phrases the nutrition analyst refuses; budgets
// and prices belong to the budget tracker.
var budgetRedirects = []string{
	"snap $", "wic $", "my snap", "my wic", "budget", "how much",
	"price", "cheaper", "store comparison",
}

// NutritionAnalyst analyzes the shopping list produced by the budget
// tracker. It reads the snapshot hand-off file; it never computes
// selections itself.
type NutritionAnalyst struct {
	logger       *zap.Logger
	snapshotPath string
}

// NewNutritionAnalyst constructs the nutrition agent.
func NewNutritionAnalyst(logger *zap.Logger, snapshotPath string) *NutritionAnalyst {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NutritionAnalyst{logger: logger, snapshotPath: snapshotPath}
}

// CanHandle scores how strongly the text reads as a nutrition question.
func (a *NutritionAnalyst) CanHandle(text string) float64 {
	lower := strings.ToLower(text)
	score := 0.0
	for _, keyword := range nutritionKeywords {
		if strings.Contains(lower, keyword) {
			score = 0.9
			break
		}
	}
	for _, phrase := range budgetRedirects {
		if strings.Contains(lower, phrase) {
			score -= 0.5
			break
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}

// Handle analyzes the most recent shopping list. A missing snapshot is a
// user-facing message, not an error: the assistant always answers.
func (a *NutritionAnalyst) Handle(conv *Context, requestID, text string) (Response, error) {
	snap, err := snapshot.Read(a.snapshotPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Response{
				RequestID: requestID,
				Agent:     NutritionAnalystName,
				Text: "I don't have a shopping list to analyze yet. " +
					"Ask the budget tracker first, e.g. \"I have SNAP $30 and WIC $10\".",
			}, nil
		}
		return Response{}, fmt.Errorf("nutrition analyst: %w", err)
	}

	report := nutrition.Analyze(a.logger, snap.ShoppingList)
	a.logger.Info("shopping list analyzed",
		zap.String("op", "agent.NutritionAnalyst.Handle"),
		zap.String("requestId", requestID),
		zap.Int("matched", len(report.Items)),
		zap.Int("unmatched", len(report.Unmatched)),
	)

	return Response{
		RequestID: requestID,
		Agent:     NutritionAnalystName,
		Text:      renderNutritionReport(snap, report),
	}, nil
}

func renderNutritionReport(snap snapshot.Snapshot, report nutrition.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Nutrition analysis of your %d-item shopping list (%s total):\n",
		len(snap.ShoppingList), format.Currency(snap.CostBreakdown.TotalCost))

	for _, item := range report.Items {
		fmt.Fprintf(&b, "\n%s (%s, %s)\n", item.Facts.Food, item.Item.Store, format.Currency(item.Item.Price))
		fmt.Fprintf(&b, "  %s: %.0f cal, %.1fg protein, %.1fg fiber\n",
			item.Facts.ServingSize, item.Facts.Calories, item.Facts.ProteinG, item.Facts.FiberG)
		if len(item.Facts.Benefits) > 0 {
			fmt.Fprintf(&b, "  Benefits: %s\n", strings.Join(item.Facts.Benefits, "; "))
		}
	}

	if len(report.Unmatched) > 0 {
		fmt.Fprintf(&b, "\nNo nutrition facts available for: %s\n", strings.Join(report.Unmatched, ", "))
	}

	fmt.Fprintf(&b, "\nTotals per serving across the list: %.0f cal, %.1fg protein\n",
		report.TotalCalories, report.TotalProteinG)
	fmt.Fprintf(&b, "High-protein items: %d\n", report.HighProteinCnt)
	if report.AllDiabetesOK {
		b.WriteString("Every analyzed item is diabetes-friendly.\n")
	}
	if report.AllHeartOK {
		b.WriteString("Every analyzed item is heart-healthy.\n")
	}

	return b.String()
}
