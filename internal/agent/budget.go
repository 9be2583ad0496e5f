package agent

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sreesadhan7/GrocerEase-AI/internal/catalog"
	"github.com/sreesadhan7/GrocerEase-AI/internal/parse"
	"github.com/sreesadhan7/GrocerEase-AI/internal/scenario"
	"github.com/sreesadhan7/GrocerEase-AI/internal/snapshot"
	"github.com/sreesadhan7/GrocerEase-AI/pkg/output"
)

// BudgetTrackerName identifies the budget agent in responses and turns.
const BudgetTrackerName = "budget_tracker"

// budgetKeywords drive routing toward the budget tracker.
var budgetKeywords = []string{
	"snap", "wic", "budget", "price", "cost", "store", "cheap",
	"walmart", "target", "shopping list", "afford", "$",
}

// nutritionRedirects are the phrases the budget tracker refuses to
// answer; it owns budgets and prices only.
var nutritionRedirects = []string{
	"nutrition analysis", "healthy alternatives", "diabetes friendly",
	"heart healthy", "low sodium", "high protein", "vitamin content",
	"nutritional value", "dietary advice", "health benefits",
	"nutritious options", "meal planning",
}

// BudgetTracker finds grocery items within SNAP/WIC budget constraints
// and hands its results to the nutrition stage via a snapshot file.
type BudgetTracker struct {
	logger       *zap.Logger
	catalog      catalog.Catalog
	snapshotPath string
	defaultSNAP  float64
	defaultWIC   float64
}

// NewBudgetTracker constructs the budget agent over an immutable catalog.
func NewBudgetTracker(logger *zap.Logger, cat catalog.Catalog, snapshotPath string, defaultSNAP, defaultWIC float64) *BudgetTracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BudgetTracker{
		logger:       logger,
		catalog:      cat,
		snapshotPath: snapshotPath,
		defaultSNAP:  defaultSNAP,
		defaultWIC:   defaultWIC,
	}
}

// CanHandle scores how strongly the text reads as a budget/price request.
func (a *BudgetTracker) CanHandle(text string) float64 {
	lower := strings.ToLower(text)
	for _, phrase := range nutritionRedirects {
		if strings.Contains(lower, phrase) {
			return 0
		}
	}
	for _, keyword := range budgetKeywords {
		if strings.Contains(lower, keyword) {
			return 0.9
		}
	}
	if parse.BudgetsFromText(text).Requested() {
		return 0.9
	}
	return 0.1
}

// Handle processes one budget request: extract budgets, build scenarios,
// write the snapshot, and render the report. Nutrition questions are
// redirected, never answered.
func (a *BudgetTracker) Handle(conv *Context, requestID, text string) (Response, error) {
	lower := strings.ToLower(text)
	for _, phrase := range nutritionRedirects {
		if strings.Contains(lower, phrase) {
			return Response{
				RequestID: requestID,
				Agent:     BudgetTrackerName,
				Text: "I don't handle nutrition questions; I track budgets, prices, and store comparisons only. " +
					"Ask the nutrition analyst for dietary analysis of your shopping list.",
				Redirected: true,
			}, nil
		}
	}

	budgets := parse.BudgetsFromText(text)
	if !budgets.Requested() {
		budgets.SNAP = a.defaultSNAP
		budgets.WIC = a.defaultWIC
	}
	if !budgets.Requested() {
		return Response{
			RequestID: requestID,
			Agent:     BudgetTrackerName,
			Text: "Tell me your benefit amounts, for example: \"I have SNAP $30 and WIC $10\" " +
				"or \"My SNAP is $50\".",
		}, nil
	}

	a.logger.Info("processing budget request",
		zap.String("op", "agent.BudgetTracker.Handle"),
		zap.String("requestId", requestID),
		zap.Float64("snapBudget", budgets.SNAP),
		zap.Float64("wicBudget", budgets.WIC),
	)

	set := scenario.Build(a.logger, a.catalog, budgets.SNAP, budgets.WIC, text)
	snap := snapshot.FromScenarioSet(set, budgets.SNAP, budgets.WIC, requestID)

	if a.snapshotPath != "" {
		if err := snapshot.Write(a.snapshotPath, snap); err != nil {
			return Response{}, fmt.Errorf("budget tracker: %w", err)
		}
		a.logger.Debug("snapshot written",
			zap.String("op", "agent.BudgetTracker.Handle"),
			zap.String("path", a.snapshotPath),
			zap.String("bestScenario", set.Best),
		)
	}

	return Response{
		RequestID: requestID,
		Agent:     BudgetTrackerName,
		Text:      output.PrettyFormat(set, budgets.SNAP, budgets.WIC),
		Scenarios: &set,
		Snapshot:  &snap,
	}, nil
}
