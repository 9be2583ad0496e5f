// Package agent composes the budget tracker and nutrition analyst behind
// an orchestrator that routes free-text requests between them by keyword
// affinity. There are no model calls anywhere; routing is deterministic.
package agent

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sreesadhan7/GrocerEase-AI/internal/scenario"
	"github.com/sreesadhan7/GrocerEase-AI/internal/snapshot"
)

// Response is what a routed request produces. Scenarios and Snapshot are
// populated only for budget requests.
type Response struct {
	RequestID  string
	Agent      string
	Text       string
	Redirected bool
	Scenarios  *scenario.Set
	Snapshot   *snapshot.Snapshot
}

// handler is the common agent surface the orchestrator routes over.
type handler interface {
	CanHandle(text string) float64
	Handle(conv *Context, requestID, text string) (Response, error)
}

// Orchestrator routes user requests to the agent with the highest
// keyword affinity. Ties go to the budget tracker, which also serves as
// the fallback for unrecognized requests.
type Orchestrator struct {
	logger    *zap.Logger
	budget    *BudgetTracker
	nutrition *NutritionAnalyst
}

// NewOrchestrator wires the two agents behind a router.
func NewOrchestrator(logger *zap.Logger, budget *BudgetTracker, nutrition *NutritionAnalyst) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{logger: logger, budget: budget, nutrition: nutrition}
}

// Route returns the chosen agent name for text without executing it.
// Exposed for tests and for display of routing decisions.
func (o *Orchestrator) Route(text string) string {
	budgetScore := o.budget.CanHandle(text)
	nutritionScore := o.nutrition.CanHandle(text)
	if nutritionScore > budgetScore {
		return NutritionAnalystName
	}
	return BudgetTrackerName
}

// Handle routes one user request, records both sides of the exchange in
// the conversation context, and returns the routed agent's response.
func (o *Orchestrator) Handle(conv *Context, text string) (Response, error) {
	if conv == nil {
		conv = &Context{}
	}
	requestID := uuid.NewString()

	routed := o.Route(text)
	o.logger.Info("request routed",
		zap.String("op", "agent.Orchestrator.Handle"),
		zap.String("requestId", requestID),
		zap.String("agent", routed),
	)

	conv.Append("user", text)

	var target handler = o.budget
	if routed == NutritionAnalystName {
		target = o.nutrition
	}

	resp, err := target.Handle(conv, requestID, text)
	if err != nil {
		return Response{}, err
	}

	// A redirect from the budget tracker means the request was really a
	// nutrition question phrased with budget vocabulary; follow it once.
	if resp.Redirected && routed == BudgetTrackerName {
		o.logger.Debug("following redirect to nutrition analyst",
			zap.String("op", "agent.Orchestrator.Handle"),
			zap.String("requestId", requestID),
		)
		resp, err = o.nutrition.Handle(conv, requestID, text)
		if err != nil {
			return Response{}, err
		}
	}

	conv.Append(resp.Agent, resp.Text)
	return resp, nil
}
