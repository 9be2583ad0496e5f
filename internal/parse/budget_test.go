package parse

import (
	"math"
	"testing"
)

func TestBudgetsFromText(t *testing.T) {
	tests := []struct {
		name string
		text string
		snap float64
		wic  float64
	}{
		{"Canonical phrasing", "I have SNAP $30 and WIC $10", 30, 10},
		{"Colon form", "SNAP: $40, WIC: $15", 40, 15},
		{"SNAP only", "My SNAP is $50", 50, 0},
		{"WIC only", "I have WIC $25", 25, 0},
		{"Decimal amounts", "snap $45.50 and wic $12.25", 45.50, 12.25},
		{"Amount before program", "$35 SNAP and $5 WIC", 35, 5},
		{"Dollars spelled out", "30 dollars snap", 30, 0},
		{"Bare number before program", "45 snap and 20 wic", 45, 20},
		{"Loose trailing amount", "my snap benefits are around 60", 60, 0},
		{"Lowercase", "i have snap $30 and wic $10", 30, 10},
		{"No amounts", "what groceries can I buy?", 0, 0},
		{"Empty", "", 0, 0},
		{"Programs without numbers", "do you take snap and wic?", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BudgetsFromText(tt.text)
			if math.Abs(got.SNAP-tt.snap) > 0.001 {
				t.Errorf("SNAP = %v, expected %v", got.SNAP, tt.snap)
			}
			if math.Abs(got.WIC-tt.wic) > 0.001 {
				t.Errorf("WIC = %v, expected %v", got.WIC, tt.wic)
			}
		})
	}
}

func TestBudgetsRequested(t *testing.T) {
	tests := []struct {
		name     string
		budgets  Budgets
		expected bool
	}{
		{"Both set", Budgets{SNAP: 30, WIC: 10}, true},
		{"SNAP only", Budgets{SNAP: 30}, true},
		{"WIC only", Budgets{WIC: 10}, true},
		{"Neither", Budgets{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.budgets.Requested(); got != tt.expected {
				t.Errorf("Requested() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
