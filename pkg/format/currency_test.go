package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Small amount", 2.99, "$2.99"},
		{"Whole dollars", 30, "$30.00"},
		{"Thousands separator", 1234.56, "$1,234.56"},
		{"Negative", -1234.56, "-$1,234.56"},
		{"Zero", 0, "$0.00"},
		{"Sub-cent rounds", 0.005, "$0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Small amount", 2.99, "2.99"},
		{"Thousands separator", 1234.56, "1,234.56"},
		{"Negative keeps sign", -42.5, "-42.50"},
		{"Zero", 0, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumericCurrency(tt.amount); got != tt.expected {
				t.Errorf("NumericCurrency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}
