// Package validation provides boundary validation utilities for output
// formats and budget inputs.
package validation

import (
	"fmt"

	"github.com/sreesadhan7/GrocerEase-AI/pkg/constants"
)

// ValidateOutputFormat validates the output format setting
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (valid: %s, %s)",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV)
	}
}

// ValidateBudgets checks request budgets at the boundary. Negative
// amounts are rejected here so the core only ever sees non-negative
// limits; a zero for both programs is allowed and yields empty results.
func ValidateBudgets(snapBudget, wicBudget float64) error {
	if snapBudget < 0 {
		return fmt.Errorf("SNAP budget cannot be negative: %.2f", snapBudget)
	}
	if wicBudget < 0 {
		return fmt.Errorf("WIC budget cannot be negative: %.2f", wicBudget)
	}
	return nil
}
