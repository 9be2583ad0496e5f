// Package constants provides shared constants for the GrocerEase AI assistant.
package constants

// Benefit program names as they appear in user input, snapshots, and output.
const (
	ProgramSNAP = "SNAP"
	ProgramWIC  = "WIC"
)

// Scenario name constants shared between the builder, snapshot, and output.
const (
	ScenarioSNAPOnly = "snap_only"
	ScenarioWICOnly  = "wic_only"
	ScenarioCombined = "combined"
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultSnapshotFile is where the budget tracker hands its results to
	// the nutrition analysis stage.
	DefaultSnapshotFile = "agent_1_output.json"
)
