// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/sreesadhan7/GrocerEase-AI/pkg/constants"
)

// Configuration holds all configuration for the GrocerEase assistant.
type Configuration struct {
	Budgets  BudgetConfig   `yaml:"budgets,omitempty"`
	Catalog  CatalogConfig  `yaml:"catalog,omitempty"`
	Snapshot SnapshotConfig `yaml:"snapshot,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
}

// BudgetConfig holds default benefit amounts used when the request text
// carries none.
type BudgetConfig struct {
	SNAP float64 `yaml:"snap,omitempty"`
	WIC  float64 `yaml:"wic,omitempty"`
}

// CatalogConfig selects the catalog source.
type CatalogConfig struct {
	// File optionally points at a YAML catalog replacing the built-in
	// Walmart/Target data.
	File string `yaml:"file,omitempty"`
}

// SnapshotConfig controls the JSON hand-off file for the nutrition stage.
type SnapshotConfig struct {
	Path string `yaml:"path,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the
// YAML-formatted configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// SnapshotPath returns the configured snapshot path or the default.
func (conf *Configuration) SnapshotPath() string {
	if conf.Snapshot.Path != "" {
		return conf.Snapshot.Path
	}
	return constants.DefaultSnapshotFile
}

// ValidateConfiguration checks for questionable settings and returns
// human-readable warnings. Warnings never block a run; the core degrades
// to empty selections instead of failing.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if conf.Budgets.SNAP < 0 {
		warnings = append(warnings, fmt.Sprintf("default SNAP budget %.2f is negative and will be treated as 0", conf.Budgets.SNAP))
	}
	if conf.Budgets.WIC < 0 {
		warnings = append(warnings, fmt.Sprintf("default WIC budget %.2f is negative and will be treated as 0", conf.Budgets.WIC))
	}
	if conf.Budgets.SNAP == 0 && conf.Budgets.WIC == 0 {
		warnings = append(warnings, "no default budgets configured; requests must state SNAP/WIC amounts explicitly")
	}

	switch conf.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("unknown logging level %q; falling back to info", conf.Logging.Level))
	}

	switch conf.Output.Format {
	case "", constants.OutputFormatPretty, constants.OutputFormatCSV:
	default:
		warnings = append(warnings, fmt.Sprintf("unknown output format %q; falling back to %s", conf.Output.Format, constants.OutputFormatPretty))
	}

	return warnings
}
