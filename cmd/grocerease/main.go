package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sreesadhan7/GrocerEase-AI/internal/agent"
	"github.com/sreesadhan7/GrocerEase-AI/internal/catalog"
	"github.com/sreesadhan7/GrocerEase-AI/internal/config"
	"github.com/sreesadhan7/GrocerEase-AI/pkg/constants"
	"github.com/sreesadhan7/GrocerEase-AI/pkg/output"
	"github.com/sreesadhan7/GrocerEase-AI/pkg/validation"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	request := flag.String("request", "", "free-text request, e.g. \"I have SNAP $30 and WIC $10\"")
	snapBudget := flag.Float64("snap", 0, "SNAP budget override (skips text parsing)")
	wicBudget := flag.Float64("wic", 0, "WIC budget override (skips text parsing)")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	snapshotFlag := flag.String("snapshot", "", "snapshot file path override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	if err := validation.ValidateBudgets(*snapBudget, *wicBudget); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Load the catalog: built-in Walmart/Target data unless the config
	// points at a catalog file.
	cat := catalog.Default()
	if conf.Catalog.File != "" {
		cat, err = catalog.Load(conf.Catalog.File)
		if err != nil {
			logger.Fatal("failed to load catalog",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	snapshotPath := conf.SnapshotPath()
	if *snapshotFlag != "" {
		snapshotPath = *snapshotFlag
	}

	budgetAgent := agent.NewBudgetTracker(logger, cat, snapshotPath, conf.Budgets.SNAP, conf.Budgets.WIC)
	nutritionAgent := agent.NewNutritionAnalyst(logger, snapshotPath)
	orchestrator := agent.NewOrchestrator(logger, budgetAgent, nutritionAgent)

	// Explicit budget flags bypass the router and text parsing.
	text := *request
	if *snapBudget > 0 || *wicBudget > 0 {
		text = fmt.Sprintf("I have SNAP $%.2f and WIC $%.2f", *snapBudget, *wicBudget)
	}
	if text == "" {
		text = "budget" // route to the tracker, which replies with usage help
	}

	conv := &agent.Context{}
	resp, err := orchestrator.Handle(conv, text)
	if err != nil {
		logger.Fatal("failed to process request",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch outputFormat {
	case constants.OutputFormatCSV:
		if resp.Scenarios != nil {
			fmt.Print(output.CsvFormat(*resp.Scenarios))
		} else {
			fmt.Println(resp.Text)
		}
	default:
		fmt.Println(resp.Text)
	}
}
