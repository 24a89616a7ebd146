package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/CharlesKoulier/incorporation-engine/internal/config"
	"github.com/CharlesKoulier/incorporation-engine/internal/engine"
	"github.com/CharlesKoulier/incorporation-engine/internal/server"
	"github.com/CharlesKoulier/incorporation-engine/pkg/adapters"
	"github.com/CharlesKoulier/incorporation-engine/pkg/constants"
	"github.com/CharlesKoulier/incorporation-engine/pkg/output"
	"github.com/CharlesKoulier/incorporation-engine/pkg/simulator"
	"github.com/CharlesKoulier/incorporation-engine/pkg/thresholds"
	"github.com/CharlesKoulier/incorporation-engine/pkg/validation"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
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

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
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
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
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
	// Optional .env for local development; absence is not an error
	_ = godotenv.Load()

	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	catalogLocation := flag.String("catalog", "", "path to threshold catalog file (compiled-in default when empty)")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "start the HTTP API instead of a one-shot evaluation")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	flag.Parse()

	if *serve {
		runServer(*serverConfigLocation, *catalogLocation, *logLevel)
		return
	}

	// Load the config file to get the profile and logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
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

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
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

	catalog, err := loadCatalog(*catalogLocation, conf.Catalog)
	if err != nil {
		logger.Fatal("failed to load threshold catalog",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	profile := adapters.ProfileToCompanyProfile(conf.Profile)

	// Run the recommendation pipeline
	builder := engine.NewBuilder(logger, catalog)
	result := builder.Build(profile)

	// Simulate taxes and charges with the recommended regimes unless the
	// profile already carries selections
	taxRegime := profile.TaxRegime
	if taxRegime == "" {
		taxRegime = result.Recommendation.Fiscal.Tax.Regime
	}
	socialRegime := profile.SocialRegime
	if socialRegime == "" {
		socialRegime = result.Recommendation.Fiscal.Social.Regime
	}
	taxes := simulator.CalculateTaxes(profile.EstimatedTurnover, profile.ProjectedExpenses,
		profile.ProjectedSalary, result.Recommendation.CompanyForm, taxRegime)
	charges := simulator.CalculateSocialCharges(profile.ProjectedSalary, socialRegime)

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(result, &taxes, &charges)
	case constants.OutputFormatCSV:
		output.CsvFormat(result)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(output.NewEnvelope(result, &taxes, &charges)); err != nil {
			logger.Fatal("failed to encode result",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}

// loadCatalog resolves the threshold catalog: CLI flag first, then the
// path in the config file, then the compiled-in default.
func loadCatalog(flagPath, configPath string) (thresholds.Catalog, error) {
	path := flagPath
	if path == "" {
		path = configPath
	}
	if path == "" {
		return thresholds.DefaultCatalog(), nil
	}
	return thresholds.LoadCatalog(path)
}

func runServer(serverConfigLocation, catalogLocation, logLevel string) {
	cfg, err := server.LoadConfig(serverConfigLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration\", \"error\": \"%v\"}\n", err)
		return
	}

	logger, err := initializeLogger(cfg.Logging, logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	catalog, err := loadCatalog(catalogLocation, cfg.Catalog)
	if err != nil {
		logger.Fatal("failed to load threshold catalog",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	handler := server.NewHandler(logger, catalog, cfg.BodySizeBytes(), version)

	logger.Info("Starting HTTP API",
		zap.String("op", "main"),
		zap.String("address", cfg.Address),
	)
	if err := http.ListenAndServe(cfg.Address, handler); err != nil {
		logger.Fatal("server stopped",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
