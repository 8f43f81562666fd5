package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/prasdif/calculator/internal/catalog"
	"github.com/prasdif/calculator/internal/config"
	"github.com/prasdif/calculator/internal/logging"
	"github.com/prasdif/calculator/internal/pricing"
	"github.com/prasdif/calculator/internal/quote"
	"github.com/prasdif/calculator/pkg/constants"
	"github.com/prasdif/calculator/pkg/output"
	"github.com/prasdif/calculator/pkg/validation"
	"go.uber.org/zap"
)

// ratesPath resolves a rates file relative to the configuration that names it.
func ratesPath(configPath, ratesFile string) string {
	if ratesFile == "" || filepath.IsAbs(ratesFile) {
		return ratesFile
	}
	return filepath.Join(filepath.Dir(configPath), ratesFile)
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// A missing .env is normal; the environment may already be set.
	_ = godotenv.Load()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(), zap.String("op", "main"))
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning, zap.String("op", "main"))
	}

	rates, err := catalog.Load(ratesPath(*configLocation, conf.Catalog.RatesFile))
	if err != nil {
		logger.Fatal("failed to load rate catalog",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	results, err := quote.GetQuotes(logger, *conf, pricing.NewEngine(logger, rates))
	if err != nil {
		logger.Fatal("failed to price estimates",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(results)
	case constants.OutputFormatCSV:
		if err := output.CsvFormat(results); err != nil {
			logger.Fatal("failed to write CSV output", zap.String("op", "main"), zap.Error(err))
		}
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(results); err != nil {
			logger.Fatal("failed to write JSON output", zap.String("op", "main"), zap.Error(err))
		}
	}
}
