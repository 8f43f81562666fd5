// Package config defines the data structures of an estimate configuration
// and includes functions for loading and checking it.
package config

import (
	"fmt"
	"strings"

	"github.com/prasdif/calculator/pkg/constants"
	"github.com/prasdif/calculator/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for a batch of estimates.
type Configuration struct {
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
	Catalog   CatalogConfig `yaml:"catalog,omitempty"`
	Estimates []Estimate
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// CatalogConfig points at an optional file of rate overrides.
type CatalogConfig struct {
	RatesFile string `yaml:"ratesFile,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Settings already present can be overridden from the
// environment, e.g. CALCULATOR_OUTPUT_FORMAT.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range []string{"logging.level", "logging.format", "logging.outputFile", "output.format", "catalog.ratesFile"} {
		v.SetDefault(key, "")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ActiveEstimates returns the estimates that should be priced, in file order.
func (c *Configuration) ActiveEstimates() []Estimate {
	var active []Estimate
	for _, estimate := range c.Estimates {
		if estimate.Active {
			active = append(active, estimate)
		}
	}
	return active
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var estimates []validation.EstimateConfig
	for _, estimate := range c.Estimates {
		estimates = append(estimates, validation.EstimateConfig{
			Name:       estimate.Name,
			Active:     estimate.Active,
			Kind:       string(estimate.Kind),
			Selections: estimate.selections(),
		})
	}

	validator := &validation.ConfigValidator{Estimates: estimates}
	warnings := validator.ValidateAll()

	for _, estimate := range c.ActiveEstimates() {
		if err := estimate.check(); err != nil {
			warnings = append(warnings, fmt.Sprintf("Estimate '%s' will fail: %s", estimate.Name, err))
		}
	}

	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			warnings = append(warnings, err.Error())
		}
	}

	return warnings
}
