// Package constants provides shared constants for the calculator application.
package constants

// Display and rounding constants
const (
	// DecimalPrecision is the precision for display rounding (2 decimal places)
	DecimalPrecision = 100

	// DefaultBudgetBand is the symmetric fraction applied around a point estimate
	DefaultBudgetBand = 0.1

	// RelativeTolerance bounds the drift allowed by a unit round trip
	RelativeTolerance = 1e-9

	// CurrencySymbol prefixes every displayed amount
	CurrencySymbol = "₹"

	// DisplayLocale is the BCP 47 tag used for number grouping
	DisplayLocale = "en-IN"
)

// Stretch constants for the two-sides calculator
const (
	// MinimumStretchedSide is the smallest magnitude a stretch can produce
	MinimumStretchedSide = 0.1
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default estimate configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix namespaces environment overrides read by viper
	EnvPrefix = "CALCULATOR"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum JSON request body (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultRequestTimeoutSeconds bounds a single request
	DefaultRequestTimeoutSeconds = 10
)
