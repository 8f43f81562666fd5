package validation

import (
	"fmt"
	"strings"
)

// ConfigValidator inspects an estimate configuration for suspicious but
// non-fatal content.
type ConfigValidator struct {
	Estimates []EstimateConfig
}

// EstimateConfig is the validator's view of one configured estimate.
type EstimateConfig struct {
	Name       string
	Active     bool
	Kind       string
	Selections []SelectionConfig
}

// SelectionConfig describes one optional full-home sub-product.
type SelectionConfig struct {
	Category string
	Include  bool
	Present  bool
}

// ValidateSelection warns when an inclusion flag and its config disagree.
func ValidateSelection(estimateName string, selection SelectionConfig) string {
	switch {
	case selection.Include && !selection.Present:
		return fmt.Sprintf("Estimate '%s' includes %s without a configuration - it will be skipped",
			estimateName, selection.Category)
	case !selection.Include && selection.Present:
		return fmt.Sprintf("Estimate '%s' has a %s configuration that is not included - it will be ignored",
			estimateName, selection.Category)
	}
	return ""
}

// ValidateAll validates the entire configuration and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	seen := make(map[string]bool)
	active := 0
	for i, estimate := range cv.Estimates {
		name := strings.TrimSpace(estimate.Name)
		if name == "" {
			warnings = append(warnings, fmt.Sprintf("Estimate #%d has no name", i+1))
			name = fmt.Sprintf("#%d", i+1)
		}
		if !estimate.Active {
			continue
		}
		active++

		if seen[name] {
			warnings = append(warnings, fmt.Sprintf("Estimate name '%s' is used more than once", name))
		}
		seen[name] = true

		for _, selection := range estimate.Selections {
			if warning := ValidateSelection(name, selection); warning != "" {
				warnings = append(warnings, warning)
			}
		}
	}

	if active == 0 {
		warnings = append(warnings, "No active estimates configured")
	}

	return warnings
}
