// Package output provides utilities for formatting and displaying priced estimates.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/prasdif/calculator/internal/quote"
	"github.com/prasdif/calculator/pkg/constants"
	"github.com/prasdif/calculator/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []quote.Quote) {
	p := message.NewPrinter(language.MustParse(constants.DisplayLocale))
	for _, result := range results {
		width := len("Budget range")
		for _, item := range result.Result.Breakdown {
			if len(item.Label) > width {
				width = len(item.Label)
			}
		}

		fmt.Printf("--- Estimate %s (%s) ---\n", result.Name, result.Kind)
		_, _ = p.Printf("%-*s | %s\n", width, "Item", "Amount")
		_, _ = p.Printf("%-*s | %s\n", width, "____", "______")
		for _, item := range result.Result.Breakdown {
			_, _ = p.Printf("%-*s | %s\n", width, item.Label, format.Currency(item.Amount))
		}
		_, _ = p.Printf("%-*s | %s\n", width, "Total", format.Currency(result.Result.Total))
		_, _ = p.Printf("%-*s | %s - %s\n", width, "Budget range",
			format.Currency(result.Result.MinBudget), format.Currency(result.Result.MaxBudget))
		if len(results) > 1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format, one row per line item
// followed by the total and budget rows of each estimate.
func CsvFormat(results []quote.Quote) error {
	w := csv.NewWriter(os.Stdout)
	if err := w.Write([]string{"estimate", "kind", "item", "amount"}); err != nil {
		return err
	}
	for _, result := range results {
		row := func(item string, amount float64) error {
			return w.Write([]string{result.Name, string(result.Kind), item, strconv.FormatFloat(amount, 'f', 2, 64)})
		}
		for _, item := range result.Result.Breakdown {
			if err := row(item.Label, item.Amount); err != nil {
				return err
			}
		}
		if err := row("total", result.Result.Total); err != nil {
			return err
		}
		if err := row("minBudget", result.Result.MinBudget); err != nil {
			return err
		}
		if err := row("maxBudget", result.Result.MaxBudget); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// JSONFormat outputs the quotes as an indented JSON array.
func JSONFormat(results []quote.Quote) error {
	if results == nil {
		results = []quote.Quote{}
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
