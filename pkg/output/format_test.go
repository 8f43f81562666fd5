package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/prasdif/calculator/internal/catalog"
	"github.com/prasdif/calculator/internal/pricing"
	"github.com/prasdif/calculator/internal/quote"
	"github.com/prasdif/calculator/pkg/format"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func sampleQuotes() []quote.Quote {
	return []quote.Quote{
		{
			Name: "Compact kitchen",
			Kind: catalog.Kitchen,
			Result: pricing.Result{
				Total:     101000,
				MinBudget: 90900,
				MaxBudget: 111100,
				Breakdown: []pricing.LineItem{
					{Label: "Kitchen Base (8 ft, laminate)", Amount: 96000},
					{Label: "Soft Close Drawers", Amount: 5000},
				},
			},
		},
		{
			Name: "Bed",
			Kind: catalog.Bed,
			Result: pricing.Result{
				Total:     45000,
				MinBudget: 40500,
				MaxBudget: 49500,
				Breakdown: []pricing.LineItem{{Label: "Platform Bed Base", Amount: 45000}},
			},
		},
	}
}

func TestPrettyFormat(t *testing.T) {
	output := captureStdout(t, func() { PrettyFormat(sampleQuotes()) })

	expected := []string{
		"--- Estimate Compact kitchen (kitchen) ---",
		"--- Estimate Bed (bed) ---",
		"Kitchen Base (8 ft, laminate) | " + format.Currency(96000),
		"Soft Close Drawers           | " + format.Currency(5000),
		"Total                        | " + format.Currency(101000),
		"Budget range                 | " + format.Currency(90900) + " - " + format.Currency(111100),
		"Platform Bed Base | " + format.Currency(45000),
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("PrettyFormat output missing %q\n%s", want, output)
		}
	}
}

func TestPrettyFormatSingleQuoteHasNoTrailingBlankLine(t *testing.T) {
	output := captureStdout(t, func() { PrettyFormat(sampleQuotes()[:1]) })
	if strings.HasSuffix(output, "\n\n") {
		t.Errorf("PrettyFormat added a separator for a single quote")
	}
}

func TestCsvFormat(t *testing.T) {
	var err error
	output := captureStdout(t, func() { err = CsvFormat(sampleQuotes()) })
	if err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(output), "\n")

	expected := []string{
		`estimate,kind,item,amount`,
		`Compact kitchen,kitchen,"Kitchen Base (8 ft, laminate)",96000.00`,
		`Compact kitchen,kitchen,Soft Close Drawers,5000.00`,
		`Compact kitchen,kitchen,total,101000.00`,
		`Compact kitchen,kitchen,minBudget,90900.00`,
		`Compact kitchen,kitchen,maxBudget,111100.00`,
		`Bed,bed,Platform Bed Base,45000.00`,
		`Bed,bed,total,45000.00`,
		`Bed,bed,minBudget,40500.00`,
		`Bed,bed,maxBudget,49500.00`,
	}
	if len(lines) != len(expected) {
		t.Fatalf("CsvFormat produced %d lines, want %d\n%s", len(lines), len(expected), output)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d = %s, want %s", i, lines[i], expected[i])
		}
	}
}

func TestCsvFormatEscapesQuotes(t *testing.T) {
	quotes := sampleQuotes()[1:]
	quotes[0].Name = `Mum's "big" bed, guest room`

	var err error
	output := captureStdout(t, func() { err = CsvFormat(quotes) })
	if err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(output)).ReadAll()
	if err != nil {
		t.Fatalf("CSV output does not parse: %v\n%s", err, output)
	}
	if len(records) != 5 {
		t.Fatalf("got %d records, want 5", len(records))
	}
	for _, record := range records[1:] {
		if len(record) != 4 || record[0] != quotes[0].Name {
			t.Errorf("record = %q, want name %q in 4 columns", record, quotes[0].Name)
		}
	}
}

func TestJSONFormat(t *testing.T) {
	var err error
	output := captureStdout(t, func() { err = JSONFormat(sampleQuotes()) })
	if err != nil {
		t.Fatalf("JSONFormat() error = %v", err)
	}

	var decoded []quote.Quote
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, output)
	}
	if len(decoded) != 2 || decoded[0].Result.MaxBudget != 111100 || decoded[1].Kind != catalog.Bed {
		t.Errorf("decoded = %+v", decoded)
	}
	if !strings.Contains(output, `"minBudget": 90900`) {
		t.Errorf("JSONFormat output missing camelCase budget field\n%s", output)
	}
}

func TestJSONFormatEmpty(t *testing.T) {
	output := captureStdout(t, func() { _ = JSONFormat(nil) })
	if strings.TrimSpace(output) != "[]" {
		t.Errorf("JSONFormat(nil) = %q, want []", output)
	}
}
