package pricing

import (
	"github.com/prasdif/calculator/pkg/mathutil"
	"github.com/prasdif/calculator/pkg/validation"
)

// LineItem is one priced component of an estimate.
type LineItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Result is a priced estimate. Total is always the sum of the breakdown and
// the budget bounds are the band applied to that total.
type Result struct {
	Total     float64    `json:"total"`
	MinBudget float64    `json:"minBudget"`
	MaxBudget float64    `json:"maxBudget"`
	Breakdown []LineItem `json:"breakdown"`
}

// NewResult totals the breakdown in order and applies the budget band.
func NewResult(breakdown []LineItem, band float64) Result {
	total := 0.0
	for _, item := range breakdown {
		total += item.Amount
	}
	minBudget, maxBudget := mathutil.ApplyBand(total, band)
	return Result{
		Total:     total,
		MinBudget: minBudget,
		MaxBudget: maxBudget,
		Breakdown: breakdown,
	}
}

// CheckRange rejects a result whose amounts overflowed. Inputs can be finite
// and still multiply past the largest float64.
func (r Result) CheckRange() error {
	for _, v := range []float64{r.Total, r.MinBudget, r.MaxBudget} {
		if !mathutil.IsFinite(v) {
			return validation.New("total", "value out of range")
		}
	}
	return nil
}
