package units

import (
	"github.com/prasdif/calculator/pkg/mathutil"
	"github.com/prasdif/calculator/pkg/validation"
)

// Dimension pairs a length magnitude with its unit.
type Dimension struct {
	Magnitude float64 `json:"value" yaml:"value"`
	Unit      Linear  `json:"unit" yaml:"unit"`
}

// NewDimension validates the unit and magnitude of a length. Zero is allowed;
// callers that need a strictly positive side check that themselves.
func NewDimension(magnitude float64, unit string) (Dimension, error) {
	u, err := ParseLinear(unit)
	if err != nil {
		return Dimension{}, err
	}
	if !mathutil.IsFinite(magnitude) {
		return Dimension{}, validation.New("value", "value must be a finite number")
	}
	if magnitude < 0 {
		return Dimension{}, validation.New("value", "value must not be negative")
	}
	d := Dimension{Magnitude: magnitude, Unit: u}
	if !mathutil.IsFinite(d.Meters()) {
		return Dimension{}, errOutOfRange
	}
	return d, nil
}

// Meters returns the dimension in the base unit.
func (d Dimension) Meters() float64 {
	return d.Unit.ToMeters(d.Magnitude)
}

// In re-expresses the dimension in another unit without changing its length.
func (d Dimension) In(unit Linear) (Dimension, error) {
	if !d.Unit.Valid() {
		return Dimension{}, validation.Newf("unit", "unknown linear unit %q", d.Unit)
	}
	if !unit.Valid() {
		return Dimension{}, validation.Newf("unit", "unknown linear unit %q", unit)
	}
	converted := Dimension{Magnitude: unit.FromMeters(d.Meters()), Unit: unit}
	if !mathutil.IsFinite(converted.Magnitude) {
		return Dimension{}, errOutOfRange
	}
	return converted, nil
}

// FromMeters builds a dimension of unit from a length in meters. unit must
// be valid.
func FromMeters(meters float64, unit Linear) Dimension {
	return Dimension{Magnitude: unit.FromMeters(meters), Unit: unit}
}
