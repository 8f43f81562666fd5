package geometry

import (
	"github.com/prasdif/calculator/pkg/constants"
	"github.com/prasdif/calculator/pkg/mathutil"
	"github.com/prasdif/calculator/pkg/units"
	"github.com/prasdif/calculator/pkg/validation"
)

// TwoSides is a rectangle described by its longer and shorter side, each in
// its own unit.
type TwoSides struct {
	Longer  units.Dimension `json:"longer"`
	Shorter units.Dimension `json:"shorter"`
}

// Validate checks that both sides are positive lengths and that the longer
// side really is longer once both are in meters. Equal sides are rejected.
func (t TwoSides) Validate() error {
	for _, side := range []units.Dimension{t.Longer, t.Shorter} {
		if _, err := units.ParseLinear(string(side.Unit)); err != nil {
			return err
		}
		if !mathutil.IsFinite(side.Magnitude) || side.Magnitude <= 0 {
			return validation.New("sides", "both sides must be greater than 0")
		}
	}
	if err := checkRange(t.Longer.Meters(), t.Shorter.Meters()); err != nil {
		return err
	}
	if t.Shorter.Meters() >= t.Longer.Meters() {
		return validation.New("sides", "the longer side must be greater than the shorter side")
	}
	return nil
}

// Derive returns the geometry of the rectangle in base units.
func (t TwoSides) Derive() (Derived, error) {
	if err := t.Validate(); err != nil {
		return Derived{}, err
	}
	derived := derive(t.Longer.Meters(), t.Shorter.Meters())
	if err := derived.checkRange(); err != nil {
		return Derived{}, err
	}
	return derived, nil
}

// Calculate derives the rectangle and projects it into display units.
// Unset display units follow the longer side.
func (t TwoSides) Calculate(display DisplayUnits) (Display, error) {
	derived, err := t.Derive()
	if err != nil {
		return Display{}, err
	}
	u, err := display.withDefaults(DefaultDisplayUnits(t.Longer.Unit))
	if err != nil {
		return Display{}, err
	}
	projected := derived.Project(u)
	if err := projected.checkRange(); err != nil {
		return Display{}, err
	}
	return projected, nil
}

// Side names one side of a TwoSides rectangle.
type Side string

// Sides that can be stretched.
const (
	LongerSide  Side = "longer"
	ShorterSide Side = "shorter"
)

// Stretch scales one side by factor, keeping its unit. The new magnitude is
// rounded to two decimals and never drops below the minimum stretched side.
func (t TwoSides) Stretch(side Side, factor float64) (TwoSides, error) {
	if !mathutil.IsFinite(factor) || factor <= 0 {
		return TwoSides{}, validation.New("factor", "stretch factor must be greater than 0")
	}
	switch side {
	case LongerSide:
		t.Longer.Magnitude = stretched(t.Longer.Magnitude, factor)
	case ShorterSide:
		t.Shorter.Magnitude = stretched(t.Shorter.Magnitude, factor)
	default:
		return TwoSides{}, validation.Newf("side", "unknown side %q", side)
	}
	if err := checkRange(t.Longer.Meters(), t.Shorter.Meters()); err != nil {
		return TwoSides{}, err
	}
	return t, nil
}

func stretched(magnitude, factor float64) float64 {
	return mathutil.Max(constants.MinimumStretchedSide, mathutil.Round(magnitude*factor))
}
