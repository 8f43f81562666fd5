// Package geometry derives rectangle measurements from two sides or from a
// diagonal. All derivation happens on full-precision base-unit values;
// rounding is applied only when a result is projected for display.
package geometry

import (
	"math"

	"github.com/prasdif/calculator/pkg/mathutil"
	"github.com/prasdif/calculator/pkg/units"
	"github.com/prasdif/calculator/pkg/validation"
)

// checkRange rejects measurements that overflowed to an infinity.
func checkRange(values ...float64) error {
	for _, v := range values {
		if !mathutil.IsFinite(v) {
			return validation.New("value", "value out of range")
		}
	}
	return nil
}

// Derived holds the measurements of a rectangle in base units.
type Derived struct {
	DiagonalMeters   float64 `json:"diagonalMeters"`
	AreaSquareMeters float64 `json:"areaSquareMeters"`
	PerimeterMeters  float64 `json:"perimeterMeters"`
	AngleDegrees     float64 `json:"angleDegrees"`
	RadiusMeters     float64 `json:"radiusMeters"`
}

// derive computes every measurement of a length x width rectangle given in
// meters. The angle between the diagonals is the one facing the shorter
// side, 2·atan(length/width).
func derive(length, width float64) Derived {
	diagonal := math.Hypot(length, width)
	d := Derived{
		DiagonalMeters:   diagonal,
		AreaSquareMeters: length * width,
		PerimeterMeters:  2 * (length + width),
		RadiusMeters:     diagonal / 2,
	}
	if width > 0 {
		d.AngleDegrees = 2 * math.Atan(length/width) * 180 / math.Pi
	}
	return d
}

func (d Derived) checkRange() error {
	return checkRange(d.DiagonalMeters, d.AreaSquareMeters, d.PerimeterMeters, d.AngleDegrees, d.RadiusMeters)
}

// Measurement is a display value rounded to two decimals.
type Measurement struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func measure(value float64, unit string) Measurement {
	return Measurement{Value: mathutil.Round(value), Unit: unit}
}

// DisplayUnits selects the unit each derived measurement is shown in. Empty
// fields fall back to the defaults of the calculator.
type DisplayUnits struct {
	Diagonal  units.Linear `json:"diagonal,omitempty"`
	Area      units.Area   `json:"area,omitempty"`
	Perimeter units.Linear `json:"perimeter,omitempty"`
	Angle     units.Angle  `json:"angle,omitempty"`
	Radius    units.Linear `json:"radius,omitempty"`
}

// DefaultDisplayUnits shows every length in unit, the area in its square and
// the angle in degrees.
func DefaultDisplayUnits(unit units.Linear) DisplayUnits {
	return DisplayUnits{
		Diagonal:  unit,
		Area:      unit.Square(),
		Perimeter: unit,
		Angle:     units.Degree,
		Radius:    unit,
	}
}

// withDefaults fills unset fields from defaults and validates the result.
func (u DisplayUnits) withDefaults(defaults DisplayUnits) (DisplayUnits, error) {
	if u.Diagonal == "" {
		u.Diagonal = defaults.Diagonal
	}
	if u.Area == "" {
		u.Area = defaults.Area
	}
	if u.Perimeter == "" {
		u.Perimeter = defaults.Perimeter
	}
	if u.Angle == "" {
		u.Angle = defaults.Angle
	}
	if u.Radius == "" {
		u.Radius = defaults.Radius
	}

	for _, linear := range []units.Linear{u.Diagonal, u.Perimeter, u.Radius} {
		if _, err := units.ParseLinear(string(linear)); err != nil {
			return DisplayUnits{}, err
		}
	}
	if _, err := units.ParseArea(string(u.Area)); err != nil {
		return DisplayUnits{}, err
	}
	if _, err := units.ParseAngle(string(u.Angle)); err != nil {
		return DisplayUnits{}, err
	}
	return u, nil
}

// Display is a derived geometry projected into display units.
type Display struct {
	Diagonal              Measurement `json:"diagonal"`
	Area                  Measurement `json:"area"`
	Perimeter             Measurement `json:"perimeter"`
	AngleBetweenDiagonals Measurement `json:"angleBetweenDiagonals"`
	CircumcircleRadius    Measurement `json:"circumcircleRadius"`
}

func (d Display) checkRange() error {
	return checkRange(
		d.Diagonal.Value,
		d.Area.Value,
		d.Perimeter.Value,
		d.AngleBetweenDiagonals.Value,
		d.CircumcircleRadius.Value,
	)
}

// Project converts the derived measurements into the given units. Units must
// already be valid; see DisplayUnits.
func (d Derived) Project(u DisplayUnits) Display {
	return Display{
		Diagonal:              measure(u.Diagonal.FromMeters(d.DiagonalMeters), string(u.Diagonal)),
		Area:                  measure(u.Area.FromSquareMeters(d.AreaSquareMeters), string(u.Area)),
		Perimeter:             measure(u.Perimeter.FromMeters(d.PerimeterMeters), string(u.Perimeter)),
		AngleBetweenDiagonals: measure(u.Angle.FromDegrees(d.AngleDegrees), string(u.Angle)),
		CircumcircleRadius:    measure(u.Radius.FromMeters(d.RadiusMeters), string(u.Radius)),
	}
}
