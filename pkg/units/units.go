// Package units converts linear, area and angle quantities through a
// canonical base unit: meters, square meters and degrees respectively.
//
// Each unit is stored with a single factor to its base unit, and FromBase
// divides by the same factor ToBase multiplies by, so a round trip only
// accumulates floating-point error.
package units

import (
	"math"
	"sort"

	"github.com/prasdif/calculator/pkg/mathutil"
	"github.com/prasdif/calculator/pkg/validation"
)

// Linear identifies a length unit.
type Linear string

// Area identifies an area unit.
type Area string

// Angle identifies an angle unit.
type Angle string

// Linear units, base meters.
const (
	Millimeter Linear = "mm"
	Centimeter Linear = "cm"
	Meter      Linear = "m"
	Kilometer  Linear = "km"
	Inch       Linear = "in"
	Foot       Linear = "ft"
	Yard       Linear = "yd"
	Mile       Linear = "mi"
)

// Area units, base square meters.
const (
	SquareMillimeter Area = "mm2"
	SquareCentimeter Area = "cm2"
	SquareMeter      Area = "m2"
	SquareKilometer  Area = "km2"
	SquareInch       Area = "in2"
	SquareFoot       Area = "ft2"
	SquareYard       Area = "yd2"
	SquareMile       Area = "mi2"
	Are              Area = "a"
	Decare           Area = "da"
	Hectare          Area = "ha"
	Acre             Area = "ac"
)

// Angle units, base degrees.
const (
	Degree  Angle = "deg"
	Radian  Angle = "rad"
	Gradian Angle = "gon"
	Turn    Angle = "turn"
)

var errOutOfRange = validation.New("value", "value out of range")

// Kind names a family of units.
type Kind string

// Unit families accepted by Convert.
const (
	KindLinear Kind = "linear"
	KindArea   Kind = "area"
	KindAngle  Kind = "angle"
)

type unitInfo struct {
	factor float64
	label  string
}

var linearUnits = map[Linear]unitInfo{
	Millimeter: {0.001, "millimeters (mm)"},
	Centimeter: {0.01, "centimeters (cm)"},
	Meter:      {1, "meters (m)"},
	Kilometer:  {1000, "kilometers (km)"},
	Inch:       {0.0254, "inches (in)"},
	Foot:       {0.3048, "feet (ft)"},
	Yard:       {0.9144, "yards (yd)"},
	Mile:       {1609.344, "miles (mi)"},
}

var areaUnits = map[Area]unitInfo{
	SquareMillimeter: {1e-6, "square millimeters (mm²)"},
	SquareCentimeter: {1e-4, "square centimeters (cm²)"},
	SquareMeter:      {1, "square meters (m²)"},
	SquareKilometer:  {1e6, "square kilometers (km²)"},
	SquareInch:       {0.00064516, "square inches (in²)"},
	SquareFoot:       {0.09290304, "square feet (ft²)"},
	SquareYard:       {0.83612736, "square yards (yd²)"},
	SquareMile:       {2589988.110336, "square miles (mi²)"},
	Are:              {100, "ares (a)"},
	Decare:           {1000, "decares (da)"},
	Hectare:          {10000, "hectares (ha)"},
	Acre:             {4046.8564224, "acres (ac)"},
}

var angleUnits = map[Angle]unitInfo{
	Degree:  {1, "degrees (deg)"},
	Radian:  {180 / math.Pi, "radians (rad)"},
	Gradian: {0.9, "gradians (gon)"},
	Turn:    {360, "turns (turn)"},
}

var squareOf = map[Linear]Area{
	Millimeter: SquareMillimeter,
	Centimeter: SquareCentimeter,
	Meter:      SquareMeter,
	Kilometer:  SquareKilometer,
	Inch:       SquareInch,
	Foot:       SquareFoot,
	Yard:       SquareYard,
	Mile:       SquareMile,
}

// ParseLinear validates a linear unit identifier.
func ParseLinear(s string) (Linear, error) {
	u := Linear(s)
	if !u.Valid() {
		return "", validation.Newf("unit", "unknown linear unit %q", s)
	}
	return u, nil
}

// ParseArea validates an area unit identifier.
func ParseArea(s string) (Area, error) {
	u := Area(s)
	if !u.Valid() {
		return "", validation.Newf("unit", "unknown area unit %q", s)
	}
	return u, nil
}

// ParseAngle validates an angle unit identifier.
func ParseAngle(s string) (Angle, error) {
	u := Angle(s)
	if !u.Valid() {
		return "", validation.Newf("unit", "unknown angle unit %q", s)
	}
	return u, nil
}

// Valid reports whether u is a known linear unit.
func (u Linear) Valid() bool {
	_, ok := linearUnits[u]
	return ok
}

// Valid reports whether u is a known area unit.
func (u Area) Valid() bool {
	_, ok := areaUnits[u]
	return ok
}

// Valid reports whether u is a known angle unit.
func (u Angle) Valid() bool {
	_, ok := angleUnits[u]
	return ok
}

// Square returns the area unit matching a linear unit.
func (u Linear) Square() Area {
	return squareOf[u]
}

// Label returns the human-readable name of the unit.
func (u Linear) Label() string { return linearUnits[u].label }

// Label returns the human-readable name of the unit.
func (u Area) Label() string { return areaUnits[u].label }

// Label returns the human-readable name of the unit.
func (u Angle) Label() string { return angleUnits[u].label }

// ToMeters converts a length in u to meters. u must be valid; see Valid.
func (u Linear) ToMeters(value float64) float64 {
	return value * linearUnits[u].factor
}

// FromMeters converts a length in meters to u. u must be valid.
func (u Linear) FromMeters(meters float64) float64 {
	return meters / linearUnits[u].factor
}

// ToSquareMeters converts an area in u to square meters. u must be valid.
func (u Area) ToSquareMeters(value float64) float64 {
	return value * areaUnits[u].factor
}

// FromSquareMeters converts an area in square meters to u. u must be valid.
func (u Area) FromSquareMeters(sqm float64) float64 {
	return sqm / areaUnits[u].factor
}

// ToDegrees converts an angle in u to degrees. u must be valid.
func (u Angle) ToDegrees(value float64) float64 {
	return value * angleUnits[u].factor
}

// FromDegrees converts an angle in degrees to u. u must be valid.
func (u Angle) FromDegrees(deg float64) float64 {
	return deg / angleUnits[u].factor
}

func factorFor(kind Kind, unit string) (float64, error) {
	var (
		info unitInfo
		ok   bool
	)
	switch kind {
	case KindLinear:
		info, ok = linearUnits[Linear(unit)]
	case KindArea:
		info, ok = areaUnits[Area(unit)]
	case KindAngle:
		info, ok = angleUnits[Angle(unit)]
	default:
		return 0, validation.Newf("kind", "unknown unit kind %q", kind)
	}
	if !ok {
		return 0, validation.Newf("unit", "unknown %s unit %q", kind, unit)
	}
	return info.factor, nil
}

// ToBase converts value expressed in unit to the base unit of kind.
func ToBase(kind Kind, value float64, unit string) (float64, error) {
	factor, err := factorFor(kind, unit)
	if err != nil {
		return 0, err
	}
	return value * factor, nil
}

// FromBase converts a base-unit value of kind to unit.
func FromBase(kind Kind, value float64, unit string) (float64, error) {
	factor, err := factorFor(kind, unit)
	if err != nil {
		return 0, err
	}
	return value / factor, nil
}

// Convert converts value between two units of the same kind.
func Convert(kind Kind, value float64, from, to string) (float64, error) {
	if !mathutil.IsFinite(value) {
		return 0, validation.New("value", "value must be a finite number")
	}
	base, err := ToBase(kind, value, from)
	if err != nil {
		return 0, err
	}
	converted, err := FromBase(kind, base, to)
	if err != nil {
		return 0, err
	}
	if !mathutil.IsFinite(base) || !mathutil.IsFinite(converted) {
		return 0, errOutOfRange
	}
	return converted, nil
}

// Option describes a selectable unit.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Options lists the units of kind ordered by size.
func Options(kind Kind) []Option {
	type entry struct {
		id string
		unitInfo
	}
	var entries []entry
	switch kind {
	case KindLinear:
		for u, info := range linearUnits {
			entries = append(entries, entry{string(u), info})
		}
	case KindArea:
		for u, info := range areaUnits {
			entries = append(entries, entry{string(u), info})
		}
	case KindAngle:
		for u, info := range angleUnits {
			entries = append(entries, entry{string(u), info})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].factor < entries[j].factor
	})

	options := make([]Option, 0, len(entries))
	for _, e := range entries {
		options = append(options, Option{ID: e.id, Label: e.label})
	}
	return options
}
