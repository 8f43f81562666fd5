package geometry

import (
	"math"

	"github.com/prasdif/calculator/pkg/mathutil"
	"github.com/prasdif/calculator/pkg/units"
	"github.com/prasdif/calculator/pkg/validation"
)

// Field names a linear quantity of a Rectangle whose display unit can be
// changed on its own.
type Field string

// Rectangle fields.
const (
	FieldLength    Field = "length"
	FieldWidth     Field = "width"
	FieldDiagonal  Field = "diagonal"
	FieldPerimeter Field = "perimeter"
)

// Rectangle is an immutable snapshot of the diagonal-editable calculator.
// Length, width and diagonal are stored in meters at full precision and each
// carries its own display unit. Every edit returns a new snapshot.
type Rectangle struct {
	length   float64
	width    float64
	diagonal float64

	lengthUnit    units.Linear
	widthUnit     units.Linear
	diagonalUnit  units.Linear
	perimeterUnit units.Linear
	areaUnit      units.Area
}

func checkDimension(field string, d units.Dimension) error {
	if _, err := units.ParseLinear(string(d.Unit)); err != nil {
		return err
	}
	if !mathutil.IsFinite(d.Magnitude) || d.Magnitude < 0 {
		return validation.Newf(field, "%s must be a non-negative number", field)
	}
	return nil
}

// inRange rejects a snapshot whose stored or displayed values overflowed.
func (r Rectangle) inRange() (Rectangle, error) {
	area := r.length * r.width
	perimeter := 2 * (r.length + r.width)
	err := checkRange(
		r.length, r.width, r.diagonal, area, perimeter,
		r.lengthUnit.FromMeters(r.length),
		r.widthUnit.FromMeters(r.width),
		r.diagonalUnit.FromMeters(r.diagonal),
		r.areaUnit.FromSquareMeters(area),
		r.perimeterUnit.FromMeters(perimeter),
	)
	if err != nil {
		return Rectangle{}, err
	}
	return r, nil
}

// NewRectangle builds a rectangle from its length and width. The diagonal,
// perimeter and area are shown in the length's unit until changed.
func NewRectangle(length, width units.Dimension) (Rectangle, error) {
	if err := checkDimension("length", length); err != nil {
		return Rectangle{}, err
	}
	if err := checkDimension("width", width); err != nil {
		return Rectangle{}, err
	}
	r := Rectangle{
		length:        length.Meters(),
		width:         width.Meters(),
		lengthUnit:    length.Unit,
		widthUnit:     width.Unit,
		diagonalUnit:  length.Unit,
		perimeterUnit: length.Unit,
		areaUnit:      length.Unit.Square(),
	}
	r.diagonal = math.Hypot(r.length, r.width)
	return r.inRange()
}

// DefaultRectangle is the calculator's starting state: 4 m by 3.5 m.
func DefaultRectangle() Rectangle {
	r, _ := NewRectangle(
		units.Dimension{Magnitude: 4, Unit: units.Meter},
		units.Dimension{Magnitude: 3.5, Unit: units.Meter},
	)
	return r
}

// WithLength sets the length and re-derives the diagonal.
func (r Rectangle) WithLength(length units.Dimension) (Rectangle, error) {
	if err := checkDimension("length", length); err != nil {
		return Rectangle{}, err
	}
	r.length = length.Meters()
	r.lengthUnit = length.Unit
	r.diagonal = math.Hypot(r.length, r.width)
	return r.inRange()
}

// WithWidth sets the width and re-derives the diagonal.
func (r Rectangle) WithWidth(width units.Dimension) (Rectangle, error) {
	if err := checkDimension("width", width); err != nil {
		return Rectangle{}, err
	}
	r.width = width.Meters()
	r.widthUnit = width.Unit
	r.diagonal = math.Hypot(r.length, r.width)
	return r.inRange()
}

// WithDiagonal sets the diagonal and rescales length and width by the same
// ratio so the aspect ratio is kept. A degenerate rectangle has no ratio to
// scale by, so only the diagonal is stored.
func (r Rectangle) WithDiagonal(diagonal units.Dimension) (Rectangle, error) {
	if err := checkDimension("diagonal", diagonal); err != nil {
		return Rectangle{}, err
	}
	target := diagonal.Meters()
	current := math.Hypot(r.length, r.width)

	r.diagonalUnit = diagonal.Unit
	r.diagonal = target
	if current == 0 {
		return r.inRange()
	}

	k := target / current
	r.length *= k
	r.width *= k
	return r.inRange()
}

// WithUnit changes the display unit of one linear field. Stored values are
// untouched.
func (r Rectangle) WithUnit(field Field, unit string) (Rectangle, error) {
	u, err := units.ParseLinear(unit)
	if err != nil {
		return Rectangle{}, err
	}
	switch field {
	case FieldLength:
		r.lengthUnit = u
	case FieldWidth:
		r.widthUnit = u
	case FieldDiagonal:
		r.diagonalUnit = u
	case FieldPerimeter:
		r.perimeterUnit = u
	default:
		return Rectangle{}, validation.Newf("field", "unknown field %q", field)
	}
	return r.inRange()
}

// WithAreaUnit changes the display unit of the area.
func (r Rectangle) WithAreaUnit(unit string) (Rectangle, error) {
	u, err := units.ParseArea(unit)
	if err != nil {
		return Rectangle{}, err
	}
	r.areaUnit = u
	return r.inRange()
}

// ConvertAll shows every field in unit and the area in its square.
func (r Rectangle) ConvertAll(unit string) (Rectangle, error) {
	u, err := units.ParseLinear(unit)
	if err != nil {
		return Rectangle{}, err
	}
	r.lengthUnit = u
	r.widthUnit = u
	r.diagonalUnit = u
	r.perimeterUnit = u
	r.areaUnit = u.Square()
	return r.inRange()
}

// Length returns the length in its display unit at full precision.
func (r Rectangle) Length() units.Dimension { return units.FromMeters(r.length, r.lengthUnit) }

// Width returns the width in its display unit at full precision.
func (r Rectangle) Width() units.Dimension { return units.FromMeters(r.width, r.widthUnit) }

// Diagonal returns the diagonal in its display unit at full precision.
func (r Rectangle) Diagonal() units.Dimension {
	return units.FromMeters(r.diagonal, r.diagonalUnit)
}

// AreaUnit returns the area display unit.
func (r Rectangle) AreaUnit() units.Area { return r.areaUnit }

// PerimeterUnit returns the perimeter display unit.
func (r Rectangle) PerimeterUnit() units.Linear { return r.perimeterUnit }

// RectangleResults are the rounded display values of a Rectangle.
type RectangleResults struct {
	Length    Measurement `json:"length"`
	Width     Measurement `json:"width"`
	Diagonal  Measurement `json:"diagonal"`
	Area      Measurement `json:"area"`
	Perimeter Measurement `json:"perimeter"`
}

// Results rounds every field for display.
func (r Rectangle) Results() RectangleResults {
	return RectangleResults{
		Length:    measure(r.lengthUnit.FromMeters(r.length), string(r.lengthUnit)),
		Width:     measure(r.widthUnit.FromMeters(r.width), string(r.widthUnit)),
		Diagonal:  measure(r.diagonalUnit.FromMeters(r.diagonal), string(r.diagonalUnit)),
		Area:      measure(r.areaUnit.FromSquareMeters(r.length*r.width), string(r.areaUnit)),
		Perimeter: measure(r.perimeterUnit.FromMeters(2*(r.length+r.width)), string(r.perimeterUnit)),
	}
}
