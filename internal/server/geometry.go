package server

import (
	"net/http"

	"github.com/prasdif/calculator/internal/geometry"
	"github.com/prasdif/calculator/pkg/format"
	"github.com/prasdif/calculator/pkg/mathutil"
	"github.com/prasdif/calculator/pkg/units"
	"github.com/prasdif/calculator/pkg/validation"
)

type stretchRequest struct {
	Side   geometry.Side `json:"side"`
	Factor float64       `json:"factor"`
}

type diagonalRequest struct {
	geometry.TwoSides
	Display geometry.DisplayUnits `json:"display"`
	Stretch *stretchRequest       `json:"stretch,omitempty"`
}

type diagonalResponse struct {
	Longer  units.Dimension  `json:"longer"`
	Shorter units.Dimension  `json:"shorter"`
	Derived geometry.Display `json:"derived"`
}

func (h *handler) handleDiagonal(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleDiagonal"
	var req diagonalRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, op, err)
		return
	}

	sides := req.TwoSides
	if req.Stretch != nil {
		stretched, err := sides.Stretch(req.Stretch.Side, req.Stretch.Factor)
		if err != nil {
			h.respondError(w, r, op, err)
			return
		}
		sides = stretched
	}

	display, err := sides.Calculate(req.Display)
	if err != nil {
		h.respondError(w, r, op, err)
		return
	}
	h.respondResult(w, diagonalResponse{Longer: sides.Longer, Shorter: sides.Shorter, Derived: display}, map[string]string{
		"diagonal":              measureText(display.Diagonal),
		"area":                  measureText(display.Area),
		"perimeter":             measureText(display.Perimeter),
		"angleBetweenDiagonals": measureText(display.AngleBetweenDiagonals),
		"circumcircleRadius":    measureText(display.CircumcircleRadius),
	})
}

func measureText(m geometry.Measurement) string {
	return format.Measure(m.Value, m.Unit)
}

// rectangleRequest replays the edits of the diagonal-editable calculator in a
// fixed order: sides, diagonal, per-field units, then convertAll.
type rectangleRequest struct {
	Length        *units.Dimension `json:"length,omitempty"`
	Width         *units.Dimension `json:"width,omitempty"`
	Diagonal      *units.Dimension `json:"diagonal,omitempty"`
	LengthUnit    string           `json:"lengthUnit,omitempty"`
	WidthUnit     string           `json:"widthUnit,omitempty"`
	DiagonalUnit  string           `json:"diagonalUnit,omitempty"`
	PerimeterUnit string           `json:"perimeterUnit,omitempty"`
	AreaUnit      string           `json:"areaUnit,omitempty"`
	ConvertAll    string           `json:"convertAll,omitempty"`
}

func (req rectangleRequest) apply() (geometry.Rectangle, error) {
	rect := geometry.DefaultRectangle()
	var err error

	if req.Length != nil {
		if rect, err = rect.WithLength(*req.Length); err != nil {
			return geometry.Rectangle{}, err
		}
	}
	if req.Width != nil {
		if rect, err = rect.WithWidth(*req.Width); err != nil {
			return geometry.Rectangle{}, err
		}
	}
	if req.Diagonal != nil {
		if rect, err = rect.WithDiagonal(*req.Diagonal); err != nil {
			return geometry.Rectangle{}, err
		}
	}

	for _, change := range []struct {
		field geometry.Field
		unit  string
	}{
		{geometry.FieldLength, req.LengthUnit},
		{geometry.FieldWidth, req.WidthUnit},
		{geometry.FieldDiagonal, req.DiagonalUnit},
		{geometry.FieldPerimeter, req.PerimeterUnit},
	} {
		if change.unit == "" {
			continue
		}
		if rect, err = rect.WithUnit(change.field, change.unit); err != nil {
			return geometry.Rectangle{}, err
		}
	}
	if req.AreaUnit != "" {
		if rect, err = rect.WithAreaUnit(req.AreaUnit); err != nil {
			return geometry.Rectangle{}, err
		}
	}
	if req.ConvertAll != "" {
		if rect, err = rect.ConvertAll(req.ConvertAll); err != nil {
			return geometry.Rectangle{}, err
		}
	}
	return rect, nil
}

// rectangleResponse carries the rounded results plus the full-precision
// sides, which a client sends back on its next edit to avoid drift.
type rectangleResponse struct {
	geometry.RectangleResults
	State rectangleState `json:"state"`
}

type rectangleState struct {
	Length   units.Dimension `json:"length"`
	Width    units.Dimension `json:"width"`
	Diagonal units.Dimension `json:"diagonal"`
}

func (h *handler) handleRectangle(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleRectangle"
	var req rectangleRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, op, err)
		return
	}
	rect, err := req.apply()
	if err != nil {
		h.respondError(w, r, op, err)
		return
	}
	results := rect.Results()
	h.respondResult(w, rectangleResponse{
		RectangleResults: results,
		State:            rectangleState{Length: rect.Length(), Width: rect.Width(), Diagonal: rect.Diagonal()},
	}, map[string]string{
		"length":    measureText(results.Length),
		"width":     measureText(results.Width),
		"diagonal":  measureText(results.Diagonal),
		"area":      measureText(results.Area),
		"perimeter": measureText(results.Perimeter),
	})
}

type convertRequest struct {
	Kind  units.Kind `json:"kind"`
	Value float64    `json:"value"`
	From  string     `json:"from"`
	To    string     `json:"to"`
}

type convertResponse struct {
	Value   float64 `json:"value"`
	Rounded float64 `json:"rounded"`
	Unit    string  `json:"unit"`
}

func (h *handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleConvert"
	var req convertRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, op, err)
		return
	}
	if req.Kind == "" {
		h.respondError(w, r, op, validation.New("kind", "unit kind is required"))
		return
	}
	value, err := units.Convert(req.Kind, req.Value, req.From, req.To)
	if err != nil {
		h.respondError(w, r, op, err)
		return
	}
	h.respondResult(w, convertResponse{Value: value, Rounded: mathutil.Round(value), Unit: req.To}, nil)
}

func (h *handler) handleUnits(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[units.Kind][]units.Option{
		units.KindLinear: units.Options(units.KindLinear),
		units.KindArea:   units.Options(units.KindArea),
		units.KindAngle:  units.Options(units.KindAngle),
	})
}
