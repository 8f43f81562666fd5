package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prasdif/calculator/internal/catalog"
	"github.com/prasdif/calculator/internal/fullhome"
	"github.com/prasdif/calculator/internal/pricing"
	"github.com/prasdif/calculator/pkg/format"
	"github.com/prasdif/calculator/pkg/validation"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// runningFeet only accepts a JSON number. A missing or null value leaves set
// false so the request can be rejected the same way as a bad value.
type runningFeet struct {
	value float64
	set   bool
}

func (f *runningFeet) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.set = false
		return nil
	}
	if err := json.Unmarshal(data, &f.value); err != nil {
		return validation.New("runningFeet", "invalid running feet")
	}
	f.set = true
	return nil
}

func (f runningFeet) get() (float64, error) {
	if !f.set {
		return 0, validation.New("runningFeet", "invalid running feet")
	}
	return f.value, nil
}

type kitchenRequest struct {
	RunningFeet runningFeet                `json:"runningFeet"`
	Finish      catalog.Finish             `json:"finish"`
	Accessories pricing.KitchenAccessories `json:"accessories"`
}

func (k kitchenRequest) product() (pricing.Kitchen, error) {
	feet, err := k.RunningFeet.get()
	if err != nil {
		return pricing.Kitchen{}, err
	}
	return pricing.Kitchen{RunningFeet: feet, Finish: k.Finish, Accessories: k.Accessories}, nil
}

type wardrobeRequest struct {
	RunningFeet runningFeet                 `json:"runningFeet"`
	Type        catalog.WardrobeType        `json:"type"`
	Finish      catalog.Finish              `json:"finish"`
	Accessories pricing.WardrobeAccessories `json:"accessories"`
}

func (wr wardrobeRequest) product() (pricing.Wardrobe, error) {
	feet, err := wr.RunningFeet.get()
	if err != nil {
		return pricing.Wardrobe{}, err
	}
	return pricing.Wardrobe{RunningFeet: feet, Type: wr.Type, Finish: wr.Finish, Accessories: wr.Accessories}, nil
}

type tvUnitRequest struct {
	RunningFeet   runningFeet `json:"runningFeet"`
	ClosedStorage bool        `json:"closedStorage"`
}

func (u tvUnitRequest) product() (pricing.TVUnit, error) {
	feet, err := u.RunningFeet.get()
	if err != nil {
		return pricing.TVUnit{}, err
	}
	return pricing.TVUnit{RunningFeet: feet, ClosedStorage: u.ClosedStorage}, nil
}

type fullHomeRequest struct {
	BHKType         catalog.BHKType  `json:"bhkType"`
	BHKSize         catalog.BHKSize  `json:"bhkSize"`
	IncludeKitchen  bool             `json:"includeKitchen"`
	IncludeWardrobe bool             `json:"includeWardrobe"`
	IncludeTVUnit   bool             `json:"includeTVUnit"`
	IncludeBed      bool             `json:"includeBed"`
	Kitchen         *kitchenRequest  `json:"kitchen"`
	Wardrobe        *wardrobeRequest `json:"wardrobe"`
	TVUnit          *tvUnitRequest   `json:"tvUnit"`
	Bed             *pricing.Bed     `json:"bed"`
}

// config converts the request. Sub-products whose flag is cleared are
// dropped here so a stale block can never fail the request.
func (f fullHomeRequest) config() (fullhome.Config, error) {
	cfg := fullhome.Config{
		BHKType:         f.BHKType,
		BHKSize:         f.BHKSize,
		IncludeKitchen:  f.IncludeKitchen,
		IncludeWardrobe: f.IncludeWardrobe,
		IncludeTVUnit:   f.IncludeTVUnit,
		IncludeBed:      f.IncludeBed,
		Bed:             f.Bed,
	}
	if err := cfg.Validate(); err != nil {
		return fullhome.Config{}, err
	}
	if f.IncludeKitchen && f.Kitchen != nil {
		k, err := f.Kitchen.product()
		if err != nil {
			return fullhome.Config{}, validation.Prefix(string(catalog.Kitchen), err)
		}
		cfg.Kitchen = &k
	}
	if f.IncludeWardrobe && f.Wardrobe != nil {
		wr, err := f.Wardrobe.product()
		if err != nil {
			return fullhome.Config{}, validation.Prefix(string(catalog.Wardrobe), err)
		}
		cfg.Wardrobe = &wr
	}
	if f.IncludeTVUnit && f.TVUnit != nil {
		u, err := f.TVUnit.product()
		if err != nil {
			return fullhome.Config{}, validation.Prefix(string(catalog.TVUnit), err)
		}
		cfg.TVUnit = &u
	}
	return cfg, nil
}

// estimateDisplay renders every amount of a result as rupees.
type estimateDisplay struct {
	Total     string            `json:"total"`
	MinBudget string            `json:"minBudget"`
	MaxBudget string            `json:"maxBudget"`
	Breakdown []lineItemDisplay `json:"breakdown"`
}

type lineItemDisplay struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

func displayEstimate(result pricing.Result) estimateDisplay {
	d := estimateDisplay{
		Total:     format.Currency(result.Total),
		MinBudget: format.Currency(result.MinBudget),
		MaxBudget: format.Currency(result.MaxBudget),
		Breakdown: make([]lineItemDisplay, 0, len(result.Breakdown)),
	}
	for _, item := range result.Breakdown {
		d.Breakdown = append(d.Breakdown, lineItemDisplay{Label: item.Label, Amount: format.Currency(item.Amount)})
	}
	return d
}

func (h *handler) respondEstimate(w http.ResponseWriter, r *http.Request, op string, result pricing.Result, err error) {
	if err != nil {
		h.respondError(w, r, op, err)
		return
	}
	h.logger.Debug("priced estimate",
		zap.String("op", op),
		zap.String("request_id", requestIDFrom(r.Context())),
		zap.Float64("total", result.Total),
	)
	h.respondResult(w, result, displayEstimate(result))
}

func (h *handler) handleKitchen(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleKitchen"
	var req kitchenRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, op, err)
		return
	}
	product, err := req.product()
	if err != nil {
		h.respondError(w, r, op, err)
		return
	}
	result, err := h.engine.Kitchen(product)
	h.respondEstimate(w, r, op, result, err)
}

func (h *handler) handleWardrobe(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleWardrobe"
	var req wardrobeRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, op, err)
		return
	}
	product, err := req.product()
	if err != nil {
		h.respondError(w, r, op, err)
		return
	}
	result, err := h.engine.Wardrobe(product)
	h.respondEstimate(w, r, op, result, err)
}

func (h *handler) handleTVUnit(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleTVUnit"
	var req tvUnitRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, op, err)
		return
	}
	product, err := req.product()
	if err != nil {
		h.respondError(w, r, op, err)
		return
	}
	result, err := h.engine.TVUnit(product)
	h.respondEstimate(w, r, op, result, err)
}

func (h *handler) handleBed(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleBed"
	var req pricing.Bed
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, op, err)
		return
	}
	result, err := h.engine.Bed(req)
	h.respondEstimate(w, r, op, result, err)
}

func (h *handler) handleFullHome(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleFullHome"
	var req fullHomeRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, op, err)
		return
	}
	cfg, err := req.config()
	if err != nil {
		h.respondError(w, r, op, err)
		return
	}
	result, err := h.composer.Price(cfg)
	h.respondEstimate(w, r, op, result, err)
}

// usage documents one estimate endpoint.
type usage struct {
	Message string      `json:"message" yaml:"message"`
	Usage   string      `json:"usage" yaml:"usage"`
	Example interface{} `json:"example" yaml:"example"`
}

var usages = map[string]usage{
	"kitchen": {
		Message: "Kitchen Estimator API",
		Usage:   "POST with a kitchen estimate object",
		Example: pricing.Kitchen{RunningFeet: 8, Finish: catalog.Laminate},
	},
	"wardrobe": {
		Message: "Wardrobe Estimator API",
		Usage:   "POST with a wardrobe estimate object",
		Example: pricing.Wardrobe{RunningFeet: 7, Type: catalog.Swing, Finish: catalog.Laminate},
	},
	"tv-unit": {
		Message: "TV Unit Estimator API",
		Usage:   "POST with a TV unit estimate object",
		Example: pricing.TVUnit{RunningFeet: 6},
	},
	"bed": {
		Message: "Bed Estimator API",
		Usage:   "POST with a bed estimate object",
		Example: pricing.Bed{},
	},
	"fullhome": {
		Message: "Full Home Estimator API",
		Usage:   "POST with a full home estimate object",
		Example: fullhome.Config{BHKType: catalog.TwoBHK, BHKSize: catalog.Small},
	},
}

// handleEstimateUsage describes an estimate endpoint. With ?format=yaml the
// example is returned as YAML, ready to paste into an estimates file.
func (h *handler) handleEstimateUsage(w http.ResponseWriter, r *http.Request) {
	doc, ok := usages[chi.URLParam(r, "category")]
	if !ok {
		h.handleNotFound(w, r)
		return
	}

	if r.URL.Query().Get("format") != "yaml" {
		h.writeJSON(w, http.StatusOK, doc)
		return
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		h.respondError(w, r, "server.handleEstimateUsage", err)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write YAML response", zap.String("op", "server.handleEstimateUsage"), zap.Error(err))
	}
}
