// Package fullhome prices complete home packages: the fixed rooms of a BHK
// type plus any kitchen, wardrobe, TV unit or bed selected with them.
package fullhome

import (
	"fmt"

	"github.com/prasdif/calculator/internal/catalog"
	"github.com/prasdif/calculator/internal/pricing"
	"github.com/prasdif/calculator/pkg/validation"
	"go.uber.org/zap"
)

// Config describes a full-home estimate. Each Include flag decides whether
// its sub-product is priced; a sub-product config left behind with its flag
// cleared is ignored.
type Config struct {
	BHKType catalog.BHKType `json:"bhkType" yaml:"bhkType" mapstructure:"bhkType"`
	BHKSize catalog.BHKSize `json:"bhkSize" yaml:"bhkSize" mapstructure:"bhkSize"`

	IncludeKitchen  bool `json:"includeKitchen" yaml:"includeKitchen" mapstructure:"includeKitchen"`
	IncludeWardrobe bool `json:"includeWardrobe" yaml:"includeWardrobe" mapstructure:"includeWardrobe"`
	IncludeTVUnit   bool `json:"includeTVUnit" yaml:"includeTVUnit" mapstructure:"includeTVUnit"`
	IncludeBed      bool `json:"includeBed" yaml:"includeBed" mapstructure:"includeBed"`

	Kitchen  *pricing.Kitchen  `json:"kitchen,omitempty" yaml:"kitchen,omitempty" mapstructure:"kitchen"`
	Wardrobe *pricing.Wardrobe `json:"wardrobe,omitempty" yaml:"wardrobe,omitempty" mapstructure:"wardrobe"`
	TVUnit   *pricing.TVUnit   `json:"tvUnit,omitempty" yaml:"tvUnit,omitempty" mapstructure:"tvUnit"`
	Bed      *pricing.Bed      `json:"bed,omitempty" yaml:"bed,omitempty" mapstructure:"bed"`
}

type subProduct struct {
	label   string
	include bool
	product pricing.Product
}

// subProducts lists the optional products in their fixed pricing order. A
// missing config yields a nil product.
func (c Config) subProducts() []subProduct {
	subs := []subProduct{
		{label: "Kitchen", include: c.IncludeKitchen},
		{label: "Wardrobe", include: c.IncludeWardrobe},
		{label: "TV Unit", include: c.IncludeTVUnit},
		{label: "Bed", include: c.IncludeBed},
	}
	if c.Kitchen != nil {
		subs[0].product = *c.Kitchen
	}
	if c.Wardrobe != nil {
		subs[1].product = *c.Wardrobe
	}
	if c.TVUnit != nil {
		subs[2].product = *c.TVUnit
	}
	if c.Bed != nil {
		subs[3].product = *c.Bed
	}
	return subs
}

// Validate checks the BHK selection.
func (c Config) Validate() error {
	if _, err := catalog.ParseBHKType(string(c.BHKType)); err != nil {
		return err
	}
	_, err := catalog.ParseBHKSize(string(c.BHKSize))
	return err
}

// Composer prices full-home packages by delegating sub-products to a
// pricing engine.
type Composer struct {
	logger *zap.Logger
	engine *pricing.Engine
}

// NewComposer returns a composer backed by engine.
func NewComposer(logger *zap.Logger, engine *pricing.Engine) *Composer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = pricing.NewEngine(logger, nil)
	}
	return &Composer{logger: logger, engine: engine}
}

// Price returns the full-home estimate. The four room lines always come
// first, followed by one summary line per included sub-product in the order
// Kitchen, Wardrobe, TV Unit, Bed.
func (c *Composer) Price(cfg Config) (pricing.Result, error) {
	if err := cfg.Validate(); err != nil {
		return pricing.Result{}, err
	}

	rates := c.engine.Catalog()
	rooms, err := rates.RoomCount(cfg.BHKType)
	if err != nil {
		return pricing.Result{}, err
	}

	breakdown := []pricing.LineItem{
		{Label: "Living Room", Amount: rates.Rate(catalog.FullHome, "living")},
		{
			Label:  fmt.Sprintf("Bedrooms (%d)", rooms.Bedrooms),
			Amount: float64(rooms.Bedrooms) * rates.Rate(catalog.FullHome, "bedroom"),
		},
		{
			Label:  fmt.Sprintf("Bathrooms (%d)", rooms.Bathrooms),
			Amount: float64(rooms.Bathrooms) * rates.Rate(catalog.FullHome, "bathroom"),
		},
		{Label: "Dining Area", Amount: rates.Rate(catalog.FullHome, "dining")},
	}

	for _, sub := range cfg.subProducts() {
		if !sub.include {
			continue
		}
		if sub.product == nil {
			c.logger.Debug("skipping included sub-product without configuration",
				zap.String("op", "fullhome.Price"),
				zap.String("product", sub.label),
			)
			continue
		}

		result, err := c.engine.Price(sub.product)
		if err != nil {
			return pricing.Result{}, validation.Prefix(string(sub.product.Category()), err)
		}
		breakdown = append(breakdown, pricing.LineItem{Label: sub.label, Amount: result.Total})
	}

	result := pricing.NewResult(breakdown, rates.Band())
	if err := result.CheckRange(); err != nil {
		return pricing.Result{}, err
	}
	c.logger.Debug("priced full home",
		zap.String("op", "fullhome.Price"),
		zap.String("bhkType", string(cfg.BHKType)),
		zap.Int("lines", len(result.Breakdown)),
		zap.Float64("total", result.Total),
	)
	return result, nil
}
