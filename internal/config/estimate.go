package config

import (
	"github.com/prasdif/calculator/internal/catalog"
	"github.com/prasdif/calculator/internal/fullhome"
	"github.com/prasdif/calculator/internal/pricing"
	"github.com/prasdif/calculator/pkg/validation"
)

// Estimate is one named entry of the configuration. Kind selects which of
// the product blocks is priced; the others are ignored.
type Estimate struct {
	Name     string
	Active   bool
	Kind     catalog.Category
	Kitchen  *pricing.Kitchen
	Wardrobe *pricing.Wardrobe
	TVUnit   *pricing.TVUnit
	Bed      *pricing.Bed
	FullHome *fullhome.Config
}

// IsFullHome reports whether the estimate prices a full-home package.
func (e Estimate) IsFullHome() bool {
	return e.Kind == catalog.FullHome
}

// Product returns the product block selected by Kind. Full-home estimates
// are not products; use FullHome directly.
func (e Estimate) Product() (pricing.Product, error) {
	switch e.Kind {
	case catalog.Kitchen:
		if e.Kitchen != nil {
			return *e.Kitchen, nil
		}
	case catalog.Wardrobe:
		if e.Wardrobe != nil {
			return *e.Wardrobe, nil
		}
	case catalog.TVUnit:
		if e.TVUnit != nil {
			return *e.TVUnit, nil
		}
	case catalog.Bed:
		if e.Bed != nil {
			return *e.Bed, nil
		}
	case catalog.FullHome:
		return nil, validation.New("kind", "a full-home estimate is not a single product")
	default:
		return nil, validation.Newf("kind", "unknown estimate kind %q", e.Kind)
	}
	return nil, validation.Newf(string(e.Kind), "no %s configuration", e.Kind)
}

// check reports whether the estimate has the block its kind needs.
func (e Estimate) check() error {
	if e.IsFullHome() {
		if e.FullHome == nil {
			return validation.New(string(e.Kind), "no fullHome configuration")
		}
		return nil
	}
	_, err := e.Product()
	return err
}

func (e Estimate) selections() []validation.SelectionConfig {
	if !e.IsFullHome() || e.FullHome == nil {
		return nil
	}
	fh := e.FullHome
	return []validation.SelectionConfig{
		{Category: "kitchen", Include: fh.IncludeKitchen, Present: fh.Kitchen != nil},
		{Category: "wardrobe", Include: fh.IncludeWardrobe, Present: fh.Wardrobe != nil},
		{Category: "TV unit", Include: fh.IncludeTVUnit, Present: fh.TVUnit != nil},
		{Category: "bed", Include: fh.IncludeBed, Present: fh.Bed != nil},
	}
}
