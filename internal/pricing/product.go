package pricing

import (
	"fmt"

	"github.com/prasdif/calculator/internal/catalog"
	"github.com/prasdif/calculator/pkg/format"
	"github.com/prasdif/calculator/pkg/mathutil"
	"github.com/prasdif/calculator/pkg/validation"
)

// Product is a priceable configuration: one of Kitchen, Wardrobe, TVUnit or Bed.
type Product interface {
	Category() catalog.Category
	Validate() error
	lineItems(rates *catalog.Catalog) []LineItem
}

type accessory struct {
	key      string
	label    string
	selected bool
}

func accessoryItems(rates *catalog.Catalog, category catalog.Category, accessories []accessory) []LineItem {
	var items []LineItem
	for _, a := range accessories {
		if a.selected {
			items = append(items, LineItem{Label: a.label, Amount: rates.Rate(category, a.key)})
		}
	}
	return items
}

func validateRunningFeet(runningFeet float64) error {
	if !mathutil.IsFinite(runningFeet) || runningFeet < 0 {
		return validation.New("runningFeet", "invalid running feet")
	}
	return nil
}

// KitchenAccessories are the optional kitchen add-ons, in pricing order.
type KitchenAccessories struct {
	SoftClose      bool `json:"softClose" yaml:"softClose" mapstructure:"softClose"`
	CutleryTray    bool `json:"cutleryTray" yaml:"cutleryTray" mapstructure:"cutleryTray"`
	TallUnit       bool `json:"tallUnit" yaml:"tallUnit" mapstructure:"tallUnit"`
	CornerCarousel bool `json:"cornerCarousel" yaml:"cornerCarousel" mapstructure:"cornerCarousel"`
	Chimney        bool `json:"chimney" yaml:"chimney" mapstructure:"chimney"`
	Hob            bool `json:"hob" yaml:"hob" mapstructure:"hob"`
}

func (a KitchenAccessories) list() []accessory {
	return []accessory{
		{"softClose", "Soft Close Drawers", a.SoftClose},
		{"cutleryTray", "Cutlery Tray", a.CutleryTray},
		{"tallUnit", "Tall Unit", a.TallUnit},
		{"cornerCarousel", "Corner Carousel", a.CornerCarousel},
		{"chimney", "Chimney", a.Chimney},
		{"hob", "Hob", a.Hob},
	}
}

// Kitchen is a modular kitchen priced per running foot of cabinetry.
type Kitchen struct {
	RunningFeet float64            `json:"runningFeet" yaml:"runningFeet" mapstructure:"runningFeet"`
	Finish      catalog.Finish     `json:"finish" yaml:"finish" mapstructure:"finish"`
	Accessories KitchenAccessories `json:"accessories" yaml:"accessories" mapstructure:"accessories"`
}

// Category implements Product.
func (Kitchen) Category() catalog.Category { return catalog.Kitchen }

// Validate implements Product.
func (k Kitchen) Validate() error {
	if err := validateRunningFeet(k.RunningFeet); err != nil {
		return err
	}
	_, err := catalog.ParseFinish(string(k.Finish))
	return err
}

func (k Kitchen) lineItems(rates *catalog.Catalog) []LineItem {
	base := LineItem{
		Label:  fmt.Sprintf("Kitchen Base (%s ft, %s)", format.Quantity(k.RunningFeet), k.Finish),
		Amount: k.RunningFeet * rates.Rate(catalog.Kitchen, string(k.Finish)),
	}
	return append([]LineItem{base}, accessoryItems(rates, catalog.Kitchen, k.Accessories.list())...)
}

// WardrobeAccessories are the optional wardrobe add-ons, in pricing order.
type WardrobeAccessories struct {
	DrawerSet       bool `json:"drawerSet" yaml:"drawerSet" mapstructure:"drawerSet"`
	MirrorShutter   bool `json:"mirrorShutter" yaml:"mirrorShutter" mapstructure:"mirrorShutter"`
	Loft            bool `json:"loft" yaml:"loft" mapstructure:"loft"`
	SoftCloseHinges bool `json:"softCloseHinges" yaml:"softCloseHinges" mapstructure:"softCloseHinges"`
}

func (a WardrobeAccessories) list() []accessory {
	return []accessory{
		{"drawerSet", "Drawer Set", a.DrawerSet},
		{"mirrorShutter", "Mirror Shutter", a.MirrorShutter},
		{"loft", "Loft", a.Loft},
		{"softCloseHinges", "Soft Close Hinges", a.SoftCloseHinges},
	}
}

// Wardrobe is priced per running foot by door type, scaled by finish.
type Wardrobe struct {
	RunningFeet float64              `json:"runningFeet" yaml:"runningFeet" mapstructure:"runningFeet"`
	Type        catalog.WardrobeType `json:"type" yaml:"type" mapstructure:"type"`
	Finish      catalog.Finish       `json:"finish" yaml:"finish" mapstructure:"finish"`
	Accessories WardrobeAccessories  `json:"accessories" yaml:"accessories" mapstructure:"accessories"`
}

// Category implements Product.
func (Wardrobe) Category() catalog.Category { return catalog.Wardrobe }

// Validate implements Product.
func (w Wardrobe) Validate() error {
	if err := validateRunningFeet(w.RunningFeet); err != nil {
		return err
	}
	if _, err := catalog.ParseWardrobeType(string(w.Type)); err != nil {
		return err
	}
	_, err := catalog.ParseFinish(string(w.Finish))
	return err
}

func (w Wardrobe) lineItems(rates *catalog.Catalog) []LineItem {
	rate := rates.Rate(catalog.Wardrobe, string(w.Type))
	multiplier := rates.Rate(catalog.Wardrobe, catalog.MultiplierKey(w.Finish))
	base := LineItem{
		Label:  fmt.Sprintf("Wardrobe Base (%s ft, %s, %s)", format.Quantity(w.RunningFeet), w.Type, w.Finish),
		Amount: w.RunningFeet * rate * multiplier,
	}
	return append([]LineItem{base}, accessoryItems(rates, catalog.Wardrobe, w.Accessories.list())...)
}

// TVUnit is priced per running foot with an optional closed-storage upgrade.
type TVUnit struct {
	RunningFeet   float64 `json:"runningFeet" yaml:"runningFeet" mapstructure:"runningFeet"`
	ClosedStorage bool    `json:"closedStorage" yaml:"closedStorage" mapstructure:"closedStorage"`
}

// Category implements Product.
func (TVUnit) Category() catalog.Category { return catalog.TVUnit }

// Validate implements Product.
func (u TVUnit) Validate() error {
	return validateRunningFeet(u.RunningFeet)
}

func (u TVUnit) lineItems(rates *catalog.Catalog) []LineItem {
	items := []LineItem{{
		Label:  fmt.Sprintf("TV Unit Base (%s ft)", format.Quantity(u.RunningFeet)),
		Amount: u.RunningFeet * rates.Rate(catalog.TVUnit, "base"),
	}}
	if u.ClosedStorage {
		items = append(items, LineItem{
			Label:  "Closed Storage Upgrade",
			Amount: u.RunningFeet * rates.Rate(catalog.TVUnit, "closedStorage"),
		})
	}
	return items
}

// Bed is a platform bed with optional storage and headboard.
type Bed struct {
	HydraulicStorage bool `json:"hydraulicStorage" yaml:"hydraulicStorage" mapstructure:"hydraulicStorage"`
	Headboard        bool `json:"headboard" yaml:"headboard" mapstructure:"headboard"`
}

// Category implements Product.
func (Bed) Category() catalog.Category { return catalog.Bed }

// Validate implements Product. Every bed configuration is valid.
func (Bed) Validate() error { return nil }

func (b Bed) lineItems(rates *catalog.Catalog) []LineItem {
	return append(
		[]LineItem{{Label: "Platform Bed Base", Amount: rates.Rate(catalog.Bed, "base")}},
		accessoryItems(rates, catalog.Bed, []accessory{
			{"hydraulicStorage", "Hydraulic Storage", b.HydraulicStorage},
			{"headboard", "Headboard", b.Headboard},
		})...,
	)
}
