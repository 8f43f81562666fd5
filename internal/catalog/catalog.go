// Package catalog holds the read-only rate table every estimate is priced
// against. A Catalog is built once at startup and shared without locking.
package catalog

import (
	"fmt"
	"math"

	"github.com/prasdif/calculator/pkg/constants"
	"github.com/prasdif/calculator/pkg/validation"
	"github.com/spf13/viper"
)

// Catalog is the complete rate table.
type Catalog struct {
	BudgetBand float64       `mapstructure:"budgetBand" yaml:"budgetBand"`
	Kitchen    KitchenRates  `mapstructure:"kitchen" yaml:"kitchen"`
	Wardrobe   WardrobeRates `mapstructure:"wardrobe" yaml:"wardrobe"`
	TVUnit     TVUnitRates   `mapstructure:"tvUnit" yaml:"tvUnit"`
	Bed        BedRates      `mapstructure:"bed" yaml:"bed"`
	FullHome   FullHomeRates `mapstructure:"fullHome" yaml:"fullHome"`
	Rooms      RoomTable     `mapstructure:"rooms" yaml:"rooms"`

	index map[Category]map[string]float64
}

// FinishRates holds one value per finish.
type FinishRates struct {
	Laminate float64 `mapstructure:"laminate" yaml:"laminate"`
	Membrane float64 `mapstructure:"membrane" yaml:"membrane"`
	Acrylic  float64 `mapstructure:"acrylic" yaml:"acrylic"`
}

// KitchenRates prices modular kitchens per running foot.
type KitchenRates struct {
	BaseRates   FinishRates           `mapstructure:"baseRates" yaml:"baseRates"`
	Accessories KitchenAccessoryRates `mapstructure:"accessories" yaml:"accessories"`
}

// KitchenAccessoryRates are flat prices for kitchen add-ons.
type KitchenAccessoryRates struct {
	SoftClose      float64 `mapstructure:"softClose" yaml:"softClose"`
	CutleryTray    float64 `mapstructure:"cutleryTray" yaml:"cutleryTray"`
	TallUnit       float64 `mapstructure:"tallUnit" yaml:"tallUnit"`
	CornerCarousel float64 `mapstructure:"cornerCarousel" yaml:"cornerCarousel"`
	Chimney        float64 `mapstructure:"chimney" yaml:"chimney"`
	Hob            float64 `mapstructure:"hob" yaml:"hob"`
}

// WardrobeRates prices wardrobes per running foot, scaled by finish.
type WardrobeRates struct {
	BaseRates         WardrobeTypeRates      `mapstructure:"baseRates" yaml:"baseRates"`
	FinishMultipliers FinishRates            `mapstructure:"finishMultipliers" yaml:"finishMultipliers"`
	Accessories       WardrobeAccessoryRates `mapstructure:"accessories" yaml:"accessories"`
}

// WardrobeTypeRates holds one base rate per door mechanism.
type WardrobeTypeRates struct {
	Swing   float64 `mapstructure:"swing" yaml:"swing"`
	Sliding float64 `mapstructure:"sliding" yaml:"sliding"`
}

// WardrobeAccessoryRates are flat prices for wardrobe add-ons.
type WardrobeAccessoryRates struct {
	DrawerSet       float64 `mapstructure:"drawerSet" yaml:"drawerSet"`
	MirrorShutter   float64 `mapstructure:"mirrorShutter" yaml:"mirrorShutter"`
	Loft            float64 `mapstructure:"loft" yaml:"loft"`
	SoftCloseHinges float64 `mapstructure:"softCloseHinges" yaml:"softCloseHinges"`
}

// TVUnitRates prices TV units per running foot.
type TVUnitRates struct {
	BaseRate      float64 `mapstructure:"baseRate" yaml:"baseRate"`
	ClosedStorage float64 `mapstructure:"closedStorage" yaml:"closedStorage"`
}

// BedRates are flat bed prices.
type BedRates struct {
	BasePrice        float64 `mapstructure:"basePrice" yaml:"basePrice"`
	HydraulicStorage float64 `mapstructure:"hydraulicStorage" yaml:"hydraulicStorage"`
	Headboard        float64 `mapstructure:"headboard" yaml:"headboard"`
}

// FullHomeRates are flat per-room prices of a full-home package.
type FullHomeRates struct {
	Living   float64 `mapstructure:"living" yaml:"living"`
	Bedroom  float64 `mapstructure:"bedroom" yaml:"bedroom"`
	Bathroom float64 `mapstructure:"bathroom" yaml:"bathroom"`
	Dining   float64 `mapstructure:"dining" yaml:"dining"`
}

// RoomCount is the number of bedrooms and bathrooms priced for a BHK type.
type RoomCount struct {
	Bedrooms  int `mapstructure:"bedrooms" yaml:"bedrooms" json:"bedrooms"`
	Bathrooms int `mapstructure:"bathrooms" yaml:"bathrooms" json:"bathrooms"`
}

// RoomTable maps every BHK type to its room counts.
type RoomTable struct {
	OneBHK      RoomCount `mapstructure:"1BHK" yaml:"1BHK"`
	TwoBHK      RoomCount `mapstructure:"2BHK" yaml:"2BHK"`
	ThreeBHK    RoomCount `mapstructure:"3BHK" yaml:"3BHK"`
	FourBHK     RoomCount `mapstructure:"4BHK" yaml:"4BHK"`
	FiveBHKPlus RoomCount `mapstructure:"5BHK+" yaml:"5BHK+"`
}

func defaults() *Catalog {
	return &Catalog{
		BudgetBand: constants.DefaultBudgetBand,
		Kitchen: KitchenRates{
			BaseRates: FinishRates{Laminate: 12000, Membrane: 14500, Acrylic: 18000},
			Accessories: KitchenAccessoryRates{
				SoftClose:      5000,
				CutleryTray:    2000,
				TallUnit:       8000,
				CornerCarousel: 6000,
				Chimney:        12000,
				Hob:            10000,
			},
		},
		Wardrobe: WardrobeRates{
			BaseRates:         WardrobeTypeRates{Swing: 8000, Sliding: 10000},
			FinishMultipliers: FinishRates{Laminate: 1.0, Membrane: 1.2, Acrylic: 1.3},
			Accessories: WardrobeAccessoryRates{
				DrawerSet:       4000,
				MirrorShutter:   3000,
				Loft:            6000,
				SoftCloseHinges: 2500,
			},
		},
		TVUnit: TVUnitRates{BaseRate: 6000, ClosedStorage: 1500},
		Bed:    BedRates{BasePrice: 45000, HydraulicStorage: 15000, Headboard: 8000},
		FullHome: FullHomeRates{
			Living:   80000,
			Bedroom:  70000,
			Bathroom: 40000,
			Dining:   50000,
		},
		Rooms: RoomTable{
			OneBHK:      RoomCount{Bedrooms: 1, Bathrooms: 1},
			TwoBHK:      RoomCount{Bedrooms: 2, Bathrooms: 2},
			ThreeBHK:    RoomCount{Bedrooms: 3, Bathrooms: 2},
			FourBHK:     RoomCount{Bedrooms: 4, Bathrooms: 3},
			FiveBHKPlus: RoomCount{Bedrooms: 5, Bathrooms: 4},
		},
	}
}

// Default returns the built-in rate table.
func Default() *Catalog {
	c := defaults()
	c.buildIndex()
	return c
}

// Load reads rate overrides from a YAML file on top of the built-in table.
// An empty path returns the defaults. Unknown keys are rejected.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading rate catalog %s, %w", path, err)
	}

	c := defaults()
	if err := v.UnmarshalExact(c); err != nil {
		return nil, fmt.Errorf("unable to decode rate catalog %s, %w", path, err)
	}

	c.buildIndex()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rate catalog %s: %w", path, err)
	}
	return c, nil
}

func (c *Catalog) buildIndex() {
	c.index = map[Category]map[string]float64{
		Kitchen: {
			string(Laminate): c.Kitchen.BaseRates.Laminate,
			string(Membrane): c.Kitchen.BaseRates.Membrane,
			string(Acrylic):  c.Kitchen.BaseRates.Acrylic,
			"softClose":      c.Kitchen.Accessories.SoftClose,
			"cutleryTray":    c.Kitchen.Accessories.CutleryTray,
			"tallUnit":       c.Kitchen.Accessories.TallUnit,
			"cornerCarousel": c.Kitchen.Accessories.CornerCarousel,
			"chimney":        c.Kitchen.Accessories.Chimney,
			"hob":            c.Kitchen.Accessories.Hob,
		},
		Wardrobe: {
			string(Swing):           c.Wardrobe.BaseRates.Swing,
			string(Sliding):         c.Wardrobe.BaseRates.Sliding,
			MultiplierKey(Laminate): c.Wardrobe.FinishMultipliers.Laminate,
			MultiplierKey(Membrane): c.Wardrobe.FinishMultipliers.Membrane,
			MultiplierKey(Acrylic):  c.Wardrobe.FinishMultipliers.Acrylic,
			"drawerSet":             c.Wardrobe.Accessories.DrawerSet,
			"mirrorShutter":         c.Wardrobe.Accessories.MirrorShutter,
			"loft":                  c.Wardrobe.Accessories.Loft,
			"softCloseHinges":       c.Wardrobe.Accessories.SoftCloseHinges,
		},
		TVUnit: {
			"base":          c.TVUnit.BaseRate,
			"closedStorage": c.TVUnit.ClosedStorage,
		},
		Bed: {
			"base":             c.Bed.BasePrice,
			"hydraulicStorage": c.Bed.HydraulicStorage,
			"headboard":        c.Bed.Headboard,
		},
		FullHome: {
			"living":   c.FullHome.Living,
			"bedroom":  c.FullHome.Bedroom,
			"bathroom": c.FullHome.Bathroom,
			"dining":   c.FullHome.Dining,
		},
	}
}

// Validate checks the catalog invariants: every rate is a finite,
// non-negative number and the budget band lies in [0, 1).
func (c *Catalog) Validate() error {
	if c.index == nil {
		c.buildIndex()
	}
	for category, rates := range c.index {
		for key, rate := range rates {
			if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
				return validation.Newf(string(category)+"."+key, "rate %s.%s must be a non-negative number, got %v", category, key, rate)
			}
		}
	}
	if math.IsNaN(c.BudgetBand) || c.BudgetBand < 0 || c.BudgetBand >= 1 {
		return validation.Newf("budgetBand", "budget band must be in [0, 1), got %v", c.BudgetBand)
	}
	for _, bhk := range BHKTypes {
		rooms, _ := c.RoomCount(bhk)
		if rooms.Bedrooms < 0 || rooms.Bathrooms < 0 {
			return validation.Newf("rooms", "room counts for %s must not be negative", bhk)
		}
	}
	return nil
}

// Rate returns the rate stored under category and key. An unknown key is a
// programming error and panics.
func (c *Catalog) Rate(category Category, key string) float64 {
	rates, ok := c.index[category]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown category %q", category))
	}
	rate, ok := rates[key]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown rate %s.%s", category, key))
	}
	return rate
}

// Band returns the budget-band fraction.
func (c *Catalog) Band() float64 {
	return c.BudgetBand
}

// RoomCount returns the bedrooms and bathrooms priced for a BHK type.
func (c *Catalog) RoomCount(bhk BHKType) (RoomCount, error) {
	switch bhk {
	case OneBHK:
		return c.Rooms.OneBHK, nil
	case TwoBHK:
		return c.Rooms.TwoBHK, nil
	case ThreeBHK:
		return c.Rooms.ThreeBHK, nil
	case FourBHK:
		return c.Rooms.FourBHK, nil
	case FiveBHKPlus:
		return c.Rooms.FiveBHKPlus, nil
	}
	return RoomCount{}, validation.New("bhkType", "invalid BHK type")
}
