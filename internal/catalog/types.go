package catalog

import "github.com/prasdif/calculator/pkg/validation"

// Category identifies a priced product family.
type Category string

// Categories of the rate table.
const (
	Kitchen  Category = "kitchen"
	Wardrobe Category = "wardrobe"
	TVUnit   Category = "tvUnit"
	Bed      Category = "bed"
	FullHome Category = "fullHome"
)

// Finish is the shutter finish of kitchens and wardrobes.
type Finish string

// Supported finishes.
const (
	Laminate Finish = "laminate"
	Membrane Finish = "membrane"
	Acrylic  Finish = "acrylic"
)

// Finishes lists every finish in display order.
var Finishes = []Finish{Laminate, Membrane, Acrylic}

// WardrobeType is the door mechanism of a wardrobe.
type WardrobeType string

// Supported wardrobe types.
const (
	Swing   WardrobeType = "swing"
	Sliding WardrobeType = "sliding"
)

// WardrobeTypes lists every wardrobe type in display order.
var WardrobeTypes = []WardrobeType{Swing, Sliding}

// BHKType is the housing-size class of a full-home estimate.
type BHKType string

// Supported BHK types.
const (
	OneBHK      BHKType = "1BHK"
	TwoBHK      BHKType = "2BHK"
	ThreeBHK    BHKType = "3BHK"
	FourBHK     BHKType = "4BHK"
	FiveBHKPlus BHKType = "5BHK+"
)

// BHKTypes lists every BHK type in ascending size.
var BHKTypes = []BHKType{OneBHK, TwoBHK, ThreeBHK, FourBHK, FiveBHKPlus}

// BHKSize is the floor-area class of a full-home estimate.
type BHKSize string

// Supported BHK sizes.
const (
	Small BHKSize = "small"
	Large BHKSize = "large"
)

// ParseFinish validates a finish identifier.
func ParseFinish(s string) (Finish, error) {
	for _, f := range Finishes {
		if string(f) == s {
			return f, nil
		}
	}
	return "", validation.New("finish", "invalid finish")
}

// ParseWardrobeType validates a wardrobe type identifier.
func ParseWardrobeType(s string) (WardrobeType, error) {
	for _, wt := range WardrobeTypes {
		if string(wt) == s {
			return wt, nil
		}
	}
	return "", validation.New("type", "invalid wardrobe type")
}

// ParseBHKType validates a BHK type identifier.
func ParseBHKType(s string) (BHKType, error) {
	for _, b := range BHKTypes {
		if string(b) == s {
			return b, nil
		}
	}
	return "", validation.New("bhkType", "invalid BHK type")
}

// ParseBHKSize validates a BHK size identifier.
func ParseBHKSize(s string) (BHKSize, error) {
	switch BHKSize(s) {
	case Small, Large:
		return BHKSize(s), nil
	}
	return "", validation.New("bhkSize", "invalid BHK size")
}

// MultiplierKey is the wardrobe rate key of a finish multiplier.
func MultiplierKey(f Finish) string {
	return "finish." + string(f)
}
