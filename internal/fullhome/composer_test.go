package fullhome

import (
	"math"
	"testing"

	"github.com/prasdif/calculator/internal/catalog"
	"github.com/prasdif/calculator/internal/pricing"
	"github.com/prasdif/calculator/pkg/validation"
	"go.uber.org/zap"
)

func newTestComposer() *Composer {
	return NewComposer(zap.NewNop(), pricing.NewEngine(zap.NewNop(), catalog.Default()))
}

func lineLabels(result pricing.Result) []string {
	labels := make([]string, len(result.Breakdown))
	for i, item := range result.Breakdown {
		labels[i] = item.Label
	}
	return labels
}

func equalLabels(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestRoomsOnly(t *testing.T) {
	tests := []struct {
		bhk           catalog.BHKType
		expectedTotal float64
		expectedLines []string
	}{
		{catalog.OneBHK, 80000 + 70000 + 40000 + 50000, []string{"Living Room", "Bedrooms (1)", "Bathrooms (1)", "Dining Area"}},
		{catalog.TwoBHK, 80000 + 140000 + 80000 + 50000, []string{"Living Room", "Bedrooms (2)", "Bathrooms (2)", "Dining Area"}},
		{catalog.ThreeBHK, 80000 + 210000 + 80000 + 50000, []string{"Living Room", "Bedrooms (3)", "Bathrooms (2)", "Dining Area"}},
		{catalog.FourBHK, 80000 + 280000 + 120000 + 50000, []string{"Living Room", "Bedrooms (4)", "Bathrooms (3)", "Dining Area"}},
		{catalog.FiveBHKPlus, 80000 + 350000 + 160000 + 50000, []string{"Living Room", "Bedrooms (5)", "Bathrooms (4)", "Dining Area"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.bhk), func(t *testing.T) {
			result, err := newTestComposer().Price(Config{BHKType: tt.bhk, BHKSize: catalog.Small})
			if err != nil {
				t.Fatalf("Price() error = %v", err)
			}
			if result.Total != tt.expectedTotal {
				t.Errorf("total = %v, want %v", result.Total, tt.expectedTotal)
			}
			if got := lineLabels(result); !equalLabels(got, tt.expectedLines) {
				t.Errorf("labels = %v, want %v", got, tt.expectedLines)
			}
		})
	}
}

func TestTwoBHKWithKitchen(t *testing.T) {
	result, err := newTestComposer().Price(Config{
		BHKType:        catalog.TwoBHK,
		BHKSize:        catalog.Large,
		IncludeKitchen: true,
		Kitchen:        &pricing.Kitchen{RunningFeet: 8, Finish: catalog.Laminate},
	})
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}

	if result.Total != 446000 {
		t.Errorf("total = %v, want 446000", result.Total)
	}
	if result.MinBudget != 401400 || result.MaxBudget != 490600 {
		t.Errorf("budget = [%v, %v], want [401400, 490600]", result.MinBudget, result.MaxBudget)
	}
	last := result.Breakdown[len(result.Breakdown)-1]
	if last.Label != "Kitchen" || last.Amount != 96000 {
		t.Errorf("kitchen line = %+v, want Kitchen 96000", last)
	}
}

func TestIncludeFlagIsAuthoritative(t *testing.T) {
	composer := newTestComposer()
	stale := Config{
		BHKType:  catalog.OneBHK,
		BHKSize:  catalog.Small,
		Kitchen:  &pricing.Kitchen{RunningFeet: 8, Finish: catalog.Laminate},
		Wardrobe: &pricing.Wardrobe{RunningFeet: -5, Type: "bogus", Finish: catalog.Laminate},
		Bed:      &pricing.Bed{Headboard: true},
	}

	result, err := composer.Price(stale)
	if err != nil {
		t.Fatalf("stale configs must not be priced or validated, got %v", err)
	}
	if len(result.Breakdown) != 4 {
		t.Errorf("expected only the room lines, got %v", lineLabels(result))
	}

	flaggedWithoutConfig := Config{
		BHKType:        catalog.OneBHK,
		BHKSize:        catalog.Small,
		IncludeKitchen: true,
		IncludeBed:     true,
		Bed:            &pricing.Bed{},
	}
	result, err = composer.Price(flaggedWithoutConfig)
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	want := []string{"Living Room", "Bedrooms (1)", "Bathrooms (1)", "Dining Area", "Bed"}
	if got := lineLabels(result); !equalLabels(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestOptionalLinesFollowFixedOrder(t *testing.T) {
	composer := newTestComposer()
	fixed := []string{"Kitchen", "Wardrobe", "TV Unit", "Bed"}

	for mask := 0; mask < 16; mask++ {
		cfg := Config{
			BHKType:         catalog.ThreeBHK,
			BHKSize:         catalog.Large,
			IncludeKitchen:  mask&1 != 0,
			IncludeWardrobe: mask&2 != 0,
			IncludeTVUnit:   mask&4 != 0,
			IncludeBed:      mask&8 != 0,
			Kitchen:         &pricing.Kitchen{RunningFeet: 10, Finish: catalog.Membrane, Accessories: pricing.KitchenAccessories{Hob: true}},
			Wardrobe:        &pricing.Wardrobe{RunningFeet: 7, Type: catalog.Sliding, Finish: catalog.Acrylic},
			TVUnit:          &pricing.TVUnit{RunningFeet: 6, ClosedStorage: true},
			Bed:             &pricing.Bed{HydraulicStorage: true},
		}

		result, err := composer.Price(cfg)
		if err != nil {
			t.Fatalf("mask %04b: Price() error = %v", mask, err)
		}

		want := []string{"Living Room", "Bedrooms (3)", "Bathrooms (2)", "Dining Area"}
		for i, label := range fixed {
			if mask&(1<<i) != 0 {
				want = append(want, label)
			}
		}
		if got := lineLabels(result); !equalLabels(got, want) {
			t.Errorf("mask %04b: labels = %v, want %v", mask, got, want)
		}

		sum := 0.0
		for _, item := range result.Breakdown {
			sum += item.Amount
		}
		if math.Abs(sum-result.Total) > 1e-6 {
			t.Errorf("mask %04b: total %v != sum of lines %v", mask, result.Total, sum)
		}
	}
}

func TestSubProductLineUsesSubTotal(t *testing.T) {
	engine := pricing.NewEngine(nil, nil)
	wardrobe := pricing.Wardrobe{
		RunningFeet: 7,
		Type:        catalog.Swing,
		Finish:      catalog.Membrane,
		Accessories: pricing.WardrobeAccessories{DrawerSet: true},
	}
	standalone, err := engine.Wardrobe(wardrobe)
	if err != nil {
		t.Fatalf("Wardrobe() error = %v", err)
	}

	result, err := NewComposer(nil, engine).Price(Config{
		BHKType:         catalog.TwoBHK,
		BHKSize:         catalog.Small,
		IncludeWardrobe: true,
		Wardrobe:        &wardrobe,
	})
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	line := result.Breakdown[4]
	if line.Label != "Wardrobe" || line.Amount != standalone.Total {
		t.Errorf("wardrobe line = %+v, want amount %v", line, standalone.Total)
	}
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		message string
	}{
		{"Unknown BHK type", Config{BHKType: "6BHK", BHKSize: catalog.Small}, "invalid BHK type"},
		{"Missing BHK type", Config{BHKSize: catalog.Small}, "invalid BHK type"},
		{"Unknown BHK size", Config{BHKType: catalog.TwoBHK, BHKSize: "medium"}, "invalid BHK size"},
		{
			"Invalid included kitchen",
			Config{
				BHKType:        catalog.TwoBHK,
				BHKSize:        catalog.Small,
				IncludeKitchen: true,
				Kitchen:        &pricing.Kitchen{RunningFeet: -2, Finish: catalog.Laminate},
			},
			"kitchen: invalid running feet",
		},
		{
			"Invalid included wardrobe",
			Config{
				BHKType:         catalog.TwoBHK,
				BHKSize:         catalog.Small,
				IncludeWardrobe: true,
				Wardrobe:        &pricing.Wardrobe{RunningFeet: 4, Type: "folding", Finish: catalog.Laminate},
			},
			"wardrobe: invalid wardrobe type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestComposer().Price(tt.config)
			if err == nil {
				t.Fatal("expected error")
			}
			if !validation.IsValidation(err) {
				t.Fatalf("expected validation error, got %T", err)
			}
			if err.Error() != tt.message {
				t.Errorf("error = %q, want %q", err.Error(), tt.message)
			}
		})
	}
}

func TestBHKSizeDoesNotChangePrice(t *testing.T) {
	composer := newTestComposer()
	small, err := composer.Price(Config{BHKType: catalog.FourBHK, BHKSize: catalog.Small})
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	large, err := composer.Price(Config{BHKType: catalog.FourBHK, BHKSize: catalog.Large})
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	if small.Total != large.Total {
		t.Errorf("small %v != large %v", small.Total, large.Total)
	}
}

func TestOverflowingFullHomeIsRejected(t *testing.T) {
	composer := newTestComposer()
	kitchen := &pricing.Kitchen{RunningFeet: 9e303, Finish: catalog.Acrylic}

	// Each sub-product is representable on its own.
	if _, err := composer.engine.Kitchen(*kitchen); err != nil {
		t.Fatalf("Kitchen() error = %v", err)
	}

	_, err := composer.Price(Config{
		BHKType:         catalog.TwoBHK,
		BHKSize:         catalog.Small,
		IncludeKitchen:  true,
		IncludeWardrobe: true,
		Kitchen:         kitchen,
		Wardrobe:        &pricing.Wardrobe{RunningFeet: 9e303, Type: catalog.Sliding, Finish: catalog.Acrylic},
	})
	if !validation.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "value out of range" {
		t.Errorf("error = %q, want value out of range", err)
	}
}
