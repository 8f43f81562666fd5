package quote_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/prasdif/calculator/internal/catalog"
	"github.com/prasdif/calculator/internal/config"
	"github.com/prasdif/calculator/internal/fullhome"
	"github.com/prasdif/calculator/internal/pricing"
	"github.com/prasdif/calculator/internal/quote"
	"github.com/prasdif/calculator/pkg/testutil"
	"go.uber.org/zap"
)

func TestGetQuotes(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	conf := config.Configuration{
		Estimates: []config.Estimate{
			{
				Name:    "Compact kitchen",
				Active:  true,
				Kind:    catalog.Kitchen,
				Kitchen: &pricing.Kitchen{RunningFeet: 8, Finish: catalog.Laminate},
			},
			{
				Name:   "Skipped bed",
				Active: false,
				Kind:   catalog.Bed,
				Bed:    &pricing.Bed{Headboard: true},
			},
			{
				Name:   "Master wardrobe",
				Active: true,
				Kind:   catalog.Wardrobe,
				Wardrobe: &pricing.Wardrobe{
					RunningFeet: 7,
					Type:        catalog.Swing,
					Finish:      catalog.Membrane,
					Accessories: pricing.WardrobeAccessories{DrawerSet: true},
				},
			},
			{
				Name:   "Starter home",
				Active: true,
				Kind:   catalog.FullHome,
				FullHome: &fullhome.Config{
					BHKType:    catalog.OneBHK,
					BHKSize:    catalog.Small,
					IncludeBed: true,
					Bed:        &pricing.Bed{},
				},
			},
		},
	}

	results, err := quote.GetQuotes(logger, conf, nil)
	if err != nil {
		t.Fatalf("GetQuotes() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 quotes, got %d", len(results))
	}

	tests := []struct {
		name          string
		expectedKind  catalog.Category
		expectedTotal float64
	}{
		{"Compact kitchen", catalog.Kitchen, 96000},
		{"Master wardrobe", catalog.Wardrobe, 71200},
		{"Starter home", catalog.FullHome, 80000 + 70000 + 40000 + 50000 + 45000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := testutil.FindQuote(results, tt.name)
			if q == nil {
				t.Fatalf("quote %s not found", tt.name)
			}
			if q.Kind != tt.expectedKind {
				t.Errorf("kind = %s, want %s", q.Kind, tt.expectedKind)
			}
			if q.Result.Total != tt.expectedTotal {
				t.Errorf("total = %v, want %v", q.Result.Total, tt.expectedTotal)
			}
		})
	}

	if testutil.FindQuote(results, "Skipped bed") != nil {
		t.Error("inactive estimate must not be quoted")
	}
}

func TestGetQuotesUsesEngineCatalog(t *testing.T) {
	rates, err := catalog.Load(filepath.Join("..", "catalog", "testdata", "rates.yaml"))
	if err != nil {
		t.Fatalf("catalog.Load() error = %v", err)
	}
	conf := config.Configuration{
		Estimates: []config.Estimate{{
			Name:    "Kitchen",
			Active:  true,
			Kind:    catalog.Kitchen,
			Kitchen: &pricing.Kitchen{RunningFeet: 8, Finish: catalog.Laminate},
		}},
	}

	results, err := quote.GetQuotes(nil, conf, pricing.NewEngine(nil, rates))
	if err != nil {
		t.Fatalf("GetQuotes() error = %v", err)
	}
	if results[0].Result.Total != 8*13000 {
		t.Errorf("total = %v, want %v", results[0].Result.Total, 8*13000)
	}
}

func TestGetQuotesErrors(t *testing.T) {
	tests := []struct {
		name     string
		estimate config.Estimate
		wantErr  string
	}{
		{
			name:     "Invalid product",
			estimate: config.Estimate{Name: "Broken", Active: true, Kind: catalog.Kitchen, Kitchen: &pricing.Kitchen{RunningFeet: -1, Finish: catalog.Laminate}},
			wantErr:  "estimate Broken: invalid running feet",
		},
		{
			name:     "Missing block",
			estimate: config.Estimate{Name: "Empty", Active: true, Kind: catalog.TVUnit},
			wantErr:  "estimate Empty: no tvUnit configuration",
		},
		{
			name:     "Missing full home block",
			estimate: config.Estimate{Name: "Home", Active: true, Kind: catalog.FullHome},
			wantErr:  "no fullHome configuration",
		},
		{
			name: "Invalid full home",
			estimate: config.Estimate{
				Name:     "Home",
				Active:   true,
				Kind:     catalog.FullHome,
				FullHome: &fullhome.Config{BHKType: "9BHK", BHKSize: catalog.Small},
			},
			wantErr: "invalid BHK type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := config.Configuration{Estimates: []config.Estimate{tt.estimate}}
			_, err := quote.GetQuotes(nil, conf, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
