package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prasdif/calculator/internal/catalog"
	"github.com/prasdif/calculator/internal/fullhome"
	"github.com/prasdif/calculator/internal/pricing"
	"github.com/prasdif/calculator/pkg/validation"
)

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
		{
			name:       "Sample estimates",
			configPath: filepath.Join("testdata", "estimates.yaml"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("LoadConfiguration() error = %v", err)
				return
			}
			if config == nil {
				t.Errorf("LoadConfiguration() returned nil config")
			}
		})
	}
}

func TestLoadConfigurationDecodesEstimates(t *testing.T) {
	conf, err := LoadConfiguration(filepath.Join("testdata", "estimates.yaml"))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("logging = %+v", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("output format = %q, want csv", conf.Output.Format)
	}
	if conf.Catalog.RatesFile != "rates.yaml" {
		t.Errorf("rates file = %q, want rates.yaml", conf.Catalog.RatesFile)
	}
	if len(conf.Estimates) != 4 {
		t.Fatalf("expected 4 estimates, got %d", len(conf.Estimates))
	}

	kitchen := conf.Estimates[0]
	if kitchen.Kind != catalog.Kitchen || kitchen.Kitchen == nil {
		t.Fatalf("kitchen estimate = %+v", kitchen)
	}
	if kitchen.Kitchen.RunningFeet != 8 || kitchen.Kitchen.Finish != catalog.Laminate {
		t.Errorf("kitchen = %+v", *kitchen.Kitchen)
	}
	if !kitchen.Kitchen.Accessories.SoftClose || !kitchen.Kitchen.Accessories.Hob || kitchen.Kitchen.Accessories.Chimney {
		t.Errorf("kitchen accessories = %+v", kitchen.Kitchen.Accessories)
	}

	wardrobe := conf.Estimates[1].Wardrobe
	if wardrobe == nil || wardrobe.Type != catalog.Swing || !wardrobe.Accessories.DrawerSet {
		t.Errorf("wardrobe = %+v", wardrobe)
	}

	home := conf.Estimates[3]
	if !home.IsFullHome() || home.FullHome == nil {
		t.Fatalf("full home estimate = %+v", home)
	}
	if home.FullHome.BHKType != catalog.ThreeBHK || home.FullHome.BHKSize != catalog.Large {
		t.Errorf("full home BHK = %s/%s", home.FullHome.BHKType, home.FullHome.BHKSize)
	}
	if !home.FullHome.IncludeKitchen || home.FullHome.IncludeWardrobe || !home.FullHome.IncludeBed {
		t.Errorf("full home flags = %+v", *home.FullHome)
	}
	if home.FullHome.Kitchen == nil || home.FullHome.Kitchen.Finish != catalog.Acrylic {
		t.Errorf("full home kitchen = %+v", home.FullHome.Kitchen)
	}
	if home.FullHome.Bed == nil || !home.FullHome.Bed.Headboard {
		t.Errorf("full home bed = %+v", home.FullHome.Bed)
	}
}

func TestLoadConfigurationEnvironmentOverride(t *testing.T) {
	t.Setenv("CALCULATOR_OUTPUT_FORMAT", "json")
	t.Setenv("CALCULATOR_LOGGING_LEVEL", "warn")

	conf, err := LoadConfiguration(filepath.Join("testdata", "estimates.yaml"))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if conf.Output.Format != "json" {
		t.Errorf("output format = %q, want json", conf.Output.Format)
	}
	if conf.Logging.Level != "warn" {
		t.Errorf("logging level = %q, want warn", conf.Logging.Level)
	}
}

func TestLoadConfigurationMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("estimates: [\n  - name: x\n    active: true\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfiguration(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestActiveEstimates(t *testing.T) {
	conf, err := LoadConfiguration(filepath.Join("testdata", "estimates.yaml"))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	active := conf.ActiveEstimates()
	var names []string
	for _, e := range active {
		names = append(names, e.Name)
	}
	if strings.Join(names, ",") != "Compact kitchen,Master wardrobe,Family home" {
		t.Errorf("active estimates = %v", names)
	}
}

func TestEstimateProduct(t *testing.T) {
	tests := []struct {
		name     string
		estimate Estimate
		wantKind catalog.Category
		wantErr  string
	}{
		{
			name:     "Kitchen",
			estimate: Estimate{Kind: catalog.Kitchen, Kitchen: &pricing.Kitchen{RunningFeet: 4, Finish: catalog.Laminate}},
			wantKind: catalog.Kitchen,
		},
		{
			name:     "Bed",
			estimate: Estimate{Kind: catalog.Bed, Bed: &pricing.Bed{}},
			wantKind: catalog.Bed,
		},
		{
			name:     "TV unit ignores other blocks",
			estimate: Estimate{Kind: catalog.TVUnit, TVUnit: &pricing.TVUnit{RunningFeet: 3}, Bed: &pricing.Bed{}},
			wantKind: catalog.TVUnit,
		},
		{
			name:     "Missing block",
			estimate: Estimate{Kind: catalog.Wardrobe},
			wantErr:  "no wardrobe configuration",
		},
		{
			name:     "Unknown kind",
			estimate: Estimate{Kind: "sofa"},
			wantErr:  `unknown estimate kind "sofa"`,
		},
		{
			name:     "Full home",
			estimate: Estimate{Kind: catalog.FullHome, FullHome: &fullhome.Config{}},
			wantErr:  "a full-home estimate is not a single product",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := tt.estimate.Product()
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("Product() error = %v, want %q", err, tt.wantErr)
				}
				if !validation.IsValidation(err) {
					t.Errorf("expected validation error, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Product() error = %v", err)
			}
			if product.Category() != tt.wantKind {
				t.Errorf("Category() = %s, want %s", product.Category(), tt.wantKind)
			}
		})
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name             string
		config           Configuration
		expectedWarnings []string
	}{
		{
			name: "Clean configuration",
			config: Configuration{
				Output: OutputConfig{Format: "pretty"},
				Estimates: []Estimate{
					{Name: "Kitchen", Active: true, Kind: catalog.Kitchen, Kitchen: &pricing.Kitchen{RunningFeet: 8, Finish: catalog.Laminate}},
				},
			},
		},
		{
			name: "Nothing active",
			config: Configuration{
				Estimates: []Estimate{{Name: "Bed", Kind: catalog.Bed, Bed: &pricing.Bed{}}},
			},
			expectedWarnings: []string{"No active estimates configured"},
		},
		{
			name: "Missing product block",
			config: Configuration{
				Estimates: []Estimate{{Name: "Bare", Active: true, Kind: catalog.Wardrobe}},
			},
			expectedWarnings: []string{"Estimate 'Bare' will fail: no wardrobe configuration"},
		},
		{
			name: "Full home selections disagree",
			config: Configuration{
				Estimates: []Estimate{{
					Name:   "Home",
					Active: true,
					Kind:   catalog.FullHome,
					FullHome: &fullhome.Config{
						BHKType:        catalog.TwoBHK,
						BHKSize:        catalog.Small,
						IncludeKitchen: true,
						Bed:            &pricing.Bed{},
					},
				}},
			},
			expectedWarnings: []string{
				"Estimate 'Home' includes kitchen without a configuration - it will be skipped",
				"Estimate 'Home' has a bed configuration that is not included - it will be ignored",
			},
		},
		{
			name: "Full home without block",
			config: Configuration{
				Estimates: []Estimate{{Name: "Home", Active: true, Kind: catalog.FullHome}},
			},
			expectedWarnings: []string{"Estimate 'Home' will fail: no fullHome configuration"},
		},
		{
			name: "Bad output format",
			config: Configuration{
				Output: OutputConfig{Format: "xml"},
				Estimates: []Estimate{
					{Name: "Bed", Active: true, Kind: catalog.Bed, Bed: &pricing.Bed{}},
				},
			},
			expectedWarnings: []string{"expected output format of pretty, csv or json, got xml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.config.ValidateConfiguration()
			if len(warnings) != len(tt.expectedWarnings) {
				t.Fatalf("warnings = %v, want %v", warnings, tt.expectedWarnings)
			}
			for i := range warnings {
				if warnings[i] != tt.expectedWarnings[i] {
					t.Errorf("warning %d = %q, want %q", i, warnings[i], tt.expectedWarnings[i])
				}
			}
		})
	}
}
