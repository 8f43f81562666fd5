// Package quote defines the data structures of a priced estimate and
// includes functions for pricing every estimate of a configuration.
package quote

import (
	"fmt"

	"github.com/prasdif/calculator/internal/catalog"
	"github.com/prasdif/calculator/internal/config"
	"github.com/prasdif/calculator/internal/fullhome"
	"github.com/prasdif/calculator/internal/pricing"
	"go.uber.org/zap"
)

// Quote holds the priced result of one configured estimate.
type Quote struct {
	Name   string           `json:"name"`
	Kind   catalog.Category `json:"kind"`
	Result pricing.Result   `json:"result"`
}

// Price prices a single estimate.
func Price(engine *pricing.Engine, composer *fullhome.Composer, estimate config.Estimate) (pricing.Result, error) {
	if estimate.IsFullHome() {
		if estimate.FullHome == nil {
			return pricing.Result{}, fmt.Errorf("estimate %s has no fullHome configuration", estimate.Name)
		}
		return composer.Price(*estimate.FullHome)
	}

	product, err := estimate.Product()
	if err != nil {
		return pricing.Result{}, err
	}
	return engine.Price(product)
}

// GetQuotes prices every active estimate in configuration order.
func GetQuotes(logger *zap.Logger, conf config.Configuration, engine *pricing.Engine) ([]Quote, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = pricing.NewEngine(logger, nil)
	}
	composer := fullhome.NewComposer(logger, engine)

	var results []Quote
	for _, estimate := range conf.Estimates {
		if !estimate.Active {
			logger.Debug(fmt.Sprintf("skipping estimate %s because it is inactive", estimate.Name),
				zap.String("op", "quote.GetQuotes"),
			)
			continue
		}

		result, err := Price(engine, composer, estimate)
		if err != nil {
			return results, fmt.Errorf("estimate %s: %w", estimate.Name, err)
		}

		logger.Debug("priced estimate",
			zap.String("op", "quote.GetQuotes"),
			zap.String("estimate", estimate.Name),
			zap.String("kind", string(estimate.Kind)),
			zap.Float64("total", result.Total),
		)
		results = append(results, Quote{Name: estimate.Name, Kind: estimate.Kind, Result: result})
	}

	return results, nil
}
