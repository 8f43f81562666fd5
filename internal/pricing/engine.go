// Package pricing prices individual interior products against a rate catalog.
package pricing

import (
	"github.com/prasdif/calculator/internal/catalog"
	"github.com/prasdif/calculator/pkg/validation"
	"go.uber.org/zap"
)

// Engine prices products. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	logger *zap.Logger
	rates  *catalog.Catalog
}

// NewEngine returns an engine pricing against rates. A nil catalog selects
// the built-in rate table.
func NewEngine(logger *zap.Logger, rates *catalog.Catalog) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rates == nil {
		rates = catalog.Default()
	}
	return &Engine{logger: logger, rates: rates}
}

// Catalog returns the rate table the engine prices against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.rates
}

// Price validates and prices any product.
func (e *Engine) Price(p Product) (Result, error) {
	if p == nil {
		return Result{}, validation.New("product", "missing product configuration")
	}
	if err := p.Validate(); err != nil {
		e.logger.Debug("rejected product configuration",
			zap.String("op", "pricing.Price"),
			zap.String("category", string(p.Category())),
			zap.Error(err),
		)
		return Result{}, err
	}

	result := NewResult(p.lineItems(e.rates), e.rates.Band())
	if err := result.CheckRange(); err != nil {
		e.logger.Debug("rejected product configuration",
			zap.String("op", "pricing.Price"),
			zap.String("category", string(p.Category())),
			zap.Error(err),
		)
		return Result{}, err
	}

	e.logger.Debug("priced product",
		zap.String("op", "pricing.Price"),
		zap.String("category", string(p.Category())),
		zap.Int("lines", len(result.Breakdown)),
		zap.Float64("total", result.Total),
	)
	return result, nil
}

// Kitchen prices a kitchen.
func (e *Engine) Kitchen(k Kitchen) (Result, error) { return e.Price(k) }

// Wardrobe prices a wardrobe.
func (e *Engine) Wardrobe(w Wardrobe) (Result, error) { return e.Price(w) }

// TVUnit prices a TV unit.
func (e *Engine) TVUnit(u TVUnit) (Result, error) { return e.Price(u) }

// Bed prices a bed.
func (e *Engine) Bed(b Bed) (Result, error) { return e.Price(b) }
