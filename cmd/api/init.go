package main

import (
	"context"

	"go-calculator/internal/calculator"
	"go-calculator/internal/observability"
)

// initMetrics initialises all metric providers and application-specific
// metric instruments.
func initMetrics(ctx context.Context) (func(context.Context) error, error) {
	shutdown, err := observability.InitMetrics(ctx)
	if err != nil {
		return nil, err
	}

	if err := calculator.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}
