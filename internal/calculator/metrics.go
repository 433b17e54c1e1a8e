package calculator

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric instruments. They discard measurements until InitMetrics swaps in
// real ones, so handlers never see a nil instrument.
var (
	opsCounter   metric.Int64Counter     = noop.Int64Counter{}
	opsHistogram metric.Float64Histogram = noop.Float64Histogram{}
	errorCounter metric.Int64Counter     = noop.Int64Counter{}
	resultGauge  metric.Float64Gauge     = noop.Float64Gauge{}
)

// InitMetrics registers custom OTel metric instruments for the calculator domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("calculator")

	var err error

	opsCounter, err = meter.Int64Counter("calculator.operations.total",
		metric.WithDescription("Total number of successful calculator operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("calculator.operation.duration",
		metric.WithDescription("Duration of calculator operations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating ops histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Total number of failed calculator requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("calculator.last_result",
		metric.WithDescription("The result of the last calculator operation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	return nil
}

// RegisterCollectors exposes the history length of api on reg as
// calculator_history_entries.
func RegisterCollectors(reg prometheus.Registerer, api *API) error {
	gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "calculator",
		Name:      "history_entries",
		Help:      "Number of operations currently held in the calculator history.",
	}, func() float64 {
		return float64(api.Len())
	})

	if err := reg.Register(gauge); err != nil {
		return fmt.Errorf("registering history gauge: %w", err)
	}
	return nil
}
