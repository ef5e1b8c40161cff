// Package metrics defines the OpenTelemetry instruments recorded by the hash
// engine. Instruments are created from a metric.Meter so the caller decides
// the exporter; the API server wires them to Prometheus.
package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120} //nolint: gochecknoglobals

// Outcome labels the result of an operation.
type Outcome string

const (
	OutcomeOK        Outcome = "ok"
	OutcomeFound     Outcome = "found"
	OutcomeExhausted Outcome = "exhausted"
	OutcomeError     Outcome = "error"
)

// Instruments groups the engine's counters and histograms.
type Instruments struct {
	operations     metric.Int64Counter
	crackDuration  metric.Float64Histogram
	candidates     metric.Int64Counter
	candidateFails metric.Int64Counter
}

// New creates the engine instruments on meter.
func New(meter metric.Meter) (*Instruments, error) {
	operations, err := meter.Int64Counter("hashhush.operations",
		metric.WithDescription("Detect, generate and crack operations by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create operations counter: %w", err)
	}

	crackDuration, err := meter.Float64Histogram("hashhush.crack.duration",
		metric.WithDescription("Wall time of dictionary scans"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create crack duration histogram: %w", err)
	}

	candidates, err := meter.Int64Counter("hashhush.crack.candidates",
		metric.WithDescription("Dictionary candidates evaluated"))
	if err != nil {
		return nil, fmt.Errorf("could not create candidates counter: %w", err)
	}

	candidateFails, err := meter.Int64Counter("hashhush.crack.candidate_errors",
		metric.WithDescription("Dictionary candidates skipped because evaluation failed"))
	if err != nil {
		return nil, fmt.Errorf("could not create candidate errors counter: %w", err)
	}

	return &Instruments{
		operations:     operations,
		crackDuration:  crackDuration,
		candidates:     candidates,
		candidateFails: candidateFails,
	}, nil
}

// Noop returns instruments that record nothing.
func Noop() *Instruments {
	m, _ := New(noop.NewMeterProvider().Meter("noop"))

	return m
}

// Operation counts one finished operation.
func (i *Instruments) Operation(ctx context.Context, operation string, algorithm string, outcome Outcome) {
	i.operations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("algorithm", algorithm),
		attribute.String("outcome", string(outcome)),
	))
}

// Scan records one finished dictionary scan.
func (i *Instruments) Scan(ctx context.Context, algorithm string, outcome Outcome, evaluated, failed int,
	took time.Duration) {
	attrs := metric.WithAttributes(attribute.String("algorithm", algorithm))
	i.crackDuration.Record(ctx, took.Seconds(), metric.WithAttributes(
		attribute.String("algorithm", algorithm),
		attribute.String("outcome", string(outcome)),
	))
	i.candidates.Add(ctx, int64(evaluated), attrs)
	if failed > 0 {
		i.candidateFails.Add(ctx, int64(failed), attrs)
	}
}
