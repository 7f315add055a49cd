package observability

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/zatekoja/price-accuracy/pkg/config"
)

const instrumentationName = "github.com/zatekoja/price-accuracy"

// Outcome labels for evaluation.run.count.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds all evaluation metrics
type Metrics struct {
	RunCount        metric.Int64Counter
	RunDuration     metric.Float64Histogram
	Samples         metric.Int64Histogram
	ExcludedSamples metric.Int64Counter
	SegmentMAE      metric.Float64Histogram
}

// MeterProvider returns the global meter provider, or a no-op one when telemetry is disabled.
func MeterProvider(cfg config.OTELConfig) metric.MeterProvider {
	if !cfg.Enabled {
		return metricnoop.NewMeterProvider()
	}
	return otel.GetMeterProvider()
}

// TracerProvider returns the global tracer provider, or a no-op one when telemetry is disabled.
func TracerProvider(cfg config.OTELConfig) trace.TracerProvider {
	if !cfg.Enabled {
		return tracenoop.NewTracerProvider()
	}
	return otel.GetTracerProvider()
}

// Providers bundles the telemetry providers selected by Setup.
type Providers struct {
	Meter  metric.MeterProvider
	Tracer trace.TracerProvider
}

// Setup initializes the global logger and resolves the meter and tracer providers.
func Setup(cfg *config.Config) Providers {
	InitLogger(cfg.OTEL.ServiceName, cfg.Log.Env, cfg.Log.Level)
	return Providers{
		Meter:  MeterProvider(cfg.OTEL),
		Tracer: TracerProvider(cfg.OTEL),
	}
}

// InitMetrics initializes evaluation metrics on the given provider
func InitMetrics(mp metric.MeterProvider, serviceVersion string) (*Metrics, error) {
	meter := mp.Meter(instrumentationName, metric.WithInstrumentationVersion(serviceVersion))

	runCount, err := meter.Int64Counter(
		"evaluation.run.count",
		metric.WithDescription("Number of accuracy evaluations"),
	)
	if err != nil {
		return nil, err
	}

	runDuration, err := meter.Float64Histogram(
		"evaluation.run.duration",
		metric.WithDescription("Accuracy evaluation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	samples, err := meter.Int64Histogram(
		"evaluation.samples",
		metric.WithDescription("Number of predicted/actual pairs per evaluation"),
	)
	if err != nil {
		return nil, err
	}

	excluded, err := meter.Int64Counter(
		"evaluation.samples.excluded",
		metric.WithDescription("Samples whose actual value fell outside every price segment"),
	)
	if err != nil {
		return nil, err
	}

	segmentMAE, err := meter.Float64Histogram(
		"evaluation.segment.mae",
		metric.WithDescription("Mean absolute error per price segment"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		RunCount:        runCount,
		RunDuration:     runDuration,
		Samples:         samples,
		ExcludedSamples: excluded,
		SegmentMAE:      segmentMAE,
	}, nil
}

// StartSpan starts a new trace span on tp
func StartSpan(ctx context.Context, tp trace.TracerProvider, spanName string) (context.Context, trace.Span) {
	tracer := tp.Tracer(instrumentationName)
	return tracer.Start(ctx, spanName)
}

// RecordError records an error in the current span
func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// SetSpanAttributes sets attributes on a span
func SetSpanAttributes(span trace.Span, attrs ...attribute.KeyValue) {
	span.SetAttributes(attrs...)
}

// RecordEvaluation records one evaluation run
func RecordEvaluation(ctx context.Context, metrics *Metrics, outcome string, samples int, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))

	metrics.RunCount.Add(ctx, 1, attrs)
	metrics.RunDuration.Record(ctx, float64(duration.Microseconds())/1000, attrs)
	if outcome == OutcomeOK {
		metrics.Samples.Record(ctx, int64(samples))
	}
}

// RecordExcluded records samples dropped from every segment
func RecordExcluded(ctx context.Context, metrics *Metrics, count int) {
	if count == 0 {
		return
	}
	metrics.ExcludedSamples.Add(ctx, int64(count))
}

// RecordSegmentMAE records the MAE of a single price segment
func RecordSegmentMAE(ctx context.Context, metrics *Metrics, upperBound, mae float64) {
	attrs := []attribute.KeyValue{
		attribute.String("segment.upper_bound", strconv.FormatFloat(upperBound, 'f', -1, 64)),
	}
	metrics.SegmentMAE.Record(ctx, mae, metric.WithAttributes(attrs...))
}
