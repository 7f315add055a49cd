package evaluation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zatekoja/price-accuracy/internal/infrastructure/observability"
	"github.com/zatekoja/price-accuracy/pkg/config"
	apperrors "github.com/zatekoja/price-accuracy/pkg/errors"
)

// Evaluator computes both accuracy metrics for a predicted/actual price series.
type Evaluator struct {
	config         config.EvaluationConfig
	metrics        *observability.Metrics
	tracerProvider trace.TracerProvider
}

// NewEvaluator creates an evaluator tracing on the global provider. metrics may be nil to skip telemetry.
func NewEvaluator(cfg config.EvaluationConfig, metrics *observability.Metrics) *Evaluator {
	return &Evaluator{config: cfg, metrics: metrics, tracerProvider: otel.GetTracerProvider()}
}

// NewEvaluatorFromConfig initializes logging and wires an evaluator on the configured
// meter and tracer providers.
func NewEvaluatorFromConfig(cfg *config.Config) (*Evaluator, error) {
	providers := observability.Setup(cfg)

	metrics, err := observability.InitMetrics(providers.Meter, cfg.OTEL.ServiceVersion)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to init evaluation metrics", err)
	}

	e := NewEvaluator(cfg.Evaluation, metrics)
	e.tracerProvider = providers.Tracer
	return e, nil
}

// Evaluate computes the relative error ratio and the segmented MAE for one series pair.
// Either both metrics are returned or an error.
func (e *Evaluator) Evaluate(ctx context.Context, predicted, actual []float64) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	runID := uuid.New().String()

	ctx, span := observability.StartSpan(ctx, e.tracerProvider, "evaluation.Evaluate")
	defer span.End()
	observability.SetSpanAttributes(span,
		attribute.String("evaluation.run_id", runID),
		attribute.Int("evaluation.samples", len(actual)),
	)

	logger := observability.LoggerFromContext(ctx).With().Str("run_id", runID).Logger()

	if err := ValidateSamples(predicted, actual, !e.config.AllowEmptyInput); err != nil {
		observability.RecordError(span, err)
		logger.Error().Err(err).
			Int("predicted", len(predicted)).
			Int("actual", len(actual)).
			Msg("rejected evaluation input")
		e.record(ctx, observability.OutcomeError, 0, time.Since(start))
		return nil, err
	}

	report := &Report{
		RunID:              runID,
		SampleCount:        len(actual),
		RelativeErrorRatio: relativeErrorRatio(predicted, actual),
		Segments:           segmentedMAE(predicted, actual, priceSegments),
		ZeroActualCount:    CountZeroActuals(actual),
	}
	report.ExcludedCount = report.Segments.Excluded
	report.Duration = time.Since(start)

	if report.ZeroActualCount > 0 && e.config.WarnZeroActual {
		logger.Warn().
			Int("zero_actuals", report.ZeroActualCount).
			Float64("relative_error_ratio", report.RelativeErrorRatio).
			Msg("actual prices contain zeros, relative error ratio is not finite")
	}

	logger.Debug().
		Int("samples", report.SampleCount).
		Int("excluded", report.ExcludedCount).
		Float64("relative_error_ratio", report.RelativeErrorRatio).
		Dur("duration", report.Duration).
		Msg("evaluation complete")

	e.record(ctx, observability.OutcomeOK, report.SampleCount, report.Duration)
	if e.metrics != nil {
		observability.RecordExcluded(ctx, e.metrics, report.ExcludedCount)
		for _, res := range report.Segments.Results {
			if res.HasData() {
				observability.RecordSegmentMAE(ctx, e.metrics, res.UpperBound, *res.MAE)
			}
		}
	}

	return report, nil
}

func (e *Evaluator) record(ctx context.Context, outcome string, samples int, duration time.Duration) {
	if e.metrics == nil {
		return
	}
	observability.RecordEvaluation(ctx, e.metrics, outcome, samples, duration)
}
