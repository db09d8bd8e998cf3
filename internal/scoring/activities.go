// Package scoring implements the Temporal activity that scores a batch of
// candidate vectors for one catalog problem.
//
// The activity absorbs per-candidate failures the same way the evaluation
// bridge does: the output always carries one score per input candidate.
// Only structural failures (invalid input, unknown problem, an oracle that
// cannot be instantiated) fail the activity, classified for Temporal retry.
package scoring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ahrav/go-enop/internal/catalog"
	"github.com/ahrav/go-enop/internal/domain"
	"github.com/ahrav/go-enop/internal/evaluation"
	pkgactivity "github.com/ahrav/go-enop/pkg/activity"
)

// DefaultHeartbeatEvery is the number of candidates scored between heartbeats.
const DefaultHeartbeatEvery = 64

const tracerName = "github.com/ahrav/go-enop/internal/scoring"

// Activities holds the scoring activity and its dependencies.
type Activities struct {
	pkgactivity.BaseActivities
	catalog *catalog.Catalog
	events  *EventEmitter

	sentinel       float64
	recorder       evaluation.Recorder
	logger         *slog.Logger
	tracer         trace.Tracer
	heartbeatEvery int
}

// Option configures Activities.
type Option func(*Activities)

// WithSentinel sets the objective used for faulted candidates.
func WithSentinel(v float64) Option {
	return func(a *Activities) { a.sentinel = v }
}

// WithRecorder sets the evaluation metrics sink.
func WithRecorder(r evaluation.Recorder) Option {
	return func(a *Activities) {
		if r != nil {
			a.recorder = r
		}
	}
}

// WithLogger sets the logger handed to the evaluation bridge.
func WithLogger(l *slog.Logger) Option {
	return func(a *Activities) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithTracer sets the tracer used for activity spans.
func WithTracer(t trace.Tracer) Option {
	return func(a *Activities) {
		if t != nil {
			a.tracer = t
		}
	}
}

// WithHeartbeatEvery sets how many candidates are scored between heartbeats.
func WithHeartbeatEvery(n int) Option {
	return func(a *Activities) {
		if n > 0 {
			a.heartbeatEvery = n
		}
	}
}

// NewActivities returns scoring activities resolving problems through cat.
func NewActivities(base pkgactivity.BaseActivities, cat *catalog.Catalog, opts ...Option) *Activities {
	a := &Activities{
		BaseActivities: base,
		catalog:        cat,
		events:         NewEventEmitter(base),
		sentinel:       domain.WorstObjective(),
		recorder:       evaluation.NoOpRecorder{},
		logger:         slog.Default().With("component", "scoring"),
		tracer:         otel.Tracer(tracerName),
		heartbeatEvery: DefaultHeartbeatEvery,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ScoreCandidates scores input.Candidates in order.
//
// Invalid input and unknown problems fail with non-retryable errors. A catalog
// construction failure is retryable: the oracle behind a registered name may
// recover. Cancellation between heartbeat windows is reported as retryable.
func (a *Activities) ScoreCandidates(
	ctx context.Context,
	input domain.ScoreCandidatesInput,
) (*domain.ScoreCandidatesOutput, error) {
	ctx, span := a.tracer.Start(ctx, "ScoreCandidates", trace.WithAttributes(
		attribute.String("enop.problem", input.Problem),
		attribute.Int("enop.candidates", len(input.Candidates)),
		attribute.Int("enop.offset", input.Offset),
	))
	defer span.End()

	out, err := a.scoreCandidates(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("enop.faults", len(out.Faults)))
	return out, nil
}

func (a *Activities) scoreCandidates(
	ctx context.Context,
	input domain.ScoreCandidatesInput,
) (*domain.ScoreCandidatesOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, nonRetryable("ScoreCandidates", err, "invalid input")
	}

	wfCtx := a.GetWorkflowContext(ctx)
	pkgactivity.SafeLog(ctx, "Starting ScoreCandidates activity",
		"workflow_id", wfCtx.WorkflowID,
		"activity_id", wfCtx.ActivityID,
		"problem", input.Problem,
		"candidates", len(input.Candidates),
		"offset", input.Offset)

	inst, err := a.catalog.Open(input.Problem)
	if err != nil {
		return nil, classifyCatalogError(err)
	}
	defer func() {
		if err := inst.Close(); err != nil {
			pkgactivity.SafeLogError(ctx, "Failed to release oracle handle",
				"problem", input.Problem, "error", err)
		}
	}()

	evaluator, err := evaluation.FromInstance(inst,
		evaluation.WithSentinel(a.sentinel),
		evaluation.WithRecorder(a.recorder),
		evaluation.WithLogger(a.logger),
	)
	if err != nil {
		return nil, nonRetryable("ScoreCandidates", err, "failed to build evaluator")
	}

	report, err := a.evaluateWithHeartbeats(ctx, evaluator, input)
	if err != nil {
		return nil, err
	}

	output := domain.NewScoreCandidatesOutput(report, input.Offset)
	if err := output.Validate(); err != nil {
		return nil, nonRetryable("ScoreCandidates", err, "invalid output")
	}

	a.events.EmitCandidatesScored(ctx, output, wfCtx)

	if len(output.Faults) > 0 {
		pkgactivity.SafeLogWarn(ctx, "Candidates scored with sentinel",
			"problem", input.Problem,
			"faults", len(output.Faults))
	}
	pkgactivity.SafeLog(ctx, "ScoreCandidates completed",
		"problem", input.Problem,
		"scores", len(output.Scores),
		"faults", len(output.Faults))

	return output, nil
}

// evaluateWithHeartbeats scores the candidates in windows, heartbeating and
// checking for cancellation between windows. Fault indices in the returned
// report are relative to input.Candidates.
func (a *Activities) evaluateWithHeartbeats(
	ctx context.Context,
	evaluator *evaluation.Evaluator,
	input domain.ScoreCandidatesInput,
) (domain.Report, error) {
	total := len(input.Candidates)
	report := domain.Report{Problem: input.Problem, Scores: make([]float64, 0, total)}

	for start := 0; start < total; start += a.heartbeatEvery {
		if err := ctx.Err(); err != nil {
			return domain.Report{}, retryable("ScoreCandidates", err, "context cancelled")
		}

		end := min(start+a.heartbeatEvery, total)
		window := make([][]float64, end-start)
		for i, v := range input.Candidates[start:end] {
			window[i] = v.Floats()
		}

		part := evaluator.EvaluateBatchReport(window)
		report.Scores = append(report.Scores, part.Scores...)
		for _, f := range part.Faults {
			f.Index += start
			report.Faults = append(report.Faults, f)
		}

		a.RecordHeartbeat(ctx, fmt.Sprintf("scored %d/%d", end, total))
	}
	return report, nil
}

// classifyCatalogError maps catalog failures onto Temporal retry semantics.
func classifyCatalogError(err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownProblem):
		return nonRetryable("UnknownProblem", err, "unknown problem")
	case errors.Is(err, domain.ErrCatalogConstruction):
		return retryable("CatalogConstruction", err, "catalog construction failed")
	default:
		return retryable("ScoreCandidates", err, "failed to open problem")
	}
}
