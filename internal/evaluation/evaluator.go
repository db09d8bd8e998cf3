// Package evaluation is the bridge between a search loop and an evaluation
// oracle. It scores candidate vectors in order and absorbs every per-candidate
// failure: a candidate the oracle cannot score receives the sentinel
// worst-case objective and a classified domain.Fault, and the rest of the
// batch is scored normally.
//
// The bridge does not clip or check candidates against the problem domain;
// callers own their repair strategy. It does reject candidates whose length
// differs from the problem dimension before they reach the oracle.
package evaluation

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/ahrav/go-enop/internal/catalog"
	"github.com/ahrav/go-enop/internal/domain"
	"github.com/ahrav/go-enop/internal/oracle"
)

// Evaluator scores candidates for one problem through one oracle handle.
// It is safe for concurrent use; calls into the oracle are serialized.
type Evaluator struct {
	mu         sync.Mutex
	descriptor domain.ProblemDescriptor
	oracle     oracle.Oracle

	sentinel float64
	logger   *slog.Logger
	recorder Recorder
	stats    stats
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithSentinel sets the objective substituted for faulted candidates.
// The default is domain.WorstObjective().
func WithSentinel(v float64) Option {
	return func(e *Evaluator) { e.sentinel = v }
}

// WithLogger sets the logger used for fault diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRecorder sets the metrics sink.
func WithRecorder(r Recorder) Option {
	return func(e *Evaluator) {
		if r != nil {
			e.recorder = r
		}
	}
}

// New returns an evaluator for the problem described by desc, scoring through o.
func New(desc domain.ProblemDescriptor, o oracle.Oracle, opts ...Option) (*Evaluator, error) {
	if desc.IsZero() {
		return nil, errors.New("evaluation: problem descriptor is required")
	}
	if o == nil {
		return nil, errors.New("evaluation: oracle is required")
	}

	e := &Evaluator{
		descriptor: desc,
		oracle:     o,
		sentinel:   domain.WorstObjective(),
		logger:     slog.Default().With("component", "evaluation"),
		recorder:   NoOpRecorder{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// FromInstance returns an evaluator bound to a catalog instance's handle.
func FromInstance(inst *catalog.Instance, opts ...Option) (*Evaluator, error) {
	if inst == nil {
		return nil, errors.New("evaluation: instance is required")
	}
	return New(inst.Descriptor(), inst.Oracle(), opts...)
}

// Descriptor returns the problem this evaluator scores.
func (e *Evaluator) Descriptor() domain.ProblemDescriptor { return e.descriptor }

// Sentinel returns the objective used for faulted candidates.
func (e *Evaluator) Sentinel() float64 { return e.sentinel }

// EvaluateBatch returns one score per candidate, in input order.
func (e *Evaluator) EvaluateBatch(candidates [][]float64) []float64 {
	return e.EvaluateBatchReport(candidates).Scores
}

// Evaluate scores a single candidate.
func (e *Evaluator) Evaluate(x []float64) float64 {
	return e.EvaluateBatchReport([][]float64{x}).Scores[0]
}

// EvaluateBatchReport scores candidates sequentially and returns the scores
// together with the faults absorbed along the way.
func (e *Evaluator) EvaluateBatchReport(candidates [][]float64) domain.Report {
	problem := e.descriptor.Name()
	report := domain.Report{
		Problem: problem,
		Scores:  make([]float64, len(candidates)),
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.stats.batches.Add(1)
	e.recorder.RecordBatch(problem, len(candidates))

	for i, x := range candidates {
		start := time.Now()
		score, fault := e.scoreOne(i, x)
		e.stats.evaluations.Add(1)
		e.recorder.RecordEvaluation(problem, time.Since(start))

		if fault != nil {
			report.Scores[i] = e.sentinel
			report.Faults = append(report.Faults, *fault)
			e.stats.recordFault(fault.Kind)
			e.recorder.RecordFault(problem, fault.Kind)
			e.logger.Warn("candidate scored with sentinel",
				"problem", problem,
				"index", i,
				"kind", string(fault.Kind),
				"cause", fault.Message,
			)
			continue
		}
		report.Scores[i] = score
	}
	return report
}

// scoreOne never panics and never returns a non-finite score without a fault.
func (e *Evaluator) scoreOne(i int, x []float64) (score float64, fault *domain.Fault) {
	if want := e.descriptor.Dimension(); len(x) != want {
		return 0, &domain.Fault{
			Index:   i,
			Kind:    domain.FaultDimensionMismatch,
			Message: fmt.Sprintf("got %d values, want %d", len(x), want),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			score = 0
			fault = &domain.Fault{Index: i, Kind: domain.FaultPanic, Message: fmt.Sprint(r)}
		}
	}()

	v, err := e.oracle.Score(slices.Clone(x))
	if err != nil {
		return 0, &domain.Fault{Index: i, Kind: domain.FaultOracleError, Message: err.Error()}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &domain.Fault{Index: i, Kind: domain.FaultNonFinite, Message: fmt.Sprintf("oracle returned %v", v)}
	}
	return v, nil
}
