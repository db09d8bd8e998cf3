//nolint:testpackage // Tests reach unexported helpers such as classifyCatalogError.
package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/ahrav/go-enop/internal/catalog"
	"github.com/ahrav/go-enop/internal/domain"
	"github.com/ahrav/go-enop/internal/oracle"
	"github.com/ahrav/go-enop/internal/problems"
	pkgactivity "github.com/ahrav/go-enop/pkg/activity"
	"github.com/ahrav/go-enop/pkg/events"
)

// toyOracle is dimension 2 over [[0,10],[0,5]], scoring x0 + x1 and failing
// for negative x0.
type toyOracle struct{}

func (toyOracle) Metadata() (oracle.Metadata, error) {
	return oracle.Metadata{Dimension: 2, Bounds: [][]float64{{0, 10}, {0, 5}}}, nil
}

func (toyOracle) Score(x []float64) (float64, error) {
	if x[0] < 0 {
		return 0, errors.New("math domain error")
	}
	return x[0] + x[1], nil
}

func toyCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(oracle.ProviderFunc(func(name string) (oracle.Oracle, error) {
		switch name {
		case "Toy":
			return toyOracle{}, nil
		case "Broken":
			return nil, oracle.ErrOracleUnavailable
		}
		return nil, oracle.ErrUnsupportedProblem
	}), catalog.WithIdentifiers("Toy", "Broken"))
	require.NoError(t, err)
	return c
}

func vectors(xs ...[]float64) []domain.Vector {
	out := make([]domain.Vector, len(xs))
	for i, x := range xs {
		out[i] = domain.VectorOf(x)
	}
	return out
}

func requireAppError(t *testing.T, err error) *temporal.ApplicationError {
	t.Helper()
	var appErr *temporal.ApplicationError
	require.ErrorAs(t, err, &appErr)
	return appErr
}

func TestScoreCandidates(t *testing.T) {
	ctx := context.Background()

	t.Run("one score per candidate with absolute fault indices", func(t *testing.T) {
		a := NewActivities(pkgactivity.NewBaseActivities(nil), toyCatalog(t))

		out, err := a.ScoreCandidates(ctx, domain.ScoreCandidatesInput{
			Problem:    "Toy",
			Candidates: vectors([]float64{5, 2.5}, []float64{-1, 0}, []float64{1, 2, 3}, []float64{1, 1}),
			Offset:     100,
		})
		require.NoError(t, err)

		require.Len(t, out.Scores, 4)
		assert.Equal(t, domain.Real(7.5), out.Scores[0])
		assert.True(t, math.IsInf(float64(out.Scores[1]), 1))
		assert.True(t, math.IsInf(float64(out.Scores[2]), 1))
		assert.Equal(t, domain.Real(2), out.Scores[3])

		require.Len(t, out.Faults, 2)
		assert.Equal(t, domain.Fault{Index: 101, Kind: domain.FaultOracleError, Message: "math domain error"}, out.Faults[0])
		assert.Equal(t, 102, out.Faults[1].Index)
		assert.Equal(t, domain.FaultDimensionMismatch, out.Faults[1].Kind)
	})

	t.Run("native problem", func(t *testing.T) {
		c, err := catalog.New(problems.NewProvider())
		require.NoError(t, err)
		a := NewActivities(pkgactivity.NewBaseActivities(nil), c)

		d, err := c.Resolve(catalog.ThreeBarTrussDesign)
		require.NoError(t, err)

		out, err := a.ScoreCandidates(ctx, domain.ScoreCandidatesInput{
			Problem:    catalog.ThreeBarTrussDesign,
			Candidates: vectors(d.Midpoint()),
		})
		require.NoError(t, err)
		require.Len(t, out.Scores, 1)
		assert.Empty(t, out.Faults)
	})

	t.Run("custom sentinel", func(t *testing.T) {
		a := NewActivities(pkgactivity.NewBaseActivities(nil), toyCatalog(t), WithSentinel(1e9))

		out, err := a.ScoreCandidates(ctx, domain.ScoreCandidatesInput{
			Problem:    "Toy",
			Candidates: vectors([]float64{-1, 0}),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.Real(1e9), out.Scores[0])
	})

	t.Run("heartbeat windows keep fault indices", func(t *testing.T) {
		a := NewActivities(pkgactivity.NewBaseActivities(nil), toyCatalog(t), WithHeartbeatEvery(2))

		out, err := a.ScoreCandidates(ctx, domain.ScoreCandidatesInput{
			Problem: "Toy",
			Candidates: vectors(
				[]float64{0, 0}, []float64{1, 0}, []float64{2, 0}, []float64{-3, 0}, []float64{4, 0},
			),
		})
		require.NoError(t, err)

		assert.Equal(t, []float64{0, 1, 2, math.Inf(1), 4}, domain.FloatsOf(out.Scores))
		require.Len(t, out.Faults, 1)
		assert.Equal(t, 3, out.Faults[0].Index)
	})
}

func TestScoreCandidatesErrors(t *testing.T) {
	ctx := context.Background()
	a := NewActivities(pkgactivity.NewBaseActivities(nil), toyCatalog(t))

	t.Run("invalid input is non-retryable", func(t *testing.T) {
		_, err := a.ScoreCandidates(ctx, domain.ScoreCandidatesInput{})
		appErr := requireAppError(t, err)
		assert.True(t, appErr.NonRetryable())
		assert.Equal(t, "ScoreCandidates", appErr.Type())
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("unknown problem is non-retryable", func(t *testing.T) {
		_, err := a.ScoreCandidates(ctx, domain.ScoreCandidatesInput{
			Problem:    "NoSuchProblem",
			Candidates: vectors([]float64{1, 1}),
		})
		appErr := requireAppError(t, err)
		assert.True(t, appErr.NonRetryable())
		assert.Equal(t, "UnknownProblem", appErr.Type())
		assert.ErrorIs(t, err, domain.ErrUnknownProblem)
	})

	t.Run("catalog construction failure is retryable", func(t *testing.T) {
		_, err := a.ScoreCandidates(ctx, domain.ScoreCandidatesInput{
			Problem:    "Broken",
			Candidates: vectors([]float64{1, 1}),
		})
		appErr := requireAppError(t, err)
		assert.False(t, appErr.NonRetryable())
		assert.Equal(t, "CatalogConstruction", appErr.Type())
		assert.ErrorIs(t, err, domain.ErrCatalogConstruction)
	})

	t.Run("cancelled context is retryable", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := a.ScoreCandidates(cctx, domain.ScoreCandidatesInput{
			Problem:    "Toy",
			Candidates: vectors([]float64{1, 1}),
		})
		appErr := requireAppError(t, err)
		assert.False(t, appErr.NonRetryable())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestClassifyCatalogError(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name         string
		err          error
		wantType     string
		nonRetryable bool
		wantIs       error
	}{
		{
			name:         "unknown problem",
			err:          fmt.Errorf("%w: %q", domain.ErrUnknownProblem, "X"),
			wantType:     "UnknownProblem",
			nonRetryable: true,
			wantIs:       domain.ErrUnknownProblem,
		},
		{
			name:     "construction failure keeps its cause",
			err:      domain.NewCatalogConstructionError("X", boom),
			wantType: "CatalogConstruction",
			wantIs:   domain.ErrCatalogConstruction,
		},
		{
			name:     "other failure",
			err:      boom,
			wantType: "ScoreCandidates",
			wantIs:   boom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyCatalogError(tt.err)
			appErr := requireAppError(t, err)
			assert.Equal(t, tt.wantType, appErr.Type())
			assert.Equal(t, tt.nonRetryable, appErr.NonRetryable())
			assert.ErrorIs(t, err, tt.wantIs)
		})
	}
}

func TestRetryableKeepsCause(t *testing.T) {
	err := retryable("ScoreCandidates", context.Canceled, "context cancelled")
	appErr := requireAppError(t, err)
	assert.False(t, appErr.NonRetryable())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, context.Canceled, errors.Unwrap(appErr))
	assert.False(t, appErr.HasDetails())
}

func TestScoreCandidatesEvents(t *testing.T) {
	ctx := context.Background()
	sink := events.NewMemorySink()
	a := NewActivities(pkgactivity.NewBaseActivities(sink), toyCatalog(t))
	a.events.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	input := domain.ScoreCandidatesInput{
		Problem:    "Toy",
		Candidates: vectors([]float64{3, 3}, []float64{1, 0}, []float64{-1, 0}),
		Offset:     10,
	}

	_, err := a.ScoreCandidates(ctx, input)
	require.NoError(t, err)
	_, err = a.ScoreCandidates(ctx, input)
	require.NoError(t, err)

	got := sink.Events()
	require.Len(t, got, 1, "retries of the same chunk share an idempotency key")

	env := got[0]
	assert.Equal(t, string(domain.EventTypeCandidatesScored), env.Type)
	assert.Equal(t, "activity.score_candidates", env.Source)
	assert.Equal(t, "1.0.0", env.Version)
	assert.Equal(t, pkgactivity.DetachedWorkflowID, env.WorkflowID)
	assert.Equal(t, domain.CandidatesScoredIdempotencyKey(pkgactivity.DetachedWorkflowID, "Toy", 10), env.IdempotencyKey)

	var payload domain.CandidatesScoredPayload
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, 3, payload.Candidates)
	assert.Equal(t, 11, payload.BestIndex)
	assert.Equal(t, domain.Real(1), payload.BestObjective)
	assert.Equal(t, map[domain.FaultKind]int{domain.FaultOracleError: 1}, payload.Faults)
}

func TestScoreCandidatesTracing(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	a := NewActivities(pkgactivity.NewBaseActivities(nil), toyCatalog(t), WithTracer(tp.Tracer("test")))

	_, err := a.ScoreCandidates(context.Background(), domain.ScoreCandidatesInput{
		Problem:    "Toy",
		Candidates: vectors([]float64{1, 1}, []float64{-1, 1}),
	})
	require.NoError(t, err)
	_, err = a.ScoreCandidates(context.Background(), domain.ScoreCandidatesInput{})
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "ScoreCandidates", spans[0].Name())
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)

	attrs := map[string]int64{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsInt64()
	}
	assert.Equal(t, int64(2), attrs["enop.candidates"])
	assert.Equal(t, int64(1), attrs["enop.faults"])
}

func TestScoreCandidatesInActivityEnvironment(t *testing.T) {
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestActivityEnvironment()

	a := NewActivities(pkgactivity.NewBaseActivities(nil), toyCatalog(t))
	env.RegisterActivity(a.ScoreCandidates)

	t.Run("non-finite values cross the payload codec", func(t *testing.T) {
		val, err := env.ExecuteActivity(a.ScoreCandidates, domain.ScoreCandidatesInput{
			Problem:    "Toy",
			Candidates: vectors([]float64{math.NaN(), 1}, []float64{2, 2}),
		})
		require.NoError(t, err)

		var out domain.ScoreCandidatesOutput
		require.NoError(t, val.Get(&out))
		require.Len(t, out.Scores, 2)
		assert.True(t, math.IsInf(float64(out.Scores[0]), 1), "NaN input sums to NaN and is faulted")
		assert.Equal(t, domain.Real(4), out.Scores[1])
		require.Len(t, out.Faults, 1)
		assert.Equal(t, domain.FaultNonFinite, out.Faults[0].Kind)
	})

	t.Run("unknown problem surfaces as non-retryable", func(t *testing.T) {
		_, err := env.ExecuteActivity(a.ScoreCandidates, domain.ScoreCandidatesInput{
			Problem:    "Missing",
			Candidates: vectors([]float64{1, 1}),
		})
		require.Error(t, err)

		appErr := requireAppError(t, err)
		assert.True(t, appErr.NonRetryable())
		assert.Equal(t, "UnknownProblem", appErr.Type())
	})
}
