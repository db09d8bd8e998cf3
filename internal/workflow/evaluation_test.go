package workflow

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/ahrav/go-enop/internal/catalog"
	"github.com/ahrav/go-enop/internal/domain"
	"github.com/ahrav/go-enop/internal/problems"
	"github.com/ahrav/go-enop/internal/scoring"
	pkgactivity "github.com/ahrav/go-enop/pkg/activity"
)

func candidates(n int) []domain.Vector {
	out := make([]domain.Vector, n)
	for i := range out {
		out[i] = domain.Vector{domain.Real(i), 0}
	}
	return out
}

// sumScorer stands in for the scoring activity: it scores x0 + x1 and faults
// negative x0, recording every chunk it receives.
type sumScorer struct {
	mu     sync.Mutex
	chunks []domain.ScoreCandidatesInput
}

func (s *sumScorer) score(_ context.Context, in domain.ScoreCandidatesInput) (*domain.ScoreCandidatesOutput, error) {
	s.mu.Lock()
	s.chunks = append(s.chunks, in)
	s.mu.Unlock()

	out := &domain.ScoreCandidatesOutput{Problem: in.Problem, Offset: in.Offset}
	for i, v := range in.Candidates {
		if v[0] < 0 {
			out.Scores = append(out.Scores, domain.Real(math.Inf(1)))
			out.Faults = append(out.Faults, domain.Fault{Index: in.Offset + i, Kind: domain.FaultOracleError})
			continue
		}
		out.Scores = append(out.Scores, v[0]+v[1])
	}
	return out, nil
}

func TestEvaluationWorkflow(t *testing.T) {
	testSuite := &testsuite.WorkflowTestSuite{}

	t.Run("chunks are scored in order", func(t *testing.T) {
		env := testSuite.NewTestWorkflowEnvironment()
		scorer := &sumScorer{}
		env.RegisterActivityWithOptions(scorer.score, activity.RegisterOptions{Name: ScoreCandidatesActivity})

		req := domain.EvaluationRequest{Problem: "Toy", Candidates: candidates(7), ChunkSize: 3}
		req.Candidates[4] = domain.Vector{-1, 0}

		env.ExecuteWorkflow(EvaluationWorkflow, req)
		require.True(t, env.IsWorkflowCompleted())
		require.NoError(t, env.GetWorkflowError())

		var result domain.EvaluationResult
		require.NoError(t, env.GetWorkflowResult(&result))

		assert.Equal(t, "Toy", result.Problem)
		assert.Equal(t, []float64{0, 1, 2, 3, math.Inf(1), 5, 6}, domain.FloatsOf(result.Scores))
		require.Len(t, result.Faults, 1)
		assert.Equal(t, 4, result.Faults[0].Index)

		require.Len(t, scorer.chunks, 3)
		for i, want := range []struct{ offset, size int }{{0, 3}, {3, 3}, {6, 1}} {
			assert.Equal(t, want.offset, scorer.chunks[i].Offset, "chunk %d", i)
			assert.Len(t, scorer.chunks[i].Candidates, want.size, "chunk %d", i)
		}
	})

	t.Run("default chunk size sends a small request in one activity", func(t *testing.T) {
		env := testSuite.NewTestWorkflowEnvironment()
		scorer := &sumScorer{}
		env.RegisterActivityWithOptions(scorer.score, activity.RegisterOptions{Name: ScoreCandidatesActivity})

		env.ExecuteWorkflow(EvaluationWorkflow, domain.EvaluationRequest{Problem: "Toy", Candidates: candidates(10)})
		require.NoError(t, env.GetWorkflowError())
		assert.Len(t, scorer.chunks, 1)
	})

	t.Run("invalid request fails validation", func(t *testing.T) {
		env := testSuite.NewTestWorkflowEnvironment()

		env.ExecuteWorkflow(EvaluationWorkflow, domain.EvaluationRequest{})
		require.True(t, env.IsWorkflowCompleted())

		err := env.GetWorkflowError()
		require.Error(t, err)

		var appErr *temporal.ApplicationError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Validation", appErr.Type())
		assert.True(t, appErr.NonRetryable())
		assert.Contains(t, appErr.Error(), "invalid evaluation request")
	})

	t.Run("non-retryable activity error fails the workflow", func(t *testing.T) {
		env := testSuite.NewTestWorkflowEnvironment()
		calls := 0
		env.RegisterActivityWithOptions(
			func(_ context.Context, _ domain.ScoreCandidatesInput) (*domain.ScoreCandidatesOutput, error) {
				calls++
				return nil, temporal.NewNonRetryableApplicationError("unknown problem", "UnknownProblem", domain.ErrUnknownProblem)
			},
			activity.RegisterOptions{Name: ScoreCandidatesActivity},
		)

		env.ExecuteWorkflow(EvaluationWorkflow, domain.EvaluationRequest{Problem: "Nope", Candidates: candidates(2)})
		require.True(t, env.IsWorkflowCompleted())

		var appErr *temporal.ApplicationError
		require.ErrorAs(t, env.GetWorkflowError(), &appErr)
		assert.Equal(t, "UnknownProblem", appErr.Type())
		assert.Equal(t, 1, calls)
	})

	t.Run("retryable activity error is retried", func(t *testing.T) {
		env := testSuite.NewTestWorkflowEnvironment()
		scorer := &sumScorer{}
		calls := 0
		env.RegisterActivityWithOptions(
			func(ctx context.Context, in domain.ScoreCandidatesInput) (*domain.ScoreCandidatesOutput, error) {
				calls++
				if calls == 1 {
					return nil, temporal.NewApplicationError("oracle unavailable", "CatalogConstruction", errors.New("pipe closed"))
				}
				return scorer.score(ctx, in)
			},
			activity.RegisterOptions{Name: ScoreCandidatesActivity},
		)

		env.ExecuteWorkflow(EvaluationWorkflow, domain.EvaluationRequest{Problem: "Toy", Candidates: candidates(2)})
		require.NoError(t, env.GetWorkflowError())
		assert.Equal(t, 2, calls)
	})

	t.Run("short activity output is rejected", func(t *testing.T) {
		env := testSuite.NewTestWorkflowEnvironment()
		env.RegisterActivityWithOptions(
			func(_ context.Context, in domain.ScoreCandidatesInput) (*domain.ScoreCandidatesOutput, error) {
				return &domain.ScoreCandidatesOutput{Problem: in.Problem, Offset: in.Offset, Scores: []domain.Real{1}}, nil
			},
			activity.RegisterOptions{Name: ScoreCandidatesActivity},
		)

		env.ExecuteWorkflow(EvaluationWorkflow, domain.EvaluationRequest{Problem: "Toy", Candidates: candidates(3)})

		var appErr *temporal.ApplicationError
		require.ErrorAs(t, env.GetWorkflowError(), &appErr)
		assert.Equal(t, "ScoreCount", appErr.Type())
	})
}

func TestEvaluationWorkflowWithScoringActivities(t *testing.T) {
	cat, err := catalog.New(problems.NewProvider())
	require.NoError(t, err)
	acts := scoring.NewActivities(pkgactivity.NewBaseActivities(nil), cat)

	testSuite := &testsuite.WorkflowTestSuite{}
	env := testSuite.NewTestWorkflowEnvironment()
	env.RegisterActivity(acts.ScoreCandidates)

	req := domain.EvaluationRequest{
		Problem: catalog.ProcessSynthesis01,
		Candidates: []domain.Vector{
			{0.5, 0.9},
			{0.5},
			{0.5, 0.9},
		},
		ChunkSize: 2,
	}

	env.ExecuteWorkflow(EvaluationWorkflow, req)
	require.NoError(t, env.GetWorkflowError())

	var result domain.EvaluationResult
	require.NoError(t, env.GetWorkflowResult(&result))

	require.Len(t, result.Scores, 3)
	assert.InDelta(t, 2.0, float64(result.Scores[0]), 1e-9)
	assert.True(t, math.IsInf(float64(result.Scores[1]), 1))
	assert.Equal(t, result.Scores[0], result.Scores[2])

	require.Len(t, result.Faults, 1)
	assert.Equal(t, 1, result.Faults[0].Index)
	assert.Equal(t, domain.FaultDimensionMismatch, result.Faults[0].Kind)
}

func TestEvaluationWorkflowDeterminism(t *testing.T) {
	testSuite := &testsuite.WorkflowTestSuite{}
	req := domain.EvaluationRequest{Problem: "Toy", Candidates: candidates(5), ChunkSize: 2}

	var results []domain.EvaluationResult
	for range 3 {
		env := testSuite.NewTestWorkflowEnvironment()
		scorer := &sumScorer{}
		env.RegisterActivityWithOptions(scorer.score, activity.RegisterOptions{Name: ScoreCandidatesActivity})

		env.ExecuteWorkflow(EvaluationWorkflow, req)
		require.NoError(t, env.GetWorkflowError())

		var result domain.EvaluationResult
		require.NoError(t, env.GetWorkflowResult(&result))
		results = append(results, result)
	}

	for i := 1; i < len(results); i++ {
		assert.Equal(t, results[0], results[i])
	}
}

func TestActivityOptions(t *testing.T) {
	ao := activityOptions(domain.EvaluationRequest{})
	assert.Equal(t, DefaultActivityTimeout, ao.StartToCloseTimeout)
	assert.Equal(t, DefaultHeartbeatTimeout, ao.HeartbeatTimeout)
	require.NotNil(t, ao.RetryPolicy)
	assert.Equal(t, int32(DefaultMaxAttempts), ao.RetryPolicy.MaximumAttempts)

	ao = activityOptions(domain.EvaluationRequest{TimeoutSeconds: 42})
	assert.Equal(t, 42*time.Second, ao.StartToCloseTimeout)
	assert.Equal(t, DefaultHeartbeatTimeout, ao.HeartbeatTimeout)

	ao = activityOptions(domain.EvaluationRequest{HeartbeatSeconds: 7, MaxAttempts: 9})
	assert.Equal(t, DefaultActivityTimeout, ao.StartToCloseTimeout)
	assert.Equal(t, 7*time.Second, ao.HeartbeatTimeout)
	assert.Equal(t, int32(9), ao.RetryPolicy.MaximumAttempts)
}

func TestEvaluationWorkflowMaxAttempts(t *testing.T) {
	testSuite := &testsuite.WorkflowTestSuite{}
	env := testSuite.NewTestWorkflowEnvironment()
	calls := 0
	env.RegisterActivityWithOptions(
		func(_ context.Context, _ domain.ScoreCandidatesInput) (*domain.ScoreCandidatesOutput, error) {
			calls++
			return nil, temporal.NewApplicationError("oracle unavailable", "CatalogConstruction")
		},
		activity.RegisterOptions{Name: ScoreCandidatesActivity},
	)

	env.ExecuteWorkflow(EvaluationWorkflow, domain.EvaluationRequest{
		Problem:     "Toy",
		Candidates:  candidates(1),
		MaxAttempts: 5,
	})
	require.Error(t, env.GetWorkflowError())
	assert.Equal(t, 5, calls)
}
