package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ahrav/go-enop/internal/domain"
)

// ScoreCandidatesActivity is the registered name of the scoring activity.
const ScoreCandidatesActivity = "ScoreCandidates"

// Activity defaults applied when a request does not override them.
const (
	DefaultActivityTimeout  = 5 * time.Minute
	DefaultHeartbeatTimeout = 30 * time.Second
	DefaultMaxAttempts      = 3
)

// EvaluationWorkflow scores req.Candidates for req.Problem and returns one
// score per candidate in request order.
//
// An invalid request fails immediately with a non-retryable "Validation"
// error. A chunk whose activity exhausts its retries fails the workflow with
// that activity's error.
func EvaluationWorkflow(
	ctx workflow.Context,
	req domain.EvaluationRequest,
) (*domain.EvaluationResult, error) {
	const currentVersion = 1
	_ = workflow.GetVersion(ctx, "evaluation.v", workflow.DefaultVersion, currentVersion)

	if err := req.Validate(); err != nil {
		return nil, temporal.NewNonRetryableApplicationError(
			"invalid evaluation request",
			"Validation",
			err,
		)
	}

	ctx = workflow.WithActivityOptions(ctx, activityOptions(req))
	logger := workflow.GetLogger(ctx)

	chunks := req.Chunks()
	result := &domain.EvaluationResult{
		Problem: req.Problem,
		Scores:  make([]domain.Real, 0, len(req.Candidates)),
	}

	for i, chunk := range chunks {
		var out domain.ScoreCandidatesOutput
		if err := workflow.ExecuteActivity(ctx, ScoreCandidatesActivity, chunk).Get(ctx, &out); err != nil {
			logger.Error("Chunk scoring failed",
				"problem", req.Problem,
				"chunk", i,
				"offset", chunk.Offset,
				"error", err)
			return nil, err
		}

		if len(out.Scores) != len(chunk.Candidates) {
			return nil, temporal.NewNonRetryableApplicationError(
				"activity returned wrong number of scores",
				"ScoreCount",
				nil,
				chunk.Offset, len(chunk.Candidates), len(out.Scores),
			)
		}
		if err := result.Append(&out); err != nil {
			return nil, temporal.NewNonRetryableApplicationError(
				"chunk out of order",
				"ChunkOrder",
				err,
			)
		}
	}

	logger.Info("Evaluation completed",
		"problem", req.Problem,
		"candidates", len(result.Scores),
		"chunks", len(chunks),
		"faults", len(result.Faults))

	return result, nil
}

func activityOptions(req domain.EvaluationRequest) workflow.ActivityOptions {
	timeout := DefaultActivityTimeout
	if req.TimeoutSeconds > 0 {
		timeout = time.Duration(req.TimeoutSeconds) * time.Second
	}
	heartbeat := DefaultHeartbeatTimeout
	if req.HeartbeatSeconds > 0 {
		heartbeat = time.Duration(req.HeartbeatSeconds) * time.Second
	}
	attempts := int32(DefaultMaxAttempts)
	if req.MaxAttempts > 0 {
		attempts = req.MaxAttempts
	}

	return workflow.ActivityOptions{
		StartToCloseTimeout: timeout,
		HeartbeatTimeout:    heartbeat,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    attempts,
		},
	}
}
