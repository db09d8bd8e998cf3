package domain

import "fmt"

// DefaultChunkSize is the number of candidates scored per activity when an
// EvaluationRequest does not set ChunkSize.
const DefaultChunkSize = 256

// EvaluationRequest asks the evaluation workflow to score a candidate set for
// one problem. The workflow splits Candidates into chunks of ChunkSize and
// scores them in order.
type EvaluationRequest struct {
	Problem    string   `json:"problem" validate:"required"`
	Candidates []Vector `json:"candidates" validate:"required,min=1"`

	// ChunkSize bounds the candidates per ScoreCandidates activity; 0 means
	// DefaultChunkSize.
	ChunkSize int `json:"chunk_size" validate:"min=0"`

	// TimeoutSeconds is the StartToClose timeout of each activity; 0 means the
	// workflow default.
	TimeoutSeconds int `json:"timeout_seconds" validate:"min=0"`

	// HeartbeatSeconds is the heartbeat timeout of each activity; 0 means the
	// workflow default.
	HeartbeatSeconds int `json:"heartbeat_seconds" validate:"min=0"`

	// MaxAttempts caps activity attempts per chunk; 0 means the workflow default.
	MaxAttempts int32 `json:"max_attempts" validate:"min=0"`
}

// Validate checks the request against its struct constraints.
func (r EvaluationRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// EffectiveChunkSize returns ChunkSize, or DefaultChunkSize when unset.
func (r EvaluationRequest) EffectiveChunkSize() int {
	if r.ChunkSize <= 0 {
		return DefaultChunkSize
	}
	return r.ChunkSize
}

// Chunks splits the candidates into consecutive ScoreCandidatesInput values.
func (r EvaluationRequest) Chunks() []ScoreCandidatesInput {
	size := r.EffectiveChunkSize()
	chunks := make([]ScoreCandidatesInput, 0, (len(r.Candidates)+size-1)/size)
	for start := 0; start < len(r.Candidates); start += size {
		end := min(start+size, len(r.Candidates))
		chunks = append(chunks, ScoreCandidatesInput{
			Problem:    r.Problem,
			Candidates: r.Candidates[start:end],
			Offset:     start,
		})
	}
	return chunks
}

// EvaluationResult is the workflow output: one score per requested candidate.
type EvaluationResult struct {
	Problem string  `json:"problem"`
	Scores  []Real  `json:"scores"`
	Faults  []Fault `json:"faults,omitempty"`
}

// Append adds a scored chunk. Chunks must arrive in offset order.
func (r *EvaluationResult) Append(out *ScoreCandidatesOutput) error {
	if out.Offset != len(r.Scores) {
		return fmt.Errorf("chunk at offset %d appended after %d scores", out.Offset, len(r.Scores))
	}
	r.Scores = append(r.Scores, out.Scores...)
	r.Faults = append(r.Faults, out.Faults...)
	return nil
}

// Report converts the result back to a bridge report.
func (r EvaluationResult) Report() Report {
	return Report{Problem: r.Problem, Scores: FloatsOf(r.Scores), Faults: r.Faults}
}
