package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of event emitted by the system.
type EventType string

// EventTypeCandidatesScored is emitted once per scored chunk.
const EventTypeCandidatesScored EventType = "CandidatesScored"

// EventEnvelope wraps all events with consistent metadata for projection processing.
type EventEnvelope struct {
	// IdempotencyKey is deterministic in workflow, problem and offset so
	// activity retries produce the same key.
	IdempotencyKey string    `json:"idempotency_key" validate:"required"`
	EventType      EventType `json:"event_type" validate:"required"`
	Version        int       `json:"version" validate:"required,min=1"`
	OccurredAt     time.Time `json:"occurred_at" validate:"required"`
	WorkflowID     string    `json:"workflow_id" validate:"required"`
	RunID          string    `json:"run_id" validate:"required"`

	// Payload contains the event-specific data as JSON.
	Payload  json.RawMessage `json:"payload" validate:"required"`
	Producer string          `json:"producer" validate:"required"`
}

// Validate checks if the event envelope meets all requirements.
func (e *EventEnvelope) Validate() error {
	return validate.Struct(e)
}

// CandidatesScoredPayload summarizes one scored chunk. Fault counts make
// fault frequency observable without shipping every score.
type CandidatesScoredPayload struct {
	Problem    string            `json:"problem" validate:"required"`
	Offset     int               `json:"offset" validate:"min=0"`
	Candidates int               `json:"candidates" validate:"min=1"`
	Faults     map[FaultKind]int `json:"faults,omitempty"`

	// BestIndex is -1 when no candidate produced a finite score.
	BestIndex     int  `json:"best_index" validate:"min=-1"`
	BestObjective Real `json:"best_objective"`
}

// Validate checks if the payload meets all requirements.
func (p *CandidatesScoredPayload) Validate() error {
	return validate.Struct(p)
}

// CandidatesScoredIdempotencyKey derives a stable key for a chunk event.
func CandidatesScoredIdempotencyKey(workflowID, problem string, offset int) string {
	return uuid.NewSHA1(
		uuid.NameSpaceURL,
		fmt.Appendf(nil, "candidates-scored-%s-%s-%d", workflowID, problem, offset),
	).String()
}

// NewCandidatesScoredEvent builds the envelope for a scored chunk.
func NewCandidatesScoredEvent(
	workflowID, runID string,
	out *ScoreCandidatesOutput,
	occurredAt time.Time,
) (EventEnvelope, error) {
	report := Report{Problem: out.Problem, Scores: FloatsOf(out.Scores)}
	for _, f := range out.Faults {
		f.Index -= out.Offset
		report.Faults = append(report.Faults, f)
	}

	payload := CandidatesScoredPayload{
		Problem:       out.Problem,
		Offset:        out.Offset,
		Candidates:    len(out.Scores),
		Faults:        report.FaultCounts(),
		BestIndex:     -1,
		BestObjective: Real(WorstObjective()),
	}
	if idx, best, ok := report.Best(); ok {
		payload.BestIndex = out.Offset + idx
		payload.BestObjective = Real(best)
	}

	if err := payload.Validate(); err != nil {
		return EventEnvelope{}, fmt.Errorf("invalid candidates scored payload: %w", err)
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return EventEnvelope{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	envelope := EventEnvelope{
		IdempotencyKey: CandidatesScoredIdempotencyKey(workflowID, out.Problem, out.Offset),
		EventType:      EventTypeCandidatesScored,
		Version:        1,
		OccurredAt:     occurredAt,
		WorkflowID:     workflowID,
		RunID:          runID,
		Payload:        payloadJSON,
		Producer:       "activity.score_candidates",
	}

	if err := envelope.Validate(); err != nil {
		return EventEnvelope{}, fmt.Errorf("invalid event envelope: %w", err)
	}

	return envelope, nil
}
