package scoring

import (
	"context"
	"fmt"
	"time"

	"github.com/ahrav/go-enop/internal/domain"
	"github.com/ahrav/go-enop/pkg/activity"
	"github.com/ahrav/go-enop/pkg/events"
)

// EventEmitter turns scored chunks into CandidatesScored envelopes.
// Emission is best-effort and never fails the activity.
type EventEmitter struct {
	base activity.BaseActivities
	now  func() time.Time
}

// NewEventEmitter returns an emitter using base for delivery.
func NewEventEmitter(base activity.BaseActivities) *EventEmitter {
	return &EventEmitter{base: base, now: time.Now}
}

// EmitCandidatesScored emits one event summarizing output.
func (e *EventEmitter) EmitCandidatesScored(
	ctx context.Context,
	output *domain.ScoreCandidatesOutput,
	wfCtx activity.WorkflowContext,
) {
	domainEvent, err := domain.NewCandidatesScoredEvent(wfCtx.WorkflowID, wfCtx.RunID, output, e.now())
	if err != nil {
		activity.SafeLogError(ctx, "Failed to create CandidatesScored event",
			"problem", output.Problem,
			"offset", output.Offset,
			"error", err)
		return
	}

	e.base.EmitEventSafe(ctx, convertDomainEventToEnvelope(domainEvent), "CandidatesScored")
}

// convertDomainEventToEnvelope maps a domain envelope onto the transport one.
func convertDomainEventToEnvelope(domainEvent domain.EventEnvelope) events.Envelope {
	return events.Envelope{
		ID:             domainEvent.IdempotencyKey,
		Type:           string(domainEvent.EventType),
		Source:         domainEvent.Producer,
		Version:        fmt.Sprintf("%d.0.0", domainEvent.Version),
		Timestamp:      domainEvent.OccurredAt,
		IdempotencyKey: domainEvent.IdempotencyKey,
		WorkflowID:     domainEvent.WorkflowID,
		RunID:          domainEvent.RunID,
		Payload:        domainEvent.Payload,
	}
}
