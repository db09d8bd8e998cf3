// Package activity holds the plumbing every Temporal activity in this module
// shares: workflow context extraction, logging and heartbeats that are safe
// outside an activity context, and best-effort event emission.
package activity

import (
	"context"
	"fmt"
	"time"

	"go.temporal.io/sdk/activity"

	"github.com/ahrav/go-enop/pkg/events"
)

// Identifiers reported by GetWorkflowContext when ctx is not an activity
// context. They are fixed so event keys are reproducible in tests.
const (
	DetachedWorkflowID = "detached-workflow"
	DetachedRunID      = "detached-run"
	DetachedActivityID = "detached-activity"
)

// WorkflowContext identifies the execution an activity runs under.
type WorkflowContext struct {
	WorkflowID string
	RunID      string
	ActivityID string
	Attempt    int32
}

// BaseActivities is embedded by activity structs.
type BaseActivities struct {
	eventSink events.EventSink
}

// NewBaseActivities returns a BaseActivities emitting to sink. A nil sink
// disables emission.
func NewBaseActivities(sink events.EventSink) BaseActivities {
	return BaseActivities{eventSink: sink}
}

// GetWorkflowContext extracts execution identifiers from ctx, falling back to
// the Detached* constants outside an activity.
func (b *BaseActivities) GetWorkflowContext(ctx context.Context) WorkflowContext {
	return GetWorkflowContext(ctx)
}

// GetWorkflowContext is the package-level form of BaseActivities.GetWorkflowContext.
func GetWorkflowContext(ctx context.Context) (wfCtx WorkflowContext) {
	defer func() {
		if recover() != nil {
			wfCtx = WorkflowContext{
				WorkflowID: DetachedWorkflowID,
				RunID:      DetachedRunID,
				ActivityID: DetachedActivityID,
				Attempt:    1,
			}
		}
	}()

	info := activity.GetInfo(ctx)
	return WorkflowContext{
		WorkflowID: info.WorkflowExecution.ID,
		RunID:      info.WorkflowExecution.RunID,
		ActivityID: info.ActivityID,
		Attempt:    info.Attempt,
	}
}

// EmitEventSafe appends envelope to the sink, retrying once after a short
// delay. Failures are logged and swallowed.
func (b *BaseActivities) EmitEventSafe(ctx context.Context, envelope events.Envelope, description string) {
	if b.eventSink == nil {
		return
	}

	const maxAttempts = 2
	const retryDelay = 200 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryDelay):
			case <-ctx.Done():
				SafeLogError(ctx, fmt.Sprintf("Event emission cancelled: %s", description),
					"event_type", envelope.Type)
				return
			}
		}

		if err := b.eventSink.Append(ctx, envelope); err != nil {
			lastErr = err
			continue
		}

		SafeLog(ctx, fmt.Sprintf("Event emitted: %s", description),
			"event_type", envelope.Type,
			"idempotency_key", envelope.IdempotencyKey)
		return
	}

	SafeLogError(ctx, fmt.Sprintf("Failed to emit %s after %d attempts", description, maxAttempts),
		"event_type", envelope.Type,
		"error", lastErr)
}

// RecordHeartbeat forwards to the package-level RecordHeartbeat.
func (b *BaseActivities) RecordHeartbeat(ctx context.Context, details ...any) {
	RecordHeartbeat(ctx, details...)
}

// SafeLog logs at info level through the activity logger. Outside an
// activity context it does nothing.
func SafeLog(ctx context.Context, msg string, keyvals ...any) {
	defer func() { _ = recover() }()
	activity.GetLogger(ctx).Info(msg, keyvals...)
}

// SafeLogWarn is SafeLog at warn level.
func SafeLogWarn(ctx context.Context, msg string, keyvals ...any) {
	defer func() { _ = recover() }()
	activity.GetLogger(ctx).Warn(msg, keyvals...)
}

// SafeLogError is SafeLog at error level.
func SafeLogError(ctx context.Context, msg string, keyvals ...any) {
	defer func() { _ = recover() }()
	activity.GetLogger(ctx).Error(msg, keyvals...)
}

// RecordHeartbeat records a heartbeat; a no-op outside an activity context.
func RecordHeartbeat(ctx context.Context, details ...any) {
	defer func() { _ = recover() }()
	activity.RecordHeartbeat(ctx, details...)
}
