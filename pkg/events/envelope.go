// Package events defines the envelope scored-batch events travel in and the
// sink they are appended to.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"
)

// Envelope wraps a domain event payload with routing and deduplication
// metadata.
type Envelope struct {
	// ID is deterministic per event so retries map to the same envelope.
	ID string `json:"id"`

	// Type routes the event, e.g. "CandidatesScored".
	Type string `json:"type"`

	// Source names the emitting component.
	Source string `json:"source"`

	// Version is the payload schema version ("1.0.0").
	Version string `json:"version"`

	Timestamp time.Time `json:"timestamp"`

	// IdempotencyKey lets sinks drop duplicates produced by activity retries.
	IdempotencyKey string `json:"idempotency_key"`

	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`

	Payload json.RawMessage `json:"payload"`
}

// EventSink receives envelopes. Append should return quickly; callers treat
// failures as non-fatal.
type EventSink interface {
	Append(ctx context.Context, envelope Envelope) error
}

// NoOpEventSink discards every envelope.
type NoOpEventSink struct{}

// Append implements EventSink.
func (n *NoOpEventSink) Append(_ context.Context, _ Envelope) error {
	return nil
}

// NewNoOpEventSink returns a sink that discards every envelope.
func NewNoOpEventSink() EventSink {
	return &NoOpEventSink{}
}

// ErrEmptyIdempotencyKey is returned by MemorySink for keyless envelopes.
var ErrEmptyIdempotencyKey = errors.New("envelope has no idempotency key")

// MemorySink keeps envelopes in memory, dropping duplicates by idempotency
// key. It backs tests and single-process deployments.
type MemorySink struct {
	mu     sync.Mutex
	seen   map[string]struct{}
	events []Envelope
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{seen: make(map[string]struct{})}
}

// Append implements EventSink.
func (m *MemorySink) Append(ctx context.Context, envelope Envelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if envelope.IdempotencyKey == "" {
		return ErrEmptyIdempotencyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, dup := m.seen[envelope.IdempotencyKey]; dup {
		return nil
	}
	m.seen[envelope.IdempotencyKey] = struct{}{}
	m.events = append(m.events, envelope)
	return nil
}

// Events returns a copy of the stored envelopes in append order.
func (m *MemorySink) Events() []Envelope {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Envelope(nil), m.events...)
}

// Len returns the number of stored envelopes.
func (m *MemorySink) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}
