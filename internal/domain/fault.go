package domain

import "fmt"

// FaultKind classifies why a candidate could not be scored.
// Every kind scores the same sentinel; the kind exists for diagnostics.
type FaultKind string

const (
	// FaultOracleError: the oracle returned an error for the candidate.
	FaultOracleError FaultKind = "oracle_error"

	// FaultNonFinite: the oracle returned NaN or an infinity.
	FaultNonFinite FaultKind = "non_finite"

	// FaultDimensionMismatch: the candidate length differs from the problem
	// dimension. Such candidates never reach the oracle.
	FaultDimensionMismatch FaultKind = "dimension_mismatch"

	// FaultPanic: the oracle panicked and the bridge recovered.
	FaultPanic FaultKind = "panic"
)

// FaultKinds lists every kind in a stable order.
func FaultKinds() []FaultKind {
	return []FaultKind{FaultOracleError, FaultNonFinite, FaultDimensionMismatch, FaultPanic}
}

// Fault records one absorbed evaluation failure.
type Fault struct {
	// Index is the candidate position in the batch that was scored.
	Index   int       `json:"index"`
	Kind    FaultKind `json:"kind"`
	Message string    `json:"message,omitempty"`
}

func (f Fault) String() string {
	if f.Message == "" {
		return fmt.Sprintf("candidate %d: %s", f.Index, f.Kind)
	}
	return fmt.Sprintf("candidate %d: %s: %s", f.Index, f.Kind, f.Message)
}
