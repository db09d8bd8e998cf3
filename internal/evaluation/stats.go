package evaluation

import (
	"sync/atomic"

	"github.com/ahrav/go-enop/internal/domain"
)

type stats struct {
	batches           atomic.Int64
	evaluations       atomic.Int64
	oracleErrors      atomic.Int64
	nonFinite         atomic.Int64
	dimensionMismatch atomic.Int64
	panics            atomic.Int64
}

func (s *stats) recordFault(kind domain.FaultKind) {
	switch kind {
	case domain.FaultOracleError:
		s.oracleErrors.Add(1)
	case domain.FaultNonFinite:
		s.nonFinite.Add(1)
	case domain.FaultDimensionMismatch:
		s.dimensionMismatch.Add(1)
	case domain.FaultPanic:
		s.panics.Add(1)
	}
}

// Stats is a snapshot of an evaluator's cumulative counters.
type Stats struct {
	// Batches is the number of EvaluateBatch calls, single evaluations included.
	Batches int64 `json:"batches"`
	// Evaluations is the number of candidates processed, faulted ones included.
	Evaluations int64 `json:"evaluations"`
	// Faults counts absorbed faults per kind. Every kind is present.
	Faults map[domain.FaultKind]int64 `json:"faults"`
}

// TotalFaults returns the sum over all fault kinds.
func (s Stats) TotalFaults() int64 {
	var n int64
	for _, c := range s.Faults {
		n += c
	}
	return n
}

// FaultRate returns faults per evaluation, or 0 before any evaluation.
func (s Stats) FaultRate() float64 {
	if s.Evaluations == 0 {
		return 0
	}
	return float64(s.TotalFaults()) / float64(s.Evaluations)
}

// Stats returns the current counters.
func (e *Evaluator) Stats() Stats {
	return Stats{
		Batches:     e.stats.batches.Load(),
		Evaluations: e.stats.evaluations.Load(),
		Faults: map[domain.FaultKind]int64{
			domain.FaultOracleError:       e.stats.oracleErrors.Load(),
			domain.FaultNonFinite:         e.stats.nonFinite.Load(),
			domain.FaultDimensionMismatch: e.stats.dimensionMismatch.Load(),
			domain.FaultPanic:             e.stats.panics.Load(),
		},
	}
}
