package evaluation

import (
	"time"

	"github.com/ahrav/go-enop/internal/domain"
)

// Recorder receives bridge outcomes for metrics export.
// Implementations must be safe for concurrent use.
type Recorder interface {
	RecordBatch(problem string, size int)
	RecordEvaluation(problem string, elapsed time.Duration)
	RecordFault(problem string, kind domain.FaultKind)
}

// NoOpRecorder discards everything.
type NoOpRecorder struct{}

func (NoOpRecorder) RecordBatch(string, int)                {}
func (NoOpRecorder) RecordEvaluation(string, time.Duration) {}
func (NoOpRecorder) RecordFault(string, domain.FaultKind)   {}
