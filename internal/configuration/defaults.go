package configuration

import (
	"time"

	"github.com/ahrav/go-enop/internal/domain"
	"github.com/ahrav/go-enop/internal/problems"
)

// Oracle constants.
const (
	DefaultPython             = "python3"
	DefaultEnoppyStartTimeout = 30 * time.Second
)

// Scoring constants.
const (
	DefaultTaskQueue        = "enop-evaluation"
	DefaultChunkSize        = domain.DefaultChunkSize
	DefaultActivityTimeout  = 5 * time.Minute
	DefaultHeartbeatTimeout = 30 * time.Second
	DefaultMaxAttempts      = 3
)

// Observability constants.
const (
	DefaultLogLevel         = "info"
	DefaultMetricsNamespace = "enop"
	DefaultTracerName       = "github.com/ahrav/go-enop"
)

// DefaultConfig returns a configuration that uses the native oracle, scores
// faults with +Inf and enables metrics but not tracing.
func DefaultConfig() *Config {
	return &Config{
		Oracle: OracleConfig{
			Backend: BackendNative,
			Enoppy: EnoppyConfig{
				Python:       DefaultPython,
				StartTimeout: DefaultEnoppyStartTimeout,
			},
		},
		Problems: ProblemsConfig{
			PenaltyFactor:     problems.DefaultPenaltyFactor,
			EqualityTolerance: problems.DefaultEqualityTolerance,
		},
		Evaluation: EvaluationConfig{
			Sentinel: domain.Real(domain.WorstObjective()),
		},
		Scoring: ScoringConfig{
			TaskQueue:        DefaultTaskQueue,
			ChunkSize:        DefaultChunkSize,
			ActivityTimeout:  DefaultActivityTimeout,
			HeartbeatTimeout: DefaultHeartbeatTimeout,
			MaxAttempts:      DefaultMaxAttempts,
			EmitEvents:       true,
		},
		Observability: ObservabilityConfig{
			LogLevel:         DefaultLogLevel,
			MetricsEnabled:   true,
			MetricsNamespace: DefaultMetricsNamespace,
			TracerName:       DefaultTracerName,
		},
	}
}
