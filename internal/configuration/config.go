// Package configuration holds the settings that wire oracle providers, the
// catalog, the evaluation bridge and the Temporal scoring surface together.
// Values are plain structs; loading them from files or flags is left to the
// embedding program.
package configuration

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ahrav/go-enop/internal/catalog"
	"github.com/ahrav/go-enop/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// OracleBackend selects the oracle provider implementation.
type OracleBackend string

// Supported backends.
const (
	BackendNative OracleBackend = "native"
	BackendEnoppy OracleBackend = "enoppy"
)

// Config is the full module configuration.
type Config struct {
	Oracle        OracleConfig        `json:"oracle"`
	Problems      ProblemsConfig      `json:"problems"`
	Evaluation    EvaluationConfig    `json:"evaluation"`
	Scoring       ScoringConfig       `json:"scoring"`
	Observability ObservabilityConfig `json:"observability"`
}

// OracleConfig selects and configures the oracle provider.
type OracleConfig struct {
	Backend OracleBackend `json:"backend" validate:"required,oneof=native enoppy"`
	Enoppy  EnoppyConfig  `json:"enoppy"`
}

// EnoppyConfig configures the Python subprocess session.
type EnoppyConfig struct {
	Python       string        `json:"python"`                         // Interpreter path; required for the enoppy backend
	Args         []string      `json:"args,omitempty"`                 // Extra interpreter arguments placed before the worker script
	Env          []string      `json:"env,omitempty"`                  // Extra KEY=VALUE entries appended to the environment
	StartTimeout time.Duration `json:"start_timeout" validate:"gte=0"` // Time allowed for the first response
}

// ProblemsConfig configures the native problem table and the catalog.
type ProblemsConfig struct {
	PenaltyFactor     float64  `json:"penalty_factor" validate:"gt=0"`
	EqualityTolerance float64  `json:"equality_tolerance" validate:"gte=0"`
	Enabled           []string `json:"enabled,omitempty" validate:"omitempty,dive,required"` // Subset of catalog identifiers; empty means all
}

// EvaluationConfig configures the evaluation bridge.
type EvaluationConfig struct {
	Sentinel domain.Real `json:"sentinel"`
}

// ScoringConfig configures the Temporal scoring surface.
type ScoringConfig struct {
	TaskQueue        string        `json:"task_queue" validate:"required"`
	ChunkSize        int           `json:"chunk_size" validate:"gt=0"`
	ActivityTimeout  time.Duration `json:"activity_timeout" validate:"gt=0"`
	HeartbeatTimeout time.Duration `json:"heartbeat_timeout" validate:"gte=0"`
	MaxAttempts      int32         `json:"max_attempts" validate:"gte=1"`
	EmitEvents       bool          `json:"emit_events"`
}

// ObservabilityConfig configures logging, metrics and tracing.
type ObservabilityConfig struct {
	LogLevel         string `json:"log_level" validate:"oneof=debug info warn error"`
	MetricsEnabled   bool   `json:"metrics_enabled"`
	MetricsNamespace string `json:"metrics_namespace" validate:"required_if=MetricsEnabled true"`
	TracingEnabled   bool   `json:"tracing_enabled"`
	TracerName       string `json:"tracer_name" validate:"required_if=TracingEnabled true"`
}

// Validate checks field constraints and cross-field rules.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Oracle.Backend == BackendEnoppy && c.Oracle.Enoppy.Python == "" {
		return fmt.Errorf("%w: enoppy backend requires a python interpreter", ErrInvalidConfig)
	}

	known := make(map[string]bool)
	for _, n := range catalog.Identifiers() {
		known[n] = true
	}
	for _, n := range c.Problems.Enabled {
		if !known[n] {
			return fmt.Errorf("%w: enabled problem %q: %w", ErrInvalidConfig, n, domain.ErrUnknownProblem)
		}
	}
	return nil
}

// EnabledProblems returns the configured identifier subset, or every
// identifier when none is configured.
func (c *Config) EnabledProblems() []string {
	if len(c.Problems.Enabled) == 0 {
		return catalog.Identifiers()
	}
	return append([]string(nil), c.Problems.Enabled...)
}

// Level maps LogLevel onto slog levels. Unknown values map to info.
func (o ObservabilityConfig) Level() slog.Level {
	switch o.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
