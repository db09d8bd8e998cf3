// Package worker provides initialization and setup utilities for Temporal workers.
// This package contains initialization logic that should be executed during
// worker startup, keeping activity packages focused on pure activity logic.
package worker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/ahrav/go-enop/internal/catalog"
	"github.com/ahrav/go-enop/internal/configuration"
	"github.com/ahrav/go-enop/internal/domain"
	"github.com/ahrav/go-enop/internal/metrics"
	"github.com/ahrav/go-enop/internal/oracle"
	"github.com/ahrav/go-enop/internal/oracle/enoppy"
	"github.com/ahrav/go-enop/internal/problems"
	"github.com/ahrav/go-enop/internal/scoring"
	"github.com/ahrav/go-enop/pkg/events"
)

// Components are the long-lived objects a worker process needs.
// Close releases the oracle provider.
type Components struct {
	Config  *configuration.Config
	Logger  *slog.Logger
	Catalog *catalog.Catalog
	Metrics *metrics.EvaluationMetrics
	Sink    events.EventSink

	provider io.Closer
}

// Initialize validates cfg and builds the provider, catalog and metrics.
// A nil cfg uses configuration.DefaultConfig. reg receives the evaluation
// collectors when metrics are enabled; nil means the default registerer.
func Initialize(
	ctx context.Context,
	cfg *configuration.Config,
	reg prometheus.Registerer,
	sink events.EventSink,
) (*Components, error) {
	if cfg == nil {
		cfg = configuration.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := InitializeLogger(cfg, os.Stderr)

	provider, closer, err := InitializeProvider(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	cat, err := InitializeCatalog(cfg, provider, logger)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	c := &Components{
		Config:   cfg,
		Logger:   logger,
		Catalog:  cat,
		provider: closer,
	}
	if cfg.Observability.MetricsEnabled {
		c.Metrics = metrics.NewEvaluationMetrics(reg, cfg.Observability.MetricsNamespace)
	}
	if cfg.Scoring.EmitEvents {
		c.Sink = sink
	}
	return c, nil
}

// Register registers the workflow and activity with w using the
// components' configuration.
func (c *Components) Register(w Registry) *scoring.Activities {
	return RegisterAll(w, c.Catalog, c.Sink, c.ScoringOptions()...)
}

// ScoringOptions derives scoring activity options from the configuration.
func (c *Components) ScoringOptions() []scoring.Option {
	opts := []scoring.Option{
		scoring.WithSentinel(float64(c.Config.Evaluation.Sentinel)),
		scoring.WithLogger(c.Logger.With("component", "evaluation")),
		scoring.WithTracer(InitializeTracer(c.Config)),
	}
	if c.Metrics != nil {
		opts = append(opts, scoring.WithRecorder(c.Metrics))
	}
	return opts
}

// NewEvaluationRequest builds a workflow request using the configured chunk
// size, activity timeouts and attempt limit.
func (c *Components) NewEvaluationRequest(problem string, candidates [][]float64) domain.EvaluationRequest {
	req := domain.EvaluationRequest{
		Problem:          problem,
		Candidates:       make([]domain.Vector, len(candidates)),
		ChunkSize:        c.Config.Scoring.ChunkSize,
		TimeoutSeconds:   int(c.Config.Scoring.ActivityTimeout.Seconds()),
		HeartbeatSeconds: int(c.Config.Scoring.HeartbeatTimeout.Seconds()),
		MaxAttempts:      c.Config.Scoring.MaxAttempts,
	}
	for i, x := range candidates {
		req.Candidates[i] = domain.VectorOf(x)
	}
	return req
}

// Close releases the oracle provider.
func (c *Components) Close() error {
	if c.provider == nil {
		return nil
	}
	return c.provider.Close()
}

// InitializeLogger returns a text logger at the configured level.
func InitializeLogger(cfg *configuration.Config, w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Observability.Level()})
	return slog.New(handler).With("component", "worker")
}

// InitializeProvider creates the configured oracle provider. The returned
// closer must be closed when the worker stops; for the native backend it is
// a no-op.
func InitializeProvider(
	ctx context.Context,
	cfg *configuration.Config,
	logger *slog.Logger,
) (oracle.Provider, io.Closer, error) {
	switch cfg.Oracle.Backend {
	case configuration.BackendNative:
		provider := problems.NewProvider(problems.WithPenalty(problems.Penalty{
			Factor:            cfg.Problems.PenaltyFactor,
			EqualityTolerance: cfg.Problems.EqualityTolerance,
		}))
		return provider, nopCloser{}, nil

	case configuration.BackendEnoppy:
		ec := cfg.Oracle.Enoppy
		session, err := enoppy.Start(ctx,
			enoppy.WithPython(ec.Python, ec.Args...),
			enoppy.WithEnv(ec.Env...),
			enoppy.WithStartTimeout(ec.StartTimeout),
			enoppy.WithLogger(logger.With("component", "enoppy")),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start enoppy session: %w", err)
		}
		return session, session, nil
	}

	return nil, nil, fmt.Errorf("%w: backend %q", configuration.ErrInvalidConfig, cfg.Oracle.Backend)
}

// InitializeCatalog builds a catalog restricted to the enabled problems.
func InitializeCatalog(
	cfg *configuration.Config,
	provider oracle.Provider,
	logger *slog.Logger,
) (*catalog.Catalog, error) {
	if provider == nil {
		return nil, errors.New("oracle provider is nil")
	}
	cat, err := catalog.New(provider,
		catalog.WithIdentifiers(cfg.EnabledProblems()...),
		catalog.WithLogger(logger.With("component", "catalog")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize catalog: %w", err)
	}
	return cat, nil
}

// InitializeTracer returns the global tracer under the configured name when
// tracing is enabled, and a no-op tracer otherwise. The embedding program
// installs the global TracerProvider.
func InitializeTracer(cfg *configuration.Config) trace.Tracer {
	if !cfg.Observability.TracingEnabled {
		return noop.NewTracerProvider().Tracer("")
	}
	return otel.Tracer(cfg.Observability.TracerName)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
