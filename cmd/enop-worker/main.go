// Command enop-worker runs a Temporal worker serving EvaluationWorkflow and
// the ScoreCandidates activity with the default configuration.
//
// Environment:
//
//	TEMPORAL_HOSTPORT  Temporal frontend address (SDK default when empty)
//	TEMPORAL_NAMESPACE Temporal namespace (SDK default when empty)
//	ENOP_BACKEND       "native" or "enoppy"
//	ENOP_PYTHON        interpreter for the enoppy backend
//	ENOP_METRICS_ADDR  address serving /metrics, e.g. ":9090"
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.temporal.io/sdk/client"
	temporallog "go.temporal.io/sdk/log"
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/ahrav/go-enop/internal/configuration"
	"github.com/ahrav/go-enop/internal/worker"
	"github.com/ahrav/go-enop/pkg/events"
)

func main() {
	if err := run(); err != nil {
		slog.Error("worker stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := configuration.DefaultConfig()
	if backend := os.Getenv("ENOP_BACKEND"); backend != "" {
		cfg.Oracle.Backend = configuration.OracleBackend(backend)
	}
	if python := os.Getenv("ENOP_PYTHON"); python != "" {
		cfg.Oracle.Enoppy.Python = python
	}

	components, err := worker.Initialize(context.Background(), cfg, prometheus.DefaultRegisterer, events.NewMemorySink())
	if err != nil {
		return err
	}
	defer func() {
		if err := components.Close(); err != nil {
			components.Logger.Error("failed to close oracle provider", "error", err)
		}
	}()

	if addr := os.Getenv("ENOP_METRICS_ADDR"); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
				components.Logger.Error("metrics server failed", "error", err)
			}
		}()
	}

	c, err := client.Dial(client.Options{
		HostPort:  os.Getenv("TEMPORAL_HOSTPORT"),
		Namespace: os.Getenv("TEMPORAL_NAMESPACE"),
		Logger:    temporallog.NewStructuredLogger(components.Logger),
	})
	if err != nil {
		return err
	}
	defer c.Close()

	w := sdkworker.New(c, cfg.Scoring.TaskQueue, sdkworker.Options{})
	components.Register(w)

	components.Logger.Info("worker starting",
		"task_queue", cfg.Scoring.TaskQueue,
		"backend", string(cfg.Oracle.Backend),
		"problems", len(components.Catalog.Names()))

	return w.Run(sdkworker.InterruptCh())
}
