// Package worker exposes helpers to register workflows/activities with a Temporal worker.
package worker

import (
	"github.com/ahrav/go-enop/internal/catalog"
	"github.com/ahrav/go-enop/internal/scoring"
	"github.com/ahrav/go-enop/internal/workflow"
	"github.com/ahrav/go-enop/pkg/activity"
	"github.com/ahrav/go-enop/pkg/events"
)

// Registry is the registration surface shared by sdk workers and the test
// workflow environment.
type Registry interface {
	RegisterWorkflow(w interface{})
	RegisterActivity(a interface{})
}

// RegisterAll registers the evaluation workflow and the scoring activity.
// It must be called once during worker startup, before the worker starts.
// A nil sink disables event emission.
func RegisterAll(
	w Registry,
	cat *catalog.Catalog,
	sink events.EventSink,
	opts ...scoring.Option,
) *scoring.Activities {
	base := activity.NewBaseActivities(sink)
	scoringActivities := scoring.NewActivities(base, cat, opts...)

	w.RegisterWorkflow(workflow.EvaluationWorkflow)
	w.RegisterActivity(scoringActivities.ScoreCandidates)

	return scoringActivities
}
