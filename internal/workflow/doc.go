// Package workflow implements the Temporal workflow that scores a candidate
// set against one catalog problem.
//
// EvaluationWorkflow splits the request into chunks and runs one
// ScoreCandidates activity per chunk, in order. Every candidate receives a
// score; failures the oracle produces for individual candidates come back as
// faults carrying the sentinel, never as workflow errors.
//
// Workflow code must stay deterministic: no clocks, randomness or I/O. All
// evaluation happens inside activities.
package workflow
