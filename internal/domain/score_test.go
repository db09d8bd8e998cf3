package domain

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReal_JSON(t *testing.T) {
	tests := []struct {
		name string
		in   Real
		want string
	}{
		{name: "finite", in: 1.5, want: `1.5`},
		{name: "positive infinity", in: Real(math.Inf(1)), want: `"+Inf"`},
		{name: "negative infinity", in: Real(math.Inf(-1)), want: `"-Inf"`},
		{name: "nan", in: Real(math.NaN()), want: `"NaN"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			var back Real
			require.NoError(t, json.Unmarshal(data, &back))
			if math.IsNaN(float64(tt.in)) {
				assert.True(t, math.IsNaN(float64(back)))
				return
			}
			assert.Equal(t, tt.in, back)
		})
	}

	var r Real
	assert.Error(t, json.Unmarshal([]byte(`"lots"`), &r))
}

func TestReport(t *testing.T) {
	r := Report{
		Problem: "Toy",
		Scores:  []float64{3, math.Inf(1), 1, math.Inf(1)},
		Faults: []Fault{
			{Index: 1, Kind: FaultOracleError, Message: "boom"},
			{Index: 3, Kind: FaultDimensionMismatch},
		},
	}

	idx, best, ok := r.Best()
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, 1.0, best)

	assert.Equal(t, 1, r.FaultCount(FaultOracleError))
	assert.Equal(t, 0, r.FaultCount(FaultPanic))
	assert.Equal(t, map[FaultKind]int{FaultOracleError: 1, FaultDimensionMismatch: 1}, r.FaultCounts())

	f, ok := r.FaultAt(1)
	require.True(t, ok)
	assert.Equal(t, "candidate 1: oracle_error: boom", f.String())
	_, ok = r.FaultAt(0)
	assert.False(t, ok)

	_, _, ok = Report{Scores: []float64{math.Inf(1)}, Faults: []Fault{{Index: 0}}}.Best()
	assert.False(t, ok)
}

func TestScoreCandidatesInput_Validate(t *testing.T) {
	valid := ScoreCandidatesInput{Problem: "Toy", Candidates: []Vector{{1, 2}}}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		input ScoreCandidatesInput
	}{
		{name: "missing problem", input: ScoreCandidatesInput{Candidates: []Vector{{1}}}},
		{name: "no candidates", input: ScoreCandidatesInput{Problem: "Toy"}},
		{name: "negative offset", input: ScoreCandidatesInput{Problem: "Toy", Candidates: []Vector{{1}}, Offset: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.input.Validate(), ErrInvalidRequest)
		})
	}
}

func TestNewScoreCandidatesOutput(t *testing.T) {
	report := Report{
		Problem: "Toy",
		Scores:  []float64{1, math.Inf(1)},
		Faults:  []Fault{{Index: 1, Kind: FaultNonFinite}},
	}

	out := NewScoreCandidatesOutput(report, 10)
	require.NoError(t, out.Validate())
	assert.Equal(t, 11, out.Faults[0].Index)
	assert.Equal(t, 1, report.Faults[0].Index, "report is not modified")

	out.Faults[0].Index = 12
	assert.Error(t, out.Validate(), "fault outside the chunk")
}

func TestEvaluationRequest_Chunks(t *testing.T) {
	cands := make([]Vector, 5)
	for i := range cands {
		cands[i] = Vector{Real(i)}
	}

	req := EvaluationRequest{Problem: "Toy", Candidates: cands, ChunkSize: 2}
	chunks := req.Chunks()
	require.Len(t, chunks, 3)
	assert.Equal(t, []int{0, 2, 4}, []int{chunks[0].Offset, chunks[1].Offset, chunks[2].Offset})
	assert.Len(t, chunks[2].Candidates, 1)

	req.ChunkSize = 0
	assert.Equal(t, DefaultChunkSize, req.EffectiveChunkSize())
	assert.Len(t, req.Chunks(), 1)

	assert.ErrorIs(t, EvaluationRequest{}.Validate(), ErrInvalidRequest)
}

func TestEvaluationResult_Append(t *testing.T) {
	var res EvaluationResult
	require.NoError(t, res.Append(&ScoreCandidatesOutput{Problem: "Toy", Offset: 0, Scores: []Real{1, 2}}))
	require.NoError(t, res.Append(&ScoreCandidatesOutput{
		Problem: "Toy", Offset: 2, Scores: []Real{Real(math.Inf(1))},
		Faults: []Fault{{Index: 2, Kind: FaultPanic}},
	}))
	assert.Error(t, res.Append(&ScoreCandidatesOutput{Problem: "Toy", Offset: 7, Scores: []Real{1}}))

	rep := res.Report()
	assert.Len(t, rep.Scores, 3)
	assert.Equal(t, 1, rep.FaultCount(FaultPanic))
}

func TestNewCandidatesScoredEvent(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	out := &ScoreCandidatesOutput{
		Problem: "Toy",
		Offset:  4,
		Scores:  []Real{Real(math.Inf(1)), 3, 2},
		Faults:  []Fault{{Index: 4, Kind: FaultOracleError}},
	}

	env, err := NewCandidatesScoredEvent("wf-1", "run-1", out, at)
	require.NoError(t, err)
	assert.Equal(t, EventTypeCandidatesScored, env.EventType)
	assert.Equal(t, CandidatesScoredIdempotencyKey("wf-1", "Toy", 4), env.IdempotencyKey)
	assert.Equal(t, at, env.OccurredAt)

	var payload CandidatesScoredPayload
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, 6, payload.BestIndex)
	assert.Equal(t, Real(2), payload.BestObjective)
	assert.Equal(t, 3, payload.Candidates)

	again, err := NewCandidatesScoredEvent("wf-1", "run-2", out, at.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, env.IdempotencyKey, again.IdempotencyKey, "key ignores run and time")
	assert.NotEqual(t, env.IdempotencyKey, CandidatesScoredIdempotencyKey("wf-1", "Toy", 5))

	allFaulted := &ScoreCandidatesOutput{
		Problem: "Toy",
		Scores:  []Real{Real(math.Inf(1))},
		Faults:  []Fault{{Index: 0, Kind: FaultNonFinite}},
	}
	env, err = NewCandidatesScoredEvent("wf-1", "run-1", allFaulted, at)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, -1, payload.BestIndex)
	assert.True(t, math.IsInf(float64(payload.BestObjective), 1))
}
