package domain

import "fmt"

// ScoreCandidatesInput is the payload of the ScoreCandidates activity.
type ScoreCandidatesInput struct {
	// Problem is the catalog identifier, case-sensitive.
	Problem string `json:"problem" validate:"required"`

	// Candidates are scored in order. Lengths are not checked here: a wrong
	// length is a per-candidate fault, not an invalid request.
	Candidates []Vector `json:"candidates" validate:"required,min=1"`

	// Offset is the position of Candidates[0] within the enclosing evaluation
	// request. Fault indices in the output are absolute (Offset + i).
	Offset int `json:"offset" validate:"min=0"`
}

// Validate checks the structural requirements of the input.
func (in ScoreCandidatesInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// ScoreCandidatesOutput carries one score per input candidate.
type ScoreCandidatesOutput struct {
	Problem string  `json:"problem" validate:"required"`
	Offset  int     `json:"offset" validate:"min=0"`
	Scores  []Real  `json:"scores" validate:"required,min=1"`
	Faults  []Fault `json:"faults,omitempty"`
}

// Validate checks the output shape, including that every fault points at a
// score inside this chunk.
func (out *ScoreCandidatesOutput) Validate() error {
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("invalid score output: %w", err)
	}
	for _, f := range out.Faults {
		if f.Index < out.Offset || f.Index >= out.Offset+len(out.Scores) {
			return fmt.Errorf("invalid score output: fault index %d outside [%d, %d)",
				f.Index, out.Offset, out.Offset+len(out.Scores))
		}
	}
	return nil
}

// NewScoreCandidatesOutput converts a bridge report into wire form, shifting
// fault indices by offset.
func NewScoreCandidatesOutput(report Report, offset int) *ScoreCandidatesOutput {
	faults := make([]Fault, len(report.Faults))
	for i, f := range report.Faults {
		f.Index += offset
		faults[i] = f
	}
	return &ScoreCandidatesOutput{
		Problem: report.Problem,
		Offset:  offset,
		Scores:  RealsOf(report.Scores),
		Faults:  faults,
	}
}
