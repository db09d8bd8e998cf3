package domain

import "math"

// WorstObjective is the default sentinel substituted for a candidate that
// cannot be scored. Objectives are minimized, so positive infinity ranks last.
func WorstObjective() float64 { return math.Inf(1) }

// Report is the classified outcome of scoring one batch.
// Scores has exactly one entry per candidate, in input order; faulted entries
// hold the sentinel. Faults lists the faulted positions in ascending order.
type Report struct {
	Problem string
	Scores  []float64
	Faults  []Fault
}

// FaultCount returns the number of faults of the given kind.
func (r Report) FaultCount(kind FaultKind) int {
	n := 0
	for _, f := range r.Faults {
		if f.Kind == kind {
			n++
		}
	}
	return n
}

// FaultCounts returns per-kind totals, omitting kinds that did not occur.
func (r Report) FaultCounts() map[FaultKind]int {
	counts := make(map[FaultKind]int)
	for _, f := range r.Faults {
		counts[f.Kind]++
	}
	return counts
}

// FaultAt returns the fault recorded for candidate i, if any.
func (r Report) FaultAt(i int) (Fault, bool) {
	for _, f := range r.Faults {
		if f.Index == i {
			return f, true
		}
	}
	return Fault{}, false
}

// Best returns the index and score of the lowest finite, non-faulted score.
// ok is false when every candidate faulted or scored non-finite.
func (r Report) Best() (index int, score float64, ok bool) {
	faulted := make(map[int]struct{}, len(r.Faults))
	for _, f := range r.Faults {
		faulted[f.Index] = struct{}{}
	}
	index = -1
	for i, s := range r.Scores {
		if _, bad := faulted[i]; bad || math.IsNaN(s) || math.IsInf(s, 0) {
			continue
		}
		if index < 0 || s < score {
			index, score = i, s
		}
	}
	return index, score, index >= 0
}
