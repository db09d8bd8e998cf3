package problems

import "math"

// Default penalty parameters.
const (
	// DefaultPenaltyFactor scales the aggregated constraint violation.
	DefaultPenaltyFactor = 1e6

	// DefaultEqualityTolerance is the slack granted to each equality
	// constraint before it counts as violated.
	DefaultEqualityTolerance = 1e-4
)

// Definition is one benchmark problem as data: a search box, an objective and
// its constraints. Inequalities are satisfied when g(x) <= 0, equalities when
// |h(x)| <= tolerance. Nil constraint functions mean "none".
type Definition struct {
	Name       string
	Lower      []float64
	Upper      []float64
	Objective  func(x []float64) float64
	Inequality func(x []float64) []float64
	Equality   func(x []float64) []float64
}

// Dimension returns the number of decision variables.
func (d Definition) Dimension() int { return len(d.Lower) }

// Bounds returns the box as [lo, hi] pairs.
func (d Definition) Bounds() [][]float64 {
	out := make([][]float64, len(d.Lower))
	for i := range d.Lower {
		out[i] = []float64{d.Lower[i], d.Upper[i]}
	}
	return out
}

// Penalty folds constraint violation into the objective.
type Penalty struct {
	Factor            float64
	EqualityTolerance float64
}

// DefaultPenalty returns the penalty used by NewProvider.
func DefaultPenalty() Penalty {
	return Penalty{Factor: DefaultPenaltyFactor, EqualityTolerance: DefaultEqualityTolerance}
}

// Violation returns Σ max(0, g) + Σ max(0, |h| - tol) for x.
func (p Penalty) Violation(d Definition, x []float64) float64 {
	var v float64
	if d.Inequality != nil {
		for _, g := range d.Inequality(x) {
			v += math.Max(0, g)
		}
	}
	if d.Equality != nil {
		for _, h := range d.Equality(x) {
			v += math.Max(0, math.Abs(h)-p.EqualityTolerance)
		}
	}
	return v
}

// Fitness returns f(x) + Factor * Violation(x). NaN propagates, so an
// undefined formula yields a non-finite fitness.
func (p Penalty) Fitness(d Definition, x []float64) float64 {
	return d.Objective(x) + p.Factor*p.Violation(d, x)
}

// Shorthands used by the formula files.
var (
	pow  = math.Pow
	sqrt = math.Sqrt
	exp  = math.Exp
	log  = math.Log
	abs  = math.Abs
	sin  = math.Sin
	cos  = math.Cos
	pi   = math.Pi
)

// round maps a relaxed integer variable to its integer value.
func round(v float64) float64 { return math.Round(v) }

func sq(v float64) float64 { return v * v }

func cube(v float64) float64 { return v * v * v }
