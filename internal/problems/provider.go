// Package problems is the native oracle provider: the RWCO-2020 engineering
// benchmark suite implemented as Go data. Each Definition carries the box,
// objective and constraints of one published problem; Penalty turns them into
// the scalar fitness an Oracle reports.
//
// Formulas are evaluated as written. Where a formula is undefined at x (a
// logarithm of a non-positive value, a root of a negative one) the fitness is
// NaN or infinite and callers decide what that means.
package problems

import (
	"fmt"

	"github.com/ahrav/go-enop/internal/oracle"
)

// Provider opens native oracles by problem name.
type Provider struct {
	penalty Penalty
	defs    map[string]Definition
}

// Option configures a Provider.
type Option func(*Provider)

// WithPenalty overrides the default penalty parameters.
func WithPenalty(p Penalty) Option {
	return func(pr *Provider) { pr.penalty = p }
}

// NewProvider returns a provider covering every problem in Definitions.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{penalty: DefaultPenalty(), defs: make(map[string]Definition)}
	for _, d := range Definitions() {
		p.defs[d.Name] = d
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Open implements oracle.Provider.
func (p *Provider) Open(name string) (oracle.Oracle, error) {
	d, ok := p.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", oracle.ErrUnsupportedProblem, name)
	}
	return &problem{def: d, penalty: p.penalty}, nil
}

// Penalty returns the penalty parameters applied by opened oracles.
func (p *Provider) Penalty() Penalty { return p.penalty }

// problem is a native oracle. It holds no mutable state, so scores depend
// only on x.
type problem struct {
	def     Definition
	penalty Penalty
}

func (p *problem) Metadata() (oracle.Metadata, error) {
	return oracle.Metadata{Dimension: p.def.Dimension(), Bounds: p.def.Bounds()}, nil
}

func (p *problem) Score(x []float64) (float64, error) {
	if len(x) != p.def.Dimension() {
		return 0, fmt.Errorf("%w: got %d, want %d", oracle.ErrDimensionMismatch, len(x), p.def.Dimension())
	}
	return p.penalty.Fitness(p.def, x), nil
}
