// Package domain defines the value types shared by the benchmark catalog, the
// evaluation bridge and the Temporal scoring layer.
//
// A ProblemDescriptor is the {name, dimension, domain} triple a search
// framework needs to generate candidates. Descriptors are immutable once built:
// fields are unexported and accessors hand out copies.
package domain

import (
	"fmt"
	"strings"
)

// descriptorFields carries the struct tags checked by the validator before the
// per-interval invariants are applied.
type descriptorFields struct {
	Name      string     `validate:"required"`
	Dimension int        `validate:"gt=0"`
	Domain    []Interval `validate:"required,min=1"`
}

// ProblemDescriptor identifies one benchmark problem and its search box.
// The zero value is not a valid descriptor; build one with NewProblemDescriptor.
type ProblemDescriptor struct {
	name      string
	dimension int
	domain    []Interval
}

// NewProblemDescriptor validates and builds a descriptor.
// It fails when the name is empty, dimension is not positive,
// len(domain) != dimension, or any interval is invalid.
func NewProblemDescriptor(name string, dimension int, domain []Interval) (ProblemDescriptor, error) {
	fields := descriptorFields{Name: name, Dimension: dimension, Domain: domain}
	if err := validate.Struct(fields); err != nil {
		return ProblemDescriptor{}, fmt.Errorf("%w: %w", ErrInvalidDescriptor, err)
	}
	if len(domain) != dimension {
		return ProblemDescriptor{}, fmt.Errorf("%w: %d intervals for dimension %d",
			ErrInvalidDescriptor, len(domain), dimension)
	}
	for i, iv := range domain {
		if err := iv.Validate(); err != nil {
			return ProblemDescriptor{}, fmt.Errorf("%w: variable %d: %w", ErrInvalidDescriptor, i, err)
		}
	}

	owned := make([]Interval, len(domain))
	copy(owned, domain)
	return ProblemDescriptor{name: name, dimension: dimension, domain: owned}, nil
}

// Name returns the catalog identifier.
func (d ProblemDescriptor) Name() string { return d.name }

// Dimension returns the number of decision variables.
func (d ProblemDescriptor) Dimension() int { return d.dimension }

// Domain returns a copy of the per-variable bounds.
func (d ProblemDescriptor) Domain() []Interval {
	if d.domain == nil {
		return nil
	}
	out := make([]Interval, len(d.domain))
	copy(out, d.domain)
	return out
}

// Bound returns the interval of variable i.
func (d ProblemDescriptor) Bound(i int) Interval { return d.domain[i] }

// IsZero reports whether d was never built.
func (d ProblemDescriptor) IsZero() bool { return d.name == "" && d.dimension == 0 }

// Midpoint returns the centre of the search box.
func (d ProblemDescriptor) Midpoint() []float64 {
	x := make([]float64, d.dimension)
	for i, iv := range d.domain {
		x[i] = iv.Midpoint()
	}
	return x
}

// Contains reports whether x has the descriptor's dimension and lies inside
// every interval. The evaluation bridge never calls it; callers that repair
// or reject out-of-domain points do.
func (d ProblemDescriptor) Contains(x []float64) bool {
	if len(x) != d.dimension {
		return false
	}
	for i, v := range x {
		if !d.domain[i].Contains(v) {
			return false
		}
	}
	return true
}

func (d ProblemDescriptor) String() string {
	parts := make([]string, len(d.domain))
	for i, iv := range d.domain {
		parts[i] = iv.String()
	}
	return fmt.Sprintf("%s(d=%d, domain=[%s])", d.name, d.dimension, strings.Join(parts, " "))
}
