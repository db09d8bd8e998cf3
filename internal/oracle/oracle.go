// Package oracle defines the evaluation-oracle capability the catalog and the
// evaluation bridge consume. An Oracle is one instantiated benchmark problem:
// it reports its declared metadata and scores candidate vectors, folding the
// problem's constraints into the returned value. How it computes the score
// (native formulas, a foreign process) is invisible to callers.
package oracle

import (
	"errors"
	"sync"
)

// Oracle-side errors. Providers wrap these so callers can classify with errors.Is.
var (
	// ErrUnsupportedProblem indicates the provider has no binding for a name.
	ErrUnsupportedProblem = errors.New("problem not supported by oracle provider")

	// ErrOracleUnavailable indicates the oracle runtime could not be reached.
	ErrOracleUnavailable = errors.New("oracle unavailable")

	// ErrMalformedMetadata indicates metadata that cannot describe a search box.
	ErrMalformedMetadata = errors.New("malformed oracle metadata")

	// ErrDimensionMismatch indicates a scoring call with a vector of the wrong length.
	ErrDimensionMismatch = errors.New("vector length does not match problem dimension")
)

// Metadata is what an oracle declares about its problem. Bounds holds one
// [lo, hi] pair per variable, in the shape the foreign suite reports it.
type Metadata struct {
	Dimension int         `json:"n_dims"`
	Bounds    [][]float64 `json:"bounds"`
}

// Oracle scores candidate vectors for one problem instance.
// Implementations need not be safe for concurrent use; callers serialize
// access to a shared handle (see Serialized).
type Oracle interface {
	// Metadata returns the declared dimensionality and bounds.
	Metadata() (Metadata, error)

	// Score returns the penalized objective of x. An undefined result may be
	// returned either as an error or as a non-finite value.
	Score(x []float64) (float64, error)
}

// Provider instantiates oracle handles by problem name.
type Provider interface {
	Open(name string) (Oracle, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(name string) (Oracle, error)

// Open calls f(name).
func (f ProviderFunc) Open(name string) (Oracle, error) { return f(name) }

// Serialized wraps o so that every call holds a mutex. Use it when one handle
// is shared between goroutines; the wrapped oracle is the serialization point.
func Serialized(o Oracle) Oracle {
	if s, ok := o.(*serialized); ok {
		return s
	}
	return &serialized{inner: o}
}

type serialized struct {
	mu    sync.Mutex
	inner Oracle
}

func (s *serialized) Metadata() (Metadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Metadata()
}

func (s *serialized) Score(x []float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Score(x)
}
