// Package catalog is the problem registry: a closed, case-sensitive set of
// benchmark identifiers, each bound to an oracle provider. Resolving a name
// instantiates the oracle once and turns its declared metadata into an
// immutable domain.ProblemDescriptor.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"

	"github.com/ahrav/go-enop/internal/domain"
	"github.com/ahrav/go-enop/internal/oracle"
)

// Catalog maps identifiers to descriptors. It holds no descriptors itself;
// each Resolve or Open builds a fresh one from the provider, so a broken
// oracle is reported on every lookup until it is fixed.
type Catalog struct {
	provider oracle.Provider
	names    []string
	index    map[string]struct{}
	logger   *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger for construction diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithIdentifiers replaces the registered identifier set. Adding a benchmark
// is a new identifier plus a provider binding for it.
func WithIdentifiers(names ...string) Option {
	return func(c *Catalog) { c.names = slices.Clone(names) }
}

// New returns a catalog backed by provider.
func New(provider oracle.Provider, opts ...Option) (*Catalog, error) {
	if provider == nil {
		return nil, errors.New("catalog: provider is required")
	}

	c := &Catalog{
		provider: provider,
		names:    Identifiers(),
		logger:   slog.Default().With("component", "catalog"),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.index = make(map[string]struct{}, len(c.names))
	for _, n := range c.names {
		if n == "" {
			return nil, errors.New("catalog: empty identifier")
		}
		if _, dup := c.index[n]; dup {
			return nil, fmt.Errorf("catalog: duplicate identifier %q", n)
		}
		c.index[n] = struct{}{}
	}
	return c, nil
}

// Names returns the registered identifiers in catalog order.
func (c *Catalog) Names() []string { return slices.Clone(c.names) }

// Has reports whether name is registered.
func (c *Catalog) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Resolve returns the descriptor for name. The oracle handle used to build it
// is released before returning.
func (c *Catalog) Resolve(name string) (domain.ProblemDescriptor, error) {
	inst, err := c.Open(name)
	if err != nil {
		return domain.ProblemDescriptor{}, err
	}
	if err := inst.Close(); err != nil {
		c.logger.Warn("failed to release oracle handle", "problem", name, "error", err)
	}
	return inst.Descriptor(), nil
}

// Open instantiates the oracle for name, queries its metadata exactly once and
// returns the descriptor paired with the live handle.
func (c *Catalog) Open(name string) (*Instance, error) {
	if !c.Has(name) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProblem, name)
	}

	o, err := c.provider.Open(name)
	if err != nil {
		c.logger.Error("oracle instantiation failed", "problem", name, "error", err)
		return nil, domain.NewCatalogConstructionError(name, err)
	}
	if o == nil {
		return nil, domain.NewCatalogConstructionError(name, fmt.Errorf("%w: provider returned no oracle", oracle.ErrOracleUnavailable))
	}

	md, err := o.Metadata()
	if err != nil {
		closeQuietly(o)
		c.logger.Error("oracle metadata query failed", "problem", name, "error", err)
		return nil, domain.NewCatalogConstructionError(name, err)
	}

	desc, err := DescriptorFromMetadata(name, md)
	if err != nil {
		closeQuietly(o)
		c.logger.Error("oracle metadata rejected", "problem", name, "error", err)
		return nil, domain.NewCatalogConstructionError(name, err)
	}

	c.logger.Debug("problem resolved", "problem", name, "dimension", desc.Dimension())
	return &Instance{descriptor: desc, oracle: o}, nil
}

// DescriptorFromMetadata validates md and converts it into a descriptor.
// Every rejection wraps oracle.ErrMalformedMetadata.
func DescriptorFromMetadata(name string, md oracle.Metadata) (domain.ProblemDescriptor, error) {
	if md.Dimension <= 0 {
		return domain.ProblemDescriptor{}, fmt.Errorf("%w: dimension %d", oracle.ErrMalformedMetadata, md.Dimension)
	}
	if len(md.Bounds) != md.Dimension {
		return domain.ProblemDescriptor{}, fmt.Errorf("%w: %d bounds for dimension %d",
			oracle.ErrMalformedMetadata, len(md.Bounds), md.Dimension)
	}

	intervals := make([]domain.Interval, len(md.Bounds))
	for i, pair := range md.Bounds {
		if len(pair) != 2 {
			return domain.ProblemDescriptor{}, fmt.Errorf("%w: bound %d has %d values",
				oracle.ErrMalformedMetadata, i, len(pair))
		}
		lo, hi := pair[0], pair[1]
		if !finite(lo) || !finite(hi) {
			return domain.ProblemDescriptor{}, fmt.Errorf("%w: bound %d is not finite", oracle.ErrMalformedMetadata, i)
		}
		if lo > hi {
			return domain.ProblemDescriptor{}, fmt.Errorf("%w: bound %d has lo %g > hi %g",
				oracle.ErrMalformedMetadata, i, lo, hi)
		}
		intervals[i] = domain.Interval{Lo: lo, Hi: hi}
	}

	desc, err := domain.NewProblemDescriptor(name, md.Dimension, intervals)
	if err != nil {
		return domain.ProblemDescriptor{}, fmt.Errorf("%w: %w", oracle.ErrMalformedMetadata, err)
	}
	return desc, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Instance is a resolved problem together with its live oracle handle.
type Instance struct {
	descriptor domain.ProblemDescriptor
	oracle     oracle.Oracle
}

// Descriptor returns the problem metadata.
func (i *Instance) Descriptor() domain.ProblemDescriptor { return i.descriptor }

// Oracle returns the handle the descriptor was built from.
func (i *Instance) Oracle() oracle.Oracle { return i.oracle }

// Close releases the oracle handle if it holds resources.
func (i *Instance) Close() error {
	if cl, ok := i.oracle.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

func closeQuietly(o oracle.Oracle) {
	if cl, ok := o.(io.Closer); ok {
		_ = cl.Close()
	}
}
