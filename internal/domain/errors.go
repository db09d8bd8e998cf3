package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownProblem indicates that a problem identifier is not in the catalog.
var ErrUnknownProblem = errors.New("unknown problem")

// ErrCatalogConstruction indicates that the oracle could not supply usable
// metadata for a catalog entry. Match it with errors.Is against a
// *CatalogConstructionError.
var ErrCatalogConstruction = errors.New("catalog construction failed")

// ErrInvalidDescriptor indicates that descriptor fields violate their invariants.
var ErrInvalidDescriptor = errors.New("invalid problem descriptor")

// ErrInvalidInterval indicates an interval with lo > hi or a non-finite bound.
var ErrInvalidInterval = errors.New("invalid interval")

// ErrInvalidRequest indicates that a scoring or evaluation request contains invalid data.
var ErrInvalidRequest = errors.New("invalid evaluation request")

// CatalogConstructionError reports why a descriptor could not be built for a
// registered problem. It is distinct from ErrUnknownProblem: the name is valid,
// the oracle behind it is not.
type CatalogConstructionError struct {
	Problem string
	Cause   error
}

// Error returns the problem name together with the underlying cause.
func (e *CatalogConstructionError) Error() string {
	return fmt.Sprintf("catalog construction for %q failed: %v", e.Problem, e.Cause)
}

// Unwrap returns the underlying oracle or metadata error.
func (e *CatalogConstructionError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrCatalogConstruction.
func (e *CatalogConstructionError) Is(target error) bool {
	return target == ErrCatalogConstruction
}

// NewCatalogConstructionError wraps cause for the named problem.
func NewCatalogConstructionError(problem string, cause error) *CatalogConstructionError {
	return &CatalogConstructionError{Problem: problem, Cause: cause}
}
