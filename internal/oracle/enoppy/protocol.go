package enoppy

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ahrav/go-enop/internal/oracle"
)

// Request ops.
const (
	opPing     = "ping"
	opOpen     = "open"
	opEvaluate = "evaluate"
	opClose    = "close"
)

// Failure kinds reported by the worker.
const (
	kindUnknownProblem = "unknown_problem"
	kindUnavailable    = "unavailable"
	kindNonNumeric     = "non_numeric"
)

// ErrNonNumeric indicates the suite returned something that is not a number.
var ErrNonNumeric = errors.New("oracle returned a non-numeric result")

type request struct {
	Op      string   `json:"op"`
	Problem string   `json:"problem,omitempty"`
	Handle  int      `json:"handle,omitempty"`
	X       []string `json:"x,omitempty"`
}

type response struct {
	OK     bool        `json:"ok"`
	Kind   string      `json:"kind,omitempty"`
	Error  string      `json:"error,omitempty"`
	Handle int         `json:"handle,omitempty"`
	NDims  int         `json:"n_dims,omitempty"`
	Bounds [][]float64 `json:"bounds,omitempty"`
	Value  string      `json:"value,omitempty"`
}

// err converts a failed response into a classified error.
func (r response) err() error {
	if r.OK {
		return nil
	}
	switch r.Kind {
	case kindUnknownProblem:
		return fmt.Errorf("%w: %s", oracle.ErrUnsupportedProblem, r.Error)
	case kindUnavailable:
		return fmt.Errorf("%w: %s", oracle.ErrOracleUnavailable, r.Error)
	case kindNonNumeric:
		return fmt.Errorf("%w: %s", ErrNonNumeric, r.Error)
	default:
		return errors.New(r.Error)
	}
}

// encodeVector formats x so that NaN and infinities reach the worker intact.
func encodeVector(x []float64) []string {
	out := make([]string, len(x))
	for i, v := range x {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out
}

// decodeValue parses a Python float repr: "1.5", "inf", "-inf", "nan".
func decodeValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNonNumeric, s)
	}
	return v, nil
}
