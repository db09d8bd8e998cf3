package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Real is a float64 whose JSON form survives NaN and infinities, which
// encoding/json rejects. Finite values encode as JSON numbers; the rest as the
// strings "+Inf", "-Inf" and "NaN". Temporal payloads carry scores and
// candidates as Real so a sentinel or a wild mutation does not break the codec.
type Real float64

// MarshalJSON implements json.Marshaler.
func (r Real) MarshalJSON() ([]byte, error) {
	f := float64(r)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(f)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Real) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid real %q: %w", s, err)
		}
		*r = Real(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*r = Real(f)
	return nil
}

// Vector is a candidate solution in wire form.
type Vector []Real

// VectorOf converts a float slice to wire form.
func VectorOf(x []float64) Vector {
	if x == nil {
		return nil
	}
	v := make(Vector, len(x))
	for i, f := range x {
		v[i] = Real(f)
	}
	return v
}

// Floats converts the vector back to a float slice.
func (v Vector) Floats() []float64 {
	if v == nil {
		return nil
	}
	x := make([]float64, len(v))
	for i, r := range v {
		x[i] = float64(r)
	}
	return x
}

// RealsOf converts scores to wire form.
func RealsOf(xs []float64) []Real {
	out := make([]Real, len(xs))
	for i, f := range xs {
		out[i] = Real(f)
	}
	return out
}

// FloatsOf converts wire scores to floats.
func FloatsOf(rs []Real) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i] = float64(r)
	}
	return out
}
