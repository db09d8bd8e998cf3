package domain

import (
	"fmt"
	"math"
)

// Interval is the admissible range [Lo, Hi] of one decision variable.
type Interval struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Validate checks that both bounds are finite and Lo <= Hi.
func (iv Interval) Validate() error {
	if math.IsNaN(iv.Lo) || math.IsInf(iv.Lo, 0) || math.IsNaN(iv.Hi) || math.IsInf(iv.Hi, 0) {
		return fmt.Errorf("%w: non-finite bound [%v, %v]", ErrInvalidInterval, iv.Lo, iv.Hi)
	}
	if iv.Lo > iv.Hi {
		return fmt.Errorf("%w: lo %v > hi %v", ErrInvalidInterval, iv.Lo, iv.Hi)
	}
	return nil
}

// Width returns Hi - Lo.
func (iv Interval) Width() float64 { return iv.Hi - iv.Lo }

// Midpoint returns the centre of the interval.
func (iv Interval) Midpoint() float64 { return iv.Lo + (iv.Hi-iv.Lo)/2 }

// Contains reports whether v lies in [Lo, Hi]. NaN is never contained.
func (iv Interval) Contains(v float64) bool { return v >= iv.Lo && v <= iv.Hi }

func (iv Interval) String() string { return fmt.Sprintf("[%g, %g]", iv.Lo, iv.Hi) }
