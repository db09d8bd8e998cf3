package oracle

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingOracle detects overlapping calls.
type countingOracle struct {
	inFlight int
	overlaps int
	calls    int
}

func (c *countingOracle) Metadata() (Metadata, error) {
	return Metadata{Dimension: 1, Bounds: [][]float64{{0, 1}}}, nil
}

func (c *countingOracle) Score(x []float64) (float64, error) {
	c.inFlight++
	if c.inFlight > 1 {
		c.overlaps++
	}
	c.calls++
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	c.inFlight--
	return sum, nil
}

func TestSerialized(t *testing.T) {
	t.Run("forwards metadata and scores", func(t *testing.T) {
		inner := &countingOracle{}
		o := Serialized(inner)

		md, err := o.Metadata()
		require.NoError(t, err)
		assert.Equal(t, 1, md.Dimension)

		v, err := o.Score([]float64{0.25, 0.5})
		require.NoError(t, err)
		assert.InDelta(t, 0.75, v, 1e-12)
	})

	t.Run("does not double wrap", func(t *testing.T) {
		o := Serialized(&countingOracle{})
		assert.Same(t, o, Serialized(o))
	})

	t.Run("concurrent callers never overlap", func(t *testing.T) {
		inner := &countingOracle{}
		o := Serialized(inner)

		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					_, _ = o.Score([]float64{1})
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1600, inner.calls)
		assert.Zero(t, inner.overlaps)
	})
}

func TestProviderFunc(t *testing.T) {
	p := ProviderFunc(func(name string) (Oracle, error) {
		if name != "known" {
			return nil, ErrUnsupportedProblem
		}
		return &countingOracle{}, nil
	})

	o, err := p.Open("known")
	require.NoError(t, err)
	assert.NotNil(t, o)

	_, err = p.Open("other")
	assert.True(t, errors.Is(err, ErrUnsupportedProblem))
}
