/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: weighted.go
Description: Weighted discrete sampling for the langgen engine. A Categorical keeps a
cumulative weight array and answers each draw with one uniform variate and a binary
search. Shared by grammar rule selection and explicit finite string sets.
*/

package sampling

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// ErrInvalidWeight is returned when a weight is not a finite positive number.
var ErrInvalidWeight = errors.New("sampling: weight must be finite and positive")

// ErrEmptyDistribution is returned when a distribution has no outcomes.
var ErrEmptyDistribution = errors.New("sampling: distribution has no outcomes")

// Categorical is an immutable distribution over the indices 0..n-1
// Safe for concurrent use once constructed
type Categorical struct {
	cumulative []float64
	total      float64
}

// NewCategorical builds a distribution whose outcome i has probability
// weights[i] / sum(weights). Weights are relative and need not be normalized.
func NewCategorical(weights []float64) (*Categorical, error) {
	if len(weights) == 0 {
		return nil, ErrEmptyDistribution
	}

	cumulative := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if !ValidWeight(w) {
			return nil, fmt.Errorf("%w: index %d has weight %v", ErrInvalidWeight, i, w)
		}
		total += w
		cumulative[i] = total
	}

	return &Categorical{cumulative: cumulative, total: total}, nil
}

// ValidWeight reports whether w can be used as a relative weight
func ValidWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}

// Sample draws one index using a single uniform variate from rng
func (c *Categorical) Sample(rng *rand.Rand) int {
	u := rng.Float64() * c.total
	i := sort.Search(len(c.cumulative), func(i int) bool {
		return c.cumulative[i] > u
	})
	// u == total can only happen through float rounding
	if i == len(c.cumulative) {
		i--
	}
	return i
}

// Probability returns the normalized probability of outcome i
func (c *Categorical) Probability(i int) float64 {
	if i < 0 || i >= len(c.cumulative) {
		return 0
	}
	prev := 0.0
	if i > 0 {
		prev = c.cumulative[i-1]
	}
	return (c.cumulative[i] - prev) / c.total
}

// Len returns the number of outcomes
func (c *Categorical) Len() int {
	return len(c.cumulative)
}

// Total returns the sum of the raw weights
func (c *Categorical) Total() float64 {
	return c.total
}

// Choose draws one element of items with the given relative weights.
// Convenience for one-off draws; build a Categorical when sampling repeatedly.
func Choose[T any](rng *rand.Rand, items []T, weights []float64) (T, error) {
	var zero T
	if len(items) != len(weights) {
		return zero, fmt.Errorf("sampling: %d items but %d weights", len(items), len(weights))
	}
	dist, err := NewCategorical(weights)
	if err != nil {
		return zero, err
	}
	return items[dist.Sample(rng)], nil
}
