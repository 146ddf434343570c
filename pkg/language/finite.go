/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: finite.go
Description: Languages given as an explicit string set with optional weights.
*/

package language

import (
	"fmt"
	"iter"
	"math"
	"math/rand"
	"slices"
	"unicode/utf8"

	"github.com/kleascm/langgen/pkg/sampling"
)

// FiniteLanguage draws from an explicit weighted set of strings
type FiniteLanguage struct {
	name      string
	terminals []string
	strings   []string
	dist      *sampling.Categorical
	canonical []string
}

// Finite builds an explicit-set language. A nil weights slice means uniform.
// Repeated strings pool their weight.
func Finite(name string, terminals, strs []string, weights []float64) (*FiniteLanguage, error) {
	if len(strs) == 0 {
		return nil, fmt.Errorf("%s: empty string set", name)
	}
	if weights == nil {
		weights = make([]float64, len(strs))
		for i := range weights {
			weights[i] = 1
		}
	}
	if len(weights) != len(strs) {
		return nil, fmt.Errorf("%s: %d strings but %d weights", name, len(strs), len(weights))
	}

	dist, err := sampling.NewCategorical(weights)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	// canonical order: first occurrence, then stable by length
	seen := make(map[string]struct{}, len(strs))
	var canonical []string
	for _, s := range strs {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		canonical = append(canonical, s)
	}
	slices.SortStableFunc(canonical, func(a, b string) int {
		return utf8.RuneCountInString(a) - utf8.RuneCountInString(b)
	})

	return &FiniteLanguage{
		name:      name,
		terminals: append([]string(nil), terminals...),
		strings:   append([]string(nil), strs...),
		dist:      dist,
		canonical: canonical,
	}, nil
}

// MustFinite is Finite for static catalogs; it panics on error
func MustFinite(name string, terminals, strs []string, weights []float64) *FiniteLanguage {
	l, err := Finite(name, terminals, strs, weights)
	if err != nil {
		panic(err)
	}
	return l
}

// LengthDecay returns 2^-len weights for strs
func LengthDecay(strs []string) []float64 {
	w := make([]float64, len(strs))
	for i, s := range strs {
		w[i] = math.Ldexp(1, -utf8.RuneCountInString(s))
	}
	return w
}

func (l *FiniteLanguage) Name() string {
	return l.name
}

func (l *FiniteLanguage) Terminals() []string {
	return append([]string(nil), l.terminals...)
}

// Probability returns the probability of drawing s
func (l *FiniteLanguage) Probability(s string) float64 {
	p := 0.0
	for i, x := range l.strings {
		if x == s {
			p += l.dist.Probability(i)
		}
	}
	return p
}

func (l *FiniteLanguage) SampleString(rng *rand.Rand) (string, error) {
	return l.strings[l.dist.Sample(rng)], nil
}

func (l *FiniteLanguage) AllStrings() (iter.Seq[string], error) {
	return slices.Values(l.canonical), nil
}
