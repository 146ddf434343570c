/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: combinators.go
Description: Post-processing combinators for languages that are not context-free.
Each one wraps independent draws from base languages and returns a new immutable
Language. Enumeration is inherited from the bases when the rewrite keeps the
canonical order, supplied explicitly with WithEnumeration, or reported as
unsupported.
*/

package language

import (
	"fmt"
	"iter"
	"math/rand"
	"strings"
	"unicode/utf8"

	"github.com/kleascm/langgen/pkg/sampling"
)

func (s settings) alphabet(base Language) []string {
	if s.terminals != nil {
		return s.terminals
	}
	return base.Terminals()
}

// Repeat samples x from base and returns x repeated k times
func Repeat(name string, base Language, k int, opts ...Option) Language {
	if k < 1 {
		panic(fmt.Sprintf("language: Repeat: k must be positive, got %d", k))
	}
	fn := func(x string) string { return strings.Repeat(x, k) }
	return rewrite(name, base, fn, append([]Option{WithMonotoneEnumeration(), lengthWise()}, opts...))
}

// RepeatByLength samples w from base and returns w repeated |w| times
func RepeatByLength(name string, base Language, opts ...Option) Language {
	fn := func(w string) string { return strings.Repeat(w, utf8.RuneCountInString(w)) }
	return rewrite(name, base, fn, append([]Option{WithMonotoneEnumeration(), lengthWise()}, opts...))
}

// Map applies a deterministic rewrite to every draw from base
func Map(name string, base Language, fn func(string) string, opts ...Option) Language {
	return rewrite(name, base, fn, opts)
}

// Substitute replaces substrings of every draw from base. pairs are
// old, new, old, new... as for strings.NewReplacer.
func Substitute(name string, base Language, pairs []string, opts ...Option) Language {
	r := strings.NewReplacer(pairs...)
	return rewrite(name, base, r.Replace, opts)
}

// lengthWise marks rewrites whose output length depends only on the input
// length, so the rewritten enumeration needs no buffering
func lengthWise() Option {
	return func(s *settings) {
		s.byLength = true
	}
}

func rewrite(name string, base Language, fn func(string) string, opts []Option) Language {
	s := gather(opts)
	c := &composite{
		name:      name,
		terminals: s.alphabet(base),
		sample: func(rng *rand.Rand) (string, error) {
			x, err := base.SampleString(rng)
			if err != nil {
				return "", err
			}
			return fn(x), nil
		},
	}

	switch {
	case s.enum != nil:
		c.enum = s.enum
	case s.derive:
		seq, err := base.AllStrings()
		if err != nil {
			c.enumErr = err
			break
		}
		if s.byLength {
			c.enum = mapInOrder(seq, fn)
		} else {
			c.enum = mapSeq(seq, fn)
		}
	}
	return c
}

// Choice picks one of the branch languages with the given relative weights and
// returns a draw from it. When every branch enumerates, the branches are
// merged by length with earlier branches first.
func Choice(name string, branches []Language, weights []float64, opts ...Option) (Language, error) {
	if len(branches) == 0 {
		return nil, fmt.Errorf("%s: no branches", name)
	}
	if weights == nil {
		weights = make([]float64, len(branches))
		for i := range weights {
			weights[i] = 1
		}
	}
	if len(weights) != len(branches) {
		return nil, fmt.Errorf("%s: %d branches but %d weights", name, len(branches), len(weights))
	}
	dist, err := sampling.NewCategorical(weights)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	s := gather(opts)
	c := &composite{
		name:      name,
		terminals: s.terminals,
		sample: func(rng *rand.Rand) (string, error) {
			return branches[dist.Sample(rng)].SampleString(rng)
		},
	}
	if c.terminals == nil {
		c.terminals = unionTerminals(branches)
	}

	if s.enum != nil {
		c.enum = s.enum
		return c, nil
	}
	seqs := make([]iter.Seq[string], len(branches))
	for i, b := range branches {
		seq, err := b.AllStrings()
		if err != nil {
			c.enumErr = err
			return c, nil
		}
		seqs[i] = seq
	}
	c.enum = mergeByLength(seqs...)
	return c, nil
}

// Filter draws from base until keep accepts, up to the rejection cap.
// The enumeration is the base enumeration with rejected strings removed.
func Filter(name string, base Language, keep func(string) bool, opts ...Option) Language {
	s := gather(opts)
	c := &composite{
		name:      name,
		terminals: s.alphabet(base),
		sample: func(rng *rand.Rand) (string, error) {
			for i := 0; i < s.maxRejections; i++ {
				x, err := base.SampleString(rng)
				if err != nil {
					return "", err
				}
				if keep(x) {
					return x, nil
				}
			}
			return "", fmt.Errorf("%w after %d draws", ErrRejectionLimit, s.maxRejections)
		},
	}

	if s.enum != nil {
		c.enum = s.enum
		return c
	}
	seq, err := base.AllStrings()
	if err != nil {
		c.enumErr = err
		return c
	}
	c.enum = filterSeq(seq, keep)
	return c
}

// Pair draws x from left and y from right and returns x+y. A non-nil accept
// rejects pairs until it holds, up to the rejection cap. Pairs only enumerate
// through WithEnumeration.
func Pair(name string, left, right Language, accept func(x, y string) bool, opts ...Option) Language {
	s := gather(opts)
	c := &composite{
		name:      name,
		terminals: s.terminals,
		enum:      s.enum,
		sample: func(rng *rand.Rand) (string, error) {
			for i := 0; i < s.maxRejections; i++ {
				x, err := left.SampleString(rng)
				if err != nil {
					return "", err
				}
				y, err := right.SampleString(rng)
				if err != nil {
					return "", err
				}
				if accept == nil || accept(x, y) {
					return x + y, nil
				}
			}
			return "", fmt.Errorf("%w after %d draws", ErrRejectionLimit, s.maxRejections)
		},
	}
	if c.terminals == nil {
		c.terminals = unionTerminals([]Language{left, right})
	}
	return c
}

// unionTerminals merges alphabets keeping first-seen order
func unionTerminals(langs []Language) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, l := range langs {
		for _, t := range l.Terminals() {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}
