/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: language.go
Description: The Language contract shared by every stimulus language, its sentinel
errors and the functional options used by the combinators. A language is built once
and never changes; all randomness comes from the caller's *rand.Rand.
*/

package language

import (
	"errors"
	"fmt"
	"iter"
	"math/rand"
)

var (
	// ErrEnumerationUnsupported is returned by AllStrings when a language has no
	// canonical enumeration.
	ErrEnumerationUnsupported = errors.New("language: enumeration unsupported")

	// ErrRejectionLimit is returned when rejection sampling exhausts its retry cap.
	ErrRejectionLimit = errors.New("language: rejection limit exceeded")
)

// DefaultMaxRejections is the retry cap for rejection-sampled languages
const DefaultMaxRejections = 100000

// Language is the common contract of every stimulus language
type Language interface {
	// Name identifies the language in catalogs and corpora
	Name() string
	// Terminals returns the output alphabet
	Terminals() []string
	// SampleString draws one string using rng
	SampleString(rng *rand.Rand) (string, error)
	// AllStrings returns the canonical enumeration: shortest first, no repeats.
	// Languages without one return ErrEnumerationUnsupported.
	AllStrings() (iter.Seq[string], error)
}

// Option configures a combinator-built language
type Option func(*settings)

type settings struct {
	terminals     []string
	enum          iter.Seq[string]
	derive        bool
	byLength      bool // output length is a non-decreasing function of input length
	maxRejections int
}

// WithTerminals overrides the alphabet inherited from the base language
func WithTerminals(terminals ...string) Option {
	return func(s *settings) {
		s.terminals = append([]string(nil), terminals...)
	}
}

// WithEnumeration supplies an explicit canonical enumeration. The sequence
// must be restartable, length non-decreasing and free of repeats.
func WithEnumeration(seq iter.Seq[string]) Option {
	return func(s *settings) {
		s.enum = seq
	}
}

// WithMonotoneEnumeration derives the enumeration from the base by rewriting
// it. The rewrite must never return a string shorter than its input; outputs
// are buffered and re-sorted by length, and repeats are dropped. Iterating
// panics if the rewrite shortens an input.
func WithMonotoneEnumeration() Option {
	return func(s *settings) {
		s.derive = true
	}
}

// WithMaxRejections sets the retry cap for rejection sampling.
// Panics on n < 1.
func WithMaxRejections(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("language: WithMaxRejections: n must be positive, got %d", n))
	}
	return func(s *settings) {
		s.maxRejections = n
	}
}

func gather(opts []Option) settings {
	s := settings{maxRejections: DefaultMaxRejections}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Take collects at most k strings from seq and stops pulling
func Take(seq iter.Seq[string], k int) []string {
	out := make([]string, 0, k)
	if k <= 0 {
		return out
	}
	for s := range seq {
		out = append(out, s)
		if len(out) == k {
			break
		}
	}
	return out
}

// composite is the shared implementation behind Closed and every combinator
type composite struct {
	name      string
	terminals []string
	sample    func(rng *rand.Rand) (string, error)
	enum      iter.Seq[string]
	enumErr   error
}

func (c *composite) Name() string {
	return c.name
}

func (c *composite) Terminals() []string {
	return append([]string(nil), c.terminals...)
}

func (c *composite) SampleString(rng *rand.Rand) (string, error) {
	s, err := c.sample(rng)
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.name, err)
	}
	return s, nil
}

func (c *composite) AllStrings() (iter.Seq[string], error) {
	if c.enumErr != nil {
		return nil, fmt.Errorf("%s: %w", c.name, c.enumErr)
	}
	if c.enum == nil {
		return nil, fmt.Errorf("%s: %w", c.name, ErrEnumerationUnsupported)
	}
	return c.enum, nil
}

// Closed builds a language from a custom sampler and an optional canonical
// enumeration. A nil enum makes AllStrings report ErrEnumerationUnsupported.
func Closed(name string, terminals []string, sample func(rng *rand.Rand) (string, error), enum iter.Seq[string]) Language {
	return &composite{
		name:      name,
		terminals: append([]string(nil), terminals...),
		sample:    sample,
		enum:      enum,
	}
}
