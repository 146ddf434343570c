/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: datum.go
Description: Frequency tables of sampled strings. A Datum is the unit handed to
likelihood scoring: the counts of n independent draws from one language plus the
noise parameter alpha that applies uniformly to every string.
*/

package corpus

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/kleascm/langgen/pkg/language"
)

// ErrInvalidCount is returned for negative sample counts
var ErrInvalidCount = errors.New("corpus: sample count must not be negative")

// ErrInvalidAlpha is returned when the noise parameter is outside (0, 1]
var ErrInvalidAlpha = errors.New("corpus: alpha must be in (0, 1]")

// DefaultAlpha is the noise parameter attached to new data
const DefaultAlpha = 0.99

// Datum is one aggregated corpus
type Datum struct {
	ID        uuid.UUID      `json:"id" yaml:"id"`
	Language  string         `json:"language" yaml:"language"`
	N         int            `json:"n" yaml:"n"`
	Alpha     float64        `json:"alpha" yaml:"alpha"`
	Output    map[string]int `json:"output" yaml:"output"`
	CreatedAt time.Time      `json:"created_at" yaml:"created_at"`
}

// Entry is one string and its count
type Entry struct {
	String string `json:"string" yaml:"string"`
	Count  int    `json:"count" yaml:"count"`
}

// Stats summarizes a datum
type Stats struct {
	N          int     `json:"n" yaml:"n"`
	Distinct   int     `json:"distinct" yaml:"distinct"`
	MeanLength float64 `json:"mean_length" yaml:"mean_length"`
	MaxLength  int     `json:"max_length" yaml:"max_length"`
	Entropy    float64 `json:"entropy_bits" yaml:"entropy_bits"`
}

// NewDatum creates an empty datum for the named language
func NewDatum(lang string, alpha float64) *Datum {
	return &Datum{
		ID:        uuid.New(),
		Language:  lang,
		Alpha:     alpha,
		Output:    make(map[string]int),
		CreatedAt: time.Now(),
	}
}

// SampleData draws n strings from lang and tallies them
func SampleData(lang language.Language, n int, rng *rand.Rand) (*Datum, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	d := NewDatum(lang.Name(), DefaultAlpha)
	for i := 0; i < n; i++ {
		s, err := lang.SampleString(rng)
		if err != nil {
			return nil, fmt.Errorf("draw %d: %w", i, err)
		}
		d.Add(s, 1)
	}
	return d, nil
}

// Add records count occurrences of s
func (d *Datum) Add(s string, count int) {
	if count <= 0 {
		return
	}
	d.Output[s] += count
	d.N += count
}

// Merge folds other's counts into d. Both must come from the same language.
func (d *Datum) Merge(other *Datum) error {
	if other.Language != d.Language {
		return fmt.Errorf("cannot merge %s corpus into %s corpus", other.Language, d.Language)
	}
	for s, c := range other.Output {
		d.Add(s, c)
	}
	return nil
}

// Probability returns the empirical probability of s
func (d *Datum) Probability(s string) float64 {
	if d.N == 0 {
		return 0
	}
	return float64(d.Output[s]) / float64(d.N)
}

// Sorted returns the entries by count descending, then shortest, then lexical
func (d *Datum) Sorted() []Entry {
	out := make([]Entry, 0, len(d.Output))
	for s, c := range d.Output {
		out = append(out, Entry{String: s, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		la, lb := utf8.RuneCountInString(a.String), utf8.RuneCountInString(b.String)
		if la != lb {
			return la < lb
		}
		return a.String < b.String
	})
	return out
}

// Support returns the distinct strings, shortest first then lexical
func (d *Datum) Support() []string {
	out := make([]string, 0, len(d.Output))
	for s := range d.Output {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(out[i]), utf8.RuneCountInString(out[j])
		if li != lj {
			return li < lj
		}
		return out[i] < out[j]
	})
	return out
}

// Stats computes summary statistics
func (d *Datum) Stats() Stats {
	st := Stats{N: d.N, Distinct: len(d.Output)}
	if d.N == 0 {
		return st
	}

	total := 0
	for s, c := range d.Output {
		l := utf8.RuneCountInString(s)
		total += l * c
		if l > st.MaxLength {
			st.MaxLength = l
		}
		p := float64(c) / float64(d.N)
		st.Entropy -= p * math.Log2(p)
	}
	st.MeanLength = float64(total) / float64(d.N)
	return st
}
