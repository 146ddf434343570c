/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: grammar.go
Description: Weighted rule table for the langgen engine. Rules are stored flat and
grouped by left-hand side in insertion order, so recursive grammars are just repeated
lookups by name. The table is mutable while a language is being configured and frozen
once it is handed to a generator or enumerator.
*/

package grammar

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/kleascm/langgen/pkg/sampling"
)

// Grammar is a start symbol plus a multiset of weighted rules
type Grammar struct {
	start     string
	rules     []*Rule
	byLHS     map[string][]*Rule
	lhsOrder  []string
	terminals map[string]struct{}

	frozen     atomic.Bool
	freezeOnce sync.Once
	dists      map[string]*sampling.Categorical
}

// New creates an empty grammar with the given start symbol
func New(start string) *Grammar {
	return &Grammar{
		start:     start,
		byLHS:     make(map[string][]*Rule),
		terminals: make(map[string]struct{}),
	}
}

// Start returns the start symbol
func (g *Grammar) Start() string {
	return g.start
}

// AddRule appends lhs -> template(children...) with a relative weight.
// children may be nil for terminating rules.
func (g *Grammar) AddRule(lhs, template string, children []string, weight float64) error {
	if g.frozen.Load() {
		return fmt.Errorf("%w: cannot add %s -> %q", ErrGrammarFrozen, lhs, template)
	}

	r, err := newRule(lhs, template, children, weight)
	if err != nil {
		return err
	}
	r.index = len(g.rules)

	if _, seen := g.byLHS[lhs]; !seen {
		g.lhsOrder = append(g.lhsOrder, lhs)
	}
	g.byLHS[lhs] = append(g.byLHS[lhs], r)
	g.rules = append(g.rules, r)
	return nil
}

// MustAddRule is AddRule for static language tables; it panics on error
func (g *Grammar) MustAddRule(lhs, template string, children []string, weight float64) *Grammar {
	if err := g.AddRule(lhs, template, children, weight); err != nil {
		panic(err)
	}
	return g
}

// DeclareTerminal marks child symbols that should be emitted verbatim
func (g *Grammar) DeclareTerminal(names ...string) error {
	if g.frozen.Load() {
		return ErrGrammarFrozen
	}
	for _, n := range names {
		g.terminals[n] = struct{}{}
	}
	return nil
}

// RulesFor returns the alternatives for lhs in insertion order
func (g *Grammar) RulesFor(lhs string) []Rule {
	rs := g.byLHS[lhs]
	out := make([]Rule, len(rs))
	for i, r := range rs {
		out[i] = *r
	}
	return out
}

// Rules returns every rule in insertion order
func (g *Grammar) Rules() []Rule {
	out := make([]Rule, len(g.rules))
	for i, r := range g.rules {
		out[i] = *r
	}
	return out
}

// Nonterminals returns every left-hand side in first-seen order
func (g *Grammar) Nonterminals() []string {
	out := make([]string, len(g.lhsOrder))
	copy(out, g.lhsOrder)
	return out
}

// IsNonterminal reports whether the symbol has at least one rule
func (g *Grammar) IsNonterminal(symbol string) bool {
	return len(g.byLHS[symbol]) > 0
}

// IsTerminal reports whether the symbol was declared terminal and has no rules
func (g *Grammar) IsTerminal(symbol string) bool {
	if g.IsNonterminal(symbol) {
		return false
	}
	_, ok := g.terminals[symbol]
	return ok
}

// Len returns the number of rules
func (g *Grammar) Len() int {
	return len(g.rules)
}

// Probability returns P(rule) among the rules sharing its lhs
func (g *Grammar) Probability(r Rule) float64 {
	total := 0.0
	for _, alt := range g.byLHS[r.LHS] {
		total += alt.Weight
	}
	if total == 0 {
		return 0
	}
	return r.Weight / total
}

// Validate checks that the start symbol and every referenced child resolve
// to rules or declared terminals. All problems are joined into one error.
func (g *Grammar) Validate() error {
	var errs []error
	if !g.IsNonterminal(g.start) && !g.IsTerminal(g.start) {
		errs = append(errs, &SymbolError{Symbol: g.start})
	}

	reported := make(map[string]bool)
	for _, r := range g.rules {
		for _, c := range r.Children {
			if g.IsNonterminal(c) || g.IsTerminal(c) || reported[c] {
				continue
			}
			reported[c] = true
			errs = append(errs, &SymbolError{Symbol: c, Referrer: r.LHS})
		}
	}
	return errors.Join(errs...)
}

// Freeze makes the table read-only and builds the per-lhs distributions.
// Safe to call more than once and from several goroutines.
func (g *Grammar) Freeze() {
	g.freezeOnce.Do(func() {
		dists := make(map[string]*sampling.Categorical, len(g.byLHS))
		for lhs, rs := range g.byLHS {
			weights := make([]float64, len(rs))
			for i, r := range rs {
				weights[i] = r.Weight
			}
			// weights were validated by AddRule
			d, _ := sampling.NewCategorical(weights)
			dists[lhs] = d
		}
		g.dists = dists
		g.frozen.Store(true)
	})
}

// Frozen reports whether the table is read-only
func (g *Grammar) Frozen() bool {
	return g.frozen.Load()
}

// alternatives returns the internal rule slice and its distribution.
// Only valid after Freeze.
func (g *Grammar) alternatives(lhs string) ([]*Rule, *sampling.Categorical) {
	return g.byLHS[lhs], g.dists[lhs]
}
