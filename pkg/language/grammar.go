/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: grammar.go
Description: The default grammar-backed language. Sampling is one derivation from the
start symbol; enumeration is the grammar's canonical enumeration.
*/

package language

import (
	"fmt"
	"iter"
	"math/rand"

	"github.com/kleascm/langgen/pkg/grammar"
)

// GrammarLanguage is a language defined entirely by a weighted grammar
type GrammarLanguage struct {
	name      string
	terminals []string
	g         *grammar.Grammar
}

// FromGrammar validates and freezes g and wraps it as a language
func FromGrammar(name string, terminals []string, g *grammar.Grammar) (*GrammarLanguage, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	g.Freeze()
	return &GrammarLanguage{
		name:      name,
		terminals: append([]string(nil), terminals...),
		g:         g,
	}, nil
}

// MustFromGrammar is FromGrammar for static catalogs; it panics on error
func MustFromGrammar(name string, terminals []string, g *grammar.Grammar) *GrammarLanguage {
	l, err := FromGrammar(name, terminals, g)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *GrammarLanguage) Name() string {
	return l.name
}

func (l *GrammarLanguage) Terminals() []string {
	return append([]string(nil), l.terminals...)
}

// Grammar exposes the frozen rule table
func (l *GrammarLanguage) Grammar() *grammar.Grammar {
	return l.g
}

func (l *GrammarLanguage) SampleString(rng *rand.Rand) (string, error) {
	s, err := grammar.NewGenerator(l.g, rng).Generate(l.g.Start())
	if err != nil {
		return "", fmt.Errorf("%s: %w", l.name, err)
	}
	return s, nil
}

func (l *GrammarLanguage) AllStrings() (iter.Seq[string], error) {
	seq, err := grammar.Enumerate(l.g, l.g.Start())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.name, err)
	}
	return seq, nil
}
