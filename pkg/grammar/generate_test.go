/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generate_test.go
Description: Tests for the stochastic derivation engine: weight-to-probability
consistency, termination on recursive grammars, derivation trees and failures.
*/

package grammar_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/kleascm/langgen/pkg/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anbn() *grammar.Grammar {
	g := grammar.New("S")
	g.MustAddRule("S", "a%sb", []string{"S"}, 2)
	g.MustAddRule("S", "ab", nil, 1)
	return g
}

// TestGenerateMatchesWeights checks empirical rule frequencies against weights
func TestGenerateMatchesWeights(t *testing.T) {
	g := grammar.New("S")
	g.MustAddRule("S", "a", nil, 3)
	g.MustAddRule("S", "b", nil, 1)
	g.MustAddRule("S", "c", nil, 4)

	gen := grammar.NewGenerator(g, rand.New(rand.NewSource(11)))
	const draws = 80000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		s, err := gen.Generate("S")
		require.NoError(t, err)
		counts[s]++
	}

	assert.InDelta(t, 3.0/8, float64(counts["a"])/draws, 0.01)
	assert.InDelta(t, 1.0/8, float64(counts["b"])/draws, 0.01)
	assert.InDelta(t, 4.0/8, float64(counts["c"])/draws, 0.01)
}

// TestGenerateRecursiveTerminates checks a^n b^n draws and their length law
func TestGenerateRecursiveTerminates(t *testing.T) {
	gen := grammar.NewGenerator(anbn(), rand.New(rand.NewSource(5)))

	const draws = 20000
	totalN := 0
	for i := 0; i < draws; i++ {
		s, err := gen.Generate("S")
		require.NoError(t, err)
		require.Zero(t, len(s)%2)
		n := len(s) / 2
		require.Equal(t, strings.Repeat("a", n)+strings.Repeat("b", n), s)
		totalN += n
	}

	// n is geometric with stopping probability 1/3, mean 3
	assert.InDelta(t, 3.0, float64(totalN)/draws, 0.1)
}

// TestGenerateDeepRecursion checks that long derivations do not blow the stack
func TestGenerateDeepRecursion(t *testing.T) {
	g := grammar.New("S")
	g.MustAddRule("S", "a%s", []string{"S"}, 5000)
	g.MustAddRule("S", "a", nil, 1)

	gen := grammar.NewGenerator(g, rand.New(rand.NewSource(2)))
	longest := 0
	for i := 0; i < 20; i++ {
		s, err := gen.Generate("S")
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("a", len(s)), s)
		if len(s) > longest {
			longest = len(s)
		}
	}
	assert.Greater(t, longest, 1000)
}

// TestGenerateIsReproducible checks that equal seeds give equal streams
func TestGenerateIsReproducible(t *testing.T) {
	g := anbn()
	a := grammar.NewGenerator(g, rand.New(rand.NewSource(99)))
	b := grammar.NewGenerator(g, rand.New(rand.NewSource(99)))
	for i := 0; i < 100; i++ {
		x, err := a.Generate("S")
		require.NoError(t, err)
		y, err := b.Generate("S")
		require.NoError(t, err)
		assert.Equal(t, x, y)
	}
}

// TestGenerateTree checks that the tree records rules and renders to the output
func TestGenerateTree(t *testing.T) {
	g := grammar.New("S")
	g.MustAddRule("S", "%s+%s", []string{"N", "N"}, 1)
	g.MustAddRule("N", "%s", []string{"d"}, 1)
	require.NoError(t, g.DeclareTerminal("d"))

	gen := grammar.NewGenerator(g, rand.New(rand.NewSource(1)))
	tree, err := gen.GenerateTree("S")
	require.NoError(t, err)

	assert.Equal(t, "d+d", tree.Output)
	assert.Equal(t, "S", tree.Symbol)
	require.NotNil(t, tree.Rule)
	assert.Equal(t, "%s+%s", tree.Rule.Template)
	require.Len(t, tree.Children, 2)
	assert.Equal(t, "N", tree.Children[0].Symbol)
	require.Len(t, tree.Children[0].Children, 1)
	assert.Nil(t, tree.Children[0].Children[0].Rule)
	assert.Equal(t, "d", tree.Children[0].Children[0].Output)
	assert.Equal(t, 3, tree.Depth())
}

// TestGenerateTerminalSymbol checks that terminals generate themselves
func TestGenerateTerminalSymbol(t *testing.T) {
	g := grammar.New("S")
	g.MustAddRule("S", "%s", []string{"x"}, 1)
	require.NoError(t, g.DeclareTerminal("x"))

	gen := grammar.NewGenerator(g, rand.New(rand.NewSource(1)))
	s, err := gen.Generate("x")
	require.NoError(t, err)
	assert.Equal(t, "x", s)
}

// TestGenerateUnknownSymbol checks the runtime failure for symbols without rules
func TestGenerateUnknownSymbol(t *testing.T) {
	g := grammar.New("S")
	g.MustAddRule("S", "a%s", []string{"Q"}, 1)
	gen := grammar.NewGenerator(g, rand.New(rand.NewSource(1)))

	_, err := gen.Generate("S")
	assert.ErrorIs(t, err, grammar.ErrUnreachableSymbol)
	assert.Contains(t, err.Error(), `"Q"`)

	_, err = gen.Generate("Nope")
	assert.ErrorIs(t, err, grammar.ErrUnreachableSymbol)
}
