/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generate.go
Description: Stochastic derivation engine. Each nonterminal is expanded by drawing one
of its rules with probability proportional to weight and substituting the children's
outputs into the template. There is no depth bound: termination is probabilistic and
depends on the terminating rules keeping nonzero weight. Expansion uses an explicit
work stack so very long derivations cannot exhaust the goroutine stack.
*/

package grammar

import (
	"math/rand"
)

// Derivation is one node of a derivation tree. Terminal leaves have a nil Rule.
type Derivation struct {
	Symbol   string        `json:"symbol"`
	Rule     *Rule         `json:"rule,omitempty"`
	Children []*Derivation `json:"children,omitempty"`
	Output   string        `json:"output"`
}

// Depth returns the height of the tree rooted at d
func (d *Derivation) Depth() int {
	best := 0
	for _, c := range d.Children {
		if h := c.Depth(); h > best {
			best = h
		}
	}
	return best + 1
}

// Generator draws random derivations from a frozen grammar.
// A Generator owns its random stream; use one per goroutine.
type Generator struct {
	g   *Grammar
	rng *rand.Rand
}

// NewGenerator freezes g and binds it to rng
func NewGenerator(g *Grammar, rng *rand.Rand) *Generator {
	g.Freeze()
	return &Generator{g: g, rng: rng}
}

// Generate returns the output string of one random derivation of symbol
func (gen *Generator) Generate(symbol string) (string, error) {
	out, _, err := gen.derive(symbol, false)
	return out, err
}

// GenerateTree returns one random derivation of symbol with its full tree
func (gen *Generator) GenerateTree(symbol string) (*Derivation, error) {
	_, tree, err := gen.derive(symbol, true)
	return tree, err
}

// frame is a partially expanded nonterminal on the work stack
type frame struct {
	rule    *Rule
	outputs []string
	node    *Derivation
}

func (gen *Generator) derive(symbol string, keepTree bool) (string, *Derivation, error) {
	var stack []*frame
	var rootOut string
	var rootNode *Derivation

	// deliver hands a finished child result to the frame below it, or to the caller
	deliver := func(out string, node *Derivation) {
		if len(stack) == 0 {
			rootOut, rootNode = out, node
			return
		}
		parent := stack[len(stack)-1]
		parent.outputs = append(parent.outputs, out)
		if keepTree {
			parent.node.Children = append(parent.node.Children, node)
		}
	}

	// open resolves a symbol: terminals and childless rules finish at once,
	// everything else is pushed as a new frame
	open := func(sym, referrer string) error {
		if gen.g.IsTerminal(sym) {
			var node *Derivation
			if keepTree {
				node = &Derivation{Symbol: sym, Output: sym}
			}
			deliver(sym, node)
			return nil
		}

		rules, dist := gen.g.alternatives(sym)
		if len(rules) == 0 {
			return &SymbolError{Symbol: sym, Referrer: referrer}
		}
		r := rules[dist.Sample(gen.rng)]

		var node *Derivation
		if keepTree {
			node = &Derivation{Symbol: sym, Rule: r}
		}
		if r.IsTerminating() {
			out := r.Expand(nil)
			if keepTree {
				node.Output = out
			}
			deliver(out, node)
			return nil
		}
		stack = append(stack, &frame{
			rule:    r,
			outputs: make([]string, 0, len(r.Children)),
			node:    node,
		})
		return nil
	}

	if err := open(symbol, ""); err != nil {
		return "", nil, err
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if len(top.outputs) < len(top.rule.Children) {
			child := top.rule.Children[len(top.outputs)]
			if err := open(child, top.rule.LHS); err != nil {
				return "", nil, err
			}
			continue
		}

		stack = stack[:len(stack)-1]
		out := top.rule.Expand(top.outputs)
		if keepTree {
			top.node.Output = out
		}
		deliver(out, top.node)
	}

	return rootOut, rootNode, nil
}
