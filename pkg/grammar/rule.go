/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rule.go
Description: Production rules and their templates. A template is literal text with one
%s slot per child; %% stands for a literal percent sign. Templates are split into
literal segments once, at construction, so expansion is a simple interleave.
*/

package grammar

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kleascm/langgen/pkg/sampling"
)

// Rule is one weighted production lhs -> template(children...)
type Rule struct {
	LHS      string   `json:"lhs" yaml:"lhs"`
	Template string   `json:"template" yaml:"template"`
	Children []string `json:"children,omitempty" yaml:"children,omitempty"`
	Weight   float64  `json:"weight" yaml:"weight"`

	index    int      // insertion order across the whole table
	segments []string // len(Children)+1 literal pieces around the slots
	litLen   int      // rune length of all literal pieces
}

// newRule validates the rule and precomputes its template segments
func newRule(lhs, template string, children []string, weight float64) (*Rule, error) {
	if lhs == "" {
		return nil, &RuleError{LHS: lhs, Template: template, Reason: "empty left-hand side"}
	}
	if !sampling.ValidWeight(weight) {
		return nil, &RuleError{LHS: lhs, Template: template, Reason: fmt.Sprintf("weight %v is not positive", weight)}
	}

	segments, err := splitTemplate(template)
	if err != nil {
		return nil, &RuleError{LHS: lhs, Template: template, Reason: err.Error()}
	}
	if len(segments)-1 != len(children) {
		return nil, &RuleError{
			LHS:      lhs,
			Template: template,
			Reason:   fmt.Sprintf("template has %d slots but %d children", len(segments)-1, len(children)),
		}
	}
	for _, c := range children {
		if c == "" {
			return nil, &RuleError{LHS: lhs, Template: template, Reason: "empty child symbol"}
		}
	}

	litLen := 0
	for _, s := range segments {
		litLen += utf8.RuneCountInString(s)
	}

	kids := make([]string, len(children))
	copy(kids, children)

	return &Rule{
		LHS:      lhs,
		Template: template,
		Children: kids,
		Weight:   weight,
		segments: segments,
		litLen:   litLen,
	}, nil
}

// splitTemplate cuts a template at each %s slot and unescapes %%
func splitTemplate(template string) ([]string, error) {
	var segments []string
	var cur strings.Builder

	for i := 0; i < len(template); i++ {
		if template[i] != '%' {
			cur.WriteByte(template[i])
			continue
		}
		if i+1 >= len(template) {
			return nil, fmt.Errorf("dangling %% at offset %d", i)
		}
		switch template[i+1] {
		case 's':
			segments = append(segments, cur.String())
			cur.Reset()
		case '%':
			cur.WriteByte('%')
		default:
			return nil, fmt.Errorf("unsupported directive %%%c at offset %d", template[i+1], i)
		}
		i++
	}
	return append(segments, cur.String()), nil
}

// Index returns the rule's position in insertion order
func (r Rule) Index() int {
	return r.index
}

// IsTerminating reports whether the rule has no children
func (r Rule) IsTerminating() bool {
	return len(r.Children) == 0
}

// LiteralLength is the number of runes the template contributes on its own
func (r Rule) LiteralLength() int {
	return r.litLen
}

// Expand substitutes child outputs into the template slots, left to right
func (r Rule) Expand(outputs []string) string {
	if len(r.segments) == 1 {
		return r.segments[0]
	}

	n := 0
	for _, s := range r.segments {
		n += len(s)
	}
	for _, o := range outputs {
		n += len(o)
	}

	var b strings.Builder
	b.Grow(n)
	for i, seg := range r.segments {
		b.WriteString(seg)
		if i < len(outputs) {
			b.WriteString(outputs[i])
		}
	}
	return b.String()
}

func (r Rule) String() string {
	if len(r.Children) == 0 {
		return fmt.Sprintf("%s -> %q (%g)", r.LHS, r.Template, r.Weight)
	}
	return fmt.Sprintf("%s -> %q %v (%g)", r.LHS, r.Template, r.Children, r.Weight)
}
