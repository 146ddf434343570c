/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loader.go
Description: YAML grammar files. Lets a language be described as plain configuration
(start symbol, alphabet, weighted rules) and built into a validated Grammar.
*/

package grammar

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// File is the on-disk description of one grammar-backed language
type File struct {
	Name      string     `yaml:"name"`
	Start     string     `yaml:"start"`
	Terminals []string   `yaml:"terminals"`
	Symbols   []string   `yaml:"symbols,omitempty"` // child symbols emitted verbatim
	Rules     []RuleSpec `yaml:"rules"`
}

// RuleSpec is one rule entry in a grammar file
type RuleSpec struct {
	LHS      string   `yaml:"lhs"`
	Template string   `yaml:"template"`
	Children []string `yaml:"children,omitempty"`
	Weight   *float64 `yaml:"weight,omitempty"` // defaults to 1
}

// LoadFile reads and parses a grammar file from disk
func LoadFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grammar file: %w", err)
	}
	f, err := ParseYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ParseYAML decodes a grammar file, rejecting unknown keys
func ParseYAML(content []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse grammar yaml: %w", err)
	}
	if f.Start == "" {
		f.Start = "S"
	}
	return &f, nil
}

// Build turns the file into a validated grammar
func (f *File) Build() (*Grammar, error) {
	if len(f.Rules) == 0 {
		return nil, errors.New("grammar file has no rules")
	}

	g := New(f.Start)
	if err := g.DeclareTerminal(f.Symbols...); err != nil {
		return nil, err
	}
	for i, r := range f.Rules {
		weight := 1.0
		if r.Weight != nil {
			weight = *r.Weight
		}
		if err := g.AddRule(r.LHS, r.Template, r.Children, weight); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Marshal renders the grammar back to YAML in insertion order
func Marshal(name string, terminals []string, g *Grammar) ([]byte, error) {
	f := File{Name: name, Start: g.Start(), Terminals: terminals}
	for sym := range g.terminals {
		f.Symbols = append(f.Symbols, sym)
	}
	sort.Strings(f.Symbols)
	for _, r := range g.rules {
		weight := r.Weight
		f.Rules = append(f.Rules, RuleSpec{
			LHS:      r.LHS,
			Template: r.Template,
			Children: r.Children,
			Weight:   &weight,
		})
	}
	return yaml.Marshal(&f)
}
