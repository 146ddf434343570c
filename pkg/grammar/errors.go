/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Error taxonomy for the grammar engine. Sentinel values are matched with
errors.Is; the detail types carry the offending rule or symbol.
*/

package grammar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRule marks a malformed rule (bad weight, slot mismatch, empty lhs)
	ErrInvalidRule = errors.New("grammar: invalid rule")

	// ErrUnreachableSymbol marks a nonterminal referenced without any defining rule
	ErrUnreachableSymbol = errors.New("grammar: symbol has no rules")

	// ErrGrammarFrozen is returned when rules are added after the table was handed out
	ErrGrammarFrozen = errors.New("grammar: rule table is frozen")
)

// RuleError describes why a rule was rejected at construction time
type RuleError struct {
	LHS      string
	Template string
	Reason   string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("grammar: invalid rule %s -> %q: %s", e.LHS, e.Template, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidRule
func (e *RuleError) Unwrap() error {
	return ErrInvalidRule
}

// SymbolError reports a symbol with no rules. Referrer is the lhs of the rule
// that mentions it, or empty when the symbol was requested directly.
type SymbolError struct {
	Symbol   string
	Referrer string
}

func (e *SymbolError) Error() string {
	if e.Referrer == "" {
		return fmt.Sprintf("grammar: symbol %q has no rules", e.Symbol)
	}
	return fmt.Sprintf("grammar: symbol %q (used by %q) has no rules", e.Symbol, e.Referrer)
}

// Unwrap lets errors.Is match ErrUnreachableSymbol
func (e *SymbolError) Unwrap() error {
	return ErrUnreachableSymbol
}
