/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: check.go
Description: The check command: validates a YAML grammar file, or builds every
built-in language and verifies sampling and canonical enumeration.
*/

package commands

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"unicode/utf8"

	"github.com/kleascm/langgen/pkg/language"
	"github.com/kleascm/langgen/pkg/language/catalog"
	"github.com/spf13/cobra"
)

const (
	checkDraws  = 50
	checkPrefix = 10
)

// RunCheck validates the built-in languages or the --grammar file
func RunCheck(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	out := cmd.OutOrStdout()
	path, _ := cmd.Flags().GetString("grammar")
	if path != "" {
		return checkGrammarFile(out, path)
	}

	passed := 0
	names := catalog.Names()
	for _, name := range names {
		fmt.Fprintf(out, "🔍 %s... ", name)
		lang, err := catalog.Get(name, catalog.WithMaxRejections(cfg.MaxRejections))
		if err == nil {
			err = CheckLanguage(lang, rand.New(rand.NewSource(cfg.Seed)))
		}
		if err != nil {
			fmt.Fprintf(out, "❌ FAILED: %v\n", err)
			logger.Error("Language check failed", map[string]interface{}{"language": name, "error": err})
			continue
		}
		fmt.Fprintln(out, "✅ PASSED")
		passed++
	}

	fmt.Fprintf(out, "\n📊 Results: %d/%d languages passed\n", passed, len(names))
	if passed != len(names) {
		return fmt.Errorf("%d/%d checks failed", len(names)-passed, len(names))
	}
	return nil
}

// checkGrammarFile builds a grammar file and prints its rules and first strings
func checkGrammarFile(out io.Writer, path string) error {
	lang, err := loadGrammarLanguage(path)
	if err != nil {
		return err
	}
	g := lang.Grammar()

	fmt.Fprintf(out, "✅ %s: %d rules, %d nonterminals, start %s\n", lang.Name(), g.Len(), len(g.Nonterminals()), g.Start())
	for _, r := range g.Rules() {
		fmt.Fprintf(out, "   %-40s p=%.4f\n", r.String(), g.Probability(r))
	}

	seq, err := lang.AllStrings()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "   first strings: %q\n", language.Take(seq, checkPrefix))
	return nil
}

// CheckLanguage samples lang and verifies its strings stay within the declared
// alphabet and that its enumeration, when supported, is canonical.
func CheckLanguage(lang language.Language, rng *rand.Rand) error {
	alphabet := make(map[rune]bool)
	for _, t := range lang.Terminals() {
		for _, r := range t {
			alphabet[r] = true
		}
	}

	for i := 0; i < checkDraws; i++ {
		s, err := lang.SampleString(rng)
		if err != nil {
			return fmt.Errorf("sample: %w", err)
		}
		for _, r := range s {
			if !alphabet[r] {
				return fmt.Errorf("sample %q uses %q outside the alphabet", s, r)
			}
		}
	}

	seq, err := lang.AllStrings()
	if errors.Is(err, language.ErrEnumerationUnsupported) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("enumerate: %w", err)
	}

	seen := make(map[string]bool)
	prev := -1
	for _, s := range language.Take(seq, checkPrefix) {
		if seen[s] {
			return fmt.Errorf("enumeration repeats %q", s)
		}
		seen[s] = true
		n := utf8.RuneCountInString(s)
		if n < prev {
			return fmt.Errorf("enumeration is not shortest first at %q", s)
		}
		prev = n
	}
	return nil
}
