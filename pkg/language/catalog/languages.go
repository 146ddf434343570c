/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: languages.go
Description: Built-in language definitions. Most are plain weighted grammars; the rest
layer a combinator over a grammar draw (counting, copying, mirroring, filtering) or
use a closed-form sampler.
*/

package catalog

import (
	"iter"
	"math/rand"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kleascm/langgen/pkg/grammar"
	"github.com/kleascm/langgen/pkg/language"
	"github.com/kleascm/langgen/pkg/sampling"
)

// gomezFillers are the middle symbols of the Gomez languages, in order
const gomezFillers = "1234567890wxyz"

// marcusSyllables stand for ga gi ta ti na ni la li
const marcusSyllables = "gGtTnNlL"

// maxFibIndex keeps Fibonacci lengths inside int
const maxFibIndex = 80

func letters(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// fromRules builds a grammar language with start symbol S
func fromRules(name, alphabet string, build func(g *grammar.Grammar)) func(config) (language.Language, error) {
	return func(config) (language.Language, error) {
		l, err := grammarLanguage(name, alphabet, build)
		if err != nil {
			return nil, err
		}
		return l, nil
	}
}

func grammarLanguage(name, alphabet string, build func(g *grammar.Grammar)) (*language.GrammarLanguage, error) {
	g := grammar.New("S")
	build(g)
	return language.FromGrammar(name, letters(alphabet), g)
}

func mustGrammarLanguage(name, alphabet string, build func(g *grammar.Grammar)) *language.GrammarLanguage {
	l, err := grammarLanguage(name, alphabet, build)
	if err != nil {
		panic(err)
	}
	return l
}

// unary is symbol^n, n >= 1, continuing with weight cont against 1
func unary(name, symbol string, cont float64) *language.GrammarLanguage {
	return mustGrammarLanguage(name, symbol, func(g *grammar.Grammar) {
		g.MustAddRule("S", symbol+"%s", []string{"S"}, cont)
		g.MustAddRule("S", symbol, nil, 1)
	})
}

// abPlus is (a|b)+
func abPlus(name string) *language.GrammarLanguage {
	return mustGrammarLanguage(name, "ab", func(g *grammar.Grammar) {
		g.MustAddRule("S", "a%s", []string{"S"}, 2)
		g.MustAddRule("S", "b%s", []string{"S"}, 2)
		g.MustAddRule("S", "a", nil, 1)
		g.MustAddRule("S", "b", nil, 1)
	})
}

// anbn is a^n b^n
func anbn(name string) *language.GrammarLanguage {
	return mustGrammarLanguage(name, "ab", func(g *grammar.Grammar) {
		g.MustAddRule("S", "a%sb", []string{"S"}, 2)
		g.MustAddRule("S", "ab", nil, 1)
	})
}

// run is a block of factor*n+offset copies of sym
type run struct {
	sym    string
	factor int
	offset int
}

// appendRuns appends each run to s, with n = |s|/div
func appendRuns(div int, runs ...run) func(string) string {
	return func(s string) string {
		n := utf8.RuneCountInString(s) / div
		var b strings.Builder
		b.WriteString(s)
		for _, r := range runs {
			b.WriteString(strings.Repeat(r.sym, r.factor*n+r.offset))
		}
		return b.String()
	}
}

func countAB(s string) (a, b int) {
	for _, r := range s {
		switch r {
		case 'a':
			a++
		case 'b':
			b++
		}
	}
	return a, b
}

func init() {
	register("An", "a^n, n >= 1", fromRules("An", "a", func(g *grammar.Grammar) {
		g.MustAddRule("S", "a%s", []string{"S"}, 2)
		g.MustAddRule("S", "a", nil, 1)
	}))
	register("AB", "(a|b)+", func(config) (language.Language, error) {
		return abPlus("AB"), nil
	})
	register("ABn", "(ab)^n", fromRules("ABn", "ab", func(g *grammar.Grammar) {
		g.MustAddRule("S", "ab%s", []string{"S"}, 2)
		g.MustAddRule("S", "ab", nil, 1)
	}))
	register("AnBn", "a^n b^n", func(config) (language.Language, error) {
		return anbn("AnBn"), nil
	})
	register("AnB2n", "a^n b^2n", fromRules("AnB2n", "ab", func(g *grammar.Grammar) {
		g.MustAddRule("S", "a%sbb", []string{"S"}, 2)
		g.MustAddRule("S", "abb", nil, 1)
	}))
	register("AnCBn", "a^n c b^n", fromRules("AnCBn", "acb", func(g *grammar.Grammar) {
		g.MustAddRule("S", "a%sb", []string{"S"}, 2)
		g.MustAddRule("S", "acb", nil, 1)
	}))
	register("AnABn", "a^n (ab)^n", fromRules("AnABn", "ab", func(g *grammar.Grammar) {
		g.MustAddRule("S", "a%sab", []string{"S"}, 2)
		g.MustAddRule("S", "aab", nil, 1)
	}))
	register("AnABAn", "a^n (aba)^n", fromRules("AnABAn", "ab", func(g *grammar.Grammar) {
		g.MustAddRule("S", "a%saba", []string{"S"}, 2)
		g.MustAddRule("S", "aaba", nil, 1)
	}))
	register("AnBk", "a+ b+", fromRules("AnBk", "ab", func(g *grammar.Grammar) {
		g.MustAddRule("S", "a%s", []string{"S"}, 2)
		g.MustAddRule("S", "a%s", []string{"T"}, 1)
		g.MustAddRule("T", "b%s", []string{"T"}, 2)
		g.MustAddRule("T", "b", nil, 1)
	}))
	register("AnBmCn", "a^n b+ c^n", fromRules("AnBmCn", "abc", func(g *grammar.Grammar) {
		g.MustAddRule("S", "a%sc", []string{"S"}, 2)
		g.MustAddRule("S", "a%sc", []string{"T"}, 1)
		g.MustAddRule("T", "b%s", []string{"T"}, 2)
		g.MustAddRule("T", "b", nil, 1)
	}))
	register("AnBmCmAn", "a^n b^m c^m a^n", fromRules("AnBmCmAn", "abc", func(g *grammar.Grammar) {
		g.MustAddRule("S", "a%sa", []string{"S"}, 2)
		g.MustAddRule("S", "a%sa", []string{"T"}, 1)
		g.MustAddRule("T", "b%sc", []string{"T"}, 2)
		g.MustAddRule("T", "bc", nil, 1)
	}))
	register("Dyck", "balanced parentheses", fromRules("Dyck", "()", func(g *grammar.Grammar) {
		g.MustAddRule("S", "(%s)", []string{"S"}, 1)
		g.MustAddRule("S", "()%s", []string{"S"}, 1)
		g.MustAddRule("S", "()", nil, 1)
	}))
	register("Even", "b* (aa b*)* with an even number of a", fromRules("Even", "ab", func(g *grammar.Grammar) {
		g.MustAddRule("S", "a%s", []string{"A"}, 2)
		g.MustAddRule("S", "b%s", []string{"S"}, 2)
		g.MustAddRule("A", "a%s", []string{"S"}, 2)
		g.MustAddRule("S", "b", nil, 1)
		g.MustAddRule("A", "a", nil, 1)
	}))
	register("GoldenMean", "strings over {a,b} with no aa", fromRules("GoldenMean", "ab", func(g *grammar.Grammar) {
		g.MustAddRule("S", "a%s", []string{"A"}, 2)
		g.MustAddRule("S", "b%s", []string{"S"}, 2)
		g.MustAddRule("A", "b%s", []string{"S"}, 2)
		g.MustAddRule("S", "a", nil, 1)
		g.MustAddRule("S", "b", nil, 1)
		g.MustAddRule("A", "b", nil, 1)
	}))

	register("ABnABAn", "(ab)^n (aba)^n", fromRules("ABnABAn", "ab", func(g *grammar.Grammar) {
		g.MustAddRule("S", "ab%saba", []string{"S"}, 2)
		g.MustAddRule("S", "ababa", nil, 1)
	}))
	register("Saffran", "streams of the words tupiro golabu bidaku padoti", fromRules("Saffran", "tprglbBdkPDT", func(g *grammar.Grammar) {
		g.MustAddRule("S", "%s%s", []string{"T", "S"}, 2)
		g.MustAddRule("S", "%s", []string{"T"}, 1)
		for _, w := range []string{"tpr", "glb", "Bdk", "PDT"} {
			g.MustAddRule("T", w, nil, 1)
		}
	}))
	register("Elman", "streams of the words baa dii guuu", fromRules("Elman", "badigu", func(g *grammar.Grammar) {
		g.MustAddRule("S", "%s%s", []string{"T", "S"}, 2)
		g.MustAddRule("S", "%s", []string{"T"}, 1)
		for _, w := range []string{"baa", "dii", "guuu"} {
			g.MustAddRule("T", w, nil, 1)
		}
	}))

	registerCounting()
	registerCopying()
	registerUnions()
	registerFinite()
	registerClosedForm()
	registerStateMachines()
}

func registerCounting() {
	register("AnBnCn", "a^n b^n c^n", func(config) (language.Language, error) {
		return language.Map("AnBnCn", anbn("AnBn"), appendRuns(2, run{"c", 1, 0}),
			language.WithTerminals(letters("abc")...), language.WithMonotoneEnumeration()), nil
	})
	register("AnBnC2n", "a^n b^n c^2n", func(config) (language.Language, error) {
		return language.Map("AnBnC2n", anbn("AnBn"), appendRuns(2, run{"c", 2, 0}),
			language.WithTerminals(letters("abc")...), language.WithMonotoneEnumeration()), nil
	})
	register("AnBnCnDnEn", "a^n b^n c^n d^n e^n", func(config) (language.Language, error) {
		return language.Map("AnBnCnDnEn", anbn("AnBn"), appendRuns(2, run{"c", 1, 0}, run{"d", 1, 0}, run{"e", 1, 0}),
			language.WithTerminals(letters("abcde")...), language.WithMonotoneEnumeration()), nil
	})
	register("AnBnp1Cnp2", "a^n b^(n+1) c^(n+2)", func(config) (language.Language, error) {
		return language.Map("AnBnp1Cnp2", unary("An", "a", 2), appendRuns(1, run{"b", 1, 1}, run{"c", 1, 2}),
			language.WithTerminals(letters("abc")...), language.WithMonotoneEnumeration()), nil
	})
	register("AnB2nC3n", "a^n b^2n c^3n", func(config) (language.Language, error) {
		return language.Map("AnB2nC3n", unary("An", "a", 2), appendRuns(1, run{"b", 2, 0}, run{"c", 3, 0}),
			language.WithTerminals(letters("abc")...), language.WithMonotoneEnumeration()), nil
	})
	register("Count", "a b a bb a bbb ...", func(config) (language.Language, error) {
		return language.Map("Count", unary("proxy", "a", 1.5), func(proxy string) string {
			var b strings.Builder
			for i := range utf8.RuneCountInString(proxy) {
				b.WriteString("a")
				b.WriteString(strings.Repeat("b", i+1))
			}
			return b.String()
		}, language.WithTerminals(letters("ab")...), language.WithMonotoneEnumeration()), nil
	})
	register("Unequal", "strings over {a,b} with #a != #b", func(cfg config) (language.Language, error) {
		return language.Filter("Unequal", abPlus("AB"), func(s string) bool {
			a, b := countAB(s)
			return a != b
		}, cfg.rejections()), nil
	})
	register("AnBm", "a^n b^m with m > n", func(config) (language.Language, error) {
		base := anbn("AnBn")
		return language.Closed("AnBm", letters("ab"), func(rng *rand.Rand) (string, error) {
			s, err := base.SampleString(rng)
			if err != nil {
				return "", err
			}
			return s + strings.Repeat("b", 1+sampling.Streak(rng, 2.0/3)), nil
		}, splits(3, func(total int) int { return (total - 1) / 2 }, func(n, m int) string {
			return strings.Repeat("a", n) + strings.Repeat("b", m)
		})), nil
	})
	register("AnBmCnDm", "a^n b^m c^n d^m", func(config) (language.Language, error) {
		as := unary("A", "a", 2)
		bs := unary("B", "b", 2)
		return language.Closed("AnBmCnDm", letters("abcd"), func(rng *rand.Rand) (string, error) {
			a, err := as.SampleString(rng)
			if err != nil {
				return "", err
			}
			b, err := bs.SampleString(rng)
			if err != nil {
				return "", err
			}
			return a + b + strings.Repeat("c", len(a)) + strings.Repeat("d", len(b)), nil
		}, splits(2, func(total int) int { return total - 1 }, func(n, m int) string {
			return strings.Repeat("a", n) + strings.Repeat("b", m) + strings.Repeat("c", n) + strings.Repeat("d", m)
		})), nil
	})
	register("AnBmAnBm", "a^n b^m a^n b^m", func(config) (language.Language, error) {
		return twoCountCopy("AnBmAnBm", letters("ab"), ""), nil
	})
	register("AnBmAnBmCCC", "a^n b^m a^n b^m ccc", func(config) (language.Language, error) {
		return twoCountCopy("AnBmAnBmCCC", letters("abc"), "ccc"), nil
	})
}

func registerCopying() {
	register("XX", "ww over {a,b}", func(config) (language.Language, error) {
		return language.Repeat("XX", abPlus("AB"), 2), nil
	})
	register("XXX", "www over {a,b}", func(config) (language.Language, error) {
		return language.Repeat("XXX", abPlus("AB"), 3), nil
	})
	register("WeW", "w^|w| over {a,b}", func(config) (language.Language, error) {
		return language.RepeatByLength("WeW", abPlus("AB")), nil
	})
	register("XXI", "w followed by w with a and b swapped", func(config) (language.Language, error) {
		swap := strings.NewReplacer("a", "b", "b", "a")
		return language.Map("XXI", abPlus("AB"), func(w string) string {
			return w + swap.Replace(w)
		}, language.WithMonotoneEnumeration()), nil
	})
	register("ABnen", "(ab)^n repeated n times", func(config) (language.Language, error) {
		base, err := grammarLanguage("ABn", "ab", func(g *grammar.Grammar) {
			g.MustAddRule("S", "ab%s", []string{"S"}, 1)
			g.MustAddRule("S", "ab", nil, 2)
		})
		if err != nil {
			return nil, err
		}
		return language.Map("ABnen", base, func(s string) string {
			return strings.Repeat(s, len(s)/2)
		}, language.WithMonotoneEnumeration()), nil
	})
	register("XY", "xy with x != y over {a,b}", func(cfg config) (language.Language, error) {
		ab := letters("ab")
		return language.Pair("XY", abPlus("X"), abPlus("Y"), func(x, y string) bool {
			return x != y
		}, cfg.rejections(), language.WithEnumeration(xyStrings(ab))), nil
	})
	register("ABA", "t1 t2 t1 over eight syllables", func(config) (language.Language, error) {
		return marcus("ABA", 0)
	})
	register("ABB", "t1 t2 t2 over eight syllables", func(config) (language.Language, error) {
		return marcus("ABB", 1)
	})
}

// xyStrings enumerates the strings that split into two different non-empty
// halves: every string of length three or more, plus the unequal pairs of length two
func xyStrings(alphabet []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for s := range language.Kleene(alphabet, 2) {
			if len(s) == 2 && s[0] == s[1] {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

// splits yields build(n, total-n) for each total from the given start and
// n = 1..maxN(total). build must return strings whose length grows with total.
func splits(from int, maxN func(total int) int, build func(n, m int) string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for total := from; ; total++ {
			for n := 1; n <= maxN(total); n++ {
				if !yield(build(n, total-n)) {
					return
				}
			}
		}
	}
}

// twoCountCopy is a^n b^m a^n b^m followed by suffix
func twoCountCopy(name string, terminals []string, suffix string) language.Language {
	as := unary("A", "a", 2)
	bs := unary("B", "b", 2)
	build := func(n, m int) string {
		ab := strings.Repeat("a", n) + strings.Repeat("b", m)
		return ab + ab + suffix
	}
	return language.Closed(name, terminals, func(rng *rand.Rand) (string, error) {
		a, err := as.SampleString(rng)
		if err != nil {
			return "", err
		}
		b, err := bs.SampleString(rng)
		if err != nil {
			return "", err
		}
		return build(len(a), len(b)), nil
	}, splits(2, func(total int) int { return total - 1 }, build))
}

// marcus builds the two-syllable grammar and copies syllable i to the end
func marcus(name string, i int) (language.Language, error) {
	base, err := grammarLanguage(name+"Base", marcusSyllables, func(g *grammar.Grammar) {
		g.MustAddRule("S", "%s%s", []string{"T", "T"}, 1)
		for _, t := range letters(marcusSyllables) {
			g.MustAddRule("T", t, nil, 1)
		}
	})
	if err != nil {
		return nil, err
	}
	return language.Map(name, base, func(s string) string {
		return s + string([]rune(s)[i])
	}, language.WithMonotoneEnumeration()), nil
}

func registerUnions() {
	register("AnUBn", "a^n or b^n", func(config) (language.Language, error) {
		an := unary("An", "a", 2)
		bn := language.Substitute("Bn", an, []string{"a", "b"},
			language.WithTerminals("b"), language.WithMonotoneEnumeration())
		return language.Choice("AnUBn", []language.Language{an, bn}, nil)
	})
	register("AnUAnBn", "a^n or a^n b^n", func(config) (language.Language, error) {
		an := unary("An", "a", 2)
		anbn := language.Map("AnBn", an, func(s string) string {
			return s + strings.Repeat("b", len(s))
		}, language.WithTerminals("a", "b"), language.WithMonotoneEnumeration())
		return language.Choice("AnUAnBn", []language.Language{an, anbn}, nil)
	})
	register("ABnUBAn", "(ab)^n or (ba)^n", func(config) (language.Language, error) {
		xn := unary("Xn", "x", 2)
		ab := language.Substitute("ABn", xn, []string{"x", "ab"},
			language.WithTerminals("a", "b"), language.WithMonotoneEnumeration())
		ba := language.Substitute("BAn", xn, []string{"x", "ba"},
			language.WithTerminals("b", "a"), language.WithMonotoneEnumeration())
		return language.Choice("ABnUBAn", []language.Language{ab, ba}, nil, language.WithTerminals("a", "b"))
	})
}

func registerFinite() {
	register("Man", "{a, am, mam, an, man}, uniform", func(config) (language.Language, error) {
		return language.Finite("Man", letters("man"), []string{"a", "am", "mam", "an", "man"}, nil)
	})
	register("AAA", "{a, aa, aaa} with weight 2^-len", func(config) (language.Language, error) {
		strs := []string{"a", "aa", "aaa"}
		return language.Finite("AAA", letters("a"), strs, language.LengthDecay(strs))
	})
	register("AAAA", "{a, aa, aaa, aaaa} with weight 2^-len", func(config) (language.Language, error) {
		strs := []string{"a", "aa", "aaa", "aaaa"}
		return language.Finite("AAAA", letters("a"), strs, language.LengthDecay(strs))
	})
}

func registerClosedForm() {
	register("Fibo", "a^F(n), F the Fibonacci numbers", func(config) (language.Language, error) {
		fib := sampling.NewFibonacci()
		sample := func(rng *rand.Rand) (string, error) {
			n, err := fib.At(min(sampling.Streak(rng, 0.5), maxFibIndex))
			if err != nil {
				return "", err
			}
			return strings.Repeat("a", n), nil
		}
		// F(0) == F(1), so the canonical order starts at 1
		enum := language.Counted(1, func(n int) (string, bool) {
			v, err := fib.At(n)
			if err != nil || n > maxFibIndex {
				return "", false
			}
			return strings.Repeat("a", v), true
		})
		return language.Closed("Fibo", letters("a"), sample, enum), nil
	})
	register("A2en", "a^(2^n), n >= 1", func(config) (language.Language, error) {
		sample := func(rng *rand.Rand) (string, error) {
			n := sampling.Geometric(rng, 0.9)
			return strings.Repeat("a", 1<<min(n, 40)), nil
		}
		enum := language.Counted(1, func(n int) (string, bool) {
			if n > 40 {
				return "", false
			}
			return strings.Repeat("a", 1<<n), true
		})
		return language.Closed("A2en", letters("a"), sample, enum), nil
	})
	register("An2", "a^(n^2), n >= 1", func(config) (language.Language, error) {
		sample := func(rng *rand.Rand) (string, error) {
			n := sampling.Geometric(rng, 0.5)
			return strings.Repeat("a", n*n), nil
		}
		enum := language.Counted(1, func(n int) (string, bool) {
			return strings.Repeat("a", n*n), true
		})
		return language.Closed("An2", letters("a"), sample, enum), nil
	})
}

func registerStateMachines() {
	for _, x := range []int{2, 6, 12} {
		name := "Gomez" + strconv.Itoa(x)
		fillers := gomezFillers[:x]
		register(name, "a X d | b X e with "+strconv.Itoa(x)+" fillers", fromRules(name, "abde"+fillers, func(g *grammar.Grammar) {
			g.MustAddRule("S", "a%sd", []string{"X"}, 1)
			g.MustAddRule("S", "b%se", []string{"X"}, 1)
			for _, f := range letters(fillers) {
				g.MustAddRule("X", f, nil, 1)
			}
		}))
	}

	register("Reber", "Reber (1967) finite-state grammar", fromRules("Reber", "PSTVX", func(g *grammar.Grammar) {
		g.MustAddRule("S", "T%s", []string{"S1"}, 1)
		g.MustAddRule("S", "V%s", []string{"S3"}, 1)
		g.MustAddRule("S1", "P%s", []string{"S1"}, 1)
		g.MustAddRule("S1", "T%s", []string{"S2"}, 1)
		g.MustAddRule("S3", "X%s", []string{"S3"}, 1)
		g.MustAddRule("S3", "V%s", []string{"S4"}, 1)
		g.MustAddRule("S2", "X%s", []string{"S3"}, 1)
		g.MustAddRule("S2", "S", nil, 1)
		g.MustAddRule("S4", "P%s", []string{"S2"}, 1)
		g.MustAddRule("S4", "S", nil, 1)
	}))

	register("Milne", "Milne et al. finite-state sequence grammar", fromRules("Milne", "acdgf", func(g *grammar.Grammar) {
		g.MustAddRule("S", "%s", []string{"A"}, 1)
		g.MustAddRule("A", "a%s", []string{"D"}, 1)
		g.MustAddRule("A", "a%s", []string{"C"}, 1)
		g.MustAddRule("D", "d%s", []string{"C"}, 1)
		g.MustAddRule("C", "c%s", []string{"G"}, 1)
		g.MustAddRule("C", "c%s", []string{"F"}, 1)
		g.MustAddRule("G", "g%s", []string{"F"}, 1)
		g.MustAddRule("F", "f", nil, 1)
		g.MustAddRule("F", "f%s", []string{"X"}, 1)
		g.MustAddRule("X", "c", nil, 1)
		g.MustAddRule("X", "c%s", []string{"Y"}, 1)
		g.MustAddRule("Y", "g", nil, 1)
	}))

	// J Judy, g gives, G gave, d does, D did, e get, i is, W was, h has, H had,
	// N given, v giving, V give, m may, M might, j have, b being, B been, E be, o bread
	register("BerwickPilato", "Berwick & Pilato (1987) auxiliary system", fromRules("BerwickPilato", "JgGdDeiWhHNvVmMjbBEo", func(g *grammar.Grammar) {
		g.MustAddRule("S", "J%s", []string{"S1"}, 1)
		for _, r := range []struct{ tmpl, next string }{
			{"g%s", "S4"}, {"G%s", "S4"},
			{"d%s", "S3"}, {"D%s", "S3"},
			{"i%s", "S6"}, {"W%s", "S6"},
			{"h%s", "S5"}, {"H%s", "S5"},
			{"m%s", "S2"}, {"M%s", "S2"},
		} {
			g.MustAddRule("S1", r.tmpl, []string{r.next}, 1)
		}
		g.MustAddRule("S2", "j%s", []string{"S5"}, 1)
		g.MustAddRule("S2", "E%s", []string{"S6"}, 1)
		g.MustAddRule("S2", "V%s", []string{"S4"}, 1)
		g.MustAddRule("S3", "e%s", []string{"S7"}, 1)
		g.MustAddRule("S3", "V%s", []string{"S4"}, 1)
		g.MustAddRule("S4", "o", nil, 1)
		g.MustAddRule("S5", "N%s", []string{"S4"}, 1)
		g.MustAddRule("S5", "B%s", []string{"S6"}, 1)
		g.MustAddRule("S6", "b%s", []string{"S7"}, 1)
		g.MustAddRule("S6", "v%s", []string{"S4"}, 1)
		g.MustAddRule("S6", "N%s", []string{"S4"}, 1)
		g.MustAddRule("S7", "N%s", []string{"S4"}, 1)
	}))
}
