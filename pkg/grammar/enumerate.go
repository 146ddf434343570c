/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: enumerate.go
Description: Canonical enumerator for weighted grammars. Yields every distinct string
derivable from a symbol, shortest first. Within one length the order follows rule
insertion order: a string sits where the first rule (and the first child length split,
left child shortest first) that produces it puts it. The sequence is lazy and pull
driven; stopping early costs nothing. Finite languages end once the longest derivable
length has been emitted.
*/

package grammar

import (
	"iter"
	"unicode/utf8"
)

// lengthCap bounds the longest-derivation relaxation so doubling grammars
// cannot overflow while we decide whether the language is infinite
const lengthCap = 1 << 40

// Enumerate returns the canonical sequence of strings derivable from symbol.
// Each call of the returned sequence restarts from the shortest string.
func Enumerate(g *Grammar, symbol string) (iter.Seq[string], error) {
	g.Freeze()

	if g.IsTerminal(symbol) {
		return func(yield func(string) bool) {
			yield(symbol)
		}, nil
	}
	if !g.IsNonterminal(symbol) {
		return nil, &SymbolError{Symbol: symbol}
	}

	p := newPlan(g, symbol)
	return func(yield func(string) bool) {
		if !p.productive(symbol) {
			return
		}
		w := newWalk(p)
		for L := 0; p.infinite || L <= p.maxLen; L++ {
			w.fill(L)
			for _, s := range w.levels[symbol][L] {
				if !yield(s) {
					return
				}
			}
		}
	}, nil
}

// plan is the static analysis shared by every walk over one grammar
type plan struct {
	g        *Grammar
	root     string
	nts      []string           // useful nonterminals reachable from root
	useful   map[string][]*Rule // rules whose children are all productive
	minLen   map[string]int
	suffix   map[*Rule][]int // suffix[r][i] = min length of children i..end
	maxLen   int
	infinite bool
	fixpoint bool // some rule can place a child at the length being built
}

func newPlan(g *Grammar, root string) *plan {
	p := &plan{
		g:      g,
		root:   root,
		useful: make(map[string][]*Rule),
		minLen: make(map[string]int),
		suffix: make(map[*Rule][]int),
	}
	p.computeMinLengths()
	if !p.productive(root) {
		return p
	}
	p.collectUseful()
	p.computeMaxLength()
	return p
}

// childMin returns the shortest output of a child, or false when it has none
func (p *plan) childMin(c string) (int, bool) {
	if p.g.IsTerminal(c) {
		return utf8.RuneCountInString(c), true
	}
	v, ok := p.minLen[c]
	return v, ok
}

func (p *plan) productive(symbol string) bool {
	if p.g.IsTerminal(symbol) {
		return true
	}
	_, ok := p.minLen[symbol]
	return ok
}

// computeMinLengths finds the shortest derivation length of every productive
// nonterminal by relaxing until nothing shrinks
func (p *plan) computeMinLengths() {
	for changed := true; changed; {
		changed = false
		for _, r := range p.g.rules {
			total, ok := r.litLen, true
			for _, c := range r.Children {
				l, found := p.childMin(c)
				if !found {
					ok = false
					break
				}
				total += l
			}
			if !ok {
				continue
			}
			if cur, seen := p.minLen[r.LHS]; !seen || total < cur {
				p.minLen[r.LHS] = total
				changed = true
			}
		}
	}
}

// collectUseful keeps the productive rules reachable from root
func (p *plan) collectUseful() {
	reach := map[string]bool{p.root: true}
	queue := []string{p.root}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for _, r := range p.g.byLHS[x] {
			if !p.allProductive(r) {
				continue
			}
			p.useful[x] = append(p.useful[x], r)
			for _, c := range r.Children {
				if p.g.IsNonterminal(c) && !reach[c] {
					reach[c] = true
					queue = append(queue, c)
				}
			}
		}
	}

	for _, x := range p.g.lhsOrder {
		if reach[x] {
			p.nts = append(p.nts, x)
		}
	}

	for _, x := range p.nts {
		for _, r := range p.useful[x] {
			k := len(r.Children)
			suf := make([]int, k+1)
			for i := k - 1; i >= 0; i-- {
				l, _ := p.childMin(r.Children[i])
				suf[i] = suf[i+1] + l
			}
			p.suffix[r] = suf

			// a child can reach the full length only if everything else can be empty
			if r.litLen == 0 {
				for _, c := range r.Children {
					if p.g.IsNonterminal(c) && suf[0]-p.mustMin(c) == 0 {
						p.fixpoint = true
					}
				}
			}
		}
	}
}

func (p *plan) mustMin(c string) int {
	l, _ := p.childMin(c)
	return l
}

func (p *plan) allProductive(r *Rule) bool {
	for _, c := range r.Children {
		if !p.productive(c) {
			return false
		}
	}
	return true
}

// computeMaxLength decides finiteness. For a finite language the longest
// derivation needs no repeated nonterminal on any path, so relaxation settles
// within len(nts) rounds; anything still growing after that is pumpable.
func (p *plan) computeMaxLength() {
	maxLen := make(map[string]int, len(p.nts))
	for _, x := range p.nts {
		maxLen[x] = p.minLen[x]
	}

	for round := 0; ; round++ {
		changed := false
		for _, x := range p.nts {
			for _, r := range p.useful[x] {
				total := r.litLen
				for _, c := range r.Children {
					if p.g.IsTerminal(c) {
						total += utf8.RuneCountInString(c)
					} else {
						total += maxLen[c]
					}
					if total > lengthCap {
						total = lengthCap
					}
				}
				if total > maxLen[x] {
					maxLen[x] = total
					changed = true
				}
			}
		}
		if !changed {
			p.maxLen = maxLen[p.root]
			return
		}
		if round > len(p.nts) {
			p.infinite = true
			return
		}
	}
}

// walk holds the per-iteration cache of strings by symbol and length
type walk struct {
	p      *plan
	levels map[string][][]string
	cur    map[string]*bucket
	length int
}

type bucket struct {
	list []string
	seen map[string]struct{}
}

func (b *bucket) add(s string) bool {
	if _, ok := b.seen[s]; ok {
		return false
	}
	b.seen[s] = struct{}{}
	b.list = append(b.list, s)
	return true
}

func newWalk(p *plan) *walk {
	return &walk{p: p, levels: make(map[string][][]string, len(p.nts))}
}

// fill computes every useful nonterminal's strings of exactly length L.
// Levels must be filled in increasing order.
func (w *walk) fill(L int) {
	w.length = L
	w.cur = make(map[string]*bucket, len(w.p.nts))
	for _, x := range w.p.nts {
		w.cur[x] = &bucket{seen: make(map[string]struct{})}
	}

	for {
		changed := false
		for _, x := range w.p.nts {
			b := w.cur[x]
			for _, r := range w.p.useful[x] {
				need := L - r.litLen
				if need < 0 {
					continue
				}
				outs := make([]string, len(r.Children))
				w.combine(r, 0, need, outs, func(s string) {
					if b.add(s) {
						changed = true
					}
				})
			}
		}
		if !changed || !w.p.fixpoint {
			break
		}
	}

	for _, x := range w.p.nts {
		w.levels[x] = append(w.levels[x], w.cur[x].list)
	}
	w.cur = nil
}

// combine visits every assignment of child strings whose lengths sum to
// remaining, left child shortest first
func (w *walk) combine(r *Rule, i, remaining int, outs []string, emit func(string)) {
	k := len(r.Children)
	if i == k {
		if remaining == 0 {
			emit(r.Expand(outs))
		}
		return
	}

	c := r.Children[i]
	lo := w.p.mustMin(c)
	hi := remaining - w.p.suffix[r][i+1]
	if i == k-1 {
		if remaining < lo {
			return
		}
		lo, hi = remaining, remaining
	}

	for l := lo; l <= hi; l++ {
		for _, s := range w.stringsOf(c, l) {
			outs[i] = s
			w.combine(r, i+1, remaining-l, outs, emit)
		}
	}
}

// stringsOf returns the canonical strings of symbol c with length l
func (w *walk) stringsOf(c string, l int) []string {
	if w.p.g.IsTerminal(c) {
		if utf8.RuneCountInString(c) == l {
			return []string{c}
		}
		return nil
	}
	if l < w.length {
		return w.levels[c][l]
	}
	// the level under construction; take a snapshot so appends do not alias
	b := w.cur[c]
	return b.list[:len(b.list):len(b.list)]
}
