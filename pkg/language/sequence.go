/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sequence.go
Description: Building blocks for closed-form enumerations. Every sequence here is
restartable and keeps the canonical guarantees when its inputs do: length
non-decreasing and no repeats.
*/

package language

import (
	"container/heap"
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"
)

// AlphabetStrings yields every string of exactly length symbols over alphabet,
// ordered lexicographically by the alphabet's declared order
func AlphabetStrings(alphabet []string, length int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if length < 0 || (len(alphabet) == 0 && length > 0) {
			return
		}
		idx := make([]int, length)
		var b strings.Builder
		for {
			b.Reset()
			for _, i := range idx {
				b.WriteString(alphabet[i])
			}
			if !yield(b.String()) {
				return
			}
			// odometer increment, rightmost position fastest
			pos := length - 1
			for pos >= 0 {
				idx[pos]++
				if idx[pos] < len(alphabet) {
					break
				}
				idx[pos] = 0
				pos--
			}
			if pos < 0 {
				return
			}
		}
	}
}

// Kleene yields every string over alphabet with at least minLen symbols,
// shortest first. Symbols are assumed to be single runes.
func Kleene(alphabet []string, minLen int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if len(alphabet) == 0 {
			return
		}
		for l := max(minLen, 0); ; l++ {
			for s := range AlphabetStrings(alphabet, l) {
				if !yield(s) {
					return
				}
			}
		}
	}
}

// Counted yields fn(n) for n = from, from+1, ... until fn reports false
func Counted(from int, fn func(n int) (string, bool)) iter.Seq[string] {
	return func(yield func(string) bool) {
		for n := from; ; n++ {
			s, ok := fn(n)
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// filterSeq keeps the elements of seq accepted by keep
func filterSeq(seq iter.Seq[string], keep func(string) bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		for s := range seq {
			if keep(s) && !yield(s) {
				return
			}
		}
	}
}

// mapInOrder rewrites seq with fn when output length never decreases along
// seq, dropping repeats within each output length
func mapInOrder(seq iter.Seq[string], fn func(string) string) iter.Seq[string] {
	return func(yield func(string) bool) {
		length := -1
		var seen map[string]struct{}
		for s := range seq {
			out := fn(s)
			if l := utf8.RuneCountInString(out); l != length {
				length = l
				seen = make(map[string]struct{})
			}
			if _, dup := seen[out]; dup {
				continue
			}
			seen[out] = struct{}{}
			if !yield(out) {
				return
			}
		}
	}
}

// pending is a rewritten string waiting for its length class to close
type pending struct {
	s      string
	length int
	order  int
}

// pendingHeap orders rewritten strings by length, then by arrival
type pendingHeap []pending

func (h pendingHeap) Len() int { return len(h) }
func (h pendingHeap) Less(i, j int) bool {
	if h[i].length != h[j].length {
		return h[i].length < h[j].length
	}
	return h[i].order < h[j].order
}
func (h pendingHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *pendingHeap) Push(x any)   { *h = append(*h, x.(pending)) }
func (h *pendingHeap) Pop() any {
	old := *h
	p := old[len(old)-1]
	*h = old[:len(old)-1]
	return p
}

// mapSeq rewrites seq with fn and restores canonical order. fn must never
// shorten its input: outputs of length l are held until the input length
// passes l, at which point no shorter output can still arrive. Repeats are
// dropped per output length. Panics if fn shortens an input.
func mapSeq(seq iter.Seq[string], fn func(string) string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var buf pendingHeap
		seen := make(map[int]map[string]struct{})
		order := 0

		// release emits every buffered string shorter than below, or all of
		// them when below is negative
		release := func(below int) bool {
			for buf.Len() > 0 && (below < 0 || buf[0].length < below) {
				p := heap.Pop(&buf).(pending)
				delete(seen, p.length)
				if !yield(p.s) {
					return false
				}
			}
			return true
		}

		for s := range seq {
			in := utf8.RuneCountInString(s)
			if !release(in) {
				return
			}
			out := fn(s)
			l := utf8.RuneCountInString(out)
			if l < in {
				panic(fmt.Sprintf("language: rewrite shortened %q to %q", s, out))
			}
			class, ok := seen[l]
			if !ok {
				class = make(map[string]struct{})
				seen[l] = class
			}
			if _, dup := class[out]; dup {
				continue
			}
			class[out] = struct{}{}
			heap.Push(&buf, pending{s: out, length: l, order: order})
			order++
		}
		release(-1)
	}
}

// mergeByLength interleaves canonical sequences into one canonical sequence.
// Within a length class, earlier sequences come first and repeats are dropped.
func mergeByLength(seqs ...iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		type head struct {
			next func() (string, bool)
			cur  string
			ok   bool
		}

		heads := make([]*head, len(seqs))
		for i, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()
			h := &head{next: next}
			h.cur, h.ok = next()
			heads[i] = h
		}

		for {
			length := -1
			for _, h := range heads {
				if !h.ok {
					continue
				}
				if l := utf8.RuneCountInString(h.cur); length < 0 || l < length {
					length = l
				}
			}
			if length < 0 {
				return
			}

			seen := make(map[string]struct{})
			for _, h := range heads {
				for h.ok && utf8.RuneCountInString(h.cur) == length {
					if _, dup := seen[h.cur]; !dup {
						seen[h.cur] = struct{}{}
						if !yield(h.cur) {
							return
						}
					}
					h.cur, h.ok = h.next()
				}
			}
		}
	}
}
