/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: recurrence.go
Description: Explicitly owned memo cache for integer recurrences. Languages that size
their strings by a recurrence (Fibonacci lengths) own one of these instead of relying
on a package-level map. Reads and inserts are protected by a RWMutex.
*/

package sampling

import (
	"fmt"
	"sync"
)

// StepFunc computes term n given access to every earlier term
type StepFunc func(n int, at func(k int) int) int

// Recurrence memoizes a sequence defined by base cases and a step function
type Recurrence struct {
	mu    sync.RWMutex
	memo  []int
	step  StepFunc
	limit int
}

// NewRecurrence creates a recurrence whose first len(base) terms are given.
// The step function may only read terms with index below n.
func NewRecurrence(base []int, step StepFunc) *Recurrence {
	memo := make([]int, len(base))
	copy(memo, base)
	return &Recurrence{
		memo:  memo,
		step:  step,
		limit: 1 << 20,
	}
}

// NewFibonacci returns the recurrence F(0) = F(1) = 1, F(n) = F(n-1) + F(n-2)
func NewFibonacci() *Recurrence {
	return NewRecurrence([]int{1, 1}, func(n int, at func(int) int) int {
		return at(n-1) + at(n-2)
	})
}

// At returns term n, extending the cache as needed
func (r *Recurrence) At(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("sampling: recurrence index %d is negative", n)
	}
	if n >= r.limit {
		return 0, fmt.Errorf("sampling: recurrence index %d exceeds limit %d", n, r.limit)
	}

	r.mu.RLock()
	if n < len(r.memo) {
		v := r.memo[n]
		r.mu.RUnlock()
		return v, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another goroutine may have filled it while we waited
	at := func(k int) int { return r.memo[k] }
	for len(r.memo) <= n {
		r.memo = append(r.memo, r.step(len(r.memo), at))
	}
	return r.memo[n], nil
}

// Cached returns how many terms are currently memoized
func (r *Recurrence) Cached() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.memo)
}
