/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: geometric.go
Description: Geometric-distribution helpers used by closed-form languages to draw
length parameters (a^(2^n), a^(n^2), Fibonacci lengths, trailing b counts).
*/

package sampling

import "math/rand"

// Geometric returns the number of Bernoulli(p) trials up to and including the
// first success. Support is {1, 2, ...} and the mean is 1/p.
// p must be in (0, 1]; values outside that range are clamped to 1.
func Geometric(rng *rand.Rand, p float64) int {
	if p <= 0 || p > 1 {
		p = 1
	}
	n := 1
	for rng.Float64() >= p {
		n++
	}
	return n
}

// Streak counts how many consecutive uniform draws fall below q before the
// first one that does not. Support is {0, 1, ...}; q >= 1 is clamped so the
// loop always ends.
func Streak(rng *rand.Rand, q float64) int {
	if q >= 1 {
		q = 0
	}
	n := 0
	for rng.Float64() < q {
		n++
	}
	return n
}
