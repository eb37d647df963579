package anoto

import "fmt"

// CRT solves the Chinese Remainder reconstruction problem for a fixed set of
// pairwise-coprime moduli L1...LK: given remainders ri = x mod Li, Solve
// returns the unique x in [0, L) with L = product(Li). The per-modulus
// coefficients are computed once at construction via the extended Euclidean
// algorithm.
type CRT struct {
	lengths []int64
	l       int64   // product of all lengths
	es      []int64 // es[i] = qi * (L/Li), precomputed CRT coefficients
}

// NewCRT builds a CRT solver for the given pairwise-coprime lengths. It
// returns an error (wrapping ErrConstruction) if any length shares a common
// factor with the product of the others, since in that case CRT
// reconstruction would not be well-defined.
func NewCRT(lengths []int64) (*CRT, error) {
	var l int64 = 1
	for _, li := range lengths {
		l *= li
	}

	es := make([]int64, len(lengths))
	for i, li := range lengths {
		rest := l / li
		gcd, _, s := extendedEuclid(li, rest)
		if gcd != 1 {
			return nil, fmt.Errorf("%w: length %d is not coprime with the product of the others", ErrConstruction, li)
		}
		q := euclidMod(s, li)
		es[i] = q * rest
	}

	owned := make([]int64, len(lengths))
	copy(owned, lengths)

	return &CRT{lengths: owned, l: l, es: es}, nil
}

// Modulus returns the product of all lengths, i.e. the exclusive upper bound
// of values Solve can return.
func (c *CRT) Modulus() int64 {
	return c.l
}

// Solve returns the unique x in [0, Modulus()) such that x mod lengths[i] ==
// remainders[i] for every i. remainders must have the same length as the
// moduli the CRT was constructed with.
func (c *CRT) Solve(remainders []int64) int64 {
	var sum int64
	for i, r := range remainders {
		sum = (sum + euclidMod(r*c.es[i], c.l)) % c.l
	}
	return sum
}

// extendedEuclid returns (gcd, x, y) such that gcd = x*a + y*b.
func extendedEuclid(a, b int64) (gcd, x, y int64) {
	if a == 0 {
		return b, 0, 1
	}
	gcd, x1, y1 := extendedEuclid(b%a, a)
	x = y1 - (b/a)*x1
	y = x1
	return gcd, x, y
}

// euclidMod returns the true Euclidean modulo of n by m (always in
// [0, m) for m > 0), unlike Go's % operator which can return a negative
// result for a negative n.
func euclidMod(n, m int64) int64 {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}
