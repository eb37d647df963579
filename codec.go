// Package anoto implements an Anoto-style dot-pattern codec: it encodes 2D
// integer coordinates into a dense matrix of two-bit symbols and decodes any
// sufficiently large window of that matrix back into an absolute position, a
// section (page tile) identifier, and the window's rotation.
//
// A *Codec is a pure value once constructed: all sequence data and derived
// tables (cyclic extensions, CRT coefficients, mixed-radix bases) are built
// once by New and never mutated afterwards, so a *Codec is safe to share and
// call concurrently from any number of goroutines. Encode/Decode never
// perform I/O and never block.
package anoto

import "fmt"

// Codec encodes and decodes Anoto-style dot patterns for a fixed
// configuration (MNS, SNS tuple, prime factors, delta range). Construct one
// with New or one of the default configurations in defaults.go.
type Codec struct {
	mns       cyclicSequence
	mnsLength int
	mnsOrder  int

	sns      []cyclicSequence
	snsOrder int

	basis    *NumberBasis
	crt      *CRT
	deltaMin int64
	deltaMax int64
}

// New constructs a Codec from a Main Number Sequence, its order, a tuple of
// Secondary Number Sequences, the prime factors decomposing delta digits,
// and the admissible delta range (inclusive). It returns an error wrapping
// ErrConstruction if:
//
//   - len(pfactors) != len(sns)
//   - product(pfactors) != deltaMax - deltaMin + 1
//   - the SNS lengths are not pairwise coprime
//   - mnsOrder < 2
//   - any SNS is shorter than mnsOrder-1, or mns is shorter than mnsOrder
//
// Construction never returns a partially-built Codec: every check above
// runs before any field is populated.
func New(mns []int8, mnsOrder int, sns [][]int8, pfactors []int64, deltaMin, deltaMax int64) (*Codec, error) {
	if mnsOrder < 2 {
		return nil, fmt.Errorf("%w: mns order %d must be >= 2", ErrConstruction, mnsOrder)
	}
	if len(mns) < mnsOrder {
		return nil, fmt.Errorf("%w: mns length %d shorter than order %d", ErrConstruction, len(mns), mnsOrder)
	}
	if len(pfactors) != len(sns) {
		return nil, fmt.Errorf("%w: %d prime factors but %d secondary sequences", ErrConstruction, len(pfactors), len(sns))
	}

	snsOrder := mnsOrder - 1
	var product int64 = 1
	for _, p := range pfactors {
		product *= p
	}
	if want := deltaMax - deltaMin + 1; product != want {
		return nil, fmt.Errorf("%w: prime factor product %d does not equal delta range size %d", ErrConstruction, product, want)
	}

	lengths := make([]int64, len(sns))
	for i, s := range sns {
		if len(s) < snsOrder {
			return nil, fmt.Errorf("%w: sns[%d] length %d shorter than order %d", ErrConstruction, i, len(s), snsOrder)
		}
		lengths[i] = int64(len(s))
	}

	crt, err := NewCRT(lengths)
	if err != nil {
		return nil, err
	}

	sequences := make([]cyclicSequence, len(sns))
	for i, s := range sns {
		sequences[i] = newCyclicSequence(s, snsOrder)
	}

	return &Codec{
		mns:       newCyclicSequence(mns, mnsOrder),
		mnsLength: len(mns),
		mnsOrder:  mnsOrder,
		sns:       sequences,
		snsOrder:  snsOrder,
		basis:     NewNumberBasis(pfactors),
		crt:       crt,
		deltaMin:  deltaMin,
		deltaMax:  deltaMax,
	}, nil
}

// MNSOrder returns the order n of the Main Number Sequence, i.e. the minimum
// window side length decode operations require.
func (c *Codec) MNSOrder() int {
	return c.mnsOrder
}

// MNSLength returns the (non-extended) length of the Main Number Sequence.
func (c *Codec) MNSLength() int {
	return c.mnsLength
}

// PositionModulus returns the section-local position cardinality,
// product(SNS lengths) — the exclusive upper bound of both coordinates
// returned by DecodePosition.
func (c *Codec) PositionModulus() int64 {
	return c.crt.Modulus()
}
