package anoto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewDefault()
	assert.NoError(t, err)
	return c
}

func TestNewRejectsShortMNS(t *testing.T) {
	_, err := New(MNS[:4], 6, [][]int8{A1, A2, A3, A4Alt}, defaultPFactors, defaultDeltaMin, defaultDeltaMax)
	assert.ErrorIs(t, err, ErrConstruction)
}

func TestNewRejectsLowOrder(t *testing.T) {
	_, err := New(MNS, 1, [][]int8{A1, A2, A3, A4Alt}, defaultPFactors, defaultDeltaMin, defaultDeltaMax)
	assert.ErrorIs(t, err, ErrConstruction)
}

func TestNewRejectsMismatchedFactorCount(t *testing.T) {
	_, err := New(MNS, 6, [][]int8{A1, A2, A3}, defaultPFactors, defaultDeltaMin, defaultDeltaMax)
	assert.ErrorIs(t, err, ErrConstruction)
}

func TestNewRejectsFactorProductMismatch(t *testing.T) {
	_, err := New(MNS, 6, [][]int8{A1, A2, A3, A4Alt}, []int64{3, 3, 2, 2}, defaultDeltaMin, defaultDeltaMax)
	assert.ErrorIs(t, err, ErrConstruction)
}

func TestNewRejectsShortSNS(t *testing.T) {
	shortA3 := A3[:3]
	_, err := New(MNS, 6, [][]int8{A1, A2, shortA3, A4Alt}, defaultPFactors, defaultDeltaMin, defaultDeltaMax)
	assert.ErrorIs(t, err, ErrConstruction)
}

func TestNewRejectsNonCoprimeLengths(t *testing.T) {
	// Two sequences sharing the same length (both length 31) break the
	// pairwise-coprime requirement when their lengths aren't coprime.
	_, err := New(MNS, 6, [][]int8{A3, A3, A1, A2}, defaultPFactors, defaultDeltaMin, defaultDeltaMax)
	assert.ErrorIs(t, err, ErrConstruction)
}

func TestEncodeDecodePositionRoundTrip(t *testing.T) {
	c := defaultCodec(t)
	h, w := 100, 100
	section := func(u, v int) (Matrix, int, int) {
		m := c.EncodeBitMatrix(h, w, u, v)
		return m, u, v
	}
	m, u, v := section(5, 10)

	n := c.MNSOrder()
	for y := 0; y <= h-n; y++ {
		for x := 0; x <= w-n; x++ {
			sub := cropWindow(m, x, y, n, n)
			gotX, gotY, err := c.DecodePosition(sub)
			assert.NoError(t, err)
			assert.Equal(t, x, gotX)
			assert.Equal(t, y, gotY)

			gotU, gotV, err := c.DecodeSection(sub, gotX, gotY)
			assert.NoError(t, err)
			assert.Equal(t, u, gotU)
			assert.Equal(t, v, gotV)
		}
	}
}

func TestDecodePositionShapeError(t *testing.T) {
	c := defaultCodec(t)
	m := c.EncodeBitMatrix(3, 3, 0, 0)
	_, _, err := c.DecodePosition(m)
	assert.ErrorIs(t, err, ErrShape)
}

func TestDecodeRotationAllFourOrientations(t *testing.T) {
	c := defaultCodec(t)
	m := c.EncodeBitMatrix(256, 256, 5, 10)
	sub := cropWindow(m, 0, 0, 16, 16)

	for k := 0; k < 4; k++ {
		rotated := rot90(sub, k)
		got, err := c.DecodeRotation(rotated)
		assert.NoError(t, err)
		assert.Equal(t, k, got)
	}
}

func TestDecodeRotationUndetermined(t *testing.T) {
	c := defaultCodec(t)
	m := randomMatrix(16, 16, 99)
	_, err := c.DecodeRotation(m)
	assert.ErrorIs(t, err, ErrRotationUndetermined)
}

// cropWindow returns the sub-matrix starting at (x0, y0) with the given
// height and width.
func cropWindow(m Matrix, x0, y0, h, w int) Matrix {
	out := make(Matrix, h)
	for y := 0; y < h; y++ {
		out[y] = make([][2]byte, w)
		copy(out[y], m[y0+y][x0:x0+w])
	}
	return out
}
