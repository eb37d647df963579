package anoto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// decodeErrorStage is a small helper asserting err is a *DecodeError with the
// given stage, in addition to matching the given sentinel via errors.Is.
func decodeErrorStage(t *testing.T, err error, sentinel error, stage string) {
	t.Helper()
	assert.ErrorIs(t, err, sentinel)
	de, ok := err.(*DecodeError)
	assert.True(t, ok, "expected *DecodeError, got %T", err)
	if ok {
		assert.Equal(t, stage, de.Stage)
	}
}

// TestDecodePositionMNSLookupMiss crafts a window whose first column is six
// consecutive 1s. MNS's longest run of 1s is five (positions 9-13), so a run
// of six never occurs as a cyclic substring and the very first column
// lookup must fail.
func TestDecodePositionMNSLookupMiss(t *testing.T) {
	c := defaultCodec(t)
	n := c.MNSOrder()
	m := newMatrix(n, n)
	for row := 0; row < n; row++ {
		m[row][0][0] = 1
	}

	_, _, err := c.DecodePosition(m)
	decodeErrorStage(t, err, ErrMNSLookupMiss, "decode_position.x")
}

// TestDecodePositionOutOfRangeDelta crafts a window whose n column slices are
// MNS[col:col+n] for col in [0,n), so consecutive MNS offsets differ by
// exactly 1. That delta (1) is below the default codec's deltaMin (5).
func TestDecodePositionOutOfRangeDelta(t *testing.T) {
	c := defaultCodec(t)
	n := c.MNSOrder()
	m := newMatrix(n, n)
	for col := 0; col < n; col++ {
		for row := 0; row < n; row++ {
			m[row][col][0] = byte(MNS[(col+row)%len(MNS)])
		}
	}

	_, _, err := c.DecodePosition(m)
	decodeErrorStage(t, err, ErrOutOfRangeDelta, "decode_position.x")
}

// TestDecodePositionSNSLookupMiss crafts a window whose n column slices are
// MNS[5*col:5*col+n], so every consecutive MNS offset differs by exactly 5 —
// the default codec's deltaMin, so every delta projects to the all-zero
// digit tuple (0,0,0,0). The all-zero order-5 tuple occurs in A1, A2, and A3
// but never in A4Alt (it is one of the two order-5 tuples A4Alt's
// quasi-de-Bruijn construction leaves unused), so the fourth SNS lookup is
// the one that misses.
func TestDecodePositionSNSLookupMiss(t *testing.T) {
	c := defaultCodec(t)
	n := c.MNSOrder()
	m := newMatrix(n, n)
	for col := 0; col < n; col++ {
		offset := col * 5
		for row := 0; row < n; row++ {
			m[row][col][0] = byte(MNS[(offset+row)%len(MNS)])
		}
	}

	_, _, err := c.DecodePosition(m)
	decodeErrorStage(t, err, ErrSNSLookupMiss, "decode_position.x")

	de := err.(*DecodeError)
	assert.Equal(t, 3, de.Index, "expected the miss on the fourth SNS (A4Alt)")
}
