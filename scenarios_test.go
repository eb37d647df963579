package anoto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// These mirror the worked examples used to validate the codec during design:
// concrete (page, section) pairs with hand-checked expected bit values.

func TestScenarioTopLeftSection(t *testing.T) {
	c := defaultCodec(t)
	m := c.EncodeBitMatrix(60, 60, 0, 0)

	gotCol := make([]byte, 8)
	gotRow := make([]byte, 8)
	for i := 0; i < 8; i++ {
		gotCol[i] = m[i][0][0]
		gotRow[i] = m[0][i][1]
	}
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 1, 0}, gotCol)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 1, 0}, gotRow)
}

func TestScenarioOffsetSection(t *testing.T) {
	c := defaultCodec(t)
	m := c.EncodeBitMatrix(60, 60, 1, 1)

	gotCol := make([]byte, 8)
	for i := 0; i < 8; i++ {
		gotCol[i] = m[i][0][0]
	}
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 1, 0, 0}, gotCol)
}

func TestScenarioSubWindowRoundTrip(t *testing.T) {
	c := defaultCodec(t)
	m := c.EncodeBitMatrix(9, 16, 10, 2)
	sub := cropWindow(m, 7, 3, 6, 6)

	x, y, err := c.DecodePosition(sub)
	assert.NoError(t, err)
	assert.Equal(t, 7, x)
	assert.Equal(t, 3, y)

	u, v, err := c.DecodeSection(sub, x, y)
	assert.NoError(t, err)
	assert.Equal(t, 10, u)
	assert.Equal(t, 2, v)
}

func TestScenarioFullPageGrid(t *testing.T) {
	c := defaultCodec(t)
	m := c.EncodeBitMatrix(256, 256, 5, 10)
	n := c.MNSOrder()

	for y := 0; y <= 240; y += 10 {
		for x := 0; x <= 240; x += 10 {
			sub := cropWindow(m, x, y, n, n)
			gotX, gotY, err := c.DecodePosition(sub)
			assert.NoError(t, err)
			assert.Equal(t, x, gotX)
			assert.Equal(t, y, gotY)

			gotU, gotV, err := c.DecodeSection(sub, gotX, gotY)
			assert.NoError(t, err)
			assert.Equal(t, 5, gotU)
			assert.Equal(t, 10, gotV)
		}
	}
}

func TestScenarioRotationDetection(t *testing.T) {
	c := defaultCodec(t)
	m := c.EncodeBitMatrix(64, 64, 3, 7)
	n := c.MNSOrder()
	sub := cropWindow(m, 20, 20, n, n)

	for k := 0; k < 4; k++ {
		got, err := c.DecodeRotation(rot90(sub, k))
		assert.NoError(t, err)
		assert.Equal(t, k, got)
	}
}
