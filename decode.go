package anoto

import "fmt"

// checkShape validates that m is large enough on both axes for any decode
// operation requiring the full MNS order window (spec.md §4.6/§4.7). The
// channel dimension is always exactly 2 by construction of Matrix, so there
// is nothing further to check there.
func (c *Codec) checkShape(m Matrix) error {
	if m.rows() < c.mnsOrder || m.cols() < c.mnsOrder {
		return newDecodeError("shape", -1, fmt.Errorf("%w: need at least (%d,%d), got (%d,%d)",
			ErrShape, c.mnsOrder, c.mnsOrder, m.rows(), m.cols()))
	}
	return nil
}

// DecodePosition recovers the (x, y) position within bits' section, using
// only the top-left mnsOrder x mnsOrder sub-window (spec.md §4.6). It fails
// with an error wrapping ErrShape, ErrMNSLookupMiss, ErrSNSLookupMiss, or
// ErrOutOfRangeDelta as appropriate.
func (c *Codec) DecodePosition(bits Matrix) (x, y int, err error) {
	if err := c.checkShape(bits); err != nil {
		return 0, 0, err
	}
	n := c.mnsOrder

	xSlice := func(col int) []int8 {
		s := make([]int8, n)
		for row := 0; row < n; row++ {
			s[row] = int8(bits[row][col][0])
		}
		return s
	}
	x, err = c.decodeAxis(n, xSlice, "decode_position.x")
	if err != nil {
		return 0, 0, err
	}

	ySlice := func(row int) []int8 {
		s := make([]int8, n)
		for col := 0; col < n; col++ {
			s[col] = int8(bits[row][col][1])
		}
		return s
	}
	y, err = c.decodeAxis(n, ySlice, "decode_position.y")
	if err != nil {
		return 0, 0, err
	}

	return x, y, nil
}

// decodeAxis implements spec.md §4.6 steps 1-5 for one axis. slice(i) must
// return the length-n observed sequence for index i in [0, n).
func (c *Codec) decodeAxis(n int, slice func(int) []int8, stage string) (int, error) {
	locs := make([]int, n)
	for i := 0; i < n; i++ {
		loc, ok := c.mns.locate(slice(i))
		if !ok {
			return 0, newDecodeError(stage, i, ErrMNSLookupMiss)
		}
		locs[i] = loc
	}

	K := len(c.sns)
	digits := make([][]int64, n-1)
	scratch := make([]int64, K)
	for i := 0; i < n-1; i++ {
		delta := euclidModInt(locs[i+1]-locs[i], c.mnsLength)
		if int64(delta) < c.deltaMin || int64(delta) > c.deltaMax {
			return 0, newDecodeError(stage, i, ErrOutOfRangeDelta)
		}
		digits[i] = append([]int64(nil), c.basis.Project(int64(delta)-c.deltaMin, scratch)...)
	}

	r := make([]int64, K)
	col := make([]int8, n-1)
	for i := 0; i < K; i++ {
		for t := 0; t < n-1; t++ {
			col[t] = int8(digits[t][i])
		}
		loc, ok := c.sns[i].locate(col)
		if !ok {
			return 0, newDecodeError(stage, i, ErrSNSLookupMiss)
		}
		r[i] = int64(loc)
	}

	return int(c.crt.Solve(r)), nil
}

// DecodeSection recovers the section (u, v) of bits given its already-known
// position (x, y), per spec.md §4.7.
func (c *Codec) DecodeSection(bits Matrix, x, y int) (u, v int, err error) {
	if err := c.checkShape(bits); err != nil {
		return 0, 0, err
	}
	n := c.mnsOrder

	qu := make([]int8, n)
	for row := 0; row < n; row++ {
		qu[row] = int8(bits[row][0][0])
	}
	mu, ok := c.mns.locate(qu)
	if !ok {
		return 0, 0, newDecodeError("decode_section.u", -1, ErrMNSLookupMiss)
	}
	su := c.accumulatedDelta(x)
	u = euclidModInt(mu-y-su, c.mnsLength)

	qv := make([]int8, n)
	for col := 0; col < n; col++ {
		qv[col] = int8(bits[0][col][1])
	}
	mv, ok := c.mns.locate(qv)
	if !ok {
		return 0, 0, newDecodeError("decode_section.v", -1, ErrMNSLookupMiss)
	}
	sv := c.accumulatedDelta(y)
	v = euclidModInt(mv-x-sv, c.mnsLength)

	return u, v, nil
}

// DecodeRotation identifies the orientation k in {0,1,2,3} of an observed
// window, per spec.md §4.8: it crops to a square of side min(rows, cols),
// tries each of the four counterclockwise rotations via rot90, and reports
// the first one where at least half the channel-0 column slices and half
// the channel-1 row slices are found in the cyclic MNS.
func (c *Codec) DecodeRotation(bits Matrix) (int, error) {
	size := bits.rows()
	if bits.cols() < size {
		size = bits.cols()
	}
	square := cropSquare(bits, size)

	for k := 0; k < 4; k++ {
		rotated := rot90(square, k)
		if c.rotationValid(rotated, size) {
			return euclidModInt(4-k, 4), nil
		}
	}

	return 0, newDecodeError("decode_rotation", -1, ErrRotationUndetermined)
}

func (c *Codec) rotationValid(m Matrix, size int) bool {
	xOK, yOK := 0, 0
	col := make([]int8, size)
	row := make([]int8, size)
	for i := 0; i < size; i++ {
		for r := 0; r < size; r++ {
			col[r] = int8(m[r][i][0])
		}
		if _, ok := c.mns.locate(col); ok {
			xOK++
		}
		for cc := 0; cc < size; cc++ {
			row[cc] = int8(m[i][cc][1])
		}
		if _, ok := c.mns.locate(row); ok {
			yOK++
		}
	}
	return xOK >= size/2 && yOK >= size/2
}

// cropSquare returns the top-left size x size sub-window of m.
func cropSquare(m Matrix, size int) Matrix {
	out := make(Matrix, size)
	for y := 0; y < size; y++ {
		out[y] = make([][2]byte, size)
		copy(out[y], m[y][:size])
	}
	return out
}
