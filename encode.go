package anoto

// EncodeBitMatrix produces the (h, w, 2) bit matrix for the given page shape
// and section (u, v), per spec.md §4.5. It never fails once the codec is
// constructed. Channel 0 (x-direction) and channel 1 (y-direction) are
// computed independently, so a caller that wants to parallelize large pages
// can instead call EncodeColumn/EncodeRow directly across goroutines — the
// codec itself performs no concurrency of its own (spec.md §5).
func (c *Codec) EncodeBitMatrix(h, w, u, v int) Matrix {
	m := newMatrix(h, w)

	xRolls := make([]int, w)
	c.rollSequence(euclidModInt(u, c.mnsLength), xRolls)
	for x, roll := range xRolls {
		col := c.columnAtRoll(roll, h)
		for y := 0; y < h; y++ {
			m[y][x][0] = col[y]
		}
	}

	yRolls := make([]int, h)
	c.rollSequence(euclidModInt(v, c.mnsLength), yRolls)
	for y, roll := range yRolls {
		row := c.rowAtRoll(roll, w)
		for x := 0; x < w; x++ {
			m[y][x][1] = row[x]
		}
	}

	return m
}

// columnAtRoll fills h channel-0 values given an already-computed roll. This
// is the single code path both EncodeColumn and EncodeBitMatrix read
// through, so there is exactly one place that turns a roll into MNS values.
func (c *Codec) columnAtRoll(roll, h int) []byte {
	col := make([]byte, h)
	for y := range col {
		col[y] = byte(c.mns.at(y + roll))
	}
	return col
}

// rowAtRoll is columnAtRoll's row-axis counterpart.
func (c *Codec) rowAtRoll(roll, w int) []byte {
	row := make([]byte, w)
	for x := range row {
		row[x] = byte(c.mns.at(x + roll))
	}
	return row
}

// EncodeColumn returns the channel-0 (x-direction) values for column x, rows
// [0, h), without allocating a full matrix. Useful when a caller only needs
// a handful of columns from a very large page.
func (c *Codec) EncodeColumn(u, x, h int) []byte {
	roll := c.rollAt(x, euclidModInt(u, c.mnsLength))
	return c.columnAtRoll(roll, h)
}

// EncodeRow returns the channel-1 (y-direction) values for row y, columns
// [0, w), without allocating a full matrix.
func (c *Codec) EncodeRow(v, y, w int) []byte {
	roll := c.rollAt(y, euclidModInt(v, c.mnsLength))
	return c.rowAtRoll(roll, w)
}

// EncodeCell returns the two channel bits at a single cell (x, y), without
// allocating a column, row, or matrix.
func (c *Codec) EncodeCell(u, v, x, y int) (ch0, ch1 byte) {
	xRoll := c.rollAt(x, euclidModInt(u, c.mnsLength))
	yRoll := c.rollAt(y, euclidModInt(v, c.mnsLength))
	return byte(c.mns.at(y + xRoll)), byte(c.mns.at(x + yRoll))
}
