package anoto

// Matrix is a dense (H, W, 2) bit matrix: Matrix[y][x] holds the two channel
// bits (0 or 1) for cell (x, y). Channel 0 is the x-direction pattern,
// channel 1 the y-direction pattern (spec.md §3).
type Matrix [][][2]byte

// numToDir maps a packed dot-direction code (ch0 | ch1<<1) to a canonical
// direction index. dirToNum is its inverse. Both are fixed by the Anoto dot
// encoding and are not derived from anything else (spec.md §4.9).
var numToDir = [4]byte{0, 3, 1, 2}
var dirToNum = [4]byte{0, 2, 3, 1}

// newMatrix allocates an h x w bit matrix with both channels zeroed.
func newMatrix(h, w int) Matrix {
	m := make(Matrix, h)
	for y := range m {
		m[y] = make([][2]byte, w)
	}
	return m
}

func (m Matrix) rows() int {
	return len(m)
}

func (m Matrix) cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// bitsToNum packs each cell's two channel bits into a single dot-direction
// code, little-endian: ch0 | ch1<<1.
func bitsToNum(m Matrix) [][]byte {
	nums := make([][]byte, m.rows())
	for y, row := range m {
		nums[y] = make([]byte, len(row))
		for x, cell := range row {
			nums[y][x] = cell[0] | cell[1]<<1
		}
	}
	return nums
}

// numToBits unpacks dot-direction codes back into two-channel bits.
func numToBits(nums [][]byte) Matrix {
	h := len(nums)
	m := make(Matrix, h)
	for y, row := range nums {
		m[y] = make([][2]byte, len(row))
		for x, v := range row {
			m[y][x] = [2]byte{v & 1, (v >> 1) & 1}
		}
	}
	return m
}

// rotateCodes rotates a 2D array of dot-direction codes k quarter turns
// counterclockwise (k is normalized to [0,3] before use).
func rotateCodes(nums [][]byte, k int) [][]byte {
	k = ((k % 4) + 4) % 4
	h := len(nums)
	var w int
	if h > 0 {
		w = len(nums[0])
	}

	switch k {
	case 0:
		out := make([][]byte, h)
		for y := range nums {
			out[y] = append([]byte(nil), nums[y]...)
		}
		return out
	case 1:
		// 90 CCW: transpose then reverse each column.
		out := make([][]byte, w)
		for i := range out {
			out[i] = make([]byte, h)
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out[w-1-x][y] = nums[y][x]
			}
		}
		return out
	case 2:
		// 180: reverse both dimensions.
		out := make([][]byte, h)
		for y := range out {
			out[y] = make([]byte, w)
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out[h-1-y][w-1-x] = nums[y][x]
			}
		}
		return out
	case 3:
		// 270 CCW (90 CW): transpose then reverse each row.
		out := make([][]byte, w)
		for i := range out {
			out[i] = make([]byte, h)
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out[x][h-1-y] = nums[y][x]
			}
		}
		return out
	default:
		panic("anoto: unreachable rotation case")
	}
}

// rot90 applies a k-quarter-turn counterclockwise rotation to the bit matrix,
// remapping the two-bit dot-direction symbol at every cell so the encoded
// meaning survives the rotation (spec.md §4.9). A naive rotation of the raw
// bit planes would corrupt that meaning since each cell encodes a direction,
// not just a color.
func rot90(m Matrix, k int) Matrix {
	kNorm := ((k % 4) + 4) % 4

	nums := bitsToNum(m)
	rotated := rotateCodes(nums, kNorm)

	for y := range rotated {
		for x := range rotated[y] {
			code := rotated[y][x]
			dir := euclidModInt(int(numToDir[code])-kNorm, 4)
			rotated[y][x] = dirToNum[dir]
		}
	}

	return numToBits(rotated)
}
