package anoto

// cyclicSequence holds an immutable small-alphabet sequence together with its
// cyclic extension (the sequence with its first order-1 elements appended),
// so that any cyclically-wrapping substring becomes an ordinary contiguous
// substring of the extension. This lets locate use a plain linear scan
// instead of wrap-aware comparisons.
type cyclicSequence struct {
	data    []int8 // the sequence itself, length == length()
	cyclic  []int8 // data ++ data[:order-1]
	order   int    // substring length over which uniqueness is guaranteed
}

// newCyclicSequence builds the cyclic extension for data at the given order.
// order must be >= 1 and <= len(data); callers (Codec construction) validate
// this as part of the overall §6 construction checks.
func newCyclicSequence(data []int8, order int) cyclicSequence {
	owned := make([]int8, len(data))
	copy(owned, data)

	cyclic := make([]int8, len(owned)+order-1)
	copy(cyclic, owned)
	copy(cyclic[len(owned):], owned[:order-1])

	return cyclicSequence{data: owned, cyclic: cyclic, order: order}
}

// length returns the (non-extended) sequence length, i.e. the modulus a
// located offset is reduced into.
func (s cyclicSequence) length() int {
	return len(s.data)
}

// locate scans the cyclic extension for needle and returns its starting
// offset in [0, length()). It reports ok=false if needle does not occur;
// the cyclic extension guarantees at most one occurrence for a well-formed
// (quasi-de-Bruijn) sequence, so the first match is returned without
// scanning for a second.
func (s cyclicSequence) locate(needle []int8) (offset int, ok bool) {
	n := len(needle)
	limit := len(s.cyclic) - n
	for i := 0; i <= limit; i++ {
		if equalInt8(s.cyclic[i:i+n], needle) {
			return i, true
		}
	}
	return 0, false
}

// at returns the element at the given cyclic index, reading off the
// underlying (non-extended) sequence.
func (s cyclicSequence) at(i int) int8 {
	return s.data[euclidModInt(i, len(s.data))]
}

func equalInt8(a, b []int8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// euclidModInt is the int-width counterpart of euclidMod, used for indexing
// sequences by a signed offset.
func euclidModInt(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}
