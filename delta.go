package anoto

// deltaAt returns delta(t) = deltaMin + reconstruct(d(t)) for the roll/delta
// engine described in spec.md §4.4, where d(t) is the digit tuple read at
// index t from each SNS (cyclically). The scratch slice avoids an allocation
// per call; it must have length len(c.sns).
func (c *Codec) deltaAt(t int, scratch []int64) int64 {
	for i, sns := range c.sns {
		scratch[i] = int64(sns.at(t))
	}
	return c.deltaMin + c.basis.Reconstruct(scratch)
}

// rollAt computes roll(t) for one axis given the section's initial roll
// roll(0). It walks the recurrence roll(i) = (roll(i-1) + delta(i-1)) mod
// mnsLength from 0 up to t, which is how the encoder derives the roll used
// at every column (x-axis) or row (y-axis). O(t) per call; callers that need
// every roll in [0, n) should use rollSequence instead to avoid the
// quadratic cost of calling rollAt in a loop.
func (c *Codec) rollAt(t, initial int) int {
	scratch := make([]int64, len(c.sns))
	roll := initial
	for i := 0; i < t; i++ {
		roll = euclidModInt(roll+int(c.deltaAt(i, scratch)), c.mnsLength)
	}
	return roll
}

// rollSequence fills dst[i] with roll(i) for i in [0, len(dst)), starting
// from the given initial roll. This is the incremental form of rollAt,
// computing all n rolls in O(n) total instead of O(n^2).
func (c *Codec) rollSequence(initial int, dst []int) {
	scratch := make([]int64, len(c.sns))
	roll := initial
	for i := range dst {
		dst[i] = roll
		roll = euclidModInt(roll+int(c.deltaAt(i, scratch)), c.mnsLength)
	}
}

// accumulatedDelta returns sum(delta(t) for t in [0, n)) mod mnsLength, the
// "accumulated roll since column 0 if the section offset were 0" term used
// by DecodeSection (spec.md §4.7).
func (c *Codec) accumulatedDelta(n int) int {
	scratch := make([]int64, len(c.sns))
	var sum int64
	for i := 0; i < n; i++ {
		sum += c.deltaAt(i, scratch)
	}
	return euclidModInt(int(sum), c.mnsLength)
}
