package anoto

// Default prime factors and delta range shared by both default
// configurations: pfactors (3,3,2,3), delta range [5,58]. Their product
// (3*3*2*3 = 54) equals 58-5+1, as §6 construction requires.
var (
	defaultPFactors         = []int64{3, 3, 2, 3}
	defaultDeltaMin   int64 = 5
	defaultDeltaMax   int64 = 58
)

// NewDefault builds the well-formed "6x6 codec": MNS of length 63 (order 6),
// secondary sequences A1 (236), A2 (233), A3 (31), A4Alt (241), prime
// factors (3,3,2,3), delta range (5,58). This is the configuration
// recommended by spec.md §9: A4Alt properly maintains the quasi de Bruijn
// property that the original A4 sequence lacks, so SNS lookups against it
// never return a spurious match.
func NewDefault() (*Codec, error) {
	return New(MNS, 6, [][]int8{A1, A2, A3, A4Alt}, defaultPFactors, defaultDeltaMin, defaultDeltaMax)
}

// NewDefaultLegacyA4 builds the same 6x6 configuration as NewDefault but
// using the original A4 sequence instead of A4Alt. A4 is not fully quasi de
// Bruijn (spec.md §9): it contains at least one repeated order-5 substring,
// so SNS lookups against it may return a spurious first match rather than
// the unique intended one. Use this constructor only when decoding pattern
// data that was generated against the original A4 sequence; prefer
// NewDefault otherwise.
func NewDefaultLegacyA4() (*Codec, error) {
	return New(MNS, 6, [][]int8{A1, A2, A3, A4}, defaultPFactors, defaultDeltaMin, defaultDeltaMax)
}
