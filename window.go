package anoto

// Window wraps an observed bit matrix together with the codec that decodes
// it, caching the result of Position, Section, and Rotation so repeated
// calls against the same window don't repeat MNS/SNS lookups. This mirrors
// the teacher library's Reader: state is computed once, lazily, on first
// access. A Window is NOT safe for concurrent use — create one Window per
// goroutine if multiple goroutines observe the same matrix.
type Window struct {
	codec *Codec
	bits  Matrix

	posDone    bool
	posX, posY int
	posErr     error

	secDone    bool
	secU, secV int
	secErr     error

	rotDone bool
	rot     int
	rotErr  error
}

// NewWindow wraps bits for cached decoding against codec. It performs no
// decoding itself; Position/Section/Rotation compute lazily on first call.
func NewWindow(codec *Codec, bits Matrix) *Window {
	return &Window{codec: codec, bits: bits}
}

// Position returns the (x, y) position within the window's section,
// computing and caching it on first call.
func (w *Window) Position() (x, y int, err error) {
	if !w.posDone {
		w.posX, w.posY, w.posErr = w.codec.DecodePosition(w.bits)
		w.posDone = true
	}
	return w.posX, w.posY, w.posErr
}

// Section returns the (u, v) section identifier, deriving the position
// first if it hasn't been computed yet. The result is cached.
func (w *Window) Section() (u, v int, err error) {
	if w.secDone {
		return w.secU, w.secV, w.secErr
	}
	x, y, err := w.Position()
	if err != nil {
		w.secDone = true
		w.secErr = err
		return 0, 0, err
	}
	w.secU, w.secV, w.secErr = w.codec.DecodeSection(w.bits, x, y)
	w.secDone = true
	return w.secU, w.secV, w.secErr
}

// Rotation returns the window's orientation in {0,1,2,3}, computing and
// caching it on first call. It is independent of Position/Section.
func (w *Window) Rotation() (int, error) {
	if !w.rotDone {
		w.rot, w.rotErr = w.codec.DecodeRotation(w.bits)
		w.rotDone = true
	}
	return w.rot, w.rotErr
}
