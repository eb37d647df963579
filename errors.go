package anoto

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the failing stage of a construct/decode call.
// Callers match against these with errors.Is; DecodeError additionally
// carries the index at which the failure occurred.
var (
	// ErrConstruction is returned by New when the supplied configuration is
	// invalid (mismatched prime factors, non-coprime SNS lengths, sequences
	// shorter than their required order, and so on).
	ErrConstruction = errors.New("anoto: invalid codec configuration")

	// ErrShape is returned when a decode operation is given a window smaller
	// than the MNS order on some axis, or whose channel count isn't 2.
	ErrShape = errors.New("anoto: window shape too small")

	// ErrMNSLookupMiss is returned when an observed column/row slice does not
	// occur as a cyclic substring of the Main Number Sequence.
	ErrMNSLookupMiss = errors.New("anoto: slice not found in main number sequence")

	// ErrSNSLookupMiss is returned when a digit column does not occur as a
	// cyclic substring of the corresponding secondary number sequence.
	ErrSNSLookupMiss = errors.New("anoto: digit column not found in secondary number sequence")

	// ErrOutOfRangeDelta is returned when an inter-column or inter-row MNS
	// offset difference falls outside the configured delta range.
	ErrOutOfRangeDelta = errors.New("anoto: delta outside configured range")

	// ErrRotationUndetermined is returned when no candidate rotation passes
	// the half-window validity threshold.
	ErrRotationUndetermined = errors.New("anoto: could not determine window rotation")
)

// DecodeError wraps one of the sentinel errors above with the stage name and
// offending index so callers get an actionable message without losing the
// ability to match on the sentinel via errors.Is.
type DecodeError struct {
	Stage string // human-readable name of the failing stage, e.g. "decode_position"
	Index int    // offending column/row/digit index, -1 if not applicable
	Err   error  // one of the sentinel errors above
}

func (e *DecodeError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("anoto: %s: %s (at index %d)", e.Stage, e.Err, e.Index)
	}
	return fmt.Sprintf("anoto: %s: %s", e.Stage, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// newDecodeError builds a *DecodeError for the given stage/sentinel pair. Use
// index -1 when the failure isn't tied to a single position.
func newDecodeError(stage string, index int, err error) *DecodeError {
	return &DecodeError{Stage: stage, Index: index, Err: err}
}
