package types

import "errors"

// Error taxonomy for reference parsing and arithmetic. Every entry point
// wraps one of these sentinels with fmt.Errorf("%w: ...") so callers can
// classify failures with errors.Is.
var (
	// ErrPatternMismatch: text matches neither the letter-digit nor the
	// relative-offset grammar for the requested axis.
	ErrPatternMismatch = errors.New("text matches no reference grammar")

	// ErrMalformedBracket: relative-offset text has an opening bracket
	// without its closing bracket, or vice versa.
	ErrMalformedBracket = errors.New("unbalanced bracket in reference")

	// ErrValidation: a structurally present Index or descriptor carries an
	// out-of-range field (bad axis tag, contradictory absolute override,
	// unrecognized absolute alias, absent value where one is required).
	ErrValidation = errors.New("invalid reference descriptor")

	// ErrUnsupportedDescriptor: the descriptor is not one of the accepted
	// shapes (string, integer, pair, Index, Coordinate).
	ErrUnsupportedDescriptor = errors.New("unsupported descriptor")

	// ErrDuplicateAxis: both components of a pair resolve to the same axis
	// with no asymmetry to break the tie.
	ErrDuplicateAxis = errors.New("duplicate axis")

	// ErrAxisMismatch: arithmetic attempted between indexes on different axes.
	ErrAxisMismatch = errors.New("axis mismatch")

	// ErrDoubleAbsolute: arithmetic attempted between two absolute values
	// on the same axis.
	ErrDoubleAbsolute = errors.New("cannot add two absolute references")

	// ErrInvalidAbsoluteResult: an absolute arithmetic result fell to zero
	// or below.
	ErrInvalidAbsoluteResult = errors.New("absolute reference reduced to a non-positive position")
)
