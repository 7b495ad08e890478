package types

// IndexDescriptor is the closed set of shapes accepted when normalizing
// one axis of a reference. Each variant has exactly one normalization
// rule; dispatch happens in a single type switch rather than by
// reflective inspection. An existing Index is itself a descriptor and is
// validated in place.
type IndexDescriptor interface {
	indexDescriptor()
}

// None marks an axis that was not supplied.
type None struct{}

// Text is single-axis or combined notation text, e.g. "A", "$3", "C[2]".
type Text string

// Number is a bare integer position. Every bare integer normalizes to an
// absolute Index regardless of sign.
type Number int

// Pair wraps an inner descriptor with an optional absolute override, the
// descriptor form of a ("A", "$") style pair. A nil Absolute means no
// override was given.
type Pair struct {
	Inner    IndexDescriptor
	Absolute AbsoluteSpec
}

func (None) indexDescriptor()   {}
func (Text) indexDescriptor()   {}
func (Number) indexDescriptor() {}
func (Index) indexDescriptor()  {}
func (Pair) indexDescriptor()   {}

// AbsoluteSpec is the closed set of shapes accepted as a Pair's override.
type AbsoluteSpec interface {
	absoluteSpec()
}

// AbsoluteFlag is a boolean override.
type AbsoluteFlag bool

// AbsoluteAlias is a textual override: "$" and "absolute" mean absolute,
// the empty string means relative, anything else fails validation.
// Matching is case-insensitive.
type AbsoluteAlias string

func (AbsoluteFlag) absoluteSpec()  {}
func (AbsoluteAlias) absoluteSpec() {}
