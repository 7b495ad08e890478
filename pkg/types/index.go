package types

import "fmt"

// Index is one axis of a spreadsheet reference: an axis tag, a numeric
// position or offset, and an absolute/relative flag.
//
// Index is an immutable value. The With* methods return modified copies;
// two Index values compare equal with == exactly when all fields match.
// An Index without a value (HasValue == false) exists only transiently
// during normalization, or inside a Coordinate to mark an axis that was
// never supplied.
type Index struct {
	Axis     Axis
	Value    int
	HasValue bool
	Absolute bool
}

// NewIndex returns a relative Index carrying a value.
func NewIndex(axis Axis, value int) Index {
	return Index{Axis: axis, Value: value, HasValue: true}
}

// AbsoluteIndex returns an absolute Index carrying a value.
func AbsoluteIndex(axis Axis, value int) Index {
	return Index{Axis: axis, Value: value, HasValue: true, Absolute: true}
}

// AbsentIndex returns an Index with no value, tagged with the given axis.
func AbsentIndex(axis Axis) Index {
	return Index{Axis: axis}
}

// WithAxis returns a copy of ix tagged with the given axis.
func (ix Index) WithAxis(axis Axis) Index {
	ix.Axis = axis
	return ix
}

// WithAbsolute returns a copy of ix with the absolute flag replaced.
func (ix Index) WithAbsolute(absolute bool) Index {
	ix.Absolute = absolute
	return ix
}

// Validate checks the field invariants of an externally supplied Index:
// the axis must be one of the three recognized tags and an Index without
// a value must not carry a stale one.
func (ix Index) Validate() error {
	if !ix.Axis.Valid() {
		return fmt.Errorf("%w: index axis must be row, column, or unknown: %v", ErrValidation, int(ix.Axis))
	}
	if !ix.HasValue && ix.Value != 0 {
		return fmt.Errorf("%w: index without a value carries %d", ErrValidation, ix.Value)
	}
	return nil
}

// String renders the Index for diagnostics, e.g. "row 3", "$column 2",
// or "row ?" when no value is present.
func (ix Index) String() string {
	marker := ""
	if ix.Absolute {
		marker = "$"
	}
	if !ix.HasValue {
		return fmt.Sprintf("%s%s ?", marker, ix.Axis)
	}
	return fmt.Sprintf("%s%s %d", marker, ix.Axis, ix.Value)
}
