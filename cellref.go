// Package cellref parses, formats, and combines spreadsheet cell, row,
// and column references.
//
// Cellref is a Go port of the AL_Excel coordinate module. It understands
// the two standard textual notations — letter-digit ("A1", "$B$2") and
// relative-offset ("R1C1", "R[-2]C[3]") — and normalizes loosely-typed
// descriptors (strings, integers, pairs, partially-built indexes) into
// immutable Coordinate values with well-defined absolute/relative
// addition rules.
//
// # Basic Usage
//
// Parse a reference and read it back:
//
//	c, err := cellref.Parse("$B$2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	col, _ := c.ColumnValue() // 2
//	row, _ := c.RowValue()    // 2
//
// # Building from parts
//
// Row and column can be supplied independently, in any accepted shape:
//
//	c, err := cellref.ParseParts("A", 1)        // cell A1
//	c, err = cellref.ParseParts(nil, 5)         // whole column 5
//	c, err = cellref.ParseParts([]any{"A", "$"}, 2) // $A2
//
// # Arithmetic
//
// References shift by addition; two absolute references on the same axis
// cannot be combined:
//
//	sum, err := cellref.Add(c, "R[1]C[2]")
package cellref

import (
	"fmt"

	"github.com/adamantworks/cellref/pkg/coord"
	"github.com/adamantworks/cellref/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/adamantworks/cellref" without subpackages.
type (
	// Index is one axis of a reference: axis tag, value, absolute flag.
	Index = types.Index

	// Coordinate is a normalized reference: a row and a column Index.
	Coordinate = types.Coordinate

	// Axis identifies the row or column dimension.
	Axis = types.Axis
)

// Re-export the axis tags.
const (
	Row         = types.Row
	Column      = types.Column
	AxisUnknown = types.AxisUnknown
)

// Re-export the error taxonomy for errors.Is checks.
var (
	ErrPatternMismatch       = types.ErrPatternMismatch
	ErrMalformedBracket      = types.ErrMalformedBracket
	ErrValidation            = types.ErrValidation
	ErrUnsupportedDescriptor = types.ErrUnsupportedDescriptor
	ErrDuplicateAxis         = types.ErrDuplicateAxis
	ErrAxisMismatch          = types.ErrAxisMismatch
	ErrDoubleAbsolute        = types.ErrDoubleAbsolute
	ErrInvalidAbsoluteResult = types.ErrInvalidAbsoluteResult
)

// Parse converts a loosely-typed coordinate descriptor into a
// Coordinate. Accepted shapes:
//
//   - combined reference text ("A1", "$B$2", "R[1]C[-2]")
//   - a 2-element []any or [2]any holding a row and a column descriptor
//   - an existing Coordinate (returned as-is) or *Coordinate
//   - an Index or axis descriptor, placed on its tagged axis with the
//     other axis absent
//
// Anything else is ErrUnsupportedDescriptor.
func Parse(v any) (Coordinate, error) {
	switch x := v.(type) {
	case nil:
		// Normalizes to two absent axes, which construction rejects.
		return ParseParts(nil, nil)
	case Coordinate:
		return x, nil
	case *Coordinate:
		if x == nil {
			return Coordinate{}, fmt.Errorf("%w: nil coordinate", ErrUnsupportedDescriptor)
		}
		return *x, nil
	case string:
		return coord.Parse(x)
	case types.Text:
		return coord.Parse(string(x))
	case []any:
		if len(x) != 2 {
			return Coordinate{}, fmt.Errorf("%w: coordinate sequence must have 2 elements, got %d", ErrUnsupportedDescriptor, len(x))
		}
		return ParseParts(x[0], x[1])
	case [2]any:
		return ParseParts(x[0], x[1])
	case int, types.Number, Index, types.Pair:
		return ParseParts(x, nil)
	default:
		return Coordinate{}, fmt.Errorf("%w: %T", ErrUnsupportedDescriptor, v)
	}
}

// ParseParts builds a Coordinate from independent row and column
// descriptors, normalizing and disambiguating each part. A nil part
// marks that axis as not supplied.
func ParseParts(row, col any) (Coordinate, error) {
	rd, err := AsDescriptor(row)
	if err != nil {
		return Coordinate{}, err
	}
	cd, err := AsDescriptor(col)
	if err != nil {
		return Coordinate{}, err
	}
	return coord.New(rd, cd)
}

// ParseIndexValue normalizes a single axis descriptor into an Index.
func ParseIndexValue(v any) (Index, error) {
	d, err := AsDescriptor(v)
	if err != nil {
		return Index{}, err
	}
	return coord.ParseIndex(d)
}

// Format renders a Coordinate in letter-digit notation. With absolute
// true each axis's absolute flag is emitted as "$"; with absolute false
// the output is fully relative.
func Format(c Coordinate, absolute bool) (string, error) {
	return c.A1(absolute)
}

// Add combines a Coordinate with another coordinate or any descriptor
// Parse accepts. If the right-hand side fails to normalize, Add reports
// that failure.
func Add(c Coordinate, other any) (Coordinate, error) {
	rhs, err := Parse(other)
	if err != nil {
		return Coordinate{}, err
	}
	return coord.Add(c, rhs)
}

// AsDescriptor maps a dynamic value onto the closed IndexDescriptor
// variants: nil, string, int, Index, Pair, or a 1- or 2-element []any of
// (inner descriptor, absolute override). The override accepts a bool,
// 0/1, or the aliases "$"/"absolute"/"" — the single loose front door of
// the package; everything past it is statically typed.
func AsDescriptor(v any) (types.IndexDescriptor, error) {
	switch x := v.(type) {
	case nil:
		return types.None{}, nil
	case types.IndexDescriptor:
		return x, nil
	case string:
		return types.Text(x), nil
	case int:
		return types.Number(x), nil
	case []any:
		if len(x) < 1 || len(x) > 2 {
			return nil, fmt.Errorf("%w: coordinate part length should be 1 or 2 (index, [absolute]): got %d", types.ErrValidation, len(x))
		}
		inner, err := AsDescriptor(x[0])
		if err != nil {
			return nil, err
		}
		if len(x) == 1 {
			return types.Pair{Inner: inner}, nil
		}
		spec, err := asAbsoluteSpec(x[1])
		if err != nil {
			return nil, err
		}
		return types.Pair{Inner: inner, Absolute: spec}, nil
	default:
		return nil, fmt.Errorf("%w: %T", types.ErrUnsupportedDescriptor, v)
	}
}

// asAbsoluteSpec maps a dynamic override value onto an AbsoluteSpec.
func asAbsoluteSpec(v any) (types.AbsoluteSpec, error) {
	switch x := v.(type) {
	case bool:
		return types.AbsoluteFlag(x), nil
	case string:
		return types.AbsoluteAlias(x), nil
	case int:
		if x != 0 && x != 1 {
			return nil, fmt.Errorf("%w: absolute override must be a bool, 0/1, or an accepted alias: %d", types.ErrValidation, x)
		}
		return types.AbsoluteFlag(x == 1), nil
	case types.AbsoluteSpec:
		return x, nil
	default:
		return nil, fmt.Errorf("%w: absolute override must be a bool, 0/1, or an accepted alias: %T", types.ErrValidation, v)
	}
}
