package coord

import (
	"fmt"

	"github.com/adamantworks/cellref/pkg/types"
)

// AddIndices adds two indexes on the same axis. At most one operand may
// be absolute; the absolute one, if any, contributes its flag to the
// result. An absolute result must stay positive, since an absolute
// reference cannot name a non-positive position. Relative results have
// no floor.
func AddIndices(a, b types.Index) (types.Index, error) {
	if a.Absolute && b.Absolute {
		return types.Index{}, fmt.Errorf("%w: %s + %s", types.ErrDoubleAbsolute, a, b)
	}
	if a.Axis != b.Axis {
		return types.Index{}, fmt.Errorf("%w: %s + %s", types.ErrAxisMismatch, a, b)
	}
	if !a.HasValue || !b.HasValue {
		return types.Index{}, fmt.Errorf("%w: cannot add an index without a value: %s + %s", types.ErrValidation, a, b)
	}

	// Order the pair so any absolute operand is first; the result takes
	// the first operand's flag.
	if b.Absolute {
		a, b = b, a
	}
	result := types.Index{Axis: a.Axis, Value: a.Value + b.Value, HasValue: true, Absolute: a.Absolute}
	if result.Absolute && result.Value <= 0 {
		return types.Index{}, fmt.Errorf("%w: %s", types.ErrInvalidAbsoluteResult, result)
	}
	return result, nil
}

// Add combines two Coordinates axis by axis. Two references absolute on
// the same axis cannot be added. An axis absent on both sides stays
// absent; an axis present on only one side has nothing to add to and
// fails validation.
func Add(a, b types.Coordinate) (types.Coordinate, error) {
	if (a.Row.Absolute && b.Row.Absolute) || (a.Column.Absolute && b.Column.Absolute) {
		return types.Coordinate{}, fmt.Errorf("%w: %s + %s", types.ErrDoubleAbsolute, a, b)
	}

	row, err := addAxis(a.Row, b.Row, types.Row)
	if err != nil {
		return types.Coordinate{}, err
	}
	col, err := addAxis(a.Column, b.Column, types.Column)
	if err != nil {
		return types.Coordinate{}, err
	}
	return types.Coordinate{Row: row, Column: col}, nil
}

func addAxis(x, y types.Index, axis types.Axis) (types.Index, error) {
	switch {
	case !x.HasValue && !y.HasValue:
		return types.AbsentIndex(axis), nil
	case !x.HasValue || !y.HasValue:
		return types.Index{}, fmt.Errorf("%w: %s axis is set on only one operand", types.ErrValidation, axis)
	default:
		return AddIndices(x, y)
	}
}
