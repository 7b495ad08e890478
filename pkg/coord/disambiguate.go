package coord

import (
	"fmt"

	"github.com/adamantworks/cellref/pkg/types"
)

// Disambiguate resolves the axis tags of two normalized indexes destined
// for the (row, column) slots of a Coordinate.
//
// When one index has no value, the present one is placed on its tagged
// axis (or tagged by slot position when untagged) and the absent side is
// tagged for the remaining axis. When both are untagged they are tagged
// positionally. Two indexes explicitly tagged with the same axis resolve
// by absolute-flag asymmetry (the relative one moves to the other axis)
// or, failing that, by keeping the second on the column side; two
// absolute duplicates are irreducibly ambiguous and fail with
// ErrDuplicateAxis.
func Disambiguate(first, second types.Index) (row, col types.Index, err error) {
	idx := [2]types.Index{first, second}
	slots := [2]types.Axis{types.Row, types.Column}

	if !idx[0].HasValue && !idx[1].HasValue {
		return types.Index{}, types.Index{}, fmt.Errorf("%w: no axis values provided", types.ErrValidation)
	}

	// Exactly one index carries a value: position or tag decides where it
	// lands, and the absent side marks the other axis as never set.
	if !idx[0].HasValue || !idx[1].HasValue {
		good := 0
		if !idx[0].HasValue {
			good = 1
		}
		if idx[good].Axis == types.AxisUnknown {
			idx[good] = idx[good].WithAxis(slots[good])
		} else if idx[good].Axis != slots[good] {
			idx[0], idx[1] = idx[1], idx[0]
		}
		row, col = idx[0].WithAxis(types.Row), idx[1].WithAxis(types.Column)
		return row, col, nil
	}

	// Both untagged: assign by position.
	if idx[0].Axis == types.AxisUnknown && idx[1].Axis == types.AxisUnknown {
		return idx[0].WithAxis(types.Row), idx[1].WithAxis(types.Column), nil
	}

	// Same explicit tag on both: only user-supplied duplicates get here,
	// e.g. ("A","A") or ("1","1").
	if idx[0].Axis == idx[1].Axis {
		switch {
		case idx[0].Absolute && idx[1].Absolute:
			return types.Index{}, types.Index{}, fmt.Errorf("%w: two absolute %ss", types.ErrDuplicateAxis, idx[0].Axis)
		case idx[0].Absolute != idx[1].Absolute:
			// One absolute: the relative one is assumed to be the other axis.
			if idx[0].Absolute {
				idx[1] = idx[1].WithAxis(idx[1].Axis.Other())
			} else {
				idx[0] = idx[0].WithAxis(idx[0].Axis.Other())
			}
		case idx[0].Axis == types.Row:
			idx[1] = idx[1].WithAxis(types.Column)
		default:
			idx[0] = idx[0].WithAxis(types.Row)
		}
	}

	// Tags are now distinct or mixed with one untagged: partition and fill
	// the missing axis from the untagged bucket.
	var rows, cols, unknown []types.Index
	for _, ix := range idx {
		switch ix.Axis {
		case types.Row:
			rows = append(rows, ix)
		case types.Column:
			cols = append(cols, ix)
		default:
			unknown = append(unknown, ix)
		}
	}

	switch {
	case len(rows) > 0 && len(cols) == 0:
		return rows[0], unknown[0].WithAxis(types.Column), nil
	case len(cols) > 0 && len(rows) == 0:
		return unknown[0].WithAxis(types.Row), cols[0], nil
	default:
		return rows[0], cols[0], nil
	}
}
