package types

import "fmt"

// Axis identifies which dimension of a spreadsheet reference an Index
// describes. The zero value is AxisUnknown, meaning the axis has not been
// determined yet; disambiguation resolves it before a Coordinate is built.
type Axis int

const (
	AxisUnknown Axis = iota
	Row
	Column
)

// String returns the lowercase axis name.
func (a Axis) String() string {
	switch a {
	case Row:
		return "row"
	case Column:
		return "column"
	case AxisUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Valid reports whether a is one of the three recognized tags.
func (a Axis) Valid() bool {
	return a == AxisUnknown || a == Row || a == Column
}

// Other returns the opposite axis. AxisUnknown has no opposite and is
// returned unchanged.
func (a Axis) Other() Axis {
	switch a {
	case Row:
		return Column
	case Column:
		return Row
	default:
		return AxisUnknown
	}
}
