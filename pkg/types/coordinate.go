package types

import (
	"fmt"
	"strconv"
)

// Coordinate is a normalized spreadsheet reference: a row Index and a
// column Index. With both axes present it names a single cell; with only
// one it names a whole row or whole column. A constructed Coordinate
// never holds an AxisUnknown-tagged Index, and at least one axis always
// carries a value.
//
// Coordinate is an immutable value with structural equality: two
// Coordinates are equal with == exactly when both Index pairs are
// field-wise equal.
type Coordinate struct {
	Row    Index
	Column Index
}

// RowValue returns the row position and whether the row axis was set.
func (c Coordinate) RowValue() (int, bool) {
	return c.Row.Value, c.Row.HasValue
}

// ColumnValue returns the column position and whether the column axis was set.
func (c Coordinate) ColumnValue() (int, bool) {
	return c.Column.Value, c.Column.HasValue
}

// IsAbsolute reports whether either axis is absolute.
func (c Coordinate) IsAbsolute() bool {
	return c.Row.Absolute || c.Column.Absolute
}

// IsCell reports whether both axes carry a value.
func (c Coordinate) IsCell() bool {
	return c.Row.HasValue && c.Column.HasValue
}

// IsRowOnly reports whether only the row axis carries a value.
func (c Coordinate) IsRowOnly() bool {
	return c.Row.HasValue && !c.Column.HasValue
}

// IsColumnOnly reports whether only the column axis carries a value.
func (c Coordinate) IsColumnOnly() bool {
	return c.Column.HasValue && !c.Row.HasValue
}

// A1 renders the Coordinate in letter-digit notation, e.g. "A1" or
// "$B$2". With absolute true each axis's absolute flag is honored as a
// leading "$"; with absolute false the output is fully relative. A
// whole-row or whole-column Coordinate renders just its present axis
// ("$3", "AA").
func (c Coordinate) A1(absolute bool) (string, error) {
	if !c.Row.HasValue && !c.Column.HasValue {
		return "", fmt.Errorf("%w: coordinate has no axis values", ErrValidation)
	}
	var s string
	if c.Column.HasValue {
		letters, err := ColumnLetters(c.Column.Value)
		if err != nil {
			return "", err
		}
		if absolute && c.Column.Absolute {
			s += "$"
		}
		s += letters
	}
	if c.Row.HasValue {
		if absolute && c.Row.Absolute {
			s += "$"
		}
		s += strconv.Itoa(c.Row.Value)
	}
	return s, nil
}

// RC renders the Coordinate in relative-offset notation, e.g. "R1C1" or
// "R[2]C[-3]". Brackets mark an axis whose absolute flag is set, matching
// how the relative-offset grammar reads them back. A whole-row or
// whole-column Coordinate renders just its present token ("R5", "C[2]").
func (c Coordinate) RC() (string, error) {
	if !c.Row.HasValue && !c.Column.HasValue {
		return "", fmt.Errorf("%w: coordinate has no axis values", ErrValidation)
	}
	var s string
	if c.Row.HasValue {
		s += "R" + rcToken(c.Row)
	}
	if c.Column.HasValue {
		s += "C" + rcToken(c.Column)
	}
	return s, nil
}

func rcToken(ix Index) string {
	if ix.Absolute {
		return "[" + strconv.Itoa(ix.Value) + "]"
	}
	return strconv.Itoa(ix.Value)
}

// String renders the Coordinate for diagnostics.
func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate(%s, %s)", c.Row, c.Column)
}
