package coord

import (
	"github.com/adamantworks/cellref/pkg/grammar"
	"github.com/adamantworks/cellref/pkg/types"
)

// Parse parses combined reference text like "A1", "$B$2" or "R[1]C[-2]"
// into a Coordinate using the built-in grammar.
func Parse(text string) (types.Coordinate, error) {
	return ParseWith(grammar.Default(), text)
}

// ParseWith parses combined reference text with a custom grammar. The
// axis indexes come back pre-tagged by the cell pattern, so no
// disambiguation is needed on this path.
func ParseWith(g *grammar.Grammar, text string) (types.Coordinate, error) {
	row, col, err := g.ParseCell(text)
	if err != nil {
		return types.Coordinate{}, err
	}
	return types.Coordinate{Row: row, Column: col}, nil
}

// New builds a Coordinate from two independent axis descriptors using
// the built-in grammar.
func New(first, second types.IndexDescriptor) (types.Coordinate, error) {
	return NewWith(grammar.Default(), first, second)
}

// NewWith builds a Coordinate from two axis descriptors: each descriptor
// is normalized into an Index, then the pair is disambiguated onto the
// (row, column) axes.
func NewWith(g *grammar.Grammar, first, second types.IndexDescriptor) (types.Coordinate, error) {
	a, err := ParseIndexWith(g, first)
	if err != nil {
		return types.Coordinate{}, err
	}
	b, err := ParseIndexWith(g, second)
	if err != nil {
		return types.Coordinate{}, err
	}
	row, col, err := Disambiguate(a, b)
	if err != nil {
		return types.Coordinate{}, err
	}
	return types.Coordinate{Row: row, Column: col}, nil
}
