package coord

import (
	"testing"

	"github.com/adamantworks/cellref/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddIndices(t *testing.T) {
	// Relative + relative stays relative.
	sum, err := AddIndices(types.NewIndex(types.Row, 3), types.NewIndex(types.Row, -5))
	require.NoError(t, err)
	assert.Equal(t, types.NewIndex(types.Row, -2), sum, "relative results have no floor")

	// Absolute + relative keeps the absolute flag, in either order.
	sum, err = AddIndices(types.AbsoluteIndex(types.Column, 2), types.NewIndex(types.Column, 3))
	require.NoError(t, err)
	assert.Equal(t, types.AbsoluteIndex(types.Column, 5), sum)

	sum, err = AddIndices(types.NewIndex(types.Column, 3), types.AbsoluteIndex(types.Column, 2))
	require.NoError(t, err)
	assert.Equal(t, types.AbsoluteIndex(types.Column, 5), sum)
}

func TestAddIndices_Errors(t *testing.T) {
	_, err := AddIndices(types.AbsoluteIndex(types.Row, 1), types.AbsoluteIndex(types.Row, 2))
	assert.ErrorIs(t, err, types.ErrDoubleAbsolute)

	_, err = AddIndices(types.NewIndex(types.Row, 1), types.NewIndex(types.Column, 2))
	assert.ErrorIs(t, err, types.ErrAxisMismatch)

	_, err = AddIndices(types.NewIndex(types.Row, 1), types.AbsentIndex(types.Row))
	assert.ErrorIs(t, err, types.ErrValidation)

	// An absolute result cannot fall to zero or below.
	_, err = AddIndices(types.AbsoluteIndex(types.Row, 1), types.NewIndex(types.Row, -2))
	assert.ErrorIs(t, err, types.ErrInvalidAbsoluteResult)

	_, err = AddIndices(types.AbsoluteIndex(types.Row, 1), types.NewIndex(types.Row, -1))
	assert.ErrorIs(t, err, types.ErrInvalidAbsoluteResult)

	sum, err := AddIndices(types.AbsoluteIndex(types.Row, 2), types.NewIndex(types.Row, -1))
	require.NoError(t, err)
	assert.Equal(t, types.AbsoluteIndex(types.Row, 1), sum)
}

func TestAdd(t *testing.T) {
	a1 := types.Coordinate{Row: types.NewIndex(types.Row, 1), Column: types.NewIndex(types.Column, 1)}
	shift := types.Coordinate{Row: types.NewIndex(types.Row, 2), Column: types.NewIndex(types.Column, 3)}

	sum, err := Add(a1, shift)
	require.NoError(t, err)
	assert.Equal(t, types.Coordinate{
		Row:    types.NewIndex(types.Row, 3),
		Column: types.NewIndex(types.Column, 4),
	}, sum)
}

func TestAdd_AbsoluteRules(t *testing.T) {
	absRow := types.Coordinate{Row: types.AbsoluteIndex(types.Row, 2), Column: types.NewIndex(types.Column, 1)}
	relCell := types.Coordinate{Row: types.NewIndex(types.Row, 3), Column: types.NewIndex(types.Column, 1)}

	// One absolute row: the sum keeps the absolute flag.
	sum, err := Add(absRow, relCell)
	require.NoError(t, err)
	assert.Equal(t, types.AbsoluteIndex(types.Row, 5), sum.Row)
	assert.True(t, sum.IsAbsolute())

	// Absolute on the same axis of both operands is forbidden.
	_, err = Add(absRow, absRow)
	assert.ErrorIs(t, err, types.ErrDoubleAbsolute)

	absCol := types.Coordinate{Row: types.NewIndex(types.Row, 1), Column: types.AbsoluteIndex(types.Column, 2)}
	_, err = Add(absCol, absCol)
	assert.ErrorIs(t, err, types.ErrDoubleAbsolute)

	// Absolute row + absolute column on opposite axes is fine.
	sum, err = Add(absRow, absCol)
	require.NoError(t, err)
	assert.Equal(t, types.AbsoluteIndex(types.Row, 3), sum.Row)
	assert.Equal(t, types.AbsoluteIndex(types.Column, 3), sum.Column)
}

func TestAdd_AbsentAxes(t *testing.T) {
	row5 := types.Coordinate{Row: types.AbsoluteIndex(types.Row, 5), Column: types.AbsentIndex(types.Column)}
	rowShift := types.Coordinate{Row: types.NewIndex(types.Row, 2), Column: types.AbsentIndex(types.Column)}

	// Whole-row plus whole-row keeps the column absent.
	sum, err := Add(row5, rowShift)
	require.NoError(t, err)
	assert.Equal(t, types.AbsoluteIndex(types.Row, 7), sum.Row)
	assert.False(t, sum.Column.HasValue)

	// An axis present on only one operand has nothing to add to.
	cell := types.Coordinate{Row: types.NewIndex(types.Row, 1), Column: types.NewIndex(types.Column, 1)}
	_, err = Add(row5, cell)
	assert.ErrorIs(t, err, types.ErrValidation)
}
