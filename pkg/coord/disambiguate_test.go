package coord

import (
	"testing"

	"github.com/adamantworks/cellref/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisambiguate_OnePresent(t *testing.T) {
	// Untagged single value lands on the axis of its slot.
	row, col, err := Disambiguate(types.Index{Value: 5, HasValue: true, Absolute: true}, types.Index{})
	require.NoError(t, err)
	assert.Equal(t, types.AbsoluteIndex(types.Row, 5), row)
	assert.Equal(t, types.AbsentIndex(types.Column), col)

	row, col, err = Disambiguate(types.Index{}, types.Index{Value: 5, HasValue: true, Absolute: true})
	require.NoError(t, err)
	assert.Equal(t, types.AbsentIndex(types.Row), row)
	assert.Equal(t, types.AbsoluteIndex(types.Column, 5), col)
}

func TestDisambiguate_OnePresentTagged(t *testing.T) {
	// A tagged single value overrides its slot position.
	row, col, err := Disambiguate(types.NewIndex(types.Column, 3), types.Index{})
	require.NoError(t, err)
	assert.Equal(t, types.AbsentIndex(types.Row), row)
	assert.Equal(t, types.NewIndex(types.Column, 3), col)

	row, col, err = Disambiguate(types.Index{}, types.NewIndex(types.Row, 3))
	require.NoError(t, err)
	assert.Equal(t, types.NewIndex(types.Row, 3), row)
	assert.Equal(t, types.AbsentIndex(types.Column), col)
}

func TestDisambiguate_BothAbsent(t *testing.T) {
	_, _, err := Disambiguate(types.Index{}, types.Index{})
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestDisambiguate_BothUntagged(t *testing.T) {
	row, col, err := Disambiguate(
		types.Index{Value: 2, HasValue: true, Absolute: true},
		types.Index{Value: 7, HasValue: true, Absolute: true},
	)
	require.NoError(t, err)
	assert.Equal(t, types.AbsoluteIndex(types.Row, 2), row)
	assert.Equal(t, types.AbsoluteIndex(types.Column, 7), col)
}

func TestDisambiguate_MixedTagged(t *testing.T) {
	// Explicit tags win over position; the leftover untagged index fills
	// the missing axis.
	row, col, err := Disambiguate(types.NewIndex(types.Column, 4), types.NewIndex(types.Row, 9))
	require.NoError(t, err)
	assert.Equal(t, types.NewIndex(types.Row, 9), row)
	assert.Equal(t, types.NewIndex(types.Column, 4), col)

	row, col, err = Disambiguate(types.Index{Value: 8, HasValue: true}, types.NewIndex(types.Row, 1))
	require.NoError(t, err)
	assert.Equal(t, types.NewIndex(types.Row, 1), row)
	assert.Equal(t, types.NewIndex(types.Column, 8), col)
}

func TestDisambiguate_DuplicateRows(t *testing.T) {
	// Both relative: the second is assumed to be the column.
	row, col, err := Disambiguate(types.NewIndex(types.Row, 1), types.NewIndex(types.Row, 2))
	require.NoError(t, err)
	assert.Equal(t, types.NewIndex(types.Row, 1), row)
	assert.Equal(t, types.NewIndex(types.Column, 2), col)

	// One absolute: the relative one moves to the column axis.
	row, col, err = Disambiguate(types.AbsoluteIndex(types.Row, 1), types.NewIndex(types.Row, 2))
	require.NoError(t, err)
	assert.Equal(t, types.AbsoluteIndex(types.Row, 1), row)
	assert.Equal(t, types.NewIndex(types.Column, 2), col)

	row, col, err = Disambiguate(types.NewIndex(types.Row, 1), types.AbsoluteIndex(types.Row, 2))
	require.NoError(t, err)
	assert.Equal(t, types.AbsoluteIndex(types.Row, 2), row)
	assert.Equal(t, types.NewIndex(types.Column, 1), col)

	// Both absolute: irreducibly ambiguous.
	_, _, err = Disambiguate(types.AbsoluteIndex(types.Row, 1), types.AbsoluteIndex(types.Row, 2))
	assert.ErrorIs(t, err, types.ErrDuplicateAxis)
}

func TestDisambiguate_DuplicateColumns(t *testing.T) {
	// Mirror of the duplicate-row rule: the second stays on the column
	// axis and the first moves to the row axis.
	row, col, err := Disambiguate(types.NewIndex(types.Column, 1), types.NewIndex(types.Column, 2))
	require.NoError(t, err)
	assert.Equal(t, types.NewIndex(types.Row, 1), row)
	assert.Equal(t, types.NewIndex(types.Column, 2), col)

	row, col, err = Disambiguate(types.AbsoluteIndex(types.Column, 1), types.NewIndex(types.Column, 2))
	require.NoError(t, err)
	assert.Equal(t, types.NewIndex(types.Row, 2), row)
	assert.Equal(t, types.AbsoluteIndex(types.Column, 1), col)

	_, _, err = Disambiguate(types.AbsoluteIndex(types.Column, 1), types.AbsoluteIndex(types.Column, 2))
	assert.ErrorIs(t, err, types.ErrDuplicateAxis)
}

func TestNew(t *testing.T) {
	c, err := New(types.Text("A"), types.Number(1))
	require.NoError(t, err)
	assert.Equal(t, types.NewIndex(types.Column, 1), c.Column)
	assert.Equal(t, types.AbsoluteIndex(types.Row, 1), c.Row)

	// A column-tagged first part swaps onto its axis.
	c, err = New(types.Text("A"), types.None{})
	require.NoError(t, err)
	assert.True(t, c.IsColumnOnly())
	assert.Equal(t, types.NewIndex(types.Column, 1), c.Column)

	_, err = New(types.None{}, types.None{})
	assert.ErrorIs(t, err, types.ErrValidation)

	_, err = New(types.Text("!!"), types.None{})
	assert.ErrorIs(t, err, types.ErrPatternMismatch)
}
