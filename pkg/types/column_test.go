package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnLetters(t *testing.T) {
	tests := []struct {
		number  int
		letters string
	}{
		{1, "A"},
		{2, "B"},
		{26, "Z"},
		{27, "AA"},
		{52, "AZ"},
		{53, "BA"},
		{702, "ZZ"},
		{703, "AAA"},
		{16384, "XFD"}, // last column of a modern worksheet
	}

	for _, tt := range tests {
		letters, err := ColumnLetters(tt.number)
		require.NoError(t, err)
		assert.Equal(t, tt.letters, letters, "column %d", tt.number)

		number, err := ColumnNumber(tt.letters)
		require.NoError(t, err)
		assert.Equal(t, tt.number, number, "letters %s", tt.letters)
	}
}

func TestColumnLetters_Invalid(t *testing.T) {
	for _, n := range []int{0, -1, -26} {
		_, err := ColumnLetters(n)
		assert.ErrorIs(t, err, ErrValidation, "column %d", n)
	}
}

func TestColumnNumber_Lowercase(t *testing.T) {
	n, err := ColumnNumber("aa")
	require.NoError(t, err)
	assert.Equal(t, 27, n)
}

func TestColumnNumber_Invalid(t *testing.T) {
	for _, s := range []string{"", "A1", "$A", "-"} {
		_, err := ColumnNumber(s)
		assert.ErrorIs(t, err, ErrValidation, "letters %q", s)
	}
}

func TestColumnRoundTrip(t *testing.T) {
	// Full round trip over every addressable column.
	for n := 1; n <= 16384; n++ {
		letters, err := ColumnLetters(n)
		require.NoError(t, err)
		back, err := ColumnNumber(letters)
		require.NoError(t, err)
		require.Equal(t, n, back, "round trip of column %d via %s", n, letters)
	}
}
