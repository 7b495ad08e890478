// Package coord implements the reference semantics on top of the grammar
// package: descriptor normalization, axis disambiguation, Coordinate
// construction, and the absolute/relative addition rules.
package coord

import (
	"fmt"
	"strings"

	"github.com/adamantworks/cellref/pkg/grammar"
	"github.com/adamantworks/cellref/pkg/types"
)

// ParseIndex normalizes one axis descriptor into an Index using the
// built-in grammar.
func ParseIndex(d types.IndexDescriptor) (types.Index, error) {
	return ParseIndexWith(grammar.Default(), d)
}

// ParseIndexWith normalizes one axis descriptor into an Index:
//
//   - None becomes an untagged Index without a value.
//   - A bare Number becomes an untagged absolute Index, regardless of
//     sign. (The original documents negative integers as relative but
//     normalizes them absolute; the literal behavior is kept.)
//   - Text is tried against the column grammar first, then the row
//     grammar.
//   - An existing Index is validated in place.
//   - A Pair normalizes its inner descriptor and then applies the
//     absolute override.
func ParseIndexWith(g *grammar.Grammar, d types.IndexDescriptor) (types.Index, error) {
	switch v := d.(type) {
	case nil, types.None:
		return types.Index{}, nil

	case types.Number:
		return types.Index{Value: int(v), HasValue: true, Absolute: true}, nil

	case types.Text:
		ix, err := g.ParseAxis(string(v), types.Column)
		if err == nil {
			return ix, nil
		}
		return g.ParseAxis(string(v), types.Row)

	case types.Index:
		if err := v.Validate(); err != nil {
			return types.Index{}, err
		}
		return v, nil

	case types.Pair:
		inner, err := ParseIndexWith(g, v.Inner)
		if err != nil {
			return types.Index{}, err
		}
		if v.Absolute == nil {
			return inner, nil
		}
		absolute, err := resolveAbsoluteSpec(v.Absolute)
		if err != nil {
			return types.Index{}, err
		}
		// An explicitly absolute inner value cannot be un-marked.
		if inner.Absolute && !absolute {
			return types.Index{}, fmt.Errorf("%w: absolute override contradicts %s", types.ErrValidation, inner)
		}
		return inner.WithAbsolute(absolute), nil

	default:
		return types.Index{}, fmt.Errorf("%w: %T", types.ErrUnsupportedDescriptor, d)
	}
}

// resolveAbsoluteSpec maps a Pair override onto a boolean.
func resolveAbsoluteSpec(spec types.AbsoluteSpec) (bool, error) {
	switch s := spec.(type) {
	case types.AbsoluteFlag:
		return bool(s), nil
	case types.AbsoluteAlias:
		switch strings.ToLower(string(s)) {
		case "$", "absolute":
			return true, nil
		case "":
			return false, nil
		default:
			return false, fmt.Errorf("%w: unknown absolute alias %q", types.ErrValidation, string(s))
		}
	default:
		return false, fmt.Errorf("%w: absolute override must be a flag or alias: %T", types.ErrValidation, spec)
	}
}
