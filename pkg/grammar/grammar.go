// Package grammar recognizes the two textual notations for spreadsheet
// references: letter-digit ("A1", "$B$2") and relative-offset ("R1C1",
// "R[-2]C[3]"). Patterns are defined in YAML, embedded into the binary,
// and compiled once with regexp2 so the named capture groups of the
// original grammars carry over unchanged.
package grammar

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/adamantworks/cellref/pkg/types"
	"github.com/dlclark/regexp2"
)

// Pattern ids required by the parsing entry points.
const (
	PatternCell       = "cell.full"
	PatternColumnAxis = "axis.column"
	PatternRowAxis    = "axis.row"
)

// Pattern is one compiled notation pattern with its metadata.
type Pattern struct {
	ID               string
	Name             string
	Axis             types.Axis // AxisUnknown for combined patterns
	Pattern          string     // verbose regex source
	Examples         []string   // positive test cases
	NegativeExamples []string   // negative test cases

	re *regexp2.Regexp
}

// Grammar holds the compiled notation patterns. It is immutable after
// construction and safe for concurrent use.
type Grammar struct {
	patterns map[string]*Pattern
	ordered  []*Pattern
}

// New compiles the given patterns into a Grammar. All three required
// pattern ids must be present and every pattern must compile.
func New(patterns []*Pattern) (*Grammar, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("no patterns provided")
	}

	g := &Grammar{patterns: make(map[string]*Pattern, len(patterns))}
	for _, p := range patterns {
		if _, ok := g.patterns[p.ID]; ok {
			return nil, fmt.Errorf("duplicate grammar pattern id %q", p.ID)
		}
		// The originals are verbose case-insensitive regexes; keep both modes.
		re, err := regexp2.Compile(p.Pattern, regexp2.IgnorePatternWhitespace|regexp2.IgnoreCase)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %q for grammar %s: %w", p.Pattern, p.ID, err)
		}
		re.MatchTimeout = 5 * time.Second
		p.re = re
		g.patterns[p.ID] = p
		g.ordered = append(g.ordered, p)
	}

	for _, id := range []string{PatternCell, PatternColumnAxis, PatternRowAxis} {
		if _, ok := g.patterns[id]; !ok {
			return nil, fmt.Errorf("grammar is missing required pattern %q", id)
		}
	}
	return g, nil
}

// Patterns returns the loaded patterns in definition order.
func (g *Grammar) Patterns() []*Pattern {
	out := make([]*Pattern, len(g.ordered))
	copy(out, g.ordered)
	return out
}

var loadDefault = sync.OnceValues(func() (*Grammar, error) {
	return NewLoader().LoadBuiltin()
})

// Default returns the process-wide Grammar compiled from the embedded
// definitions. It is built on first use and kept resident.
func Default() *Grammar {
	g, err := loadDefault()
	if err != nil {
		panic("grammar: built-in grammar failed to load: " + err.Error())
	}
	return g
}

// ParseAxis parses single-axis text into an Index for the requested axis,
// trying the relative-offset form and the letter-digit form of the axis
// pattern. It returns ErrPatternMismatch when the text matches neither,
// and ErrMalformedBracket when a relative-offset token has an unbalanced
// bracket.
func (g *Grammar) ParseAxis(text string, axis types.Axis) (types.Index, error) {
	var p *Pattern
	switch axis {
	case types.Column:
		p = g.patterns[PatternColumnAxis]
	case types.Row:
		p = g.patterns[PatternRowAxis]
	default:
		return types.Index{}, fmt.Errorf("%w: parse axis must be row or column: %s", types.ErrValidation, axis)
	}

	m, err := p.re.FindStringMatch(text)
	if err != nil {
		return types.Index{}, fmt.Errorf("grammar %s: %w", p.ID, err)
	}
	if m == nil {
		return types.Index{}, fmt.Errorf("%w: %q is not a recognized %s token", types.ErrPatternMismatch, text, axis)
	}

	// Letter-digit form: value group is "A1column" / "A1row".
	if raw := groupText(m, "A1"+axis.String()); raw != "" {
		var value int
		if axis == types.Column {
			value, err = types.ColumnNumber(raw)
		} else {
			value, err = strconv.Atoi(raw)
		}
		if err != nil {
			return types.Index{}, err
		}
		return types.Index{Axis: axis, Value: value, HasValue: true, Absolute: groupText(m, "absolute") != ""}, nil
	}

	// Relative-offset form. An opening bracket without its closing
	// bracket (or the reverse) is a malformed token.
	open := groupText(m, "absolute1") != ""
	closed := groupText(m, "absolute2") != ""
	if open != closed {
		missing := "]"
		if !open {
			missing = "["
		}
		return types.Index{}, fmt.Errorf("%w: incomplete reference %q, missing %q", types.ErrMalformedBracket, text, missing)
	}

	value, err := strconv.Atoi(groupText(m, "RC"+axis.String()))
	if err != nil {
		return types.Index{}, fmt.Errorf("%w: bad offset in %q: %v", types.ErrValidation, text, err)
	}
	// Both brackets together mark the token absolute. This mirrors the
	// source grammar verbatim even though it inverts the usual R1C1
	// bracket convention.
	return types.Index{Axis: axis, Value: value, HasValue: true, Absolute: open && closed}, nil
}

// ParseCell parses combined cell text ("A1", "R1C1") into a row and
// column Index. The relative-offset alternative is tried before the
// letter-digit one, case-insensitively, and each axis token is then
// re-parsed with its axis pattern so bracket checking applies.
func (g *Grammar) ParseCell(text string) (row, col types.Index, err error) {
	m, err := g.patterns[PatternCell].re.FindStringMatch(text)
	if err != nil {
		return types.Index{}, types.Index{}, fmt.Errorf("grammar %s: %w", PatternCell, err)
	}
	if m == nil {
		return types.Index{}, types.Index{}, fmt.Errorf("%w: %q is not a cell reference", types.ErrPatternMismatch, text)
	}

	syntax := "A1"
	if groupText(m, "RC") != "" {
		syntax = "RC"
	}
	row, err = g.ParseAxis(groupText(m, syntax+"row"), types.Row)
	if err != nil {
		return types.Index{}, types.Index{}, err
	}
	col, err = g.ParseAxis(groupText(m, syntax+"column"), types.Column)
	if err != nil {
		return types.Index{}, types.Index{}, err
	}
	return row, col, nil
}

// groupText returns the captured text of a named group, or "" when the
// group did not participate in the match.
func groupText(m *regexp2.Match, name string) string {
	grp := m.GroupByName(name)
	if grp == nil || len(grp.Captures) == 0 {
		return ""
	}
	return grp.String()
}
