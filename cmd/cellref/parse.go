package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/adamantworks/cellref"
	"github.com/spf13/cobra"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse <reference>...",
	Short: "Parse one or more cell references",
	Long: `Parse cell references in letter-digit or relative-offset notation and
display their normalized row and column indexes.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "table", "Output format: table, json")
}

// parsedRef is the JSON shape of one parsed reference.
type parsedRef struct {
	Input          string `json:"input"`
	Kind           string `json:"kind"`
	Row            *int   `json:"row,omitempty"`
	RowAbsolute    bool   `json:"row_absolute"`
	Column         *int   `json:"column,omitempty"`
	ColumnAbsolute bool   `json:"column_absolute"`
	A1             string `json:"a1"`
	RC             string `json:"rc"`
}

func runParse(cmd *cobra.Command, args []string) error {
	var refs []parsedRef
	for _, arg := range args {
		c, err := parseAny(arg)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", arg, err)
		}
		refs = append(refs, describe(arg, c))
	}

	switch parseFormat {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(refs)
	case "table":
		return outputParseTable(cmd, refs)
	default:
		return fmt.Errorf("unknown output format: %s", parseFormat)
	}
}

// parseAny accepts combined cell text and falls back to a single-axis
// token, so "A" and "$3" resolve to whole-column and whole-row
// references.
func parseAny(text string) (cellref.Coordinate, error) {
	c, err := cellref.Parse(text)
	if err == nil {
		return c, nil
	}
	ix, axisErr := cellref.ParseIndexValue(text)
	if axisErr != nil {
		return cellref.Coordinate{}, err
	}
	return cellref.ParseParts(ix, nil)
}

func describe(input string, c cellref.Coordinate) parsedRef {
	ref := parsedRef{
		Input:          input,
		Kind:           "cell",
		RowAbsolute:    c.Row.Absolute,
		ColumnAbsolute: c.Column.Absolute,
	}
	if row, ok := c.RowValue(); ok {
		v := row
		ref.Row = &v
	}
	if col, ok := c.ColumnValue(); ok {
		v := col
		ref.Column = &v
	}
	switch {
	case c.IsRowOnly():
		ref.Kind = "row"
	case c.IsColumnOnly():
		ref.Kind = "column"
	}
	// Renderings are best-effort for display; a parsed coordinate always
	// has at least one axis, so these do not fail in practice.
	ref.A1, _ = c.A1(true)
	ref.RC, _ = c.RC()
	return ref
}

func outputParseTable(cmd *cobra.Command, refs []parsedRef) error {
	s := newStyles(colorEnabled())
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "%s\n", s.heading.Sprint("Input\tKind\tRow\tColumn\tA1\tRC"))
	fmt.Fprintf(w, "-----\t----\t---\t------\t--\t--\n")
	for _, r := range refs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ref.Sprint(r.Input),
			s.axis.Sprint(r.Kind),
			axisCell(s, r.Row, r.RowAbsolute),
			axisCell(s, r.Column, r.ColumnAbsolute),
			r.A1, r.RC)
	}
	return nil
}

// axisCell renders one axis column of the table, marking absolute axes
// with a leading $.
func axisCell(s *styles, value *int, absolute bool) string {
	if value == nil {
		return "-"
	}
	if absolute {
		return s.absolute.Sprintf("$%d", *value)
	}
	return fmt.Sprintf("%d", *value)
}
