package main

import (
	"fmt"

	"github.com/adamantworks/cellref"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <reference> <reference>",
	Short: "Add two references",
	Long: `Add two references under the absolute/relative rules: at most one side
may be absolute on each axis, and an absolute result must stay positive.`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	lhs, err := parseAny(args[0])
	if err != nil {
		return fmt.Errorf("parsing %q: %w", args[0], err)
	}
	rhs, err := parseAny(args[1])
	if err != nil {
		return fmt.Errorf("parsing %q: %w", args[1], err)
	}

	sum, err := cellref.Add(lhs, rhs)
	if err != nil {
		return fmt.Errorf("adding %q + %q: %w", args[0], args[1], err)
	}

	a1, err := sum.A1(true)
	if err != nil {
		return err
	}
	s := newStyles(colorEnabled())
	fmt.Fprintln(cmd.OutOrStdout(), s.ref.Sprint(a1))
	return nil
}
