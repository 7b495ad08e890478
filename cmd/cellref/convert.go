package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var convertRelative bool

var convertCmd = &cobra.Command{
	Use:   "convert <reference>...",
	Short: "Convert references between notations",
	Long:  "Parse each reference and print both its letter-digit and relative-offset renderings.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertRelative, "relative", false, "Render letter-digit output fully relative (no $)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, arg := range args {
		c, err := parseAny(arg)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", arg, err)
		}
		a1, err := c.A1(!convertRelative)
		if err != nil {
			return fmt.Errorf("rendering %q: %w", arg, err)
		}
		rc, err := c.RC()
		if err != nil {
			return fmt.Errorf("rendering %q: %w", arg, err)
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", arg, a1, rc)
	}
	return nil
}
