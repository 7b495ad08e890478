package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var colorChoice string

var rootCmd = &cobra.Command{
	Use:   "cellref",
	Short: "Cellref - spreadsheet reference parser and calculator",
	Long: `Cellref parses, formats, and combines spreadsheet cell, row, and column
references in both letter-digit ("A1", "$B$2") and relative-offset
("R1C1", "R[-2]C[3]") notation.

This is a Go port of the AL_Excel coordinate module.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&colorChoice, "color", "auto", "Color output: auto, always, never")

	// Add subcommands
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(grammarsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// colorEnabled resolves the --color flag, respecting NO_COLOR and
// whether stdout is a terminal in auto mode.
func colorEnabled() bool {
	switch colorChoice {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// styles holds color formatters for human output.
type styles struct {
	ref      *color.Color
	absolute *color.Color
	heading  *color.Color
	axis     *color.Color
}

// newStyles creates color formatters; enabled=false disables all of them.
func newStyles(enabled bool) *styles {
	s := &styles{
		ref:      color.New(color.Bold, color.FgHiWhite),
		absolute: color.New(color.FgYellow),
		heading:  color.New(color.Bold),
		axis:     color.New(color.FgHiBlue),
	}
	if !enabled {
		s.ref.DisableColor()
		s.absolute.DisableColor()
		s.heading.DisableColor()
		s.axis.DisableColor()
	}
	return s
}
