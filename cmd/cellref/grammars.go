package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/adamantworks/cellref/pkg/grammar"
	"github.com/adamantworks/cellref/pkg/types"
	"github.com/spf13/cobra"
)

var (
	grammarsPath   string
	grammarsFormat string
)

var grammarsCmd = &cobra.Command{
	Use:   "grammars",
	Short: "List notation grammar patterns",
	Long:  "Display the loaded notation grammar patterns with their ids and axes",
	RunE:  runGrammars,
}

func init() {
	grammarsCmd.Flags().StringVar(&grammarsPath, "grammar", "", "Path to a custom grammar YAML file")
	grammarsCmd.Flags().StringVar(&grammarsFormat, "format", "table", "Output format: table, json")
}

func runGrammars(cmd *cobra.Command, args []string) error {
	loader := grammar.NewLoader()

	var g *grammar.Grammar
	var err error
	if grammarsPath != "" {
		g, err = loader.LoadFile(grammarsPath)
		if err != nil {
			return fmt.Errorf("loading grammar from %s: %w", grammarsPath, err)
		}
	} else {
		g, err = loader.LoadBuiltin()
		if err != nil {
			return fmt.Errorf("loading builtin grammar: %w", err)
		}
	}

	switch grammarsFormat {
	case "json":
		return outputGrammarsJSON(cmd, g.Patterns())
	case "table":
		return outputGrammarsTable(cmd, g.Patterns())
	default:
		return fmt.Errorf("unknown output format: %s", grammarsFormat)
	}
}

func outputGrammarsJSON(cmd *cobra.Command, patterns []*grammar.Pattern) error {
	type jsonPattern struct {
		ID       string   `json:"id"`
		Name     string   `json:"name"`
		Axis     string   `json:"axis,omitempty"`
		Examples []string `json:"examples,omitempty"`
	}
	out := make([]jsonPattern, 0, len(patterns))
	for _, p := range patterns {
		jp := jsonPattern{ID: p.ID, Name: p.Name, Examples: p.Examples}
		if p.Axis != types.AxisUnknown {
			jp.Axis = p.Axis.String()
		}
		out = append(out, jp)
	}
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func outputGrammarsTable(cmd *cobra.Command, patterns []*grammar.Pattern) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "ID\tAxis\tName\n")
	fmt.Fprintf(w, "--\t----\t----\n")
	for _, p := range patterns {
		axis := "both"
		if p.Axis != types.AxisUnknown {
			axis = p.Axis.String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, axis, p.Name)
	}
	return nil
}
