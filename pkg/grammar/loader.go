package grammar

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adamantworks/cellref/pkg/types"
	"gopkg.in/yaml.v3"
)

// Loader handles loading grammar definitions from YAML files.
type Loader struct {
	fs fs.FS // embedded filesystem for the built-in grammar
}

// NewLoader creates a loader backed by the embedded built-in grammar.
func NewLoader() *Loader {
	return &Loader{fs: builtinGrammarFS}
}

// NewLoaderWithFS creates a loader with a custom filesystem.
func NewLoaderWithFS(fsys fs.FS) *Loader {
	return &Loader{fs: fsys}
}

// Load parses grammar patterns from YAML bytes and compiles them.
func (l *Loader) Load(data []byte) (*Grammar, error) {
	var yamlFile yamlGrammarFile
	if err := yaml.Unmarshal(data, &yamlFile); err != nil {
		return nil, fmt.Errorf("failed to parse grammar YAML: %w", err)
	}
	if len(yamlFile.Grammars) == 0 {
		return nil, fmt.Errorf("no grammar patterns found in YAML")
	}

	patterns := make([]*Pattern, 0, len(yamlFile.Grammars))
	for _, yp := range yamlFile.Grammars {
		p, err := convertYAMLPattern(yp)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return New(patterns)
}

// LoadFile loads a grammar from a YAML file path.
func (l *Loader) LoadFile(path string) (*Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return l.Load(data)
}

// LoadBuiltin loads the built-in grammar from the embedded filesystem.
func (l *Loader) LoadBuiltin() (*Grammar, error) {
	var patterns []*Pattern

	err := fs.WalkDir(l.fs, "grammars", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(l.fs, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		var yamlFile yamlGrammarFile
		if err := yaml.Unmarshal(data, &yamlFile); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		for _, yp := range yamlFile.Grammars {
			p, convErr := convertYAMLPattern(yp)
			if convErr != nil {
				return convErr
			}
			patterns = append(patterns, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return New(patterns)
}

// convertYAMLPattern converts a yamlPattern to a Pattern, resolving the
// axis tag.
func convertYAMLPattern(yp yamlPattern) (*Pattern, error) {
	p := &Pattern{
		ID:               yp.ID,
		Name:             yp.Name,
		Pattern:          yp.Pattern,
		Examples:         yp.Examples,
		NegativeExamples: yp.NegativeExamples,
	}
	switch yp.Axis {
	case "":
		p.Axis = types.AxisUnknown // combined patterns cover both axes
	case "row":
		p.Axis = types.Row
	case "column":
		p.Axis = types.Column
	default:
		return nil, fmt.Errorf("grammar %s: unknown axis %q", yp.ID, yp.Axis)
	}
	return p, nil
}
