package grammar

// yamlPattern is the intermediate struct for parsing a grammar YAML file.
type yamlPattern struct {
	ID               string   `yaml:"id"`
	Name             string   `yaml:"name"`
	Axis             string   `yaml:"axis,omitempty"`
	Pattern          string   `yaml:"pattern"`
	Examples         []string `yaml:"examples,omitempty"`
	NegativeExamples []string `yaml:"negative_examples,omitempty"`
}

// yamlGrammarFile represents the top-level structure of a grammar YAML
// file: a "grammars" array of patterns.
type yamlGrammarFile struct {
	Grammars []yamlPattern `yaml:"grammars"`
}
