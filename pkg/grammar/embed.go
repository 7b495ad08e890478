package grammar

import "embed"

// builtinGrammarFS embeds the built-in notation grammar definitions.
// The patterns are ports of the AL_Excel coordinate regexes.
//
//go:embed grammars/*.yml
var builtinGrammarFS embed.FS
