package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags which is the same library used by other Viant
// CLIs (e.g. fluxor-mcp).
type Options struct {
	Config string `short:"f" long:"config" description:"configuration YAML/JSON path holding the name list"`

	Reduce *ReduceCmd `command:"reduce" description:"Print original, reduced and match-key forms of names"`
	Tokens *TokensCmd `command:"tokens" description:"Print the token sequence of a wildcard pattern"`
	Match  *MatchCmd  `command:"match"  description:"Match one name against a wildcard pattern"`
	Filter *FilterCmd `command:"filter" description:"Print configured names matching a wildcard pattern"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "reduce":
		o.Reduce = &ReduceCmd{}
	case "tokens":
		o.Tokens = &TokensCmd{}
	case "match":
		o.Match = &MatchCmd{}
	case "filter":
		o.Filter = &FilterCmd{}
	}
}
