package cmd

import (
	"fmt"

	"github.com/viant/namely"
)

// TokensCmd prints the folded token sequence of a wildcard pattern, one token
// per line.  Useful for inspecting how a pattern will be interpreted before
// caching it for repeated matching.
type TokensCmd struct {
	Pattern string `short:"p" long:"pattern" description:"wildcard pattern" required:"yes"`
}

func (c *TokensCmd) Execute(_ []string) error {
	for i, token := range namely.TokenizePattern(c.Pattern) {
		kind := "literal"
		switch token.Kind {
		case namely.SingleAny:
			kind = "any-one"
		case namely.MultiAny:
			kind = "any-run"
		}
		fmt.Printf("%d\t%s\t%q\n", i, kind, token.String())
	}
	return nil
}
