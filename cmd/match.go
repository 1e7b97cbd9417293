package cmd

import (
	"fmt"

	"github.com/viant/namely"
)

// MatchCmd tests a single name against a wildcard pattern.  The process exits
// non-zero when the name does not match, making the command usable from
// scripts.
type MatchCmd struct {
	Name    string `short:"n" long:"name"    description:"name to test" required:"yes"`
	Pattern string `short:"p" long:"pattern" description:"wildcard pattern" required:"yes"`
}

func (c *MatchCmd) Execute(_ []string) error {
	name := namely.New(c.Name)
	if !namely.Match(name, c.Pattern) {
		return fmt.Errorf("%q does not match %q", c.Name, c.Pattern)
	}
	fmt.Printf("%q matches %q\n", c.Name, c.Pattern)
	return nil
}
