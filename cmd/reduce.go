package cmd

import (
	"fmt"

	"github.com/viant/namely"
)

// ReduceCmd prints the original, reduced and match-key form of every supplied
// name, or of every configured name when none are given.
type ReduceCmd struct {
	Names []string `short:"n" long:"name" description:"name to reduce (repeatable)"`
}

func (c *ReduceCmd) Execute(_ []string) error {
	texts := c.Names
	if len(texts) == 0 {
		dir, err := directorySingleton()
		if err != nil {
			return err
		}
		texts = namely.Originals(dir.Names())
	}
	for _, n := range namely.FromStrings(texts) {
		fmt.Printf("%s\t%s\t%s\n", n.Original(), n.Reduced(), n.MatchKey())
	}
	return nil
}
