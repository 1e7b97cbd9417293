package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/viant/namely"
	"github.com/viant/namely/directory"
)

// FilterCmd prints every name matching a wildcard pattern.  Candidates come
// from the configured name list, from an input file (use - for stdin), or
// from repeated -n flags; the sources are mutually exclusive.
type FilterCmd struct {
	Pattern string   `short:"p" long:"pattern" description:"wildcard pattern" required:"yes"`
	Input   string   `short:"i" long:"input"   description:"file with one name per line (use - for stdin)"`
	Names   []string `short:"n" long:"name"    description:"candidate name (repeatable)"`
}

func (c *FilterCmd) Execute(_ []string) error {
	if c.Input != "" && len(c.Names) > 0 {
		return fmt.Errorf("-i/--input and -n/--name are mutually exclusive")
	}

	dir, err := c.candidates()
	if err != nil {
		return err
	}
	for _, n := range dir.Match(c.Pattern) {
		fmt.Println(n.Original())
	}
	return nil
}

func (c *FilterCmd) candidates() (*directory.Directory[string], error) {
	switch {
	case c.Input != "":
		var rdr io.Reader
		if c.Input == "-" {
			rdr = os.Stdin
		} else {
			f, err := os.Open(c.Input)
			if err != nil {
				return nil, fmt.Errorf("open input file: %w", err)
			}
			defer f.Close()
			rdr = f
		}
		data, err := io.ReadAll(rdr)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		dir := directory.New[string]()
		for _, line := range strings.Split(string(data), "\n") {
			if line = strings.TrimSpace(line); line == "" {
				continue
			}
			n := namely.New(line)
			dir.Put(n, n.Original())
		}
		return dir, nil
	case len(c.Names) > 0:
		dir := directory.New[string]()
		for _, n := range namely.FromStrings(c.Names) {
			dir.Put(n, n.Original())
		}
		return dir, nil
	default:
		return directorySingleton()
	}
}
