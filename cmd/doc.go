// Package cmd implements all sub-commands that make up the namely
// command-line interface.  Each file in this directory registers a single
// sub-command (reduce, tokens, match, filter).  The plumbing that is shared
// between commands such as configuration loading or directory initialisation
// is located in shared.go.
package cmd
