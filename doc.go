// Package namely provides a normalized name value type for case and
// punctuation insensitive comparisons together with a glob style ('?'/'*')
// wildcard matcher operating on the normalized form.  Names keep their
// original spelling for display while equality, hashing and matching are
// driven solely by the reduced, case-folded match key produced by the canon
// package.  Patterns can be tokenized once and reused across many match
// calls; all types are immutable after construction and safe for concurrent
// use.
package namely
