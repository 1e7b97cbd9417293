package namely

import (
	"hash/fnv"

	"github.com/viant/namely/canon"
	"github.com/viant/namely/internal/conv"
)

// Name represents a normalized name.  It retains the original spelling for
// display while comparisons use the reduced, case-folded match key, so that
// "Main Hall", "main-hall" and "MAINHALL" are all the same name.  Instances
// are immutable once constructed.
type Name struct {
	original string
	reduced  string
	matchKey string
}

// New returns a normalized name for the supplied text.  Both derived forms
// are computed eagerly and never change afterwards.
func New(text string) *Name {
	return &Name{
		original: text,
		reduced:  canon.Reduce(text),
		matchKey: canon.ReduceToLower(text),
	}
}

// From coerces an arbitrary value into a normalized name.  An existing *Name
// passes through unchanged, a string is normalized directly and any other
// value is normalized from its textual representation.  A nil input yields a
// nil name.
func From(v interface{}) *Name {
	switch actual := v.(type) {
	case nil:
		return nil
	case *Name:
		return actual
	case string:
		return New(actual)
	default:
		return New(conv.Text(actual))
	}
}

// Original returns the name exactly as supplied.
func (n *Name) Original() string {
	return n.original
}

// Reduced returns the canonical form with case preserved.
func (n *Name) Reduced() string {
	return n.reduced
}

// MatchKey returns the case-folded canonical form.  It is the sole basis of
// equality, hashing and wildcard matching, and is suitable as a map key.
func (n *Name) MatchKey() string {
	return n.matchKey
}

// String returns the original spelling, not the reduced form, preserving
// round-trip display fidelity.
func (n *Name) String() string {
	return n.original
}

// Equal reports whether both names share the same match key.  A nil other
// never equals a constructed name.
func (n *Name) Equal(other *Name) bool {
	if other == nil {
		return false
	}
	return n.matchKey == other.matchKey
}

// EqualString reports whether the raw text normalizes to this name.
func (n *Name) EqualString(text string) bool {
	return n.matchKey == canon.ReduceToLower(text)
}

// Equals compares the name against an arbitrary value: another *Name by match
// key, a string by normalizing it first, nil never matches, and any other
// value falls back to its textual representation.
func (n *Name) Equals(v interface{}) bool {
	switch actual := v.(type) {
	case nil:
		return false
	case *Name:
		return n.Equal(actual)
	case string:
		return n.EqualString(actual)
	default:
		return n.EqualString(conv.Text(actual))
	}
}

// Hash returns a hash derived solely from the match key, consistent with
// Equal.
func (n *Name) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(n.matchKey))
	return h.Sum64()
}

// Originals returns the original spellings of the supplied names, in order.
func Originals(names []*Name) []string {
	result := make([]string, len(names))
	for i, n := range names {
		result[i] = n.Original()
	}
	return result
}

// ReducedNames returns the reduced forms of the supplied names, in order.
func ReducedNames(names []*Name) []string {
	result := make([]string, len(names))
	for i, n := range names {
		result[i] = n.Reduced()
	}
	return result
}

// FromStrings normalizes each of the supplied raw names, preserving input
// order and duplicates.
func FromStrings(texts []string) []*Name {
	result := make([]*Name, len(texts))
	for i, text := range texts {
		result[i] = New(text)
	}
	return result
}
