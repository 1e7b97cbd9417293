package canon

import (
	"strings"
	"unicode"
)

// Reduce returns text with everything except Unicode letters and digits
// removed.  Case and rune order are preserved.  The function is total and
// idempotent: reducing an already reduced string is a no-op.
func Reduce(text string) string {
	return reduce(text, false, nil)
}

// ReduceToLower returns the case-folded reduction of text, the form used as a
// match key.  Runes listed in keep survive the reduction unchanged and in
// place, which lets callers fold a wildcard pattern without losing the '*'
// and '?' glyphs.
func ReduceToLower(text string, keep ...rune) string {
	return reduce(text, true, keep)
}

func reduce(text string, fold bool, keep []rune) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if kept(r, keep) {
			b.WriteRune(r)
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		if fold {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func kept(r rune, keep []rune) bool {
	for _, k := range keep {
		if r == k {
			return true
		}
	}
	return false
}
