package namely

import (
	"strings"
	"unicode/utf8"
)

// Match reports whether name matches the wildcard pattern.  The pattern uses
// '?' for a single character and '*' for any run of characters, as found on
// Dos/Unix command lines.  It is folded with the same match-key transform
// used for names (wildcard glyphs excepted) before tokenization, so matching
// is case and punctuation insensitive.  A nil name never matches.
func Match(name *Name, pattern string) bool {
	if name == nil {
		return false
	}
	return MatchTokens(name, TokenizePattern(pattern))
}

// retry records an alternative resumption point discovered while scanning
// past a '*'.
type retry struct {
	tokenIdx int
	textIdx  int
}

// MatchTokens matches a name against a pre-tokenized pattern, allowing the
// tokenization cost to be paid once across many matches.  A nil name and nil
// tokens match vacuously; exactly one of the two being nil is a mismatch.
//
// The matcher walks the token list with a text cursor and falls back on a
// retry stack when an ambiguous '*' placement leads to a dead end: whenever a
// literal is located after a '*' and the same literal occurs again later in
// the key, the later occurrence is recorded so the scan can resume there if
// the remaining tokens fail to match.
func MatchTokens(name *Name, tokens Tokens) bool {
	if name == nil && tokens == nil {
		return true
	}
	if name == nil || tokens == nil {
		return false
	}
	text := name.matchKey

	var (
		textIdx  int
		tokenIdx int
		anyChars bool
		stack    []retry
	)
	for first := true; first || len(stack) > 0; first = false {
		if !first {
			last := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			tokenIdx, textIdx = last.tokenIdx, last.textIdx
			anyChars = true
		}
	scan:
		for tokenIdx < len(tokens) {
			token := tokens[tokenIdx]
			switch token.Kind {
			case SingleAny:
				// '?' requires a character at the cursor.
				if textIdx >= len(text) {
					break scan
				}
				_, size := utf8.DecodeRuneInString(text[textIdx:])
				textIdx += size
				anyChars = false
			case MultiAny:
				anyChars = true
				// trailing '*' consumes the remainder
				if tokenIdx == len(tokens)-1 {
					textIdx = len(text)
				}
			case Literal:
				if anyChars {
					offset := strings.Index(text[textIdx:], token.Text)
					if offset == -1 {
						break scan
					}
					textIdx += offset
					if textIdx < len(text) {
						if again := strings.Index(text[textIdx+1:], token.Text); again != -1 {
							stack = append(stack, retry{tokenIdx: tokenIdx, textIdx: textIdx + 1 + again})
						}
					}
				} else if !strings.HasPrefix(text[textIdx:], token.Text) {
					break scan
				}
				textIdx += len(token.Text)
				anyChars = false
			}
			tokenIdx++
		}
		if tokenIdx == len(tokens) && textIdx == len(text) {
			return true
		}
	}
	return false
}
