package namely

import (
	"strings"

	"github.com/viant/namely/canon"
)

// TokenKind discriminates pattern tokens.
type TokenKind int

const (
	// Literal matches its text exactly at the current position.
	Literal TokenKind = iota
	// SingleAny matches exactly one character ('?').
	SingleAny
	// MultiAny matches zero or more characters ('*').
	MultiAny
)

// Token is one unit of a tokenized wildcard pattern.
type Token struct {
	Kind TokenKind
	Text string
}

// String renders the token in pattern syntax.
func (t Token) String() string {
	switch t.Kind {
	case SingleAny:
		return "?"
	case MultiAny:
		return "*"
	default:
		return t.Text
	}
}

// Tokens is an ordered token sequence produced by Tokenize.  A nil sequence
// stands for an absent pattern; an empty or single-empty-literal sequence
// matches only the empty key.  Once built a sequence is never mutated and may
// be shared across concurrent match calls.
type Tokens []Token

// Tokenize splits a wildcard pattern into literal runs and wildcard tokens.
// Adjacent '*' characters collapse into a single MultiAny token.  The caller
// is expected to pass pattern text already folded with the match-key
// transform (see Match).  Every string is a valid pattern; a pattern without
// wildcards becomes a single literal token.
func Tokenize(pattern string) Tokens {
	if !strings.ContainsAny(pattern, "?*") {
		return Tokens{{Kind: Literal, Text: pattern}}
	}
	var tokens Tokens
	var buffer strings.Builder
	flush := func() {
		if buffer.Len() > 0 {
			tokens = append(tokens, Token{Kind: Literal, Text: buffer.String()})
			buffer.Reset()
		}
	}
	for _, r := range pattern {
		switch r {
		case '?':
			flush()
			tokens = append(tokens, Token{Kind: SingleAny})
		case '*':
			flush()
			if len(tokens) == 0 || tokens[len(tokens)-1].Kind != MultiAny {
				tokens = append(tokens, Token{Kind: MultiAny})
			}
		default:
			buffer.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// TokenizePattern folds a raw wildcard pattern with the match-key transform,
// keeping the '*' and '?' glyphs intact, and tokenizes the result.  Use it to
// prepare a pattern once for repeated MatchTokens calls.
func TokenizePattern(pattern string) Tokens {
	return Tokenize(canon.ReduceToLower(pattern, '*', '?'))
}
