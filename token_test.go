package namely

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		pattern string
		tokens  Tokens
	}{
		{"", Tokens{{Kind: Literal, Text: ""}}},
		{"hello", Tokens{{Kind: Literal, Text: "hello"}}},
		{"?", Tokens{{Kind: SingleAny}}},
		{"*", Tokens{{Kind: MultiAny}}},
		{"hel?o", Tokens{{Kind: Literal, Text: "hel"}, {Kind: SingleAny}, {Kind: Literal, Text: "o"}}},
		{"hel*", Tokens{{Kind: Literal, Text: "hel"}, {Kind: MultiAny}}},
		{"*hel", Tokens{{Kind: MultiAny}, {Kind: Literal, Text: "hel"}}},
		{"a*b", Tokens{{Kind: Literal, Text: "a"}, {Kind: MultiAny}, {Kind: Literal, Text: "b"}}},
		{"*?*", Tokens{{Kind: MultiAny}, {Kind: SingleAny}, {Kind: MultiAny}}},
		{"??", Tokens{{Kind: SingleAny}, {Kind: SingleAny}}},
	}

	for i, tc := range cases {
		if got := Tokenize(tc.pattern); !reflect.DeepEqual(got, tc.tokens) {
			t.Fatalf("case %d: Tokenize(%q) = %v, want %v", i, tc.pattern, got, tc.tokens)
		}
	}
}

// Adjacent '*' characters collapse into a single token.
func TestTokenizeCollapse(t *testing.T) {
	if got, want := Tokenize("a**b"), Tokenize("a*b"); !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize(%q) = %v, want %v", "a**b", got, want)
	}
	if got, want := Tokenize("***"), Tokenize("*"); !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize(%q) = %v, want %v", "***", got, want)
	}
}

// TokenizePattern folds pattern text with the match-key transform while
// keeping the wildcard glyphs.
func TestTokenizePattern(t *testing.T) {
	want := Tokens{{Kind: Literal, Text: "hel"}, {Kind: MultiAny}, {Kind: Literal, Text: "world"}}
	if got := TokenizePattern("HEL*, World!"); !reflect.DeepEqual(got, want) {
		t.Fatalf("TokenizePattern = %v, want %v", got, want)
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		token Token
		out   string
	}{
		{Token{Kind: Literal, Text: "abc"}, "abc"},
		{Token{Kind: SingleAny}, "?"},
		{Token{Kind: MultiAny}, "*"},
	}
	for i, tc := range cases {
		if got := tc.token.String(); got != tc.out {
			t.Fatalf("case %d: String() = %q, want %q", i, got, tc.out)
		}
	}
}
