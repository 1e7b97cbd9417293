package namely

import "testing"

func TestMatch(t *testing.T) {
	var testCases = []struct {
		name    string
		pattern string
		matched bool
	}{
		// literal patterns compare match keys
		{"HelloWorld", "helloworld", true},
		{"HelloWorld", "Hello World", true},
		{"HelloWorld", "helloworl", false},
		{"HelloWorld", "elloworld", false},

		// '?' matches exactly one character
		{"Hello", "Hel?o", true},
		{"Hello", "Hel?", false},
		{"Hello", "Hell?", true},
		{"Hello", "?ello", true},
		{"Hi", "??", true},

		// trailing '*' matches any suffix
		{"HelloWorld", "Hel*", true},
		{"HelloWorld", "Hello*", true},
		{"HelloWorld", "World*", false},

		// leading '*' matches any prefix
		{"HelloWorld", "*World", true},
		{"HelloWorld", "*Hello", false},

		// interior '*' matches across a gap
		{"HelloWorld", "Hel*ld", true},
		{"HelloWorld", "Hel*xyz", false},
		{"HelloWorld", "H*o*d", true},

		// '*' alone matches everything, including empty
		{"", "*", true},
		{"anything", "*", true},
		{"", "**", true},

		// empty pattern matches only the empty key
		{"", "", true},
		{"x", "", false},
		{"- -", "", true},

		// collapsed wildcards behave like a single '*'
		{"HelloWorld", "Hel**ld", true},

		// mixed wildcards
		{"HelloWorld", "He?lo*ld", true},
		{"HelloWorld", "He?xo*ld", false},
		{"HelloWorld", "*o?ld", true},

		// '?' past the end of the candidate is a mismatch
		{"", "?", false},
		{"a", "a?", false},

		// case and punctuation insensitive on both sides
		{"Main Hall", "main-h*", true},
		{"AMX #2 (foyer)", "amx2*", true},

		// repeated substrings force backtracking over '*' placements
		{"abcabc", "*abc", true},
		{"abcabd", "*abc", false},
		{"xaxbxcx", "*a*c*", true},
		{"axbxaxbxax", "*a*b*a*b*", true},
	}

	for i, tc := range testCases {
		if got := Match(New(tc.name), tc.pattern); got != tc.matched {
			t.Fatalf("[%d] Match(%q, %q) = %v; expected %v", i, tc.name, tc.pattern, got, tc.matched)
		}
	}
}

func TestMatchAbsence(t *testing.T) {
	if !MatchTokens(nil, nil) {
		t.Fatal("nil name and nil tokens must match vacuously")
	}
	if MatchTokens(nil, Tokenize("x")) {
		t.Fatal("nil name must not match a present pattern")
	}
	if MatchTokens(New("x"), nil) {
		t.Fatal("present name must not match absent tokens")
	}
	if Match(nil, "x") {
		t.Fatal("nil name must not match a pattern string")
	}
}

// Pre-tokenized patterns are reusable across many names.
func TestMatchTokensReuse(t *testing.T) {
	tokens := TokenizePattern("Hel*")
	names := FromStrings([]string{"Hello", "Helsinki", "HELP!", "World"})
	want := []bool{true, true, true, false}
	for i, n := range names {
		if got := MatchTokens(n, tokens); got != want[i] {
			t.Fatalf("[%d] MatchTokens(%q) = %v; expected %v", i, n.Original(), got, want[i])
		}
	}
}

// Empty token list (distinct from nil) matches only the empty key.
func TestMatchEmptyTokens(t *testing.T) {
	if !MatchTokens(New(""), Tokens{}) {
		t.Fatal("empty tokens must match an empty key")
	}
	if MatchTokens(New("x"), Tokens{}) {
		t.Fatal("empty tokens must not match a non-empty key")
	}
}
