// Package conv provides a small best-effort textual conversion helper used
// when arbitrary values need to participate in name comparisons.
package conv
