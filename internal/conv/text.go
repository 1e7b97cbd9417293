package conv

import "fmt"

// Text converts an arbitrary value into its textual representation.  Strings
// pass through unchanged and fmt.Stringer implementations are honoured before
// falling back to fmt.Sprint.
func Text(v interface{}) string {
	switch actual := v.(type) {
	case string:
		return actual
	case fmt.Stringer:
		return actual.String()
	default:
		return fmt.Sprint(actual)
	}
}
