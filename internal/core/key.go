package core

import "strings"

// CanonicalKey normalizes a join key for comparison: surrounding whitespace
// trimmed, upper-cased.  Every key comparison in the resolution pipeline
// (switch model, slot id, OEM part number) goes through this form.
func CanonicalKey(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
