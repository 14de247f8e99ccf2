package templates

import (
	"strconv"
	"strings"
)

// numberedList renders "T0, T1, T2" style type parameter and argument
// lists for the combinator signatures.
func numberedList(prefix string, count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = prefix + strconv.Itoa(i)
	}
	return strings.Join(parts, ", ")
}
