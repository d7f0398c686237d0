// Package slug derives the canonical URL-safe form of a title. Detail routes
// compare an incoming slug against Make(title) and redirect when they differ.
package slug

import "strings"

// Make lowercases the title and collapses every run of non-alphanumeric
// characters into a single hyphen. Deterministic and idempotent:
// Make(Make(s)) == Make(s).
func Make(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingSep := false
	for _, r := range strings.ToLower(title) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('-')
			pendingSep = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
