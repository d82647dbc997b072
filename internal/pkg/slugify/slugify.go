package slugify

import (
	"fmt"
	"strings"
	"unicode"
)

// Make derives a URL-safe slug from a title: lower-cased, runs of
// characters outside [a-z0-9] collapsed to a single hyphen, leading and
// trailing hyphens stripped.
func Make(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) && r < 128 || r >= '0' && r <= '9' {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimRight(b.String(), "-")
}

// WithSuffix appends a numeric suffix to a base slug.
func WithSuffix(base string, n int64) string {
	return fmt.Sprintf("%s-%d", base, n)
}
