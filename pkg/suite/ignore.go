package suite

import "strings"

// IgnoreList holds substring patterns for known-unsupported failures. A
// matching record is still rendered but excluded from the failure gate, so
// intentionally skipped cases stay visible without blocking CI. Patterns
// match case-sensitively against the rendered record message; the list's
// exact wording is part of the documented skip rationale, so matching stays
// literal.
type IgnoreList struct {
	patterns []string
}

// Ignore registers one substring pattern. Registration is additive and
// idempotent.
func (l *IgnoreList) Ignore(pattern string) {
	l.patterns = append(l.patterns, pattern)
}

// ShouldIgnore reports whether any registered pattern is a substring of msg.
func (l *IgnoreList) ShouldIgnore(msg string) bool {
	for _, p := range l.patterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
