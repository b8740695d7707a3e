package utils

import "strings"

// MaskPII shortens identifying strings for logs and debug output: the
// first and last two characters survive, the middle is starred. Emails
// keep their domain.
func MaskPII(s string) string {
	if s == "" {
		return s
	}
	if i := strings.Index(s, "@"); i > 0 {
		local := s[:i]
		if len(local) > 2 {
			local = local[:2]
		}
		return local + "***@" + s[i+1:]
	}
	if len(s) < 5 {
		return "***"
	}
	return s[:2] + "***" + s[len(s)-2:]
}
