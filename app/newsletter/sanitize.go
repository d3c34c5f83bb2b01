package newsletter

import (
	"regexp"
	"strings"
)

const maxUTMLength = 200

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	unsafeRe = regexp.MustCompile(`[^\w\s.-]`)
)

// IsValidEmail applies the basic address pattern used by the subscribe
// endpoint. Deliverability is the upstream API's problem.
func IsValidEmail(value string) bool {
	return emailRe.MatchString(strings.TrimSpace(value))
}

// SanitizeUTM trims an attribution value, caps its length and strips
// everything outside alphanumerics, whitespace, dots and hyphens.
func SanitizeUTM(value string) string {
	trimmed := strings.TrimSpace(value)
	if runes := []rune(trimmed); len(runes) > maxUTMLength {
		trimmed = string(runes[:maxUTMLength])
	}
	return unsafeRe.ReplaceAllString(trimmed, "")
}
