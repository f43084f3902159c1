package notify

import "regexp"

// RedactedText replaces every secret Redact finds.
const RedactedText = "[REDACTED]"

type redactionRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Applied in order; each rule sees the output of the previous one.
var redactionRules = []redactionRule{
	{
		pattern:     regexp.MustCompile(`(?i)(authorization\s*[:=]\s*bearer\s+)[^\s]+`),
		replacement: "${1}" + RedactedText,
	},
	{
		pattern:     regexp.MustCompile(`(?i)((?:token|secret|password|api[_-]?key)\s*[:=]\s*)[^\s,;]+`),
		replacement: "${1}" + RedactedText,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(https?://[^/\s:@]+:)[^@\s/]+@`),
		replacement: "${1}" + RedactedText + "@",
	},
	{
		pattern:     regexp.MustCompile(`(?i)([?&](?:token|key|secret|sig)=)[^&\s]+`),
		replacement: "${1}" + RedactedText,
	},
}

// Redact masks credentials in s: bearer tokens, key=value style secrets,
// URL passwords and secret query parameters.
func Redact(s string) string {
	for _, rule := range redactionRules {
		s = rule.pattern.ReplaceAllString(s, rule.replacement)
	}
	return s
}
