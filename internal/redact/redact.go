// Package redact scrubs sensitive information from strings before they are
// logged or returned in error responses. Driver errors from MongoDB and
// PostgreSQL routinely echo connection strings, hosts and credentials; this
// package keeps those out of logs and API bodies.
package redact

import (
	"regexp"
)

// Constants for redaction placeholders
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Order matters: credentials first, then paths, then bare hosts.
var rules = []rule{
	{
		// userinfo section of mongodb://, mongodb+srv://, postgres:// and similar URIs
		pattern:     regexp.MustCompile(`(?i)\b(mongodb(?:\+srv)?|postgres(?:ql)?|mysql|redis)://[^@\s/]+@`),
		placeholder: RedactedCredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)\b(password|passwd|pwd)\s*[=:]\s*['"]?[^'"&\s]{3,}`),
		placeholder: RedactedCredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)\b(api[_-]?key|token|secret|authSource|authMechanism)\s*[=:]\s*['"]?[A-Za-z0-9_\-.~+/]{4,}`),
		placeholder: RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?:/[\w.-]+){2,}`),
		placeholder: RedactedPathPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}(?::\d{1,5})?\b`),
		placeholder: RedactedHostPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`),
		placeholder: RedactedHostPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\blocalhost:\d{1,5}\b`),
		placeholder: RedactedHostPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
