// Package redact strips sensitive information from strings before they are
// logged. Error text from the database driver or the auth path can carry
// connection strings, email addresses, SQL fragments, or password material;
// nothing in this package ever reaches a response body, but log sinks are
// long-lived and deserve the same care.
package redact

import "regexp"

// Redaction placeholders
const (
	redactedCredential = "[REDACTED_CREDENTIAL]"
	redactedEmail      = "[REDACTED_EMAIL]"
	redactedSQL        = "[REDACTED_SQL]"
	redactedHash       = "[REDACTED_HASH]"
)

var redactions = []struct {
	pattern     *regexp.Regexp
	placeholder string
}{
	// Database connection strings with inline credentials
	{regexp.MustCompile(`(?i)(postgres|postgresql)://[^@\s]+@`), redactedCredential},

	// password=..., pwd: '...' style fragments
	{regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`), redactedCredential},

	// bcrypt hashes
	{regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}`), redactedHash},

	// Email addresses
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), redactedEmail},

	// SQL statement fragments echoed back by the driver
	{regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE)\s[\s\w,*()='"$]+(FROM|INTO|SET)\b[^;]*`), redactedSQL},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range redactions {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's message.
// Returns an empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
