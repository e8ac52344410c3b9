package utils

import "github.com/microcosm-cc/bluemonday"

// policy strips every HTML element and attribute, including script bodies.
// Safe for concurrent use.
var policy = bluemonday.StrictPolicy()

// Clean removes all markup from a free-text field to block stored XSS.
func Clean(s string) string {
	return policy.Sanitize(s)
}

// CleanOptional sanitizes a free-text field and normalizes an empty result to
// absent, so values that clean away entirely are stored as NULL rather than "".
func CleanOptional(s string) *string {
	cleaned := policy.Sanitize(s)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}
