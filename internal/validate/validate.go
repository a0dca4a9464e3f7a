// Package validate holds the authoritative submit-time field validators.
// Validators are total functions of (value, country rule): they never touch
// I/O, never mutate their inputs, and report failures as values rather than
// errors so the UI can render them inline. They deliberately do not assume
// their input went through the matching progressive filter.
package validate

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Result is either valid or carries a user-facing reason.
type Result struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// OK is the shared valid result.
var OK = Result{Valid: true}

// Invalid builds a failed result with the given reason.
func Invalid(reason string) Result {
	return Result{Reason: reason}
}

// Bounds is an inclusive character-count range for free-text fields.
type Bounds struct {
	Min int
	Max int
}

// RequiredBounded checks presence and length for names, addresses, cities,
// business names, and bounded notes. Length counts runes, not bytes.
func RequiredBounded(value string, bounds Bounds, label string) Result {
	if strings.TrimSpace(value) == "" {
		return Invalid(fmt.Sprintf("%s is required", label))
	}
	length := utf8.RuneCountInString(value)
	if bounds.Min > 0 && length < bounds.Min {
		return Invalid(fmt.Sprintf("%s must be at least %d characters", label, bounds.Min))
	}
	if bounds.Max > 0 && length > bounds.Max {
		return Invalid(fmt.Sprintf("%s must not exceed %d characters", label, bounds.Max))
	}
	return OK
}

func digitsOnly(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, value)
}

func alphanumericOnly(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, value)
}
