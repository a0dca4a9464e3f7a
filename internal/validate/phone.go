package validate

import (
	"fmt"
	"strings"

	"trastienda/internal/country"
)

// Phone checks a phone number against the country's local-number rules.
// Non-digits are stripped and the calling-code prefix removed if present.
// When the number violates both the starting-digit rule and the length rule,
// the starting-digit failure is the one reported; that precedence is a fixed
// policy and tests depend on it.
func Phone(value, countryName string) Result {
	digits := digitsOnly(value)
	if digits == "" {
		return Invalid("phone number is required")
	}

	rule, ok := country.Lookup(countryName)
	if !ok {
		return OK
	}
	local := strings.TrimPrefix(digits, rule.Phone.Prefix)

	if allowed := rule.Phone.AllowedStartDigits; allowed != "" && local != "" {
		if !strings.ContainsRune(allowed, rune(local[0])) {
			return Invalid(fmt.Sprintf("phone number must start with %s", digitAlternatives(allowed)))
		}
	}

	if want := rule.Phone.LocalLength; want > 0 && len(local) != want {
		if missing := want - len(local); missing > 0 {
			return Invalid(fmt.Sprintf("phone number is missing %d %s", missing, pluralDigits(missing)))
		}
		extra := len(local) - want
		return Invalid(fmt.Sprintf("phone number has %d extra %s", extra, pluralDigits(extra)))
	}
	return OK
}

func pluralDigits(n int) string {
	if n == 1 {
		return "digit"
	}
	return "digits"
}

// digitAlternatives renders "6", "6 or 7", "3, 6 or 7".
func digitAlternatives(digits string) string {
	if len(digits) <= 1 {
		return digits
	}
	parts := strings.Split(digits, "")
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}
