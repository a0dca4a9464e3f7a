// Package inputfilter sanitizes in-progress form input character by
// character, so characters a field can never accept are stripped as they are
// typed. This is pure domain logic - no I/O, no side effects. Completeness
// checks (length, required, bounds) belong to the validate package, which
// runs at submit time.
package inputfilter

import (
	"fmt"
	"strings"
	"unicode"

	"trastienda/internal/country"
)

// Name keeps letters (including accented letters) and spaces.
// Country-independent.
func Name(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || r == ' ' {
			return r
		}
		return -1
	}, raw)
}

// City keeps the same character class as Name plus the hyphen.
func City(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || r == ' ' || r == '-' {
			return r
		}
		return -1
	}, raw)
}

// Document strips non-alphanumeric characters, upper-cases the rest, and
// truncates to the country's document max length when a rule exists. With no
// rule the value is kept untruncated.
func Document(raw, countryName string) string {
	kept := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToUpper(r)
		}
		return -1
	}, raw)

	rule, ok := country.Lookup(countryName)
	if !ok {
		return kept
	}
	runes := []rune(kept)
	if len(runes) > rule.Document.MaxLength {
		runes = runes[:rule.Document.MaxLength]
	}
	return string(runes)
}

// PhoneLeadingDigit models "reject the keystroke that just made the number
// invalid": given the digits typed after the calling-code prefix, if the
// country constrains starting digits and the first digit is not allowed, that
// first digit is dropped and the remainder returned. The rest of the string
// is never touched, and re-applying to an already-valid value is a no-op.
func PhoneLeadingDigit(localDigits, countryName string) string {
	if localDigits == "" {
		return localDigits
	}
	rule, ok := country.Lookup(countryName)
	if !ok || rule.Phone.AllowedStartDigits == "" {
		return localDigits
	}
	first := rune(localDigits[0])
	if strings.ContainsRune(rule.Phone.AllowedStartDigits, first) {
		return localDigits
	}
	return localDigits[1:]
}

// StartDigitsHint describes which digits may start a local number for the
// country, or "" when unconstrained.
func StartDigitsHint(countryName string) string {
	rule, ok := country.Lookup(countryName)
	if !ok || rule.Phone.AllowedStartDigits == "" {
		return ""
	}
	return fmt.Sprintf("Mobile numbers in %s start with %s",
		countryName, digitList(rule.Phone.AllowedStartDigits))
}

// digitList renders "6", "6 or 7", "3, 6 or 7".
func digitList(digits string) string {
	switch len(digits) {
	case 0:
		return ""
	case 1:
		return digits
	}
	parts := strings.Split(digits, "")
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}
