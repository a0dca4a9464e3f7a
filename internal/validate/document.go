package validate

import (
	"fmt"
	"unicode/utf8"

	"trastienda/internal/country"
)

// Document checks a national identity document value against the country's
// document rule. Non-alphanumerics are stripped before measuring, mirroring
// what the progressive filter keeps. Presence is the caller's concern; an
// empty value is valid here.
func Document(value, countryName string) Result {
	rule, ok := country.Lookup(countryName)
	if !ok {
		return OK
	}
	cleaned := alphanumericOnly(value)
	if utf8.RuneCountInString(cleaned) > rule.Document.MaxLength {
		return Invalid(fmt.Sprintf("%s must not exceed %d characters",
			rule.Document.Name, rule.Document.MaxLength))
	}
	return OK
}
