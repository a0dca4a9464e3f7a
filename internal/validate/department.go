package validate

import (
	"fmt"

	"trastienda/internal/country"
)

// Department checks membership in the country's enumerated department/state
// list. An empty value means "not yet chosen" and passes here; whether the
// field may stay unchosen is the caller's concern. Countries without an
// enumerated list accept anything.
func Department(value, countryName string) Result {
	if value == "" {
		return OK
	}
	rule, ok := country.Lookup(countryName)
	if !ok || len(rule.Departments) == 0 {
		return OK
	}
	for _, department := range rule.Departments {
		if department == value {
			return OK
		}
	}
	return Invalid(fmt.Sprintf("%q is not a department of %s", value, countryName))
}
