package validate

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"trastienda/internal/country"
)

// Salary bound messages are the product's user-facing Spanish copy; amounts
// are formatted with the currency symbol and grouped thousands ("Bs 2,500").
var amountPrinter = message.NewPrinter(language.English)

// Salary checks a monthly amount against the country's salary bounds.
// Amounts must be positive regardless of country; bounds are inclusive.
func Salary(amount float64, countryName string) Result {
	if amount <= 0 {
		return Invalid("salary must be greater than zero")
	}
	rule, ok := country.Lookup(countryName)
	if !ok {
		return OK
	}
	return salaryWithin(amount, rule.Salary)
}

// SalaryByCurrency is Salary for callers that know the currency code rather
// than the country.
func SalaryByCurrency(amount float64, currencyCode string) Result {
	if amount <= 0 {
		return Invalid("salary must be greater than zero")
	}
	salary, ok := country.LookupSalaryByCurrency(currencyCode)
	if !ok {
		return OK
	}
	return salaryWithin(amount, salary)
}

func salaryWithin(amount float64, salary country.SalaryRule) Result {
	if amount < salary.Min {
		return Invalid(fmt.Sprintf("El salario mínimo es %s", formatAmount(salary.Symbol, salary.Min)))
	}
	if amount > salary.Max {
		return Invalid(fmt.Sprintf("El salario máximo es %s", formatAmount(salary.Symbol, salary.Max)))
	}
	return OK
}

func formatAmount(symbol string, amount float64) string {
	return amountPrinter.Sprintf("%s %v", symbol, number.Decimal(amount))
}
