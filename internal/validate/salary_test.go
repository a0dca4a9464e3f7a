package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSalaryByCurrency(t *testing.T) {
	cases := []struct {
		name     string
		amount   float64
		currency string
		want     Result
	}{
		{"below minimum", 1500, "BOB", Invalid("El salario mínimo es Bs 2,500")},
		{"within bounds", 3000, "BOB", OK},
		{"at minimum", 2500, "BOB", OK},
		{"at maximum", 100000, "BOB", OK},
		{"above maximum", 150000, "BOB", Invalid("El salario máximo es Bs 100,000")},
		{"zero", 0, "BOB", Invalid("salary must be greater than zero")},
		{"negative", -10, "BOB", Invalid("salary must be greater than zero")},
		{"unknown currency positive", 1, "XXX", OK},
		{"unknown currency zero still fails", 0, "XXX", Invalid("salary must be greater than zero")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SalaryByCurrency(tc.amount, tc.currency))
		})
	}
}

func TestSalaryByCountry(t *testing.T) {
	assert.Equal(t, OK, Salary(3000, "Bolivia"))
	assert.Equal(t,
		Invalid("El salario mínimo es Bs 2,500"),
		Salary(1500, "Bolivia"))
	assert.Equal(t,
		Invalid("El salario mínimo es S/ 1,130"),
		Salary(900, "Perú"))
	assert.Equal(t, OK, Salary(123, "Atlantis"))
}

// Grouped thousands must appear in every bound message, whatever the
// currency's magnitude.
func TestSalaryMessagesUseGroupedThousands(t *testing.T) {
	result := Salary(100000, "Chile")
	assert.Equal(t, Invalid("El salario mínimo es $ 500,000"), result)

	result = Salary(70000000, "Colombia")
	assert.Equal(t, Invalid("El salario máximo es $ 60,000,000"), result)
}
