// Package country holds the static per-country rule tables used by the
// progressive input filters and the field validators. The tables are built
// once at init and are read-only afterwards, so lookups are safe from any
// goroutine without coordination.
package country

// PhoneRule constrains the local number, i.e. the digits that follow the
// country calling-code prefix.
type PhoneRule struct {
	// Prefix is the calling-code digit string without "+" (e.g. "591").
	Prefix string
	// LocalLength is the exact digit count of the local number.
	// Zero means unconstrained.
	LocalLength int
	// AllowedStartDigits lists the digits the local number may begin with.
	// Empty means unconstrained.
	AllowedStartDigits string
}

// DocumentRule describes the national identity document.
type DocumentRule struct {
	// Name is the display label shown next to the field (e.g. "DNI", "CI").
	Name string
	// MaxLength bounds the alphanumeric document value.
	MaxLength int
}

// SalaryRule bounds monthly salaries in the country's currency.
type SalaryRule struct {
	CurrencyCode string
	Symbol       string
	Min          float64
	Max          float64
}

// Rule is the complete constraint set for one country. A country either has
// a complete entry or no entry at all; partial entries are not supported.
type Rule struct {
	Phone       PhoneRule
	Document    DocumentRule
	Salary      SalaryRule
	Departments []string
}

// rules is keyed by the canonical country name used system-wide. Accented
// forms are part of the key ("Perú", "España", "México"); no normalization
// happens on lookup.
var rules = map[string]Rule{
	"Bolivia": {
		Phone:    PhoneRule{Prefix: "591", LocalLength: 8, AllowedStartDigits: "67"},
		Document: DocumentRule{Name: "CI", MaxLength: 10},
		Salary:   SalaryRule{CurrencyCode: "BOB", Symbol: "Bs", Min: 2500, Max: 100000},
		Departments: []string{
			"Beni", "Chuquisaca", "Cochabamba", "La Paz", "Oruro",
			"Pando", "Potosí", "Santa Cruz", "Tarija",
		},
	},
	"Perú": {
		Phone:    PhoneRule{Prefix: "51", LocalLength: 9, AllowedStartDigits: "9"},
		Document: DocumentRule{Name: "DNI", MaxLength: 8},
		Salary:   SalaryRule{CurrencyCode: "PEN", Symbol: "S/", Min: 1130, Max: 80000},
		Departments: []string{
			"Amazonas", "Áncash", "Apurímac", "Arequipa", "Ayacucho",
			"Cajamarca", "Callao", "Cusco", "Huancavelica", "Huánuco",
			"Ica", "Junín", "La Libertad", "Lambayeque", "Lima",
			"Loreto", "Madre de Dios", "Moquegua", "Pasco", "Piura",
			"Puno", "San Martín", "Tacna", "Tumbes", "Ucayali",
		},
	},
	"Chile": {
		Phone:    PhoneRule{Prefix: "56", LocalLength: 9, AllowedStartDigits: "9"},
		Document: DocumentRule{Name: "RUT", MaxLength: 9},
		Salary:   SalaryRule{CurrencyCode: "CLP", Symbol: "$", Min: 500000, Max: 20000000},
	},
	"Argentina": {
		Phone:    PhoneRule{Prefix: "54", LocalLength: 10},
		Document: DocumentRule{Name: "DNI", MaxLength: 8},
		Salary:   SalaryRule{CurrencyCode: "ARS", Symbol: "$", Min: 280000, Max: 15000000},
	},
	"Colombia": {
		Phone:    PhoneRule{Prefix: "57", LocalLength: 10, AllowedStartDigits: "3"},
		Document: DocumentRule{Name: "CC", MaxLength: 10},
		Salary:   SalaryRule{CurrencyCode: "COP", Symbol: "$", Min: 1423500, Max: 60000000},
	},
	"Ecuador": {
		Phone:    PhoneRule{Prefix: "593", LocalLength: 9, AllowedStartDigits: "9"},
		Document: DocumentRule{Name: "CI", MaxLength: 10},
		Salary:   SalaryRule{CurrencyCode: "USD", Symbol: "$", Min: 470, Max: 25000},
	},
	"Paraguay": {
		Phone:    PhoneRule{Prefix: "595", LocalLength: 9, AllowedStartDigits: "9"},
		Document: DocumentRule{Name: "CI", MaxLength: 7},
		Salary:   SalaryRule{CurrencyCode: "PYG", Symbol: "₲", Min: 2800000, Max: 90000000},
	},
	"Uruguay": {
		Phone:    PhoneRule{Prefix: "598", LocalLength: 8, AllowedStartDigits: "9"},
		Document: DocumentRule{Name: "CI", MaxLength: 8},
		Salary:   SalaryRule{CurrencyCode: "UYU", Symbol: "$U", Min: 23600, Max: 900000},
	},
	"México": {
		Phone:    PhoneRule{Prefix: "52", LocalLength: 10},
		Document: DocumentRule{Name: "CURP", MaxLength: 18},
		Salary:   SalaryRule{CurrencyCode: "MXN", Symbol: "$", Min: 8500, Max: 400000},
	},
	"España": {
		Phone:    PhoneRule{Prefix: "34", LocalLength: 9, AllowedStartDigits: "67"},
		Document: DocumentRule{Name: "DNI", MaxLength: 9},
		Salary:   SalaryRule{CurrencyCode: "EUR", Symbol: "€", Min: 1134, Max: 60000},
	},
}

// byCurrency indexes salary rules by currency code for callers that know the
// currency but not the country. Built once at init.
var byCurrency = func() map[string]SalaryRule {
	m := make(map[string]SalaryRule, len(rules))
	for _, rule := range rules {
		m[rule.Salary.CurrencyCode] = rule.Salary
	}
	return m
}()

// Lookup returns the rule entry for the given canonical country name. The
// second return is false for unknown countries; callers must treat that as
// "no country-specific constraint", never as a failure.
func Lookup(name string) (Rule, bool) {
	rule, ok := rules[name]
	return rule, ok
}

// LookupSalaryByCurrency returns the salary bounds for a currency code.
func LookupSalaryByCurrency(code string) (SalaryRule, bool) {
	rule, ok := byCurrency[code]
	return rule, ok
}

// Names returns every country that has a rule entry. Order is unspecified.
func Names() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	return names
}
