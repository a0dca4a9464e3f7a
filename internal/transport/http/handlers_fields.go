package httptransport

import (
	"net/http"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"trastienda/internal/inputfilter"
	"trastienda/internal/validate"
)

var labelTitler = cases.Title(language.English)

func (h *Handler) handleValidateField(w http.ResponseWriter, r *http.Request) {
	var req ValidateFieldRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result := h.runValidator(req)
	if !result.Valid {
		h.metrics.ValidationFailures.WithLabelValues(req.Field).Inc()
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) runValidator(req ValidateFieldRequest) validate.Result {
	switch req.Field {
	case "phone":
		return validate.Phone(req.Value, req.Country)
	case "document":
		return validate.Document(req.Value, req.Country)
	case "salary":
		if req.Currency != "" {
			return validate.SalaryByCurrency(req.Amount, req.Currency)
		}
		return validate.Salary(req.Amount, req.Country)
	case "department":
		return validate.Department(req.Value, req.Country)
	default:
		// name, address, city, country, text
		label := req.Label
		if label == "" {
			label = labelTitler.String(req.Field)
		}
		return validate.RequiredBounded(req.Value, validate.Bounds{Min: req.Min, Max: req.Max}, label)
	}
}

func (h *Handler) handleFilterField(w http.ResponseWriter, r *http.Request) {
	var req FilterFieldRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	var filtered, hint string
	switch req.Field {
	case "name":
		filtered = inputfilter.Name(req.Value)
	case "city":
		filtered = inputfilter.City(req.Value)
	case "document":
		filtered = inputfilter.Document(req.Value, req.Country)
	case "phone":
		filtered = inputfilter.PhoneLeadingDigit(digitsOnly(req.Value), req.Country)
		hint = inputfilter.StartDigitsHint(req.Country)
	}

	writeJSON(w, http.StatusOK, FilterFieldResponse{Value: filtered, Hint: hint})
}

func digitsOnly(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, value)
}
