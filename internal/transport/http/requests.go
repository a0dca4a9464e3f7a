package httptransport

// ValidateFieldRequest asks for an authoritative submit-time check of one
// field value. Bounded-text families (name, address, city, country, text)
// use Label/Min/Max; phone, document and department use Country; salary uses
// Amount plus Country or Currency.
type ValidateFieldRequest struct {
	Field    string  `json:"field" validate:"required,oneof=name address city country text phone document salary department"`
	Value    string  `json:"value"`
	Amount   float64 `json:"amount"`
	Country  string  `json:"country"`
	Currency string  `json:"currency"`
	Label    string  `json:"label"`
	Min      int     `json:"min" validate:"min=0"`
	Max      int     `json:"max" validate:"min=0"`
}

// FilterFieldRequest asks for the progressive (per-keystroke) filtering of
// an in-progress value.
type FilterFieldRequest struct {
	Field   string `json:"field" validate:"required,oneof=name city document phone"`
	Value   string `json:"value"`
	Country string `json:"country"`
}

// RecordChangeRequest is submitted by the persistence layer with the pre-
// and post-mutation snapshots of an entity. A missing before means create, a
// missing after means delete.
type RecordChangeRequest struct {
	Before map[string]any `json:"before"`
	After  map[string]any `json:"after"`
}
