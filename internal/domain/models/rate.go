package models

// RateEntry is one row of the reference dataset: the rate in force on a
// calendar day.
//
// Date is kept as the zero-padded "YYYY-MM-DD" text it was loaded from, so
// string order and chronological order coincide.
type RateEntry struct {
	Date string  `json:"date" example:"2011-01-03"`
	Rate float64 `json:"rate" example:"0.3"`
}

// Record is one parsed line of the record stream. It is built, validated,
// valued and discarded; records are never stored.
type Record struct {
	Date     string
	Quantity float64
}
