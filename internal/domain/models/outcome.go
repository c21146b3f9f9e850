package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrorKind classifies why a record line produced no result.
type ErrorKind int

const (
	// MalformedLine means the line has no "|" separator.
	MalformedLine ErrorKind = iota + 1
	// MalformedDate means the date field is not a valid YYYY-MM-DD calendar day.
	MalformedDate
	// MalformedQuantity means the quantity field is not exactly one number.
	MalformedQuantity
	// NegativeQuantity means the quantity is below zero.
	NegativeQuantity
	// QuantityTooLarge means the quantity is above the accepted maximum.
	QuantityTooLarge
	// NoRateAvailable means the date precedes every known rate.
	NoRateAvailable
)

var errorKindNames = map[ErrorKind]string{
	MalformedLine:     "malformed_line",
	MalformedDate:     "malformed_date",
	MalformedQuantity: "malformed_quantity",
	NegativeQuantity:  "negative_quantity",
	QuantityTooLarge:  "quantity_too_large",
	NoRateAvailable:   "no_rate_available",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("error_kind(%d)", int(k))
}

// LineError is the failure variant of a line outcome.
//
// Input holds the text the message refers to: the raw line for
// MalformedLine and NoRateAvailable, the trimmed field otherwise.
type LineError struct {
	Kind  ErrorKind
	Line  int
	Input string
}

// Message renders the diagnostic text, without the "Error: " prefix.
func (e *LineError) Message() string {
	switch e.Kind {
	case NegativeQuantity:
		return "not a positive number."
	case QuantityTooLarge:
		return "too large a number."
	default:
		return "bad input => " + e.Input
	}
}

func (e *LineError) Error() string { return e.Message() }

// Result is the success variant of a line outcome.
type Result struct {
	Line     int
	Date     string
	Quantity float64
	Rate     float64
	RateDate string
	Product  decimal.Decimal
}

// NewResult values rec at the given rate entry. The product is computed on
// the shortest decimal representations of both operands, so 3 x 0.3 is 0.9.
func NewResult(line int, rec Record, rate RateEntry) *Result {
	return &Result{
		Line:     line,
		Date:     rec.Date,
		Quantity: rec.Quantity,
		Rate:     rate.Rate,
		RateDate: rate.Date,
		Product:  decimal.NewFromFloat(rec.Quantity).Mul(decimal.NewFromFloat(rate.Rate)),
	}
}

// QuantityText renders the quantity as a plain decimal ("3", "1.2").
func (r *Result) QuantityText() string {
	return decimal.NewFromFloat(r.Quantity).String()
}

// String renders the result line: "<date> => <quantity> = <product>".
func (r *Result) String() string {
	return r.Date + " => " + r.QuantityText() + " = " + r.Product.String()
}

// Outcome is what one non-skipped record line turns into: exactly one of
// Result or Err is set.
type Outcome struct {
	Result *Result
	Err    *LineError
}

// OK reports whether the line produced a result.
func (o Outcome) OK() bool { return o.Err == nil }
