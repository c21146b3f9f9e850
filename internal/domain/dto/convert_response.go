package dto

import (
	"github.com/guttosm/ratebook/internal/domain/models"
	"github.com/shopspring/decimal"
)

// ConvertResponse is returned by POST /api/v1/convert. Results and Errors
// keep input order; Line is the 1-based line number in the request body.
type ConvertResponse struct {
	Results []ResultLine    `json:"results"`
	Errors  []ErrorLine     `json:"errors"`
	Summary SummaryResponse `json:"summary"`
}

// ResultLine is one valued record.
type ResultLine struct {
	Line     int             `json:"line" example:"2"`
	Date     string          `json:"date" example:"2011-01-03"`
	Quantity float64         `json:"quantity" example:"3"`
	Rate     float64         `json:"rate" example:"0.3"`
	RateDate string          `json:"rate_date" example:"2011-01-03"`
	Value    decimal.Decimal `json:"value" swaggertype:"string" example:"0.9"`
	Output   string          `json:"output" example:"2011-01-03 => 3 = 0.9"`
}

// ErrorLine is one rejected record.
type ErrorLine struct {
	Line    int    `json:"line" example:"7"`
	Kind    string `json:"kind" example:"negative_quantity"`
	Message string `json:"message" example:"not a positive number."`
	Output  string `json:"output" example:"Error: not a positive number."`
}

// SummaryResponse counts what happened to the request body's lines.
type SummaryResponse struct {
	Lines   int `json:"lines" example:"10"`
	Results int `json:"results" example:"6"`
	Errors  int `json:"errors" example:"3"`
	Skipped int `json:"skipped" example:"1"`
}

func NewResultLine(r models.Result) ResultLine {
	return ResultLine{
		Line:     r.Line,
		Date:     r.Date,
		Quantity: r.Quantity,
		Rate:     r.Rate,
		RateDate: r.RateDate,
		Value:    r.Product,
		Output:   r.String(),
	}
}

func NewErrorLine(e models.LineError) ErrorLine {
	return ErrorLine{
		Line:    e.Line,
		Kind:    e.Kind.String(),
		Message: e.Message(),
		Output:  "Error: " + e.Message(),
	}
}
