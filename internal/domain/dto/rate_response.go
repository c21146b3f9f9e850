package dto

import "github.com/guttosm/ratebook/internal/domain/models"

// RateResponse is returned by GET /api/v1/rates/{date}. RateDate is the key
// whose rate applied: Date itself or the closest earlier date.
type RateResponse struct {
	Date     string  `json:"date" example:"2011-01-10"`
	RateDate string  `json:"rate_date" example:"2011-01-09"`
	Rate     float64 `json:"rate" example:"0.32"`
}

// RatesResponse is returned by GET /api/v1/rates.
type RatesResponse struct {
	Count int                `json:"count" example:"2"`
	Rates []models.RateEntry `json:"rates"`
}

// RatesSummaryResponse is returned by GET /api/v1/rates/summary.
type RatesSummaryResponse struct {
	Count int              `json:"count" example:"1612"`
	First models.RateEntry `json:"first"`
	Last  models.RateEntry `json:"last"`
}
