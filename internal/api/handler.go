package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/ratebook/internal/domain/dto"
	"github.com/guttosm/ratebook/internal/middleware"
	"github.com/guttosm/ratebook/internal/service"
)

// Handler serves the conversion and rate lookup endpoints.
type Handler struct {
	svc          service.ConversionService
	maxBodyBytes int64
}

// NewHandler builds a Handler. Convert bodies above maxBodyBytes are
// rejected with 413.
func NewHandler(svc service.ConversionService, maxBodyBytes int64) *Handler {
	return &Handler{svc: svc, maxBodyBytes: maxBodyBytes}
}

// Convert godoc
// @Summary      Convert a record stream
// @Description  Values every "YYYY-MM-DD | quantity" line of the body at the rate of that date, or of the closest earlier date. Bad lines are reported and skipped; they never fail the request.
// @Tags         convert
// @Accept       plain
// @Produce      json
// @Param        body  body      string               true  "Record stream, optional 'date | value' header"
// @Success      200   {object}  dto.ConvertResponse  "Success"
// @Failure      413   {object}  dto.ErrorResponse    "Body too large"
// @Failure      500   {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/v1/convert [post]
func (h *Handler) Convert(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)

	conv, err := h.svc.Convert(c.Request.Context(), body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			middleware.AbortWithError(c, http.StatusRequestEntityTooLarge, "request body too large", err)
		case errors.Is(err, context.DeadlineExceeded):
			middleware.AbortWithError(c, http.StatusServiceUnavailable, "conversion timed out", err)
		default:
			middleware.AbortWithError(c, http.StatusInternalServerError, "failed to convert records", err)
		}
		return
	}

	resp := dto.ConvertResponse{
		Results: make([]dto.ResultLine, 0, len(conv.Results)),
		Errors:  make([]dto.ErrorLine, 0, len(conv.Errors)),
		Summary: dto.SummaryResponse{
			Lines:   conv.Summary.Lines,
			Results: conv.Summary.Results,
			Errors:  conv.Summary.Errors,
			Skipped: conv.Summary.Skipped,
		},
	}
	for _, r := range conv.Results {
		resp.Results = append(resp.Results, dto.NewResultLine(r))
	}
	for _, e := range conv.Errors {
		resp.Errors = append(resp.Errors, dto.NewErrorLine(e))
	}

	c.JSON(http.StatusOK, resp)
}

// GetRate godoc
// @Summary      Rate for a date
// @Description  Returns the rate of the given date, or of the closest earlier date in the table
// @Tags         rates
// @Produce      json
// @Param        date  path      string             true  "Date in YYYY-MM-DD" example(2011-01-10)
// @Success      200   {object}  dto.RateResponse   "Success"
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404   {object}  dto.ErrorResponse  "Not Found"
// @Router       /api/v1/rates/{date} [get]
func (h *Handler) GetRate(c *gin.Context) {
	date := c.Param("date")

	entry, err := h.svc.RateFor(date)
	switch {
	case errors.Is(err, service.ErrInvalidDate):
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", err)
		return
	case errors.Is(err, service.ErrNoRate):
		middleware.AbortWithError(c, http.StatusNotFound, "no rate on or before "+date, err)
		return
	case err != nil:
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to look up rate", err)
		return
	}

	c.JSON(http.StatusOK, dto.RateResponse{Date: date, RateDate: entry.Date, Rate: entry.Rate})
}

// ListRates godoc
// @Summary      List rates
// @Description  Entries of the loaded rate table, oldest first, optionally bounded by date
// @Tags         rates
// @Produce      json
// @Param        from  query     string  false  "First date (YYYY-MM-DD), inclusive"
// @Param        to    query     string  false  "Last date (YYYY-MM-DD), inclusive"
// @Success      200   {object}  dto.RatesResponse  "Success"
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Router       /api/v1/rates [get]
func (h *Handler) ListRates(c *gin.Context) {
	rates, err := h.svc.Rates(c.Query("from"), c.Query("to"))
	switch {
	case errors.Is(err, service.ErrInvalidDate):
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid from/to date, expected YYYY-MM-DD", err)
		return
	case err != nil:
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to list rates", err)
		return
	}

	c.JSON(http.StatusOK, dto.RatesResponse{Count: len(rates), Rates: rates})
}

// GetRatesSummary godoc
// @Summary      Rate table summary
// @Description  Size and date range of the loaded rate table
// @Tags         rates
// @Produce      json
// @Success      200  {object}  dto.RatesSummaryResponse  "Success"
// @Router       /api/v1/rates/summary [get]
func (h *Handler) GetRatesSummary(c *gin.Context) {
	sum := h.svc.Summary()
	c.JSON(http.StatusOK, dto.RatesSummaryResponse{Count: sum.Count, First: sum.First, Last: sum.Last})
}
