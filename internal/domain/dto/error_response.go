package dto

import "time"

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid date"`
	ErrorDetails string    `json:"error,omitempty" example:"expected YYYY-MM-DD"`
	Timestamp    time.Time `json:"timestamp" example:"2026-01-02T15:04:05Z"`
}

// NewErrorResponse builds an ErrorResponse stamped with the current UTC time.
// err, when non-nil, becomes ErrorDetails.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}
