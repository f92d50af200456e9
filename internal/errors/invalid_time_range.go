package errors

import "net/http"

var ErrInvalidTimeRange = &Exception{
	Message:    "end_time must not be before start_time",
	StatusCode: http.StatusBadRequest,
}
