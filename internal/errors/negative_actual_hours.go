package errors

import "net/http"

var ErrNegativeActualHours = &Exception{
	Message:    "actual_hours must not be negative",
	StatusCode: http.StatusBadRequest,
}
