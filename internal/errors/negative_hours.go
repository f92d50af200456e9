package errors

import "net/http"

var ErrNegativeHours = &Exception{
	Message:    "estimated_hours must not be negative",
	StatusCode: http.StatusBadRequest,
}
