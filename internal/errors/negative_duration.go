package errors

import "net/http"

var ErrNegativeDuration = &Exception{
	Message:    "duration must not be negative",
	StatusCode: http.StatusBadRequest,
}
