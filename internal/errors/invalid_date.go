package errors

import "net/http"

var ErrInvalidDate = &Exception{
	Message:    "date parameters must be valid YYYY-MM-DD dates",
	StatusCode: http.StatusBadRequest,
}
