package errors

import "net/http"

var ErrInvalidStartDate = &Exception{
	Message:    "start_date must be a valid YYYY-MM-DD date",
	StatusCode: http.StatusBadRequest,
}
