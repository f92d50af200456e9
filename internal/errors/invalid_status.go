package errors

import "net/http"

var ErrInvalidStatus = &Exception{
	Message:    "status must be one of not_started, in_progress, completed",
	StatusCode: http.StatusBadRequest,
}
