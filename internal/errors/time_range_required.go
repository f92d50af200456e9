package errors

import "net/http"

var ErrTimeRangeRequired = &Exception{
	Message:    "start_time and end_time are required",
	StatusCode: http.StatusBadRequest,
}
