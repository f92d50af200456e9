package errors

import (
	"fmt"
	"net/http"
)

// Storage wraps a database fault so callers can tell it apart from
// validation and not-found outcomes.
func Storage(err error) *Exception {
	return &Exception{
		Message:    fmt.Sprintf("storage failure: %v", err),
		StatusCode: http.StatusInternalServerError,
	}
}
