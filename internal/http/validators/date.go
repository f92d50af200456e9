package validators

import (
	"time"

	apperrors "task-time-tracker.com/task-time-tracker/internal/errors"
)

func ValidateDate(value string) error {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return apperrors.ErrInvalidDate
	}
	return nil
}
