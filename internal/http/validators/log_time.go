package validators

import (
	dto "task-time-tracker.com/task-time-tracker/internal/data_models"
	apperrors "task-time-tracker.com/task-time-tracker/internal/errors"
)

// ValidateLogTimeRequest checks the entry shape. Duration is deliberately
// not compared against the start/end span: callers supply it independently
// and the two may diverge.
func ValidateLogTimeRequest(r *dto.LogTimeRequest) error {
	if r.TaskID == "" {
		return apperrors.ErrTaskIDRequired
	}
	if r.StartTime.IsZero() || r.EndTime.IsZero() {
		return apperrors.ErrTimeRangeRequired
	}
	if r.EndTime.Before(r.StartTime) {
		return apperrors.ErrInvalidTimeRange
	}
	if r.Duration < 0 {
		return apperrors.ErrNegativeDuration
	}
	return nil
}
