package validators

import (
	"time"

	dto "task-time-tracker.com/task-time-tracker/internal/data_models"
	apperrors "task-time-tracker.com/task-time-tracker/internal/errors"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return apperrors.ErrTitleRequired
	}
	if r.EstimatedHours < 0 {
		return apperrors.ErrNegativeHours
	}
	if _, err := time.Parse("2006-01-02", r.StartDate); err != nil {
		return apperrors.ErrInvalidStartDate
	}
	return nil
}
