package validators

import (
	"time"

	"task-time-tracker.com/task-time-tracker/internal/constants"
	dto "task-time-tracker.com/task-time-tracker/internal/data_models"
	apperrors "task-time-tracker.com/task-time-tracker/internal/errors"
)

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Title == "" {
		return apperrors.ErrTitleRequired
	}
	if r.EstimatedHours < 0 {
		return apperrors.ErrNegativeHours
	}
	if r.ActualHours < 0 {
		return apperrors.ErrNegativeActualHours
	}
	if _, err := time.Parse("2006-01-02", r.StartDate); err != nil {
		return apperrors.ErrInvalidStartDate
	}

	switch constants.TaskStatus(r.Status) {
	case constants.StatusNotStarted, constants.StatusInProgress, constants.StatusCompleted:
	default:
		return apperrors.ErrInvalidStatus
	}

	return nil
}
