package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"task-time-tracker.com/task-time-tracker/internal/constants"
	dto "task-time-tracker.com/task-time-tracker/internal/data_models"
	apperrors "task-time-tracker.com/task-time-tracker/internal/errors"
	model "task-time-tracker.com/task-time-tracker/internal/models"
	repository "task-time-tracker.com/task-time-tracker/internal/repositories"
)

// LedgerService records tasks and time entries. Unlike the directory and
// reporting services it surfaces failures as typed errors: validation and
// not-found map to 4xx exceptions, everything else is a storage fault.
type LedgerService struct {
	repo *repository.TaskRepository
}

func NewLedgerService(repo *repository.TaskRepository) *LedgerService {
	return &LedgerService{repo: repo}
}

func (s *LedgerService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*model.Task, error) {
	task, err := s.repo.CreateTask(ctx, req.Title, req.Description, req.EstimatedHours, req.StartDate, req.BasAccount)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return task, nil
}

func (s *LedgerService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.Storage(err)
	}
	return task, nil
}

func (s *LedgerService) ListTasks(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return tasks, nil
}

func (s *LedgerService) UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest) (*model.Task, error) {
	task := &model.Task{
		ID:             id,
		Title:          req.Title,
		Description:    req.Description,
		EstimatedHours: req.EstimatedHours,
		ActualHours:    req.ActualHours,
		StartDate:      req.StartDate,
		Status:         constants.TaskStatus(req.Status),
		BasAccount:     req.BasAccount,
	}

	if err := s.repo.Update(ctx, task); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.Storage(err)
	}

	return s.GetTask(ctx, id)
}

func (s *LedgerService) DeleteTask(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return apperrors.Storage(err)
	}
	return nil
}

// LogTime appends a time entry and updates the owning task's rollup in one
// transaction. A task id that matches nothing is a not-found outcome, not a
// fault.
func (s *LedgerService) LogTime(ctx context.Context, req dto.LogTimeRequest) (*model.TimeEntry, error) {
	entry, err := s.repo.LogTime(ctx, req.TaskID, req.StartTime, req.EndTime, req.Duration, req.Notes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.Storage(err)
	}
	return entry, nil
}

func (s *LedgerService) ListTimeEntries(ctx context.Context, taskID string) ([]model.TimeEntry, error) {
	entries, err := s.repo.ListEntries(ctx, taskID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return entries, nil
}
