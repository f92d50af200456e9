package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-time-tracker.com/task-time-tracker/internal/constants"
	model "task-time-tracker.com/task-time-tracker/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, title, description string, estimatedHours float64, startDate, basAccount string) (*model.Task, error) {
	task := &model.Task{
		ID:             uuid.NewString(),
		Title:          title,
		Description:    description,
		EstimatedHours: estimatedHours,
		ActualHours:    0,
		StartDate:      startDate,
		Status:         constants.StatusNotStarted,
		BasAccount:     basAccount,
		CreatedAt:      time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Order("start_date desc").Find(&tasks).Error
	return tasks, err
}

// Update replaces every caller-settable field of the task, actual_hours
// included (full-record semantics).
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"title":           task.Title,
			"description":     task.Description,
			"estimated_hours": task.EstimatedHours,
			"actual_hours":    task.ActualHours,
			"start_date":      task.StartDate,
			"status":          task.Status,
			"bas_account":     task.BasAccount,
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Delete removes the task and its time entries in one transaction, so no
// orphaned entries survive on drivers that do not enforce the FK cascade.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&model.Task{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Where("task_id = ?", id).Delete(&model.TimeEntry{}).Error
	})
}

// LogTime appends a time entry and folds its duration into the owning
// task's rollup as a single transaction. The increment is evaluated by the
// storage engine, so concurrent calls cannot lose an update, and only a
// not_started task is moved to in_progress.
func (r *TaskRepository) LogTime(ctx context.Context, taskID string, startTime, endTime time.Time, duration float64, notes string) (*model.TimeEntry, error) {
	entry := &model.TimeEntry{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		StartTime: startTime,
		EndTime:   endTime,
		Duration:  duration,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Task{}).
			Where("id = ?", taskID).
			Updates(map[string]interface{}{
				"actual_hours": gorm.Expr("actual_hours + ?", duration),
				"status": gorm.Expr(
					"CASE WHEN status = ? THEN ? ELSE status END",
					constants.StatusNotStarted, constants.StatusInProgress,
				),
			})

		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *TaskRepository) ListEntries(ctx context.Context, taskID string) ([]model.TimeEntry, error) {
	var entries []model.TimeEntry
	query := r.db.WithContext(ctx).Order("start_time desc")
	if taskID != "" {
		query = query.Where("task_id = ?", taskID)
	}
	err := query.Find(&entries).Error
	return entries, err
}
