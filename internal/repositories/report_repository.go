package repository

import (
	"context"

	"gorm.io/gorm"

	dto "task-time-tracker.com/task-time-tracker/internal/data_models"
	model "task-time-tracker.com/task-time-tracker/internal/models"
)

// ReportRepository runs the read-only aggregate queries. The account joins
// are inner joins on the code: tasks whose bas_account matches no stored
// account simply drop out of the result.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) StatusCounts(ctx context.Context) ([]dto.StatusCount, error) {
	var rows []dto.StatusCount
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) HoursByAccount(ctx context.Context) ([]dto.AccountHours, error) {
	var rows []dto.AccountHours
	err := r.db.WithContext(ctx).Table("tasks").
		Select("bas_accounts.id, bas_accounts.name, bas_accounts.category, SUM(tasks.actual_hours) as total_hours").
		Joins("JOIN bas_accounts ON tasks.bas_account = bas_accounts.id").
		Group("bas_accounts.id, bas_accounts.name, bas_accounts.category").
		Having("SUM(tasks.actual_hours) > 0").
		Order("total_hours DESC").
		Scan(&rows).Error
	return rows, err
}

// AccuracyTasks returns the tasks eligible for the accuracy report: both
// hour figures strictly positive. Scoring happens in the service.
func (r *ReportRepository) AccuracyTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("estimated_hours > 0 AND actual_hours > 0").
		Find(&tasks).Error
	return tasks, err
}

// AccountSummaries aggregates hours and task counts per active account,
// optionally bounded by an inclusive start_date range. Either bound may be
// empty.
func (r *ReportRepository) AccountSummaries(ctx context.Context, startDate, endDate string) ([]dto.AccountSummary, error) {
	query := r.db.WithContext(ctx).Table("tasks").
		Select("bas_accounts.id as account_id, bas_accounts.name as account_name, bas_accounts.category, SUM(tasks.actual_hours) as total_hours, COUNT(DISTINCT tasks.id) as task_count").
		Joins("JOIN bas_accounts ON tasks.bas_account = bas_accounts.id").
		Where("bas_accounts.is_active = ?", true)

	if startDate != "" {
		query = query.Where("tasks.start_date >= ?", startDate)
	}
	if endDate != "" {
		query = query.Where("tasks.start_date <= ?", endDate)
	}

	var rows []dto.AccountSummary
	err := query.
		Group("bas_accounts.id, bas_accounts.name, bas_accounts.category").
		Order("bas_accounts.category, bas_accounts.id").
		Scan(&rows).Error
	return rows, err
}

type ExportTask struct {
	Title       string
	BasAccount  string
	AccountName string
	ActualHours float64
	StartDate   string
}

// ExportTasks returns every task with logged hours joined to its account,
// oldest first. Month/year filtering is applied by the service.
func (r *ReportRepository) ExportTasks(ctx context.Context) ([]ExportTask, error) {
	var rows []ExportTask
	err := r.db.WithContext(ctx).Table("tasks").
		Select("tasks.title, tasks.bas_account, bas_accounts.name as account_name, tasks.actual_hours, tasks.start_date").
		Joins("JOIN bas_accounts ON tasks.bas_account = bas_accounts.id").
		Where("tasks.actual_hours > 0").
		Order("tasks.start_date").
		Scan(&rows).Error
	return rows, err
}
