package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"task-time-tracker.com/task-time-tracker/internal/cache"
	dto "task-time-tracker.com/task-time-tracker/internal/data_models"
	repository "task-time-tracker.com/task-time-tracker/internal/repositories"
)

// ReportService computes the read-only reports and the accounting export.
// Every operation returns a fail-soft envelope: storage faults clear the
// success flag and carry the error text instead of propagating.
//
// The parameterless reports may be served from the redis cache when one is
// configured; a nil cache disables that without any branching here.
type ReportService struct {
	reports *repository.ReportRepository
	cache   *cache.ReportCache
}

func NewReportService(reports *repository.ReportRepository, reportCache *cache.ReportCache) *ReportService {
	return &ReportService{reports: reports, cache: reportCache}
}

// TaskStatusReport counts tasks per status.
func (s *ReportService) TaskStatusReport(ctx context.Context) dto.TaskStatusResult {
	var result dto.TaskStatusResult
	if s.cache.Get(ctx, "report:task-status", &result) {
		return result
	}

	rows, err := s.reports.StatusCounts(ctx)
	if err != nil {
		return dto.TaskStatusResult{Message: fmt.Sprintf("Error generating task status report: %v", err)}
	}

	result = dto.TaskStatusResult{Success: true, Statuses: rows}
	s.cache.Set(ctx, "report:task-status", result)
	return result
}

// TimeByAccountReport sums actual hours per account, dropping accounts with
// no hours and tasks whose code matches no account.
func (s *ReportService) TimeByAccountReport(ctx context.Context) dto.TimeByAccountResult {
	var result dto.TimeByAccountResult
	if s.cache.Get(ctx, "report:time-by-account", &result) {
		return result
	}

	rows, err := s.reports.HoursByAccount(ctx)
	if err != nil {
		return dto.TimeByAccountResult{Message: fmt.Sprintf("Error generating time by account report: %v", err)}
	}

	result = dto.TimeByAccountResult{Success: true, Accounts: rows}
	s.cache.Set(ctx, "report:time-by-account", result)
	return result
}

// TimeAccuracyReport scores how close actual hours landed to the estimate.
// The score is 100 minus the absolute percentage deviation from full
// utilization, with the deviation capped at 100 so the score never goes
// negative. Tasks without both figures positive are excluded outright.
func (s *ReportService) TimeAccuracyReport(ctx context.Context) dto.TimeAccuracyResult {
	var result dto.TimeAccuracyResult
	if s.cache.Get(ctx, "report:time-accuracy", &result) {
		return result
	}

	tasks, err := s.reports.AccuracyTasks(ctx)
	if err != nil {
		return dto.TimeAccuracyResult{Message: fmt.Sprintf("Error generating time accuracy report: %v", err)}
	}

	scored := make([]dto.TaskAccuracy, 0, len(tasks))
	for _, task := range tasks {
		deviation := math.Abs(task.ActualHours/task.EstimatedHours*100 - 100)
		if deviation > 100 {
			deviation = 100
		}

		scored = append(scored, dto.TaskAccuracy{
			ID:                 task.ID,
			Title:              task.Title,
			EstimatedHours:     task.EstimatedHours,
			ActualHours:        task.ActualHours,
			AccuracyPercentage: 100 - deviation,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].AccuracyPercentage > scored[j].AccuracyPercentage
	})

	result = dto.TimeAccuracyResult{Success: true, Tasks: scored}
	s.cache.Set(ctx, "report:time-accuracy", result)
	return result
}

// AccountReport aggregates hours and task counts per active account,
// optionally bounded by an inclusive start_date range (either bound may be
// empty), and rolls the rows up into per-category and grand totals.
func (s *ReportService) AccountReport(ctx context.Context, startDate, endDate string) dto.AccountReportResult {
	rows, err := s.reports.AccountSummaries(ctx, startDate, endDate)
	if err != nil {
		return dto.AccountReportResult{Message: fmt.Sprintf("Error generating BAS account report: %v", err)}
	}

	var (
		categories    []dto.CategoryTotal
		categoryIndex = make(map[string]int)
		totalHours    float64
	)
	for _, row := range rows {
		idx, ok := categoryIndex[row.Category]
		if !ok {
			idx = len(categories)
			categoryIndex[row.Category] = idx
			categories = append(categories, dto.CategoryTotal{Category: row.Category})
		}
		categories[idx].TotalHours += row.TotalHours
		totalHours += row.TotalHours
	}

	return dto.AccountReportResult{
		Success:    true,
		Accounts:   rows,
		Categories: categories,
		TotalHours: totalHours,
	}
}

// ExportForAccounting produces one row per task with logged hours, joined
// to its account, for downstream accounting ingestion. Month and year
// filters apply to the task's start date; zero means unfiltered.
func (s *ReportService) ExportForAccounting(ctx context.Context, month, year int) dto.ExportResult {
	tasks, err := s.reports.ExportTasks(ctx)
	if err != nil {
		return dto.ExportResult{Message: fmt.Sprintf("Error exporting accounting data: %v", err)}
	}

	rows := make([]dto.ExportRow, 0, len(tasks))
	var totalHours float64
	for _, task := range tasks {
		startDate, err := time.Parse("2006-01-02", task.StartDate)
		if err != nil {
			continue
		}
		if month != 0 && int(startDate.Month()) != month {
			continue
		}
		if year != 0 && startDate.Year() != year {
			continue
		}

		rows = append(rows, dto.ExportRow{
			AccountNumber: task.BasAccount,
			AccountName:   task.AccountName,
			Description:   task.Title,
			Hours:         task.ActualHours,
			Date:          task.StartDate,
		})
		totalHours += task.ActualHours
	}

	return dto.ExportResult{
		Success:      true,
		ExportData:   rows,
		TotalRecords: len(rows),
		TotalHours:   totalHours,
	}
}
