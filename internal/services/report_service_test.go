package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-time-tracker.com/task-time-tracker/internal/constants"
	model "task-time-tracker.com/task-time-tracker/internal/models"
	repository "task-time-tracker.com/task-time-tracker/internal/repositories"
)

func newReports(db *gorm.DB) *ReportService {
	return NewReportService(repository.NewReportRepository(db), nil)
}

func insertTask(t *testing.T, db *gorm.DB, title, startDate, basAccount string, estimated, actual float64, status constants.TaskStatus) {
	t.Helper()

	task := model.Task{
		ID:             uuid.NewString(),
		Title:          title,
		EstimatedHours: estimated,
		ActualHours:    actual,
		StartDate:      startDate,
		Status:         status,
		BasAccount:     basAccount,
	}
	if err := db.Create(&task).Error; err != nil {
		t.Fatalf("failed to insert task: %v", err)
	}
}

func TestTaskStatusReport(t *testing.T) {
	db := setupTestDB(t)
	reports := newReports(db)

	insertTask(t, db, "A", "2024-01-01", "", 1, 0, constants.StatusNotStarted)
	insertTask(t, db, "B", "2024-01-02", "", 1, 0, constants.StatusNotStarted)
	insertTask(t, db, "C", "2024-01-03", "", 1, 2, constants.StatusInProgress)

	result := reports.TaskStatusReport(context.Background())
	if !result.Success {
		t.Fatalf("report failed: %s", result.Message)
	}

	counts := make(map[string]int64)
	for _, row := range result.Statuses {
		counts[row.Status] = row.Count
	}
	if counts["not_started"] != 2 || counts["in_progress"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestTimeByAccountReport(t *testing.T) {
	db := setupTestDB(t)
	reports := newReports(db)

	insertTask(t, db, "Rent Q1", "2024-01-01", "5010", 4, 3, constants.StatusInProgress)
	insertTask(t, db, "Rent Q2", "2024-04-01", "5010", 4, 2, constants.StatusInProgress)
	insertTask(t, db, "Phones", "2024-01-05", "6200", 2, 0, constants.StatusNotStarted)
	insertTask(t, db, "Orphan", "2024-01-06", "9999", 2, 4, constants.StatusInProgress)
	insertTask(t, db, "Payroll", "2024-01-07", "7010", 2, 1, constants.StatusInProgress)

	result := reports.TimeByAccountReport(context.Background())
	if !result.Success {
		t.Fatalf("report failed: %s", result.Message)
	}

	if len(result.Accounts) != 2 {
		t.Fatalf("expected 2 accounts (zero-hour and unmatched excluded), got %d", len(result.Accounts))
	}
	if result.Accounts[0].ID != "5010" || result.Accounts[0].TotalHours != 5 {
		t.Errorf("expected 5010 with 5 hours first, got %s with %v", result.Accounts[0].ID, result.Accounts[0].TotalHours)
	}
	if result.Accounts[1].ID != "7010" || result.Accounts[1].TotalHours != 1 {
		t.Errorf("expected 7010 with 1 hour second, got %s with %v", result.Accounts[1].ID, result.Accounts[1].TotalHours)
	}
}

func TestTimeAccuracyReport(t *testing.T) {
	db := setupTestDB(t)
	reports := newReports(db)

	insertTask(t, db, "Exact", "2024-01-01", "", 10, 10, constants.StatusCompleted)
	insertTask(t, db, "Overrun", "2024-01-02", "", 10, 15, constants.StatusCompleted)
	insertTask(t, db, "Blowout", "2024-01-03", "", 10, 30, constants.StatusCompleted)
	insertTask(t, db, "NoHours", "2024-01-04", "", 10, 0, constants.StatusNotStarted)
	insertTask(t, db, "NoEstimate", "2024-01-05", "", 0, 5, constants.StatusInProgress)

	result := reports.TimeAccuracyReport(context.Background())
	if !result.Success {
		t.Fatalf("report failed: %s", result.Message)
	}

	if len(result.Tasks) != 3 {
		t.Fatalf("expected 3 scored tasks, got %d", len(result.Tasks))
	}

	want := []struct {
		title    string
		accuracy float64
	}{
		{"Exact", 100},
		{"Overrun", 50},
		{"Blowout", 0},
	}
	for i, expected := range want {
		got := result.Tasks[i]
		if got.Title != expected.title || got.AccuracyPercentage != expected.accuracy {
			t.Errorf("row %d: expected %s with accuracy %v, got %s with %v",
				i, expected.title, expected.accuracy, got.Title, got.AccuracyPercentage)
		}
	}
}

func TestAccountReport(t *testing.T) {
	db := setupTestDB(t)
	reports := newReports(db)
	ctx := context.Background()

	insertTask(t, db, "Rent", "2024-01-15", "5010", 2, 2, constants.StatusCompleted)
	insertTask(t, db, "Travel", "2024-02-15", "5800", 3, 3, constants.StatusCompleted)
	insertTask(t, db, "Payroll", "2024-03-15", "7010", 4, 4, constants.StatusCompleted)

	result := reports.AccountReport(ctx, "", "")
	if !result.Success {
		t.Fatalf("report failed: %s", result.Message)
	}
	if len(result.Accounts) != 3 {
		t.Fatalf("expected 3 account rows, got %d", len(result.Accounts))
	}
	if result.TotalHours != 9 {
		t.Errorf("expected total_hours 9, got %v", result.TotalHours)
	}

	categoryHours := make(map[string]float64)
	for _, category := range result.Categories {
		categoryHours[category.Category] = category.TotalHours
	}
	if categoryHours["Kostnader"] != 5 || categoryHours["Personal"] != 4 {
		t.Errorf("unexpected category totals: %v", categoryHours)
	}

	// Lower bound alone.
	result = reports.AccountReport(ctx, "2024-02-01", "")
	if !result.Success || result.TotalHours != 7 {
		t.Errorf("expected total_hours 7 with lower bound, got %v (%s)", result.TotalHours, result.Message)
	}

	// Both bounds, inclusive.
	result = reports.AccountReport(ctx, "2024-02-15", "2024-02-15")
	if !result.Success {
		t.Fatalf("report failed: %s", result.Message)
	}
	if len(result.Accounts) != 1 || result.Accounts[0].AccountID != "5800" {
		t.Errorf("expected only 5800 within bounds, got %+v", result.Accounts)
	}
	if result.Accounts[0].TaskCount != 1 {
		t.Errorf("expected task_count 1, got %d", result.Accounts[0].TaskCount)
	}
}

func TestAccountReport_ExcludesInactiveAccounts(t *testing.T) {
	db := setupTestDB(t)
	reports := newReports(db)

	insertTask(t, db, "Checking", "2024-01-10", "1930", 1, 1, constants.StatusCompleted)

	err := db.Model(&model.BasAccount{}).Where("id = ?", "1930").
		Update("is_active", false).Error
	if err != nil {
		t.Fatalf("failed to deactivate account: %v", err)
	}

	result := reports.AccountReport(context.Background(), "", "")
	if !result.Success {
		t.Fatalf("report failed: %s", result.Message)
	}
	if len(result.Accounts) != 0 {
		t.Errorf("expected inactive account to be excluded, got %+v", result.Accounts)
	}
}

func TestExportForAccounting(t *testing.T) {
	db := setupTestDB(t)
	reports := newReports(db)
	ctx := context.Background()

	insertTask(t, db, "Rent January", "2024-01-15", "5010", 2, 2, constants.StatusCompleted)
	insertTask(t, db, "Rent February", "2024-02-15", "5010", 2, 3, constants.StatusCompleted)
	insertTask(t, db, "Old travel", "2023-02-10", "5800", 1, 1, constants.StatusCompleted)
	insertTask(t, db, "Unlogged", "2024-01-20", "5010", 2, 0, constants.StatusNotStarted)

	result := reports.ExportForAccounting(ctx, 0, 0)
	if !result.Success {
		t.Fatalf("export failed: %s", result.Message)
	}
	if result.TotalRecords != 3 {
		t.Errorf("expected 3 records without filters, got %d", result.TotalRecords)
	}
	if result.TotalHours != 6 {
		t.Errorf("expected total_hours 6, got %v", result.TotalHours)
	}

	row := result.ExportData[0]
	if row.AccountNumber != "5800" || row.Description != "Old travel" || row.Date != "2023-02-10" {
		t.Errorf("unexpected first export row: %+v", row)
	}

	// Month and year together.
	result = reports.ExportForAccounting(ctx, 2, 2024)
	if !result.Success || result.TotalRecords != 1 || result.ExportData[0].Description != "Rent February" {
		t.Errorf("unexpected month+year filter result: %+v", result)
	}

	// Month alone matches across years.
	result = reports.ExportForAccounting(ctx, 2, 0)
	if !result.Success || result.TotalRecords != 2 {
		t.Errorf("expected 2 February records across years, got %d", result.TotalRecords)
	}

	// Year alone.
	result = reports.ExportForAccounting(ctx, 0, 2024)
	if !result.Success || result.TotalRecords != 2 || result.TotalHours != 5 {
		t.Errorf("unexpected year filter result: %d records, %v hours", result.TotalRecords, result.TotalHours)
	}
}
