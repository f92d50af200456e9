package dto

import model "task-time-tracker.com/task-time-tracker/internal/models"

// Directory and reporting operations report failure through these envelopes
// rather than returned errors: callers branch on the success flag.

type ImportResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ImportedCount int    `json:"imported_count"`
	SkippedCount  int    `json:"skipped_count"`
	ActiveCount   int64  `json:"active_count"`
}

type ValidationResult struct {
	Valid   bool              `json:"valid"`
	Account *model.BasAccount `json:"account,omitempty"`
	Message string            `json:"message,omitempty"`
}

type TaskStatusResult struct {
	Success  bool          `json:"success"`
	Message  string        `json:"message,omitempty"`
	Statuses []StatusCount `json:"statuses"`
}

type TimeByAccountResult struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message,omitempty"`
	Accounts []AccountHours `json:"accounts"`
}

type TimeAccuracyResult struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Tasks   []TaskAccuracy `json:"tasks"`
}

type AccountReportResult struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message,omitempty"`
	Accounts   []AccountSummary `json:"accounts"`
	Categories []CategoryTotal  `json:"categories"`
	TotalHours float64          `json:"total_hours"`
}

type ExportResult struct {
	Success      bool        `json:"success"`
	Message      string      `json:"message,omitempty"`
	ExportData   []ExportRow `json:"export_data"`
	TotalRecords int         `json:"total_records"`
	TotalHours   float64     `json:"total_hours"`
}
