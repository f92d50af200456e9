package dto

// Row shapes produced by the reporting queries. Field names follow the
// downstream accounting feed, so the JSON tags are part of the contract.

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type AccountHours struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	TotalHours float64 `json:"total_hours"`
}

type TaskAccuracy struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	EstimatedHours     float64 `json:"estimated_hours"`
	ActualHours        float64 `json:"actual_hours"`
	AccuracyPercentage float64 `json:"accuracy_percentage"`
}

type AccountSummary struct {
	AccountID   string  `json:"account_id"`
	AccountName string  `json:"account_name"`
	Category    string  `json:"category"`
	TotalHours  float64 `json:"total_hours"`
	TaskCount   int64   `json:"task_count"`
}

type CategoryTotal struct {
	Category   string  `json:"category"`
	TotalHours float64 `json:"total_hours"`
}

type ExportRow struct {
	AccountNumber string  `json:"account_number"`
	AccountName   string  `json:"account_name"`
	Description   string  `json:"description"`
	Hours         float64 `json:"hours"`
	Date          string  `json:"date"`
}
