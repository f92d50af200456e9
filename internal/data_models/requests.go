package dto

import "time"

type CreateTaskRequest struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	EstimatedHours float64 `json:"estimated_hours"`
	StartDate      string  `json:"start_date"`
	BasAccount     string  `json:"bas_account"`
}

type UpdateTaskRequest struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	EstimatedHours float64 `json:"estimated_hours"`
	ActualHours    float64 `json:"actual_hours"`
	StartDate      string  `json:"start_date"`
	Status         string  `json:"status"`
	BasAccount     string  `json:"bas_account"`
}

type LogTimeRequest struct {
	TaskID    string    `json:"task_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Duration  float64   `json:"duration"`
	Notes     string    `json:"notes"`
}
