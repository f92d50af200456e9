package model

import (
	"time"

	"task-time-tracker.com/task-time-tracker/internal/constants"
)

// Task carries an actual_hours rollup maintained from its time entries.
// StartDate is stored as an ISO YYYY-MM-DD string so ordering and range
// filters behave the same on sqlite and postgres.
type Task struct {
	ID             string               `gorm:"primaryKey;size:36" json:"id"`
	Title          string               `gorm:"not null" json:"title"`
	Description    string               `json:"description"`
	EstimatedHours float64              `gorm:"not null" json:"estimated_hours"`
	ActualHours    float64              `gorm:"not null;default:0" json:"actual_hours"`
	StartDate      string               `gorm:"size:10;not null;index" json:"start_date"`
	Status         constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	BasAccount     string               `gorm:"size:10" json:"bas_account"`
	CreatedAt      time.Time            `json:"created_at"`

	TimeEntries []TimeEntry `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
}
