package model

import "time"

// TimeEntry is append-only: never updated or deleted except by cascade when
// its task is deleted. Duration is caller-supplied and not re-derived from
// the start/end pair.
type TimeEntry struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	TaskID    string    `gorm:"size:36;not null;index" json:"task_id"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	Duration  float64   `gorm:"not null" json:"duration"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
