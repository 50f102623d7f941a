package model

import "time"

type TaskStatus string

const (
	TaskStatusOpen      TaskStatus = "open"
	TaskStatusScheduled TaskStatus = "scheduled"
	TaskStatusDone      TaskStatus = "done"
	TaskStatusCancelled TaskStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusScheduled, TaskStatusDone, TaskStatusCancelled:
		return true
	}
	return false
}

type TaskSource string

const (
	TaskSourceManual TaskSource = "manual"
	TaskSourceInbox  TaskSource = "inbox"
)

// Task is a maintenance job to be performed at a property.
type Task struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	PropertyID   string `gorm:"type:uuid;index"`
	Title        string
	Description  string     `gorm:"type:text"`
	Urgency      Urgency    `gorm:"type:varchar(16);index"`
	Status       TaskStatus `gorm:"type:varchar(16);index"`
	ScheduledAt  *time.Time
	CalendarLink string
	Source       TaskSource `gorm:"type:varchar(16)"`
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
