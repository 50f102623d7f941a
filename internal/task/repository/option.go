package repository

import (
	"time"

	"rental-ops/internal/model"
)

type CreateTaskOptions struct {
	PropertyID  string
	Title       string
	Description string
	Urgency     model.Urgency
	Source      model.TaskSource
	CreatedBy   string
}

// ListTasksOptions filters tasks; zero values are not applied.
type ListTasksOptions struct {
	PropertyID string
	Status     model.TaskStatus
	Urgency    model.Urgency
	Limit      int
	Offset     int
}

// UpdateTaskOptions overwrites every mutable column.
type UpdateTaskOptions struct {
	ID           string
	Title        string
	Description  string
	Urgency      model.Urgency
	Status       model.TaskStatus
	ScheduledAt  *time.Time
	CalendarLink string
}
