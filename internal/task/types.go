package task

import (
	"time"

	"rental-ops/internal/model"
	"rental-ops/internal/scheduling"
)

// --- UseCase Inputs ---

// CreateInput creates a task. An empty Urgency becomes model.DefaultUrgency.
type CreateInput struct {
	PropertyID  string
	Title       string
	Description string
	Urgency     string
	Source      model.TaskSource
}

type ListInput struct {
	PropertyID string
	Status     string
	Urgency    string
	Limit      int
	Offset     int
}

// UpdateInput is a partial update; empty fields keep their current value.
type UpdateInput struct {
	ID          string
	Title       string
	Description string
	Urgency     string
	Status      string
}

// SuggestInput asks for instants for a stored task. An empty Now means the
// wall clock; offset-less values are read in the property's timezone.
type SuggestInput struct {
	TaskID string
	Now    string
}

// PreviewInput asks for instants without a stored task. A nil Calendar with a
// PropertyID uses the stored reservations of that property.
type PreviewInput struct {
	Urgency    string
	PropertyID string
	Calendar   []scheduling.RawReservation
	Now        string
}

// ScheduleInput books a task at At, read in the property's timezone when it
// has no offset. DurationMinutes defaults to 60.
type ScheduleInput struct {
	TaskID          string
	At              string
	DurationMinutes int
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}

type SuggestOutput struct {
	TaskID      string
	Urgency     model.Urgency
	Strategy    string
	Now         time.Time
	Suggestions []time.Time
}

type ScheduleOutput struct {
	Task model.Task
}
