package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rental-ops/internal/model"
	"rental-ops/internal/scheduling"
	"rental-ops/internal/task"
	repo "rental-ops/internal/task/repository"
	"rental-ops/pkg/gcalendar"
)

// Schedule books the task. Calendar mirroring is best effort: a failed event
// still leaves the task scheduled.
func (uc *implUseCase) Schedule(ctx context.Context, sc model.Scope, input task.ScheduleInput) (task.ScheduleOutput, error) {
	t, err := uc.get(ctx, input.TaskID)
	if err != nil {
		return task.ScheduleOutput{}, err
	}
	if t.Status == model.TaskStatusDone || t.Status == model.TaskStatusCancelled {
		return task.ScheduleOutput{}, task.ErrTaskClosed
	}

	prop, err := uc.propertyUC.Detail(ctx, sc, t.PropertyID)
	if err != nil {
		return task.ScheduleOutput{}, err
	}

	loc := prop.Property.Location()
	at, err := scheduling.ParseDateTime(input.At, loc)
	if err != nil {
		return task.ScheduleOutput{}, fmt.Errorf("%w: %q", task.ErrInvalidTime, input.At)
	}
	at = at.UTC()

	link := uc.tryCreateCalendarEvent(ctx, t, prop.Property, at, input.DurationMinutes)

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Urgency:      t.Urgency,
		Status:       model.TaskStatusScheduled,
		ScheduledAt:  &at,
		CalendarLink: link,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Schedule.UpdateTask: %v", err)
		return task.ScheduleOutput{}, err
	}
	if updated.ID == "" {
		return task.ScheduleOutput{}, task.ErrTaskNotFound
	}

	uc.l.Infof(ctx, "task.usecase.Schedule: %s booked %s at %s", sc.UserID, t.ID, at.Format(time.RFC3339))
	return task.ScheduleOutput{Task: updated}, nil
}

// tryCreateCalendarEvent returns the event link, or "" when the property has no
// calendar or the call fails.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task, p model.Property, at time.Time, minutes int) string {
	if uc.calendar == nil || !p.HasCalendar() {
		return ""
	}
	if minutes <= 0 {
		minutes = defaultEventMinutes
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  p.CalendarID,
		Summary:     fmt.Sprintf("[%s] %s", t.Urgency, t.Title),
		Description: strings.TrimSpace(t.Description),
		StartTime:   at,
		EndTime:     at.Add(time.Duration(minutes) * time.Minute),
		Timezone:    p.Location().String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.tryCreateCalendarEvent: event for %s failed (non-fatal): %v", t.ID, err)
		return ""
	}
	return event.HtmlLink
}
