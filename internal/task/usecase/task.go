package usecase

import (
	"context"
	"fmt"
	"strings"

	"rental-ops/internal/model"
	"rental-ops/internal/task"
	repo "rental-ops/internal/task/repository"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateOutput{}, task.ErrTitleRequired
	}
	if input.PropertyID == "" {
		return task.CreateOutput{}, task.ErrPropertyRequired
	}

	urgency, err := uc.parseUrgency(input.Urgency)
	if err != nil {
		return task.CreateOutput{}, err
	}

	if _, err := uc.propertyUC.Detail(ctx, sc, input.PropertyID); err != nil {
		return task.CreateOutput{}, err
	}

	source := input.Source
	if source == "" {
		source = model.TaskSourceManual
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		PropertyID:  input.PropertyID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Urgency:     urgency,
		Source:      source,
		CreatedBy:   sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create.CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "task.usecase.Create: %s created %s urgency=%s source=%s", sc.UserID, t.ID, t.Urgency, t.Source)
	return task.CreateOutput{Task: t}, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	opt := repo.ListTasksOptions{
		PropertyID: input.PropertyID,
		Limit:      input.Limit,
		Offset:     input.Offset,
	}
	if input.Status != "" {
		opt.Status = model.TaskStatus(input.Status)
		if !opt.Status.Valid() {
			return task.ListOutput{}, fmt.Errorf("%w: %q", task.ErrInvalidStatus, input.Status)
		}
	}
	if input.Urgency != "" {
		u, err := model.ParseUrgency(input.Urgency)
		if err != nil {
			return task.ListOutput{}, err
		}
		opt.Urgency = u
	}

	tasks, total, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List.ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, err := uc.get(ctx, id)
	if err != nil {
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: t}, nil
}

// Update reopening a task clears its booking.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	existing, err := uc.get(ctx, input.ID)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	urgency := existing.Urgency
	if input.Urgency != "" {
		if urgency, err = model.ParseUrgency(input.Urgency); err != nil {
			return task.UpdateOutput{}, err
		}
	}

	status := existing.Status
	if input.Status != "" {
		status = model.TaskStatus(input.Status)
		if !status.Valid() {
			return task.UpdateOutput{}, fmt.Errorf("%w: %q", task.ErrInvalidStatus, input.Status)
		}
	}

	scheduledAt, link := existing.ScheduledAt, existing.CalendarLink
	if status == model.TaskStatusOpen {
		scheduledAt, link = nil, ""
	}

	t, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:           existing.ID,
		Title:        uc.coalesce(strings.TrimSpace(input.Title), existing.Title),
		Description:  uc.coalesce(strings.TrimSpace(input.Description), existing.Description),
		Urgency:      urgency,
		Status:       status,
		ScheduledAt:  scheduledAt,
		CalendarLink: link,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update.UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if t.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}
	return task.UpdateOutput{Task: t}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete.DeleteTask: %v", err)
		return err
	}
	uc.l.Infof(ctx, "task.usecase.Delete: %s deleted %s", sc.UserID, id)
	return nil
}
