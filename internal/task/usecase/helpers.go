package usecase

import (
	"context"
	"fmt"
	"time"

	"rental-ops/internal/model"
	"rental-ops/internal/scheduling"
	"rental-ops/internal/task"
)

func (uc *implUseCase) get(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.get.GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// resolveNow reads raw in loc, or takes the wall clock when raw is empty. The
// result always carries loc so day boundaries are the property's.
func (uc *implUseCase) resolveNow(raw string, loc *time.Location) (time.Time, error) {
	if raw == "" {
		return uc.clock().In(loc), nil
	}
	t, err := scheduling.ParseDateTime(raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", task.ErrInvalidNow, raw)
	}
	return t.In(loc), nil
}

// parseUrgency applies the default tier to empty input.
func (uc *implUseCase) parseUrgency(raw string) (model.Urgency, error) {
	if raw == "" {
		return model.DefaultUrgency, nil
	}
	return model.ParseUrgency(raw)
}

func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
