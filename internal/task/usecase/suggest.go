package usecase

import (
	"context"
	"time"

	"rental-ops/internal/model"
	"rental-ops/internal/scheduling"
	"rental-ops/internal/task"
	"rental-ops/internal/task/suggester"
)

// Suggest resolves now in the property's timezone and proposes instants from
// the stays still running at or after now.
func (uc *implUseCase) Suggest(ctx context.Context, sc model.Scope, input task.SuggestInput) (task.SuggestOutput, error) {
	t, err := uc.get(ctx, input.TaskID)
	if err != nil {
		return task.SuggestOutput{}, err
	}

	prop, err := uc.propertyUC.Detail(ctx, sc, t.PropertyID)
	if err != nil {
		return task.SuggestOutput{}, err
	}

	now, err := uc.resolveNow(input.Now, prop.Property.Location())
	if err != nil {
		return task.SuggestOutput{}, err
	}

	cal, err := uc.reservationUC.Calendar(ctx, t.PropertyID)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Suggest.Calendar: %v", err)
		return task.SuggestOutput{}, err
	}

	out, err := uc.suggest(ctx, t.Urgency, cal.Reservations, now)
	if err != nil {
		return task.SuggestOutput{}, err
	}
	out.TaskID = t.ID
	return out, nil
}

// Preview needs no stored task. An explicit calendar wins over the stored one.
func (uc *implUseCase) Preview(ctx context.Context, sc model.Scope, input task.PreviewInput) (task.SuggestOutput, error) {
	urgency, err := model.ParseUrgency(input.Urgency)
	if err != nil {
		return task.SuggestOutput{}, err
	}

	loc := uc.defaultLoc
	if input.PropertyID != "" {
		prop, err := uc.propertyUC.Detail(ctx, sc, input.PropertyID)
		if err != nil {
			return task.SuggestOutput{}, err
		}
		loc = prop.Property.Location()
	}

	now, err := uc.resolveNow(input.Now, loc)
	if err != nil {
		return task.SuggestOutput{}, err
	}

	var reservations []scheduling.Reservation
	switch {
	case input.Calendar != nil:
		if reservations, err = scheduling.ParseReservationsIn(input.Calendar, loc); err != nil {
			return task.SuggestOutput{}, err
		}
	case input.PropertyID != "":
		cal, err := uc.reservationUC.Calendar(ctx, input.PropertyID)
		if err != nil {
			uc.l.Errorf(ctx, "task.usecase.Preview.Calendar: %v", err)
			return task.SuggestOutput{}, err
		}
		reservations = cal.Reservations
	}

	return uc.suggest(ctx, urgency, reservations, now)
}

func (uc *implUseCase) suggest(ctx context.Context, urgency model.Urgency, reservations []scheduling.Reservation, now time.Time) (task.SuggestOutput, error) {
	instants, err := uc.suggester.Suggest(ctx, suggester.Input{
		Urgency:      urgency,
		Reservations: reservations,
		Now:          now,
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.suggest: %v", err)
		return task.SuggestOutput{}, err
	}

	return task.SuggestOutput{
		Urgency:     urgency,
		Strategy:    uc.suggester.Name(),
		Now:         now,
		Suggestions: instants,
	}, nil
}
