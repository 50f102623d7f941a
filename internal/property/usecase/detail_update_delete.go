package usecase

import (
	"context"
	"strings"

	"rental-ops/internal/model"
	"rental-ops/internal/property"
	repo "rental-ops/internal/property/repository"
)

// Detail returns ErrPropertyNotFound when the ID is unknown.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (property.DetailOutput, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return property.DetailOutput{}, err
	}
	return property.DetailOutput{Property: p}, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input property.UpdateInput) (property.UpdateOutput, error) {
	existing, err := uc.get(ctx, input.ID)
	if err != nil {
		return property.UpdateOutput{}, err
	}

	name := uc.coalesce(strings.TrimSpace(input.Name), existing.Name)
	if name != existing.Name {
		clash, err := uc.repo.GetOneProperty(ctx, repo.GetOnePropertyOptions{Name: name})
		if err != nil {
			uc.l.Errorf(ctx, "property.usecase.Update.GetOneProperty: %v", err)
			return property.UpdateOutput{}, err
		}
		if clash.ID != "" {
			return property.UpdateOutput{}, property.ErrDuplicateName
		}
	}

	tz := existing.Timezone
	if input.Timezone != "" {
		if tz, err = uc.normalizeTimezone(input.Timezone); err != nil {
			return property.UpdateOutput{}, err
		}
	}

	calendarID := existing.CalendarID
	if input.CalendarID != nil {
		calendarID = strings.TrimSpace(*input.CalendarID)
	}

	p, err := uc.repo.UpdateProperty(ctx, repo.UpdatePropertyOptions{
		ID:         existing.ID,
		Name:       name,
		Address:    uc.coalesce(strings.TrimSpace(input.Address), existing.Address),
		Timezone:   tz,
		CalendarID: calendarID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "property.usecase.Update.UpdateProperty: %v", err)
		return property.UpdateOutput{}, err
	}
	if p.ID == "" {
		return property.UpdateOutput{}, property.ErrPropertyNotFound
	}
	return property.UpdateOutput{Property: p}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteProperty(ctx, id); err != nil {
		uc.l.Errorf(ctx, "property.usecase.Delete.DeleteProperty: %v", err)
		return err
	}
	uc.l.Infof(ctx, "property.usecase.Delete: %s deleted %s", sc.UserID, id)
	return nil
}
