package usecase

import (
	"context"
	"strings"

	"rental-ops/internal/model"
	"rental-ops/internal/property"
	repo "rental-ops/internal/property/repository"
)

// Create registers a property after checking name uniqueness and timezone.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input property.CreateInput) (property.CreateOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return property.CreateOutput{}, property.ErrNameRequired
	}
	tz, err := uc.normalizeTimezone(input.Timezone)
	if err != nil {
		return property.CreateOutput{}, err
	}

	existing, err := uc.repo.GetOneProperty(ctx, repo.GetOnePropertyOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "property.usecase.Create.GetOneProperty: %v", err)
		return property.CreateOutput{}, err
	}
	if existing.ID != "" {
		return property.CreateOutput{}, property.ErrDuplicateName
	}

	p, err := uc.repo.CreateProperty(ctx, repo.CreatePropertyOptions{
		Name:       name,
		Address:    strings.TrimSpace(input.Address),
		Timezone:   tz,
		CalendarID: strings.TrimSpace(input.CalendarID),
	})
	if err != nil {
		uc.l.Errorf(ctx, "property.usecase.Create.CreateProperty: %v", err)
		return property.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "property.usecase.Create: %s created %s (%s)", sc.UserID, p.ID, p.Name)
	return property.CreateOutput{Property: p}, nil
}
