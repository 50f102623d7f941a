package usecase

import (
	"context"

	"rental-ops/internal/model"
	"rental-ops/internal/property"
	repo "rental-ops/internal/property/repository"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input property.ListInput) (property.ListOutput, error) {
	props, total, err := uc.repo.ListProperties(ctx, repo.ListPropertiesOptions{
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "property.usecase.List.ListProperties: %v", err)
		return property.ListOutput{}, err
	}

	return property.ListOutput{
		Properties: props,
		Total:      total,
		Limit:      input.Limit,
		Offset:     input.Offset,
	}, nil
}

func (uc *implUseCase) ListWithCalendar(ctx context.Context) ([]model.Property, error) {
	props, _, err := uc.repo.ListProperties(ctx, repo.ListPropertiesOptions{WithCalendarOnly: true})
	if err != nil {
		uc.l.Errorf(ctx, "property.usecase.ListWithCalendar.ListProperties: %v", err)
		return nil, err
	}
	return props, nil
}
