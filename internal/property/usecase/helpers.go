package usecase

import (
	"context"
	"fmt"
	"time"

	"rental-ops/internal/model"
	"rental-ops/internal/property"
	repo "rental-ops/internal/property/repository"
)

func (uc *implUseCase) get(ctx context.Context, id string) (model.Property, error) {
	p, err := uc.repo.GetOneProperty(ctx, repo.GetOnePropertyOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "property.usecase.get.GetOneProperty: %v", err)
		return model.Property{}, err
	}
	if p.ID == "" {
		return model.Property{}, property.ErrPropertyNotFound
	}
	return p, nil
}

// normalizeTimezone validates an IANA name; empty means UTC.
func (uc *implUseCase) normalizeTimezone(tz string) (string, error) {
	if tz == "" {
		return "UTC", nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return "", fmt.Errorf("%w: %q", property.ErrInvalidTimezone, tz)
	}
	return loc.String(), nil
}

// coalesce returns newVal unless it is empty.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
