package usecase

import (
	"rental-ops/internal/property"
	"rental-ops/internal/property/repository"
	"rental-ops/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ property.UseCase = (*implUseCase)(nil)

// New creates a property UseCase.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
