package usecase

import (
	"rental-ops/internal/inbox"
	"rental-ops/internal/inbox/repository"
	"rental-ops/internal/property"
	"rental-ops/internal/task"
	"rental-ops/pkg/log"
)

type implUseCase struct {
	repo       repository.Repository
	propertyUC property.UseCase
	taskUC     task.UseCase
	l          log.Logger
}

var _ inbox.UseCase = (*implUseCase)(nil)

// New creates an inbox UseCase. Accepted items become tasks through taskUC.
func New(repo repository.Repository, propertyUC property.UseCase, taskUC task.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		propertyUC: propertyUC,
		taskUC:     taskUC,
		l:          l,
	}
}
