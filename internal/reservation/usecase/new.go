package usecase

import (
	"rental-ops/internal/property"
	"rental-ops/internal/reservation"
	"rental-ops/internal/reservation/repository"
	"rental-ops/pkg/gcalendar"
	"rental-ops/pkg/log"
)

const (
	defaultLookaheadDays = 60
	maxSyncEvents        = 250
)

type implUseCase struct {
	repo          repository.Repository
	propertyUC    property.UseCase
	calendar      gcalendar.Calendar
	lookaheadDays int
	l             log.Logger
}

var _ reservation.UseCase = (*implUseCase)(nil)

// New creates a reservation UseCase. calendar may be nil, in which case sync
// operations return ErrCalendarNotConfigured.
func New(repo repository.Repository, propertyUC property.UseCase, calendar gcalendar.Calendar, lookaheadDays int, l log.Logger) *implUseCase {
	if lookaheadDays <= 0 {
		lookaheadDays = defaultLookaheadDays
	}
	return &implUseCase{
		repo:          repo,
		propertyUC:    propertyUC,
		calendar:      calendar,
		lookaheadDays: lookaheadDays,
		l:             l,
	}
}
