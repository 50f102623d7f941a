package usecase

import (
	"time"

	"rental-ops/internal/property"
	"rental-ops/internal/reservation"
	"rental-ops/internal/task"
	"rental-ops/internal/task/repository"
	"rental-ops/internal/task/suggester"
	"rental-ops/pkg/gcalendar"
	"rental-ops/pkg/log"
)

const defaultEventMinutes = 60

type implUseCase struct {
	l             log.Logger
	repo          repository.Repository
	propertyUC    property.UseCase
	reservationUC reservation.UseCase
	suggester     suggester.Suggester
	calendar      gcalendar.Calendar
	defaultLoc    *time.Location
	clock         func() time.Time
}

var _ task.UseCase = (*implUseCase)(nil)

// Deps wires the task use case. Calendar may be nil; DefaultLocation is used
// for previews that name no property.
type Deps struct {
	Repo            repository.Repository
	PropertyUC      property.UseCase
	ReservationUC   reservation.UseCase
	Suggester       suggester.Suggester
	Calendar        gcalendar.Calendar
	DefaultLocation *time.Location
}

// New creates a new task UseCase instance.
func New(l log.Logger, deps Deps) *implUseCase {
	loc := deps.DefaultLocation
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:             l,
		repo:          deps.Repo,
		propertyUC:    deps.PropertyUC,
		reservationUC: deps.ReservationUC,
		suggester:     deps.Suggester,
		calendar:      deps.Calendar,
		defaultLoc:    loc,
		clock:         time.Now,
	}
}
