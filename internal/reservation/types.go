package reservation

import (
	"time"

	"rental-ops/internal/model"
	"rental-ops/internal/scheduling"
)

// --- UseCase Inputs ---

// ListInput filters a property's reservations to those overlapping [From, To].
// Zero bounds are open.
type ListInput struct {
	PropertyID string
	From       time.Time
	To         time.Time
}

// ReplaceInput is a full replacement of the manually maintained reservations.
// Offset-less values are read in the property's timezone.
type ReplaceInput struct {
	PropertyID   string
	Reservations []scheduling.RawReservation
}

// --- UseCase Outputs ---

type ListOutput struct {
	Property     model.Property
	Reservations []model.ReservationRecord
}

type ReplaceOutput struct {
	Property     model.Property
	Reservations []model.ReservationRecord
}

type SyncOutput struct {
	PropertyID string
	Imported   int
	Skipped    int
}

type SyncAllOutput struct {
	Results []SyncOutput
	Failed  map[string]error
}

// CalendarOutput is what the scheduler needs: the unit and its upcoming stays.
type CalendarOutput struct {
	Property     model.Property
	Reservations []scheduling.Reservation
}
