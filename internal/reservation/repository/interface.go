package repository

import (
	"context"

	"rental-ops/internal/model"
)

// Repository is the data store for reservation records.
type Repository interface {
	ListReservations(ctx context.Context, opt ListReservationsOptions) ([]model.ReservationRecord, error)
	// ReplaceReservations atomically swaps every record of (PropertyID, Source)
	// for opt.Records.
	ReplaceReservations(ctx context.Context, opt ReplaceReservationsOptions) ([]model.ReservationRecord, error)
}
