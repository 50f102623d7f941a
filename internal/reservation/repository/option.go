package repository

import (
	"time"

	"rental-ops/internal/model"
)

// ListReservationsOptions filters records; zero values are not applied.
type ListReservationsOptions struct {
	PropertyID string
	Source     model.ReservationSource
	// EndsAfter keeps records with End >= EndsAfter.
	EndsAfter time.Time
	// StartsBefore keeps records with Start <= StartsBefore.
	StartsBefore time.Time
}

type ReplaceReservationsOptions struct {
	PropertyID string
	Source     model.ReservationSource
	Records    []ReservationInput
}

type ReservationInput struct {
	Start      time.Time
	End        time.Time
	ExternalID string
	Summary    string
}
