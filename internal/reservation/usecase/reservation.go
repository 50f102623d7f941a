package usecase

import (
	"context"

	"rental-ops/internal/model"
	"rental-ops/internal/reservation"
	repo "rental-ops/internal/reservation/repository"
	"rental-ops/internal/scheduling"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input reservation.ListInput) (reservation.ListOutput, error) {
	if !input.From.IsZero() && !input.To.IsZero() && input.From.After(input.To) {
		return reservation.ListOutput{}, reservation.ErrInvalidRange
	}

	prop, err := uc.propertyUC.Detail(ctx, sc, input.PropertyID)
	if err != nil {
		return reservation.ListOutput{}, err
	}

	records, err := uc.repo.ListReservations(ctx, repo.ListReservationsOptions{
		PropertyID:   input.PropertyID,
		EndsAfter:    input.From,
		StartsBefore: input.To,
	})
	if err != nil {
		uc.l.Errorf(ctx, "reservation.usecase.List.ListReservations: %v", err)
		return reservation.ListOutput{}, err
	}

	return reservation.ListOutput{Property: prop.Property, Reservations: records}, nil
}

// Replace validates the whole set before touching storage, so a bad entry
// leaves the stored calendar untouched.
func (uc *implUseCase) Replace(ctx context.Context, sc model.Scope, input reservation.ReplaceInput) (reservation.ReplaceOutput, error) {
	prop, err := uc.propertyUC.Detail(ctx, sc, input.PropertyID)
	if err != nil {
		return reservation.ReplaceOutput{}, err
	}

	parsed, err := scheduling.ParseReservationsIn(input.Reservations, prop.Property.Location())
	if err != nil {
		return reservation.ReplaceOutput{}, err
	}

	records := make([]repo.ReservationInput, len(parsed))
	for i, r := range parsed {
		records[i] = repo.ReservationInput{Start: r.Start, End: r.End}
	}

	stored, err := uc.repo.ReplaceReservations(ctx, repo.ReplaceReservationsOptions{
		PropertyID: input.PropertyID,
		Source:     model.ReservationSourceManual,
		Records:    records,
	})
	if err != nil {
		uc.l.Errorf(ctx, "reservation.usecase.Replace.ReplaceReservations: %v", err)
		return reservation.ReplaceOutput{}, err
	}

	uc.l.Infof(ctx, "reservation.usecase.Replace: %s stored %d reservations for %s", sc.UserID, len(stored), input.PropertyID)
	return reservation.ReplaceOutput{Property: prop.Property, Reservations: stored}, nil
}

func (uc *implUseCase) Calendar(ctx context.Context, propertyID string) (reservation.CalendarOutput, error) {
	prop, err := uc.propertyUC.Detail(ctx, model.SystemScope, propertyID)
	if err != nil {
		return reservation.CalendarOutput{}, err
	}

	records, err := uc.repo.ListReservations(ctx, repo.ListReservationsOptions{
		PropertyID: propertyID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "reservation.usecase.Calendar.ListReservations: %v", err)
		return reservation.CalendarOutput{}, err
	}

	out := reservation.CalendarOutput{
		Property:     prop.Property,
		Reservations: make([]scheduling.Reservation, len(records)),
	}
	for i, r := range records {
		out.Reservations[i] = scheduling.Reservation{Start: r.Start, End: r.End}
	}
	return out, nil
}
