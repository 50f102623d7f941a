package usecase

import (
	"context"
	"time"

	"rental-ops/internal/model"
	"rental-ops/internal/reservation"
	repo "rental-ops/internal/reservation/repository"
	"rental-ops/pkg/gcalendar"
)

func (uc *implUseCase) SyncFromCalendar(ctx context.Context, propertyID string, now time.Time) (reservation.SyncOutput, error) {
	if uc.calendar == nil {
		return reservation.SyncOutput{}, reservation.ErrCalendarNotConfigured
	}

	prop, err := uc.propertyUC.Detail(ctx, model.SystemScope, propertyID)
	if err != nil {
		return reservation.SyncOutput{}, err
	}
	return uc.syncProperty(ctx, prop.Property, now)
}

func (uc *implUseCase) SyncAll(ctx context.Context, now time.Time) (reservation.SyncAllOutput, error) {
	if uc.calendar == nil {
		return reservation.SyncAllOutput{}, reservation.ErrCalendarNotConfigured
	}

	props, err := uc.propertyUC.ListWithCalendar(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "reservation.usecase.SyncAll.ListWithCalendar: %v", err)
		return reservation.SyncAllOutput{}, err
	}

	out := reservation.SyncAllOutput{Failed: map[string]error{}}
	for _, p := range props {
		if ctx.Err() != nil {
			return out, ctx.Err()
		}
		res, err := uc.syncProperty(ctx, p, now)
		if err != nil {
			// One broken calendar must not stall the others.
			uc.l.Warnf(ctx, "reservation.usecase.SyncAll: property %s: %v", p.ID, err)
			out.Failed[p.ID] = err
			continue
		}
		out.Results = append(out.Results, res)
	}

	uc.l.Infof(ctx, "reservation.usecase.SyncAll: synced=%d failed=%d", len(out.Results), len(out.Failed))
	return out, nil
}

func (uc *implUseCase) syncProperty(ctx context.Context, p model.Property, now time.Time) (reservation.SyncOutput, error) {
	if !p.HasCalendar() {
		return reservation.SyncOutput{}, reservation.ErrCalendarNotConfigured
	}

	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: p.CalendarID,
		TimeMin:    now.AddDate(0, 0, -1),
		TimeMax:    now.AddDate(0, 0, uc.lookaheadDays),
		MaxResults: maxSyncEvents,
	})
	if err != nil {
		uc.l.Errorf(ctx, "reservation.usecase.syncProperty.ListEvents: %v", err)
		return reservation.SyncOutput{}, err
	}

	records, skipped := uc.eventsToRecords(ctx, events)
	if _, err := uc.repo.ReplaceReservations(ctx, repo.ReplaceReservationsOptions{
		PropertyID: p.ID,
		Source:     model.ReservationSourceGCalendar,
		Records:    records,
	}); err != nil {
		uc.l.Errorf(ctx, "reservation.usecase.syncProperty.ReplaceReservations: %v", err)
		return reservation.SyncOutput{}, err
	}

	return reservation.SyncOutput{PropertyID: p.ID, Imported: len(records), Skipped: skipped}, nil
}

// eventsToRecords keeps every event with a usable span. All-day events keep
// Google's exclusive end date, which lands on the checkout day.
func (uc *implUseCase) eventsToRecords(ctx context.Context, events []gcalendar.Event) ([]repo.ReservationInput, int) {
	records := make([]repo.ReservationInput, 0, len(events))
	skipped := 0
	for _, ev := range events {
		if ev.StartTime.IsZero() || ev.EndTime.IsZero() || ev.EndTime.Before(ev.StartTime) {
			uc.l.Warnf(ctx, "reservation.usecase.eventsToRecords: skipping event %s with unusable span", ev.ID)
			skipped++
			continue
		}
		records = append(records, repo.ReservationInput{
			Start:      ev.StartTime,
			End:        ev.EndTime,
			ExternalID: ev.ID,
			Summary:    ev.Summary,
		})
	}
	return records, skipped
}
