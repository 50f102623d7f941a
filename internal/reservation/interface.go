package reservation

import (
	"context"
	"time"

	"rental-ops/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Replace(ctx context.Context, sc model.Scope, input ReplaceInput) (ReplaceOutput, error)

	// SyncFromCalendar replaces the calendar-sourced stays of one property
	// with the events found around now.
	SyncFromCalendar(ctx context.Context, propertyID string, now time.Time) (SyncOutput, error)
	// SyncAll runs SyncFromCalendar for every calendar-linked property.
	SyncAll(ctx context.Context, now time.Time) (SyncAllOutput, error)

	// Calendar returns the property and its whole stored calendar, past stays
	// included; Low treats an empty calendar differently from a busy one.
	Calendar(ctx context.Context, propertyID string) (CalendarOutput, error)
}
