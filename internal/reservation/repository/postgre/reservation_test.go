package postgre

import (
	"context"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"rental-ops/internal/model"
	repo "rental-ops/internal/reservation/repository"
	"rental-ops/pkg/log"
	"rental-ops/pkg/postgres"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := postgres.Connect(postgres.Config{
		Driver: postgres.DriverSQLite,
		DSN:    "file:" + name + "?mode=memory&cache=shared",
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := postgres.Migrate(db, model.Tables()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { postgres.Close(db) })
	return db
}

func day(d int) time.Time {
	return time.Date(2025, 4, d, 0, 0, 0, 0, time.UTC)
}

func TestReplaceReservations_ScopedBySource(t *testing.T) {
	ctx := context.Background()
	r := New(newTestDB(t), log.NewNop())

	if _, err := r.ReplaceReservations(ctx, repo.ReplaceReservationsOptions{
		PropertyID: "p1",
		Source:     model.ReservationSourceGCalendar,
		Records:    []repo.ReservationInput{{Start: day(10), End: day(12), ExternalID: "ev-1"}},
	}); err != nil {
		t.Fatalf("ReplaceReservations(gcal) error = %v", err)
	}

	for _, set := range [][]repo.ReservationInput{
		{{Start: day(1), End: day(3)}, {Start: day(5), End: day(7)}},
		{{Start: day(20), End: day(22)}},
	} {
		if _, err := r.ReplaceReservations(ctx, repo.ReplaceReservationsOptions{
			PropertyID: "p1",
			Source:     model.ReservationSourceManual,
			Records:    set,
		}); err != nil {
			t.Fatalf("ReplaceReservations(manual) error = %v", err)
		}
	}

	all, err := r.ListReservations(ctx, repo.ListReservationsOptions{PropertyID: "p1"})
	if err != nil {
		t.Fatalf("ListReservations() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected gcal + latest manual set, got %d records", len(all))
	}
	if all[0].Source != model.ReservationSourceGCalendar || !all[1].Start.Equal(day(20)) {
		t.Errorf("unexpected records %+v", all)
	}
}

func TestReplaceReservations_EmptyClears(t *testing.T) {
	ctx := context.Background()
	r := New(newTestDB(t), log.NewNop())

	_, _ = r.ReplaceReservations(ctx, repo.ReplaceReservationsOptions{
		PropertyID: "p1",
		Source:     model.ReservationSourceManual,
		Records:    []repo.ReservationInput{{Start: day(1), End: day(3)}},
	})
	if _, err := r.ReplaceReservations(ctx, repo.ReplaceReservationsOptions{PropertyID: "p1", Source: model.ReservationSourceManual}); err != nil {
		t.Fatalf("ReplaceReservations() error = %v", err)
	}

	all, _ := r.ListReservations(ctx, repo.ListReservationsOptions{PropertyID: "p1"})
	if len(all) != 0 {
		t.Errorf("expected no records, got %d", len(all))
	}
}

func TestListReservations_Window(t *testing.T) {
	ctx := context.Background()
	r := New(newTestDB(t), log.NewNop())

	_, _ = r.ReplaceReservations(ctx, repo.ReplaceReservationsOptions{
		PropertyID: "p1",
		Source:     model.ReservationSourceManual,
		Records: []repo.ReservationInput{
			{Start: day(1), End: day(3)},
			{Start: day(5), End: day(9)},
			{Start: day(20), End: day(22)},
		},
	})
	_, _ = r.ReplaceReservations(ctx, repo.ReplaceReservationsOptions{
		PropertyID: "p2",
		Source:     model.ReservationSourceManual,
		Records:    []repo.ReservationInput{{Start: day(6), End: day(7)}},
	})

	got, err := r.ListReservations(ctx, repo.ListReservationsOptions{
		PropertyID:   "p1",
		EndsAfter:    day(4),
		StartsBefore: day(10),
	})
	if err != nil {
		t.Fatalf("ListReservations() error = %v", err)
	}
	if len(got) != 1 || !got[0].Start.Equal(day(5)) {
		t.Errorf("unexpected window result %+v", got)
	}
}
