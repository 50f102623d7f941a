package postgre

import (
	"context"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"rental-ops/internal/model"
	repo "rental-ops/internal/property/repository"
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

func TestPropertyRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	r := New(newTestDB(t), log.NewNop())

	created, err := r.CreateProperty(ctx, repo.CreatePropertyOptions{
		Name:     "Lakeview Cabin",
		Address:  "1 Shore Rd",
		Timezone: "America/Denver",
	})
	if err != nil {
		t.Fatalf("CreateProperty() error = %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated ID")
	}

	got, err := r.GetOneProperty(ctx, repo.GetOnePropertyOptions{Name: "Lakeview Cabin"})
	if err != nil || got.ID != created.ID {
		t.Fatalf("GetOneProperty() = %+v, %v", got, err)
	}

	missing, err := r.GetOneProperty(ctx, repo.GetOnePropertyOptions{ID: "does-not-exist"})
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero value for missing row, got %+v, %v", missing, err)
	}

	updated, err := r.UpdateProperty(ctx, repo.UpdatePropertyOptions{
		ID:         created.ID,
		Name:       "Lakeview Cabin",
		Address:    "2 Shore Rd",
		Timezone:   "America/Denver",
		CalendarID: "cal-1",
	})
	if err != nil {
		t.Fatalf("UpdateProperty() error = %v", err)
	}
	if updated.Address != "2 Shore Rd" || updated.CalendarID != "cal-1" {
		t.Errorf("unexpected update result %+v", updated)
	}

	noop, err := r.UpdateProperty(ctx, repo.UpdatePropertyOptions{ID: "does-not-exist", Name: "x"})
	if err != nil || noop.ID != "" {
		t.Errorf("expected zero value when updating missing row, got %+v, %v", noop, err)
	}
}

func TestPropertyRepository_ListAndFilter(t *testing.T) {
	ctx := context.Background()
	r := New(newTestDB(t), log.NewNop())

	for _, opt := range []repo.CreatePropertyOptions{
		{Name: "B Loft", CalendarID: "cal-b"},
		{Name: "A Studio"},
		{Name: "C Villa", CalendarID: "cal-c"},
	} {
		if _, err := r.CreateProperty(ctx, opt); err != nil {
			t.Fatalf("CreateProperty(%s) error = %v", opt.Name, err)
		}
	}

	all, total, err := r.ListProperties(ctx, repo.ListPropertiesOptions{Limit: 2})
	if err != nil {
		t.Fatalf("ListProperties() error = %v", err)
	}
	if total != 3 || len(all) != 2 || all[0].Name != "A Studio" {
		t.Errorf("unexpected page: total=%d props=%+v", total, all)
	}

	linked, total, err := r.ListProperties(ctx, repo.ListPropertiesOptions{WithCalendarOnly: true})
	if err != nil {
		t.Fatalf("ListProperties() error = %v", err)
	}
	if total != 2 || len(linked) != 2 {
		t.Errorf("expected 2 calendar-linked properties, got %d", total)
	}
}

func TestPropertyRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	r := New(db, log.NewNop())

	p, err := r.CreateProperty(ctx, repo.CreatePropertyOptions{Name: "Doomed"})
	if err != nil {
		t.Fatal(err)
	}
	now := time.Now().UTC()
	db.Create(&model.ReservationRecord{ID: "r1", PropertyID: p.ID, Start: now, End: now.Add(48 * time.Hour)})
	db.Create(&model.Task{ID: "t1", PropertyID: p.ID, Title: "Fix", Urgency: model.UrgencyLow, Status: model.TaskStatusOpen})
	db.Create(&model.InboxItem{ID: "i1", Source: "guesty", ExternalID: "m-1", PropertyID: p.ID, Title: "Leak", Status: model.InboxStatusPending})

	if err := r.DeleteProperty(ctx, p.ID); err != nil {
		t.Fatalf("DeleteProperty() error = %v", err)
	}

	var n int64
	db.Model(&model.ReservationRecord{}).Where("property_id = ?", p.ID).Count(&n)
	if n != 0 {
		t.Errorf("expected reservations to be removed, %d left", n)
	}
	db.Model(&model.Task{}).Where("property_id = ?", p.ID).Count(&n)
	if n != 0 {
		t.Errorf("expected tasks to be removed, %d left", n)
	}
	db.Model(&model.InboxItem{}).Where("property_id = ?", p.ID).Count(&n)
	if n != 0 {
		t.Errorf("expected inbox items to be removed, %d left", n)
	}
}
