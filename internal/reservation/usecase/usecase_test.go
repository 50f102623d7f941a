package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-ops/internal/model"
	"rental-ops/internal/property"
	"rental-ops/internal/reservation"
	repo "rental-ops/internal/reservation/repository"
	"rental-ops/internal/scheduling"
	"rental-ops/pkg/gcalendar"
	"rental-ops/pkg/log"
)

// --- mocks ---

type mockRepo struct {
	listOpt    repo.ListReservationsOptions
	listResult []model.ReservationRecord
	replaced   []repo.ReplaceReservationsOptions
	replaceErr error
}

func (m *mockRepo) ListReservations(ctx context.Context, opt repo.ListReservationsOptions) ([]model.ReservationRecord, error) {
	m.listOpt = opt
	return m.listResult, nil
}

func (m *mockRepo) ReplaceReservations(ctx context.Context, opt repo.ReplaceReservationsOptions) ([]model.ReservationRecord, error) {
	if m.replaceErr != nil {
		return nil, m.replaceErr
	}
	m.replaced = append(m.replaced, opt)
	out := make([]model.ReservationRecord, len(opt.Records))
	for i, r := range opt.Records {
		out[i] = model.ReservationRecord{PropertyID: opt.PropertyID, Start: r.Start, End: r.End, Source: opt.Source}
	}
	return out, nil
}

type mockPropertyUC struct {
	property.UseCase
	props map[string]model.Property
}

func (m *mockPropertyUC) Detail(ctx context.Context, sc model.Scope, id string) (property.DetailOutput, error) {
	p, ok := m.props[id]
	if !ok {
		return property.DetailOutput{}, property.ErrPropertyNotFound
	}
	return property.DetailOutput{Property: p}, nil
}

func (m *mockPropertyUC) ListWithCalendar(ctx context.Context) ([]model.Property, error) {
	var out []model.Property
	for _, p := range m.props {
		if p.HasCalendar() {
			out = append(out, p)
		}
	}
	return out, nil
}

type mockCalendar struct {
	events  map[string][]gcalendar.Event
	failFor string
	lastReq gcalendar.ListEventsRequest
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.lastReq = req
	if req.CalendarID == m.failFor {
		return nil, errors.New("calendar unavailable")
	}
	return m.events[req.CalendarID], nil
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	return nil, errors.New("not implemented")
}

var sc = model.Scope{UserID: "tester"}

func newPropertyUC() *mockPropertyUC {
	return &mockPropertyUC{props: map[string]model.Property{
		"cabin": {ID: "cabin", Timezone: "America/Denver", CalendarID: "cal-cabin"},
		"loft":  {ID: "loft", Timezone: "UTC"},
	}}
}

// --- tests ---

func TestReplace_ParsesInPropertyTimezone(t *testing.T) {
	r := &mockRepo{}
	uc := New(r, newPropertyUC(), nil, 0, log.NewNop())

	out, err := uc.Replace(context.Background(), sc, reservation.ReplaceInput{
		PropertyID: "cabin",
		Reservations: []scheduling.RawReservation{
			{Start: "2025-04-10T16:00:00", End: "2025-04-12T11:00:00"},
			{Start: "2025-04-14T16:00:00Z", End: "2025-04-15T11:00:00Z"},
		},
	})
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if len(out.Reservations) != 2 || len(r.replaced) != 1 {
		t.Fatalf("unexpected result %+v / %+v", out, r.replaced)
	}
	if r.replaced[0].Source != model.ReservationSourceManual {
		t.Errorf("source = %s, want manual", r.replaced[0].Source)
	}

	denver, _ := time.LoadLocation("America/Denver")
	want := time.Date(2025, 4, 10, 16, 0, 0, 0, denver)
	if !r.replaced[0].Records[0].Start.Equal(want) {
		t.Errorf("offset-less start = %v, want %v", r.replaced[0].Records[0].Start, want)
	}
	if !r.replaced[0].Records[1].Start.Equal(time.Date(2025, 4, 14, 16, 0, 0, 0, time.UTC)) {
		t.Errorf("explicit offset not preserved: %v", r.replaced[0].Records[1].Start)
	}
}

func TestReplace_InvalidLeavesStoreUntouched(t *testing.T) {
	r := &mockRepo{}
	uc := New(r, newPropertyUC(), nil, 0, log.NewNop())

	_, err := uc.Replace(context.Background(), sc, reservation.ReplaceInput{
		PropertyID: "loft",
		Reservations: []scheduling.RawReservation{
			{Start: "2025-04-10T16:00:00Z", End: "2025-04-12T11:00:00Z"},
			{Start: "tomorrow", End: "2025-04-12T11:00:00Z"},
		},
	})
	var pe *scheduling.ParseError
	if !errors.As(err, &pe) || pe.Index != 1 || pe.Field != "start" {
		t.Fatalf("expected ParseError at index 1, got %v", err)
	}
	if len(r.replaced) != 0 {
		t.Errorf("store was modified on invalid input")
	}
}

func TestReplace_UnknownProperty(t *testing.T) {
	uc := New(&mockRepo{}, newPropertyUC(), nil, 0, log.NewNop())
	_, err := uc.Replace(context.Background(), sc, reservation.ReplaceInput{PropertyID: "nope"})
	if !errors.Is(err, property.ErrPropertyNotFound) {
		t.Errorf("err = %v, want ErrPropertyNotFound", err)
	}
}

func TestList_InvalidRange(t *testing.T) {
	uc := New(&mockRepo{}, newPropertyUC(), nil, 0, log.NewNop())
	_, err := uc.List(context.Background(), sc, reservation.ListInput{
		PropertyID: "loft",
		From:       time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		To:         time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, reservation.ErrInvalidRange) {
		t.Errorf("err = %v, want ErrInvalidRange", err)
	}
}

func TestCalendar_KeepsPastStays(t *testing.T) {
	past := time.Date(2025, 4, 1, 15, 0, 0, 0, time.UTC)
	next := time.Date(2025, 4, 20, 16, 0, 0, 0, time.UTC)
	r := &mockRepo{listResult: []model.ReservationRecord{
		{Start: past, End: past.Add(44 * time.Hour)},
		{Start: next, End: next.Add(48 * time.Hour)},
	}}
	uc := New(r, newPropertyUC(), nil, 0, log.NewNop())

	out, err := uc.Calendar(context.Background(), "cabin")
	if err != nil {
		t.Fatalf("Calendar() error = %v", err)
	}
	if !r.listOpt.EndsAfter.IsZero() || !r.listOpt.StartsBefore.IsZero() || r.listOpt.Source != "" {
		t.Errorf("calendar must not be filtered, got %+v", r.listOpt)
	}
	if out.Property.ID != "cabin" || len(out.Reservations) != 2 || !out.Reservations[0].Start.Equal(past) {
		t.Errorf("unexpected output %+v", out)
	}
}

func TestSyncFromCalendar(t *testing.T) {
	now := time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)
	cal := &mockCalendar{events: map[string][]gcalendar.Event{
		"cal-cabin": {
			{ID: "ev1", Summary: "Guest A", StartTime: now.Add(24 * time.Hour), EndTime: now.Add(72 * time.Hour)},
			{ID: "ev2", AllDay: true, StartTime: time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC), EndTime: time.Date(2025, 4, 23, 0, 0, 0, 0, time.UTC)},
			{ID: "broken", StartTime: now, EndTime: now.Add(-time.Hour)},
		},
	}}
	r := &mockRepo{}
	uc := New(r, newPropertyUC(), cal, 30, log.NewNop())

	out, err := uc.SyncFromCalendar(context.Background(), "cabin", now)
	if err != nil {
		t.Fatalf("SyncFromCalendar() error = %v", err)
	}
	if out.Imported != 2 || out.Skipped != 1 {
		t.Errorf("imported=%d skipped=%d, want 2/1", out.Imported, out.Skipped)
	}
	if r.replaced[0].Source != model.ReservationSourceGCalendar || r.replaced[0].Records[0].ExternalID != "ev1" {
		t.Errorf("unexpected replace %+v", r.replaced[0])
	}
	if !cal.lastReq.TimeMin.Equal(now.AddDate(0, 0, -1)) || !cal.lastReq.TimeMax.Equal(now.AddDate(0, 0, 30)) {
		t.Errorf("unexpected window %v..%v", cal.lastReq.TimeMin, cal.lastReq.TimeMax)
	}
}

func TestSyncFromCalendar_NotConfigured(t *testing.T) {
	now := time.Now()

	uc := New(&mockRepo{}, newPropertyUC(), nil, 0, log.NewNop())
	if _, err := uc.SyncFromCalendar(context.Background(), "cabin", now); !errors.Is(err, reservation.ErrCalendarNotConfigured) {
		t.Errorf("nil client: err = %v", err)
	}

	uc = New(&mockRepo{}, newPropertyUC(), &mockCalendar{}, 0, log.NewNop())
	if _, err := uc.SyncFromCalendar(context.Background(), "loft", now); !errors.Is(err, reservation.ErrCalendarNotConfigured) {
		t.Errorf("unlinked property: err = %v", err)
	}
}

func TestSyncAll_ContinuesPastFailures(t *testing.T) {
	props := newPropertyUC()
	props.props["barn"] = model.Property{ID: "barn", CalendarID: "cal-barn"}
	cal := &mockCalendar{failFor: "cal-barn", events: map[string][]gcalendar.Event{}}
	r := &mockRepo{}
	uc := New(r, props, cal, 0, log.NewNop())

	out, err := uc.SyncAll(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("SyncAll() error = %v", err)
	}
	if len(out.Results) != 1 || out.Results[0].PropertyID != "cabin" {
		t.Errorf("results = %+v", out.Results)
	}
	if _, ok := out.Failed["barn"]; !ok || len(out.Failed) != 1 {
		t.Errorf("failed = %+v", out.Failed)
	}
}
