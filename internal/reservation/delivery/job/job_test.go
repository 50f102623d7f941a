package job

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"rental-ops/internal/reservation"
	"rental-ops/pkg/log"
)

type mockUseCase struct {
	reservation.UseCase

	mu       sync.Mutex
	calls    int
	lastNow  time.Time
	deadline bool
	out      reservation.SyncAllOutput
	err      error
}

func (m *mockUseCase) SyncAll(ctx context.Context, now time.Time) (reservation.SyncAllOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastNow = now
	_, m.deadline = ctx.Deadline()
	return m.out, m.err
}

func TestNew_InvalidSpec(t *testing.T) {
	if _, err := New(log.NewNop(), &mockUseCase{}, Config{Spec: "every now and then"}); err == nil {
		t.Fatal("expected error for an invalid cron spec")
	}
}

func TestRunOnce(t *testing.T) {
	fixed := time.Date(2025, 4, 10, 9, 30, 0, 0, time.FixedZone("MDT", -6*3600))

	tests := []struct {
		name string
		out  reservation.SyncAllOutput
		err  error
	}{
		{
			name: "success with partial failure",
			out: reservation.SyncAllOutput{
				Results: []reservation.SyncOutput{{PropertyID: "p1", Imported: 3}},
				Failed:  map[string]error{"p2": errors.New("calendar gone")},
			},
		},
		{name: "calendar not configured", err: reservation.ErrCalendarNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{out: tt.out, err: tt.err}
			s, err := New(log.NewNop(), uc, Config{Spec: "*/15 * * * *"})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			s.now = func() time.Time { return fixed }

			s.RunOnce(context.Background())

			if uc.calls != 1 {
				t.Fatalf("calls = %d, want 1", uc.calls)
			}
			if !uc.deadline {
				t.Error("sync context has no deadline")
			}
			if !uc.lastNow.Equal(fixed) || uc.lastNow.Location() != time.UTC {
				t.Errorf("now = %v, want %v in UTC", uc.lastNow, fixed)
			}
		})
	}
}

func TestStart_StopsOnCancel(t *testing.T) {
	s, err := New(log.NewNop(), &mockUseCase{}, Config{Spec: "@every 1h", Timeout: time.Second})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}
