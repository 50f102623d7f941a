package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"rental-ops/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestNewClientFromCredentials(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("broken config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("installed app with token", func(t *testing.T) {
		t.Chdir(t.TempDir())
		if err := os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600); err != nil {
			t.Fatal(err)
		}

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds)); err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("installed app with bad token", func(t *testing.T) {
		t.Chdir(t.TempDir())
		if err := os.WriteFile("token.json", []byte(`{"broken": true`), 0o600); err != nil {
			t.Fatal(err)
		}

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds)); err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("from file", func(t *testing.T) {
		path := t.TempDir() + "/creds.json"
		if err := os.WriteFile(path, []byte(`{"broken":true}`), 0o600); err != nil {
			t.Fatal(err)
		}

		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), path); err == nil {
			t.Errorf("expected failure loading broken file")
		}
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json"); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/cal-1/events" && r.Method == http.MethodPost {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id": "event-123", "htmlLink": "https://calendar.google.com/event-uri", "status": "confirmed"}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	})

	start := time.Date(2025, 4, 27, 14, 0, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		CalendarID: "cal-1",
		Summary:    "Turnover clean",
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.HtmlLink != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected link: %s", event.HtmlLink)
	}
	if !event.StartTime.Equal(start) {
		t.Errorf("unexpected start: %v", event.StartTime)
	}

	if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{}); err == nil {
		t.Fatalf("expected create event error on primary calendar")
	}
}

func TestListEvents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/calendar/v3/calendars/test-fail/events":
			w.WriteHeader(http.StatusInternalServerError)
		case r.URL.Path == "/calendar/v3/calendars/primary/events" && r.URL.Query().Get("pageToken") == "":
			if r.URL.Query().Get("singleEvents") != "true" {
				t.Errorf("recurring events must be expanded")
			}
			w.Write([]byte(`{
				"timeZone": "America/Denver",
				"nextPageToken": "page-2",
				"items": [
					{"id": "stay-1", "summary": "Guest A", "start": {"date": "2025-04-25"}, "end": {"date": "2025-04-27"}},
					{"id": "gone", "status": "cancelled", "start": {"date": "2025-04-26"}, "end": {"date": "2025-04-27"}}
				]
			}`))
		case r.URL.Path == "/calendar/v3/calendars/primary/events":
			w.Write([]byte(`{
				"items": [
					{"id": "stay-2", "summary": "Guest B", "start": {"dateTime": "2025-04-28T16:00:00-06:00"}, "end": {"dateTime": "2025-04-30T10:00:00-06:00"}}
				]
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		TimeMin: time.Date(2025, 4, 24, 0, 0, 0, 0, time.UTC),
		TimeMax: time.Date(2025, 6, 24, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	denver, _ := time.LoadLocation("America/Denver")
	first := events[0]
	if !first.AllDay {
		t.Error("expected first event to be all-day")
	}
	if want := time.Date(2025, 4, 25, 0, 0, 0, 0, denver); !first.StartTime.Equal(want) {
		t.Errorf("all-day start = %v, want %v", first.StartTime, want)
	}
	if want := time.Date(2025, 4, 28, 22, 0, 0, 0, time.UTC); !events[1].StartTime.Equal(want) {
		t.Errorf("timed start = %v, want %v", events[1].StartTime, want)
	}
	if events[1].AllDay {
		t.Error("timed event flagged as all-day")
	}

	if _, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{CalendarID: "test-fail"}); err == nil {
		t.Fatalf("expected api error on test-fail")
	}
}

func TestListEvents_MaxResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": [
			{"id": "a", "start": {"date": "2025-04-25"}, "end": {"date": "2025-04-26"}},
			{"id": "b", "start": {"date": "2025-04-26"}, "end": {"date": "2025-04-27"}}
		]}`))
	})

	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{MaxResults: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].ID != "a" {
		t.Errorf("expected only the first event, got %+v", events)
	}
}
