package gcalendar

import (
	"context"
	"time"
)

// Calendar is the subset of the Google Calendar API the service relies on.
type Calendar interface {
	ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error)
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "America/Denver"
}

// Event is a simplified representation of a Google Calendar event.
// All-day events carry midnight boundaries in the calendar's timezone and an
// exclusive end date, exactly as Google stores them.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
