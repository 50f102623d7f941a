package scheduling

import "time"

// Reservation is a booked span on one unit's calendar. Start <= End;
// zero-length spans are allowed and spans may overlap one another.
type Reservation struct {
	Start time.Time
	End   time.Time
}

// RawReservation is the wire form of a Reservation: two ISO-8601 strings.
type RawReservation struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
