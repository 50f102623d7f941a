package http

import (
	"time"

	"rental-ops/internal/model"
	"rental-ops/internal/reservation"
	"rental-ops/internal/scheduling"
)

// --- Request DTOs ---

type listReq struct {
	From string `form:"from"`
	To   string `form:"to"`
}

type replaceReq struct {
	PropertyID   string                      `json:"-"`
	Reservations []scheduling.RawReservation `json:"reservations" binding:"max=1000"`
}

func (r replaceReq) toInput() reservation.ReplaceInput {
	return reservation.ReplaceInput{PropertyID: r.PropertyID, Reservations: r.Reservations}
}

// --- Response DTOs ---

type reservationResp struct {
	ID         string `json:"id,omitempty"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Source     string `json:"source"`
	ExternalID string `json:"external_id,omitempty"`
	Summary    string `json:"summary,omitempty"`
}

// newReservationResp renders boundaries in the property's local time.
func newReservationResp(r model.ReservationRecord, loc *time.Location) reservationResp {
	return reservationResp{
		ID:         r.ID,
		Start:      r.Start.In(loc).Format(time.RFC3339),
		End:        r.End.In(loc).Format(time.RFC3339),
		Source:     string(r.Source),
		ExternalID: r.ExternalID,
		Summary:    r.Summary,
	}
}

type listResp struct {
	PropertyID   string            `json:"property_id"`
	Timezone     string            `json:"timezone"`
	Reservations []reservationResp `json:"reservations"`
}

func (h *handler) newListResp(p model.Property, records []model.ReservationRecord) listResp {
	loc := p.Location()
	items := make([]reservationResp, len(records))
	for i, r := range records {
		items[i] = newReservationResp(r, loc)
	}
	return listResp{PropertyID: p.ID, Timezone: loc.String(), Reservations: items}
}

type syncResp struct {
	PropertyID string `json:"property_id"`
	Imported   int    `json:"imported"`
	Skipped    int    `json:"skipped"`
}
