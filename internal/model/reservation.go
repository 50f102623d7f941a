package model

import "time"

type ReservationSource string

const (
	ReservationSourceManual    ReservationSource = "manual"
	ReservationSourceGCalendar ReservationSource = "gcalendar"
)

// ReservationRecord is a stored guest stay on a property.
type ReservationRecord struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	PropertyID string    `gorm:"type:uuid;index:idx_reservation_property_start"`
	Start      time.Time `gorm:"index:idx_reservation_property_start"`
	End        time.Time
	Source     ReservationSource `gorm:"type:varchar(16);index"`
	ExternalID string            `gorm:"type:varchar(255)"`
	Summary    string
	CreatedAt  time.Time
}
