package model

import (
	"time"
)

// Property is a rentable unit with its own calendar and local timezone.
type Property struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	Name       string `gorm:"uniqueIndex"`
	Address    string `gorm:"type:text"`
	Timezone   string `gorm:"type:varchar(64)"`
	CalendarID string `gorm:"type:varchar(255)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Location resolves the property's IANA timezone, falling back to UTC.
func (p Property) Location() *time.Location {
	if p.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// HasCalendar reports whether the property is linked to an external calendar.
func (p Property) HasCalendar() bool {
	return p.CalendarID != ""
}
