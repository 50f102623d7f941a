package model

import "time"

type InboxStatus string

const (
	InboxStatusPending   InboxStatus = "pending"
	InboxStatusAccepted  InboxStatus = "accepted"
	InboxStatusDismissed InboxStatus = "dismissed"
)

// InboxItem is an inbound maintenance request awaiting triage.
// (Source, ExternalID) is unique so redelivered webhooks are idempotent.
type InboxItem struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	Source     string `gorm:"type:varchar(32);uniqueIndex:idx_inbox_source_external"`
	ExternalID string `gorm:"type:varchar(255);uniqueIndex:idx_inbox_source_external"`
	PropertyID string `gorm:"type:uuid;index"`
	Title      string
	Body       string      `gorm:"type:text"`
	Urgency    Urgency     `gorm:"type:varchar(16)"`
	Status     InboxStatus `gorm:"type:varchar(16);index"`
	TaskID     string      `gorm:"type:varchar(36)"`
	ReceivedAt time.Time
	UpdatedAt  time.Time
}
