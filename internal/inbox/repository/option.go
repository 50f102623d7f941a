package repository

import "rental-ops/internal/model"

type CreateItemOptions struct {
	Source     string
	ExternalID string
	PropertyID string
	Title      string
	Body       string
	Urgency    model.Urgency
}

type ListItemsOptions struct {
	Status     model.InboxStatus
	PropertyID string
	Limit      int
	Offset     int
}

type ResolveItemOptions struct {
	ID     string
	Status model.InboxStatus
	TaskID string
}
