package repository

import (
	"context"

	"rental-ops/internal/model"
)

// Repository is the data store for inbox items.
type Repository interface {
	// CreateItem inserts opt unless (Source, ExternalID) exists, in which case
	// the stored item is returned with created == false.
	CreateItem(ctx context.Context, opt CreateItemOptions) (item model.InboxItem, created bool, err error)
	// GetOneItem returns a zero-value item (ID == "") when nothing matches.
	GetOneItem(ctx context.Context, id string) (model.InboxItem, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.InboxItem, int, error)
	// ResolveItem moves a pending item to status. It returns a zero-value item
	// when no pending item with that ID exists.
	ResolveItem(ctx context.Context, opt ResolveItemOptions) (model.InboxItem, error)
}
