package repository

import (
	"context"

	"rental-ops/internal/model"
)

// Repository is the data store for properties.
type Repository interface {
	CreateProperty(ctx context.Context, opt CreatePropertyOptions) (model.Property, error)
	GetOneProperty(ctx context.Context, opt GetOnePropertyOptions) (model.Property, error)
	ListProperties(ctx context.Context, opt ListPropertiesOptions) ([]model.Property, int, error)
	UpdateProperty(ctx context.Context, opt UpdatePropertyOptions) (model.Property, error)
	// DeleteProperty removes the property together with its reservations and tasks.
	DeleteProperty(ctx context.Context, id string) error
}
