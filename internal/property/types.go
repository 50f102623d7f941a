package property

import "rental-ops/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Name       string
	Address    string
	Timezone   string
	CalendarID string
}

type ListInput struct {
	Limit  int
	Offset int
}

// UpdateInput is a partial update; empty fields keep their current value.
type UpdateInput struct {
	ID         string
	Name       string
	Address    string
	Timezone   string
	CalendarID *string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Property model.Property
}

type ListOutput struct {
	Properties []model.Property
	Total      int
	Limit      int
	Offset     int
}

type DetailOutput struct {
	Property model.Property
}

type UpdateOutput struct {
	Property model.Property
}
