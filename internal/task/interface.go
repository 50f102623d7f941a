package task

import (
	"context"

	"rental-ops/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Suggest proposes service instants for a stored task.
	Suggest(ctx context.Context, sc model.Scope, input SuggestInput) (SuggestOutput, error)
	// Preview proposes service instants for an ad-hoc urgency and calendar.
	Preview(ctx context.Context, sc model.Scope, input PreviewInput) (SuggestOutput, error)
	// Schedule books the task and mirrors it to the property's calendar when possible.
	Schedule(ctx context.Context, sc model.Scope, input ScheduleInput) (ScheduleOutput, error)
}
