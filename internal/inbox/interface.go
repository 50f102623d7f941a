package inbox

import (
	"context"

	"rental-ops/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Ingest stores a request once per (source, external id).
	Ingest(ctx context.Context, sc model.Scope, input IngestInput) (IngestOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	// Accept turns a pending item into a task.
	Accept(ctx context.Context, sc model.Scope, id string) (AcceptOutput, error)
	Dismiss(ctx context.Context, sc model.Scope, id string) (DismissOutput, error)
}
