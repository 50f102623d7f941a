package inbox

import "rental-ops/internal/model"

// --- UseCase Inputs ---

// IngestInput is one inbound request. An empty Urgency is classified from the
// title and body.
type IngestInput struct {
	Source     string
	ExternalID string
	PropertyID string
	Title      string
	Body       string
	Urgency    string
}

type ListInput struct {
	Status     string
	PropertyID string
	Limit      int
	Offset     int
}

// --- UseCase Outputs ---

type IngestOutput struct {
	Item model.InboxItem
	// Duplicate is set when (Source, ExternalID) was already stored; Item is
	// then the stored row, untouched.
	Duplicate bool
}

type ListOutput struct {
	Items  []model.InboxItem
	Total  int
	Limit  int
	Offset int
}

type AcceptOutput struct {
	Item model.InboxItem
	Task model.Task
}

type DismissOutput struct {
	Item model.InboxItem
}
