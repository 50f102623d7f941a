package usecase

import (
	"context"
	"fmt"
	"strings"

	"rental-ops/internal/inbox"
	repo "rental-ops/internal/inbox/repository"
	"rental-ops/internal/model"
	"rental-ops/internal/task"
)

func (uc *implUseCase) Ingest(ctx context.Context, sc model.Scope, input inbox.IngestInput) (inbox.IngestOutput, error) {
	title := strings.TrimSpace(input.Title)
	switch {
	case input.Source == "":
		return inbox.IngestOutput{}, inbox.ErrSourceRequired
	case strings.TrimSpace(input.ExternalID) == "":
		return inbox.IngestOutput{}, inbox.ErrExternalIDRequired
	case title == "":
		return inbox.IngestOutput{}, inbox.ErrTitleRequired
	case input.PropertyID == "":
		return inbox.IngestOutput{}, inbox.ErrPropertyRequired
	}

	var urgency model.Urgency
	if input.Urgency != "" {
		u, err := model.ParseUrgency(input.Urgency)
		if err != nil {
			return inbox.IngestOutput{}, err
		}
		urgency = u
	} else {
		urgency = inbox.Classify(title, input.Body)
	}

	if _, err := uc.propertyUC.Detail(ctx, sc, input.PropertyID); err != nil {
		return inbox.IngestOutput{}, err
	}

	item, created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Source:     input.Source,
		ExternalID: strings.TrimSpace(input.ExternalID),
		PropertyID: input.PropertyID,
		Title:      title,
		Body:       strings.TrimSpace(input.Body),
		Urgency:    urgency,
	})
	if err != nil {
		uc.l.Errorf(ctx, "inbox.usecase.Ingest.CreateItem: %v", err)
		return inbox.IngestOutput{}, err
	}

	if !created {
		uc.l.Infof(ctx, "inbox.usecase.Ingest: duplicate %s/%s ignored", input.Source, input.ExternalID)
	} else {
		uc.l.Infof(ctx, "inbox.usecase.Ingest: stored %s from %s urgency=%s", item.ID, item.Source, item.Urgency)
	}
	return inbox.IngestOutput{Item: item, Duplicate: !created}, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input inbox.ListInput) (inbox.ListOutput, error) {
	opt := repo.ListItemsOptions{
		PropertyID: input.PropertyID,
		Limit:      input.Limit,
		Offset:     input.Offset,
	}
	switch status := model.InboxStatus(input.Status); status {
	case "":
	case model.InboxStatusPending, model.InboxStatusAccepted, model.InboxStatusDismissed:
		opt.Status = status
	default:
		return inbox.ListOutput{}, fmt.Errorf("%w: %q", inbox.ErrInvalidStatus, input.Status)
	}

	items, total, err := uc.repo.ListItems(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "inbox.usecase.List.ListItems: %v", err)
		return inbox.ListOutput{}, err
	}
	return inbox.ListOutput{Items: items, Total: total, Limit: input.Limit, Offset: input.Offset}, nil
}

// Accept creates the task first; if the item was resolved concurrently the
// fresh task is removed again.
func (uc *implUseCase) Accept(ctx context.Context, sc model.Scope, id string) (inbox.AcceptOutput, error) {
	item, err := uc.getPending(ctx, id)
	if err != nil {
		return inbox.AcceptOutput{}, err
	}

	created, err := uc.taskUC.Create(ctx, sc, task.CreateInput{
		PropertyID:  item.PropertyID,
		Title:       item.Title,
		Description: item.Body,
		Urgency:     string(item.Urgency),
		Source:      model.TaskSourceInbox,
	})
	if err != nil {
		uc.l.Warnf(ctx, "inbox.usecase.Accept.Create: %v", err)
		return inbox.AcceptOutput{}, err
	}

	resolved, err := uc.repo.ResolveItem(ctx, repo.ResolveItemOptions{
		ID:     item.ID,
		Status: model.InboxStatusAccepted,
		TaskID: created.Task.ID,
	})
	if err == nil && resolved.ID == "" {
		err = inbox.ErrAlreadyResolved
	}
	if err != nil {
		if delErr := uc.taskUC.Delete(ctx, sc, created.Task.ID); delErr != nil {
			uc.l.Errorf(ctx, "inbox.usecase.Accept.Delete: orphan task %s: %v", created.Task.ID, delErr)
		}
		return inbox.AcceptOutput{}, err
	}

	uc.l.Infof(ctx, "inbox.usecase.Accept: %s accepted %s as task %s", sc.UserID, item.ID, created.Task.ID)
	return inbox.AcceptOutput{Item: resolved, Task: created.Task}, nil
}

func (uc *implUseCase) Dismiss(ctx context.Context, sc model.Scope, id string) (inbox.DismissOutput, error) {
	if _, err := uc.getPending(ctx, id); err != nil {
		return inbox.DismissOutput{}, err
	}

	resolved, err := uc.repo.ResolveItem(ctx, repo.ResolveItemOptions{ID: id, Status: model.InboxStatusDismissed})
	if err != nil {
		uc.l.Errorf(ctx, "inbox.usecase.Dismiss.ResolveItem: %v", err)
		return inbox.DismissOutput{}, err
	}
	if resolved.ID == "" {
		return inbox.DismissOutput{}, inbox.ErrAlreadyResolved
	}
	return inbox.DismissOutput{Item: resolved}, nil
}

func (uc *implUseCase) getPending(ctx context.Context, id string) (model.InboxItem, error) {
	item, err := uc.repo.GetOneItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "inbox.usecase.getPending.GetOneItem: %v", err)
		return model.InboxItem{}, err
	}
	if item.ID == "" {
		return model.InboxItem{}, inbox.ErrItemNotFound
	}
	if item.Status != model.InboxStatusPending {
		return model.InboxItem{}, inbox.ErrAlreadyResolved
	}
	return item, nil
}
