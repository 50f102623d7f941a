package postgre

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	repo "rental-ops/internal/inbox/repository"
	"rental-ops/internal/model"
)

func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.InboxItem, bool, error) {
	item := model.InboxItem{
		ID:         uuid.NewString(),
		Source:     opt.Source,
		ExternalID: opt.ExternalID,
		PropertyID: opt.PropertyID,
		Title:      opt.Title,
		Body:       opt.Body,
		Urgency:    opt.Urgency,
		Status:     model.InboxStatusPending,
		ReceivedAt: time.Now().UTC(),
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "source"}, {Name: "external_id"}},
			DoNothing: true,
		}).
		Create(&item)
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), res.Error)
		return model.InboxItem{}, false, repo.ErrFailedToInsert
	}
	if res.RowsAffected == 1 {
		return item, true, nil
	}

	var existing model.InboxItem
	err := r.db.WithContext(ctx).
		Where("source = ? AND external_id = ?", opt.Source, opt.ExternalID).
		First(&existing).Error
	if err != nil {
		r.l.Errorf(ctx, "%s existing: %v", r.dsn("CreateItem"), err)
		return model.InboxItem{}, false, repo.ErrFailedToGet
	}
	return existing, false, nil
}

func (r *implRepository) GetOneItem(ctx context.Context, id string) (model.InboxItem, error) {
	var item model.InboxItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.InboxItem{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.InboxItem{}, repo.ErrFailedToGet
	}
	return item, nil
}

func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.InboxItem, int, error) {
	q := r.db.WithContext(ctx).Model(&model.InboxItem{})
	if opt.Status != "" {
		q = q.Where("status = ?", opt.Status)
	}
	if opt.PropertyID != "" {
		q = q.Where("property_id = ?", opt.PropertyID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	q = q.Order("received_at DESC")
	if opt.Limit > 0 {
		q = q.Limit(opt.Limit)
	}
	if opt.Offset > 0 {
		q = q.Offset(opt.Offset)
	}

	var items []model.InboxItem
	if err := q.Find(&items).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, int(total), nil
}

// ResolveItem only matches pending rows so two concurrent accepts cannot both win.
func (r *implRepository) ResolveItem(ctx context.Context, opt repo.ResolveItemOptions) (model.InboxItem, error) {
	res := r.db.WithContext(ctx).Model(&model.InboxItem{}).
		Where("id = ? AND status = ?", opt.ID, model.InboxStatusPending).
		Updates(map[string]any{
			"status":  opt.Status,
			"task_id": opt.TaskID,
		})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ResolveItem"), res.Error)
		return model.InboxItem{}, repo.ErrFailedToUpdate
	}
	if res.RowsAffected == 0 {
		return model.InboxItem{}, nil
	}
	return r.GetOneItem(ctx, opt.ID)
}
