package postgre

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rental-ops/internal/model"
	repo "rental-ops/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	t := model.Task{
		ID:          uuid.NewString(),
		PropertyID:  opt.PropertyID,
		Title:       opt.Title,
		Description: opt.Description,
		Urgency:     opt.Urgency,
		Status:      model.TaskStatusOpen,
		Source:      opt.Source,
		CreatedBy:   opt.CreatedBy,
	}
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

func (r *implRepository) GetOneTask(ctx context.Context, id string) (model.Task, error) {
	var t model.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks orders open work first: unscheduled before scheduled, then newest.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	q := r.db.WithContext(ctx).Model(&model.Task{})
	if opt.PropertyID != "" {
		q = q.Where("property_id = ?", opt.PropertyID)
	}
	if opt.Status != "" {
		q = q.Where("status = ?", opt.Status)
	}
	if opt.Urgency != "" {
		q = q.Where("urgency = ?", opt.Urgency)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	q = q.Order("scheduled_at IS NOT NULL, created_at DESC")
	if opt.Limit > 0 {
		q = q.Limit(opt.Limit)
	}
	if opt.Offset > 0 {
		q = q.Offset(opt.Offset)
	}

	var tasks []model.Task
	if err := q.Find(&tasks).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, int(total), nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", opt.ID).
		Updates(map[string]any{
			"title":         opt.Title,
			"description":   opt.Description,
			"urgency":       opt.Urgency,
			"status":        opt.Status,
			"scheduled_at":  opt.ScheduledAt,
			"calendar_link": opt.CalendarLink,
		})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), res.Error)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if res.RowsAffected == 0 {
		return model.Task{}, nil
	}
	return r.GetOneTask(ctx, opt.ID)
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Task{}).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
