package postgre

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rental-ops/internal/model"
	repo "rental-ops/internal/property/repository"
)

func (r *implRepository) CreateProperty(ctx context.Context, opt repo.CreatePropertyOptions) (model.Property, error) {
	p := model.Property{
		ID:         uuid.NewString(),
		Name:       opt.Name,
		Address:    opt.Address,
		Timezone:   opt.Timezone,
		CalendarID: opt.CalendarID,
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProperty"), err)
		return model.Property{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// GetOneProperty returns a zero-value Property (ID == "") when nothing matches.
func (r *implRepository) GetOneProperty(ctx context.Context, opt repo.GetOnePropertyOptions) (model.Property, error) {
	q := r.db.WithContext(ctx).Model(&model.Property{})
	if opt.ID != "" {
		q = q.Where("id = ?", opt.ID)
	}
	if opt.Name != "" {
		q = q.Where("name = ?", opt.Name)
	}

	var p model.Property
	err := q.First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Property{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneProperty"), err)
		return model.Property{}, repo.ErrFailedToGet
	}
	return p, nil
}

func (r *implRepository) ListProperties(ctx context.Context, opt repo.ListPropertiesOptions) ([]model.Property, int, error) {
	q := r.db.WithContext(ctx).Model(&model.Property{})
	if opt.WithCalendarOnly {
		q = q.Where("calendar_id <> ''")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListProperties"), err)
		return nil, 0, repo.ErrFailedToList
	}

	q = q.Order("name ASC")
	if opt.Limit > 0 {
		q = q.Limit(opt.Limit)
	}
	if opt.Offset > 0 {
		q = q.Offset(opt.Offset)
	}

	var props []model.Property
	if err := q.Find(&props).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProperties"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return props, int(total), nil
}

// UpdateProperty writes every column of opt and returns the stored row.
func (r *implRepository) UpdateProperty(ctx context.Context, opt repo.UpdatePropertyOptions) (model.Property, error) {
	res := r.db.WithContext(ctx).Model(&model.Property{}).
		Where("id = ?", opt.ID).
		Updates(map[string]any{
			"name":        opt.Name,
			"address":     opt.Address,
			"timezone":    opt.Timezone,
			"calendar_id": opt.CalendarID,
		})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateProperty"), res.Error)
		return model.Property{}, repo.ErrFailedToUpdate
	}
	if res.RowsAffected == 0 {
		return model.Property{}, nil
	}
	return r.GetOneProperty(ctx, repo.GetOnePropertyOptions{ID: opt.ID})
}

func (r *implRepository) DeleteProperty(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&model.ReservationRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&model.InboxItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Property{}).Error
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteProperty"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
