package postgre

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rental-ops/internal/model"
	repo "rental-ops/internal/reservation/repository"
)

func (r *implRepository) ListReservations(ctx context.Context, opt repo.ListReservationsOptions) ([]model.ReservationRecord, error) {
	q := r.db.WithContext(ctx).Model(&model.ReservationRecord{})
	if opt.PropertyID != "" {
		q = q.Where("property_id = ?", opt.PropertyID)
	}
	if opt.Source != "" {
		q = q.Where("source = ?", opt.Source)
	}
	if !opt.EndsAfter.IsZero() {
		q = q.Where("\"end\" >= ?", opt.EndsAfter.UTC())
	}
	if !opt.StartsBefore.IsZero() {
		q = q.Where("start <= ?", opt.StartsBefore.UTC())
	}

	var records []model.ReservationRecord
	if err := q.Order("start ASC").Find(&records).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListReservations"), err)
		return nil, repo.ErrFailedToList
	}
	return records, nil
}

func (r *implRepository) ReplaceReservations(ctx context.Context, opt repo.ReplaceReservationsOptions) ([]model.ReservationRecord, error) {
	records := make([]model.ReservationRecord, len(opt.Records))
	for i, in := range opt.Records {
		records[i] = model.ReservationRecord{
			ID:         uuid.NewString(),
			PropertyID: opt.PropertyID,
			Start:      in.Start.UTC(),
			End:        in.End.UTC(),
			Source:     opt.Source,
			ExternalID: in.ExternalID,
			Summary:    in.Summary,
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ? AND source = ?", opt.PropertyID, opt.Source).
			Delete(&model.ReservationRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.CreateInBatches(records, 100).Error
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReplaceReservations"), err)
		return nil, repo.ErrFailedToReplace
	}
	return records, nil
}
