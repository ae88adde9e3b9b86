package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clubolimpo_backend/internals/databases/crud"
	model "clubolimpo_backend/internals/features/content/history_events/model"
	subsectionModel "clubolimpo_backend/internals/features/content/history_subsections/model"
)

type HistoryEventRepository struct {
	crud.Repository[model.HistoryEvent]
}

func NewHistoryEventRepository(db *gorm.DB) *HistoryEventRepository {
	return &HistoryEventRepository{
		Repository: crud.New[model.HistoryEvent](db,
			[]string{"year DESC", "month DESC", "day DESC", "display_order ASC"},
			crud.Preload{Name: "Subsections", Active: true, Order: "display_order ASC"},
		),
	}
}

func deactivateSubsections(tx *gorm.DB, eventID uint) error {
	return tx.Model(&subsectionModel.HistorySubsection{}).
		Where("history_event_id = ? AND is_active = ?", eventID, true).
		Update("is_active", crud.StatusInactive.Flag()).Error
}

// DeactivateCascade soft-deletes the event and every subsection under it.
func (r *HistoryEventRepository) DeactivateCascade(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := crud.Deactivate[model.HistoryEvent](tx, id); err != nil {
			return err
		}
		return deactivateSubsections(tx, id)
	})
}

// Update saves the event; an event switched to inactive takes its
// subsections with it in the same transaction.
func (r *HistoryEventRepository) Update(ctx context.Context, row *model.HistoryEvent) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(row).Error; err != nil {
			return err
		}
		if crud.StatusOf(row.IsActive) == crud.StatusInactive {
			return deactivateSubsections(tx, row.ID)
		}
		return nil
	})
}
