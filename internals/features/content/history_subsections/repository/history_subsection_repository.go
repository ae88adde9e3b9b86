package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clubolimpo_backend/internals/databases/crud"
	eventModel "clubolimpo_backend/internals/features/content/history_events/model"
	model "clubolimpo_backend/internals/features/content/history_subsections/model"
)

// Subsections are only visible while their parent event is active.
const activeParentJoin = "JOIN history_events ON history_events.id = history_subsections.history_event_id AND history_events.is_active = ?"

type HistorySubsectionRepository struct {
	crud.Repository[model.HistorySubsection]
}

func NewHistorySubsectionRepository(db *gorm.DB) *HistorySubsectionRepository {
	return &HistorySubsectionRepository{
		Repository: crud.New[model.HistorySubsection](db, nil),
	}
}

func (r *HistorySubsectionRepository) visible(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Model(&model.HistorySubsection{}).
		Joins(activeParentJoin, true).
		Where("history_subsections.is_active = ?", true)
}

func (r *HistorySubsectionRepository) List(ctx context.Context) ([]model.HistorySubsection, error) {
	rows := make([]model.HistorySubsection, 0)
	err := r.visible(ctx).
		Select("history_subsections.*").
		Order("history_subsections.history_event_id ASC").
		Order("history_subsections.display_order ASC").
		Order("history_subsections.title ASC").
		Find(&rows).Error
	return rows, err
}

// ListByEvent returns the visible subsections of one event.
func (r *HistorySubsectionRepository) ListByEvent(ctx context.Context, eventID uint) ([]model.HistorySubsection, error) {
	rows := make([]model.HistorySubsection, 0)
	err := r.visible(ctx).
		Select("history_subsections.*").
		Where("history_subsections.history_event_id = ?", eventID).
		Order("history_subsections.display_order ASC").
		Order("history_subsections.title ASC").
		Find(&rows).Error
	return rows, err
}

func (r *HistorySubsectionRepository) FindActive(ctx context.Context, id uint) (*model.HistorySubsection, error) {
	var row model.HistorySubsection
	err := r.visible(ctx).
		Select("history_subsections.*").
		Where("history_subsections.id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, crud.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ParentActive reports whether eventID is an active history event.
func (r *HistorySubsectionRepository) ParentActive(ctx context.Context, eventID uint) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&eventModel.HistoryEvent{}).
		Scopes(crud.WithStatus(crud.StatusActive)).
		Where("id = ?", eventID).
		Count(&n).Error
	return n > 0, err
}
