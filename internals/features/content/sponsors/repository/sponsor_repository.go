package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"clubolimpo_backend/internals/databases/crud"
	model "clubolimpo_backend/internals/features/content/sponsors/model"
	helper "clubolimpo_backend/internals/helpers"
)

type SponsorRepository struct {
	crud.Repository[model.Sponsor]
}

func NewSponsorRepository(db *gorm.DB) *SponsorRepository {
	return &SponsorRepository{
		Repository: crud.New[model.Sponsor](db, []string{"display_order ASC", "name ASC"}),
	}
}

// DeactivateExpired soft-deletes active sponsors whose end date is before
// the calendar day of now; a sponsor stays active through its last day.
func (r *SponsorRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	today := helper.NewDate(now.UTC())
	res := r.DB.WithContext(ctx).
		Model(&model.Sponsor{}).
		Scopes(crud.WithStatus(crud.StatusActive)).
		Where("end_date IS NOT NULL AND end_date < ?", today).
		Update("is_active", crud.StatusInactive.Flag())
	return res.RowsAffected, res.Error
}
