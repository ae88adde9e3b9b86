package repository

import (
	"context"

	"gorm.io/gorm"

	"clubolimpo_backend/internals/databases/crud"
	model "clubolimpo_backend/internals/features/club/matches/model"
)

type MatchRepository struct {
	crud.Repository[model.Match]
}

func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{
		Repository: crud.New[model.Match](db,
			[]string{"display_order ASC", "date_time DESC"},
			crud.Preload{Name: "HomeTeam"},
			crud.Preload{Name: "AwayTeam"},
		),
	}
}

// NextOrder returns the display order for a match appended at the end.
func (r *MatchRepository) NextOrder(ctx context.Context) (int, error) {
	var maxOrder int64
	if err := r.DB.WithContext(ctx).
		Model(&model.Match{}).
		Select("COALESCE(MAX(display_order), 0)").
		Row().
		Scan(&maxOrder); err != nil {
		return 0, err
	}
	return int(maxOrder) + model.OrderStep, nil
}
