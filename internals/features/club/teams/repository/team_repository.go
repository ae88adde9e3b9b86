package repository

import (
	"context"

	"gorm.io/gorm"

	"clubolimpo_backend/internals/databases/crud"
	model "clubolimpo_backend/internals/features/club/teams/model"
)

type TeamRepository struct {
	crud.Repository[model.Team]
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{
		Repository: crud.New[model.Team](db, []string{"name ASC"}),
	}
}

// AllExist reports whether every id refers to an existing team.
func (r *TeamRepository) AllExist(ctx context.Context, ids ...uint) (bool, error) {
	uniq := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		uniq[id] = struct{}{}
	}
	keys := make([]uint, 0, len(uniq))
	for id := range uniq {
		keys = append(keys, id)
	}

	var n int64
	if err := r.DB.WithContext(ctx).Model(&model.Team{}).Where("id IN ?", keys).Count(&n).Error; err != nil {
		return false, err
	}
	return int(n) == len(keys), nil
}
