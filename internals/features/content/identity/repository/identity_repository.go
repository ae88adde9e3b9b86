package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clubolimpo_backend/internals/databases/crud"
	model "clubolimpo_backend/internals/features/content/identity/model"
)

type IdentityRepository struct {
	crud.Repository[model.Identity]
}

func NewIdentityRepository(db *gorm.DB) *IdentityRepository {
	return &IdentityRepository{
		Repository: crud.New[model.Identity](db, []string{"id DESC"}),
	}
}

// Current returns the active identity row or crud.ErrNotFound.
func (r *IdentityRepository) Current(ctx context.Context) (*model.Identity, error) {
	var row model.Identity
	err := r.DB.WithContext(ctx).
		Scopes(crud.WithStatus(crud.StatusActive)).
		Order("id DESC").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, crud.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
