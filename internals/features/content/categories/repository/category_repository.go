package repository

import (
	"gorm.io/gorm"

	"clubolimpo_backend/internals/databases/crud"
	model "clubolimpo_backend/internals/features/content/categories/model"
)

type CategoryRepository struct {
	crud.Repository[model.Category]
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		Repository: crud.New[model.Category](db, []string{"name ASC"}),
	}
}
