package repository

import (
	"gorm.io/gorm"

	"clubolimpo_backend/internals/databases/crud"
	model "clubolimpo_backend/internals/features/club/players/model"
)

type PlayerRepository struct {
	crud.Repository[model.Player]
}

func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{
		Repository: crud.New[model.Player](db, []string{"last_name ASC", "first_name ASC"}),
	}
}
