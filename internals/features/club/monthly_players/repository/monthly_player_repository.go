package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clubolimpo_backend/internals/databases/crud"
	model "clubolimpo_backend/internals/features/club/monthly_players/model"
)

type MonthlyPlayerRepository struct {
	crud.Repository[model.MonthlyPlayer]
}

func NewMonthlyPlayerRepository(db *gorm.DB) *MonthlyPlayerRepository {
	return &MonthlyPlayerRepository{
		Repository: crud.New[model.MonthlyPlayer](db,
			[]string{"monthly_players.year DESC", "monthly_players.month DESC"},
			crud.Preload{Name: "Player", Active: true},
		),
	}
}

// Awards are only visible while their player is active.
const activePlayerJoin = "JOIN players ON players.id = monthly_players.player_id AND players.is_active = ?"

func (r *MonthlyPlayerRepository) visible(ctx context.Context) *gorm.DB {
	return r.Query(ctx).
		Joins(activePlayerJoin, true).
		Where("monthly_players.is_active = ?", true)
}

func (r *MonthlyPlayerRepository) List(ctx context.Context) ([]model.MonthlyPlayer, error) {
	rows := make([]model.MonthlyPlayer, 0)
	q := r.visible(ctx).Select("monthly_players.*")
	for _, o := range r.Order {
		q = q.Order(o)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *MonthlyPlayerRepository) FindActive(ctx context.Context, id uint) (*model.MonthlyPlayer, error) {
	var row model.MonthlyPlayer
	err := r.visible(ctx).
		Select("monthly_players.*").
		Where("monthly_players.id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, crud.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// HasActiveAward reports whether the player already holds an active award
// for year/month. excludeID skips the row being updated.
func (r *MonthlyPlayerRepository) HasActiveAward(ctx context.Context, playerID uint, year, month int, excludeID uint) (bool, error) {
	q := r.DB.WithContext(ctx).
		Model(&model.MonthlyPlayer{}).
		Scopes(crud.WithStatus(crud.StatusActive)).
		Where("player_id = ? AND year = ? AND month = ?", playerID, year, month)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
