package repository

import (
	"context"

	"gorm.io/gorm"

	model "clubolimpo_backend/internals/features/users/auth/model"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.UserModel{}).Count(&n).Error
	return n, err
}

func (r *UserRepository) FindActiveByUsername(ctx context.Context, username string) (*model.UserModel, error) {
	var user model.UserModel
	if err := r.DB.WithContext(ctx).
		Where("username = ? AND is_active = ?", username, true).
		Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.UserModel, error) {
	var user model.UserModel
	if err := r.DB.WithContext(ctx).Where("id = ?", id).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.UserModel) error {
	return r.DB.WithContext(ctx).Create(user).Error
}
