package model

import "time"

type UserModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_users_username" json:"username"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Email     *string   `gorm:"type:varchar(255);uniqueIndex:uq_users_email" json:"email"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (UserModel) TableName() string { return "users" }
