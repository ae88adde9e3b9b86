package model

import (
	"time"

	playerModel "clubolimpo_backend/internals/features/club/players/model"
)

type MonthlyPlayer struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PlayerID        uint      `gorm:"not null;index:idx_monthly_players_award,priority:1" json:"playerId"`
	Year            int       `gorm:"not null;index:idx_monthly_players_award,priority:2" json:"year"`
	Month           int       `gorm:"not null;index:idx_monthly_players_award,priority:3" json:"month"`
	Reason          string    `gorm:"type:text;not null" json:"reason"`
	ImageURL        *string   `gorm:"column:image_url;type:varchar(255)" json:"imageUrl"`
	VideoURL        *string   `gorm:"column:video_url;type:varchar(255)" json:"videoUrl"`
	MetaTitle       *string   `gorm:"type:varchar(255)" json:"metaTitle"`
	MetaDescription *string   `gorm:"type:text" json:"metaDescription"`
	IsActive        bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	Player *playerModel.Player `gorm:"foreignKey:PlayerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"player,omitempty"`
}

func (MonthlyPlayer) TableName() string { return "monthly_players" }
