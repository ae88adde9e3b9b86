package model

import (
	"time"

	helper "clubolimpo_backend/internals/helpers"
)

const DefaultPlayerStatus = "Activo"

type Player struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	FirstName       string       `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName        string       `gorm:"type:varchar(100);not null;index:idx_players_name,priority:1" json:"lastName"`
	Position        string       `gorm:"type:varchar(50);not null" json:"position"`
	Number          *int         `json:"number"`
	DateOfBirth     *helper.Date `gorm:"type:date" json:"dateOfBirth"`
	CityOfBirth     *string      `gorm:"type:varchar(100)" json:"cityOfBirth"`
	StateOfBirth    *string      `gorm:"type:varchar(100)" json:"stateOfBirth"`
	Nationality     *string      `gorm:"type:varchar(100)" json:"nationality"`
	PreferredFoot   *string      `gorm:"type:varchar(20)" json:"preferredFoot"`
	PhotoURL        *string      `gorm:"column:photo_url;type:varchar(255)" json:"photoUrl"`
	Biography       *string      `gorm:"type:text" json:"biography"`
	InstagramURL    *string      `gorm:"column:instagram_url;type:varchar(255)" json:"instagramUrl"`
	Status          string       `gorm:"type:varchar(50);not null;default:'Activo'" json:"status"`
	MetaTitle       *string      `gorm:"type:varchar(255)" json:"metaTitle"`
	MetaDescription *string      `gorm:"type:text" json:"metaDescription"`
	IsActive        bool         `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

func (Player) TableName() string { return "players" }
