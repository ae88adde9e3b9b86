package model

import "time"

type Category struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_categories_name" json:"name"`
	Description     *string   `gorm:"type:text" json:"description"`
	Slug            string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_categories_slug" json:"slug"`
	IconURL         *string   `gorm:"column:icon_url;type:varchar(255)" json:"iconUrl"`
	ImageURL        *string   `gorm:"column:image_url;type:varchar(255)" json:"imageUrl"`
	Color           *string   `gorm:"type:varchar(7)" json:"color"`
	MetaTitle       *string   `gorm:"type:varchar(255)" json:"metaTitle"`
	MetaDescription *string   `gorm:"type:text" json:"metaDescription"`
	IsActive        bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Category) TableName() string { return "categories" }
