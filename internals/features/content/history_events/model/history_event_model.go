package model

import (
	"time"

	subsectionModel "clubolimpo_backend/internals/features/content/history_subsections/model"
)

type HistoryEvent struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_history_events_title" json:"title"`
	Year            int       `gorm:"not null;index:idx_history_events_date,priority:1" json:"year"`
	Month           *int      `gorm:"index:idx_history_events_date,priority:2" json:"month"`
	Day             *int      `gorm:"index:idx_history_events_date,priority:3" json:"day"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	ImageURL        *string   `gorm:"column:image_url;type:varchar(255)" json:"imageUrl"`
	Slug            string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_history_events_slug" json:"slug"`
	DisplayOrder    int       `gorm:"not null;default:0" json:"displayOrder"`
	MetaTitle       *string   `gorm:"type:varchar(255)" json:"metaTitle"`
	MetaDescription *string   `gorm:"type:text" json:"metaDescription"`
	IsActive        bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	Subsections []subsectionModel.HistorySubsection `gorm:"foreignKey:HistoryEventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"subsections"`
}

func (HistoryEvent) TableName() string { return "history_events" }
