package model

import "time"

type HistorySubsection struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	HistoryEventID  uint      `gorm:"not null;index:idx_history_subsections_event,priority:1" json:"historyEventId"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	ImageURL        *string   `gorm:"column:image_url;type:varchar(255)" json:"imageUrl"`
	DisplayOrder    int       `gorm:"not null;default:0;index:idx_history_subsections_event,priority:2" json:"displayOrder"`
	Slug            string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_history_subsections_slug" json:"slug"`
	MetaTitle       *string   `gorm:"type:varchar(255)" json:"metaTitle"`
	MetaDescription *string   `gorm:"type:text" json:"metaDescription"`
	IsActive        bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (HistorySubsection) TableName() string { return "history_subsections" }
