package model

import (
	"time"

	helper "clubolimpo_backend/internals/helpers"
)

type Testimonial struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	AuthorName string       `gorm:"type:varchar(255);not null" json:"authorName"`
	AuthorRole *string      `gorm:"type:varchar(255)" json:"authorRole"`
	Text       string       `gorm:"type:text;not null" json:"text"`
	Photo      *string      `gorm:"type:varchar(255)" json:"photo"`
	Rating     *int         `json:"rating"`
	Date       *helper.Date `gorm:"type:date" json:"date"`
	IsActive   bool         `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

func (Testimonial) TableName() string { return "testimonials" }
