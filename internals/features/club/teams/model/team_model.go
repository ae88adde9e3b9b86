package model

import "time"

type Team struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_teams_name" json:"name"`
	ShortName       string    `gorm:"type:varchar(50);not null" json:"shortName"`
	AbbreviatedName string    `gorm:"type:varchar(3);not null;uniqueIndex:uq_teams_abbreviated_name" json:"abbreviatedName"`
	OriginalLogoURL *string   `gorm:"column:original_logo_url;type:varchar(255)" json:"originalLogoUrl"`
	WhiteLogoURL    *string   `gorm:"column:white_logo_url;type:varchar(255)" json:"whiteLogoUrl"`
	BlackLogoURL    *string   `gorm:"column:black_logo_url;type:varchar(255)" json:"blackLogoUrl"`
	City            *string   `gorm:"type:varchar(100)" json:"city"`
	Country         *string   `gorm:"type:varchar(100)" json:"country"`
	Description     *string   `gorm:"type:text" json:"description"`
	PrimaryColor    *string   `gorm:"type:varchar(7)" json:"primaryColor"`
	SecondaryColor  *string   `gorm:"type:varchar(7)" json:"secondaryColor"`
	WebsiteURL      *string   `gorm:"column:website_url;type:varchar(255)" json:"websiteUrl"`
	MetaTitle       *string   `gorm:"type:varchar(255)" json:"metaTitle"`
	MetaDescription *string   `gorm:"type:text" json:"metaDescription"`
	IsActive        bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Team) TableName() string { return "teams" }
