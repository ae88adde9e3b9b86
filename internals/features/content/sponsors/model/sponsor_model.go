package model

import (
	"time"

	helper "clubolimpo_backend/internals/helpers"
)

type SponsorLevel string

const (
	LevelMain    SponsorLevel = "Main"
	LevelGold    SponsorLevel = "Gold"
	LevelSilver  SponsorLevel = "Silver"
	LevelBronze  SponsorLevel = "Bronze"
	LevelPartner SponsorLevel = "Partner"
)

type Sponsor struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"type:varchar(100);not null;uniqueIndex:uq_sponsors_name" json:"name"`
	LogoURL      *string      `gorm:"column:logo_url;type:varchar(255)" json:"logoUrl"`
	LogoURLBlack *string      `gorm:"column:logo_url_black;type:varchar(255)" json:"logoUrlBlack"`
	LogoURLWhite *string      `gorm:"column:logo_url_white;type:varchar(255)" json:"logoUrlWhite"`
	WebsiteURL   *string      `gorm:"column:website_url;type:varchar(255)" json:"websiteUrl"`
	Level        SponsorLevel `gorm:"type:varchar(10);not null;default:'Partner'" json:"level"`
	StartDate    *helper.Date `gorm:"type:date" json:"startDate"`
	EndDate      *helper.Date `gorm:"type:date;index" json:"endDate"`
	Order        *int         `gorm:"column:display_order;index" json:"order"`
	IsActive     bool         `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func (Sponsor) TableName() string { return "sponsors" }
