package model

import (
	"time"

	teamModel "clubolimpo_backend/internals/features/club/teams/model"
)

const (
	DefaultMatchStatus = "Programado"
	// OrderStep leaves room between consecutive matches for manual reordering.
	OrderStep = 5
)

type Match struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	DateTime        *time.Time `json:"dateTime"`
	Category        string     `gorm:"type:varchar(20);not null" json:"category"`
	Order           int        `gorm:"column:display_order;not null;index" json:"order"`
	HomeTeamID      uint       `gorm:"not null;index" json:"homeTeamId"`
	AwayTeamID      uint       `gorm:"not null;index" json:"awayTeamId"`
	HomeTeamScore   *int       `json:"homeTeamScore"`
	AwayTeamScore   *int       `json:"awayTeamScore"`
	Location        *string    `gorm:"type:varchar(255)" json:"location"`
	MatchType       string     `gorm:"type:varchar(100);not null" json:"matchType"`
	Status          string     `gorm:"type:varchar(50);not null;default:'Programado'" json:"status"`
	Round           *string    `gorm:"type:varchar(50)" json:"round"`
	HighlightsURL   *string    `gorm:"column:highlights_url;type:varchar(255)" json:"highlightsUrl"`
	LiveStreamURL   *string    `gorm:"column:live_stream_url;type:varchar(255)" json:"liveStreamUrl"`
	Description     *string    `gorm:"type:text" json:"description"`
	MetaTitle       *string    `gorm:"type:varchar(255)" json:"metaTitle"`
	MetaDescription *string    `gorm:"type:text" json:"metaDescription"`
	IsActive        bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`

	HomeTeam *teamModel.Team `gorm:"foreignKey:HomeTeamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"homeTeam,omitempty"`
	AwayTeam *teamModel.Team `gorm:"foreignKey:AwayTeamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"awayTeam,omitempty"`
}

func (Match) TableName() string { return "matches" }
