package model

import "time"

// Identity is the club's mission/vision/values block; at most one row is active.
type Identity struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	MissionText     *string   `gorm:"type:text" json:"missionText"`
	MissionImageURL *string   `gorm:"column:mission_image_url;type:varchar(255)" json:"missionImageUrl"`
	VisionText      *string   `gorm:"type:text" json:"visionText"`
	VisionImageURL  *string   `gorm:"column:vision_image_url;type:varchar(255)" json:"visionImageUrl"`
	ValuesText      *string   `gorm:"type:text" json:"valuesText"`
	ValuesImageURL  *string   `gorm:"column:values_image_url;type:varchar(255)" json:"valuesImageUrl"`
	IsActive        bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Identity) TableName() string { return "identities" }
