package model

import (
	"time"

	categoryModel "clubolimpo_backend/internals/features/content/categories/model"
)

type News struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Title                string    `gorm:"type:varchar(75);not null;uniqueIndex:uq_news_title" json:"title"`
	Subtitle             *string   `gorm:"type:varchar(255)" json:"subtitle"`
	Summary              *string   `gorm:"type:text" json:"summary"`
	Content              string    `gorm:"type:text;not null" json:"content"`
	FeaturedImageURL     *string   `gorm:"column:featured_image_url;type:varchar(255)" json:"featuredImageUrl"`
	FeaturedImageAltText *string   `gorm:"type:varchar(255)" json:"featuredImageAltText"`
	VideoURL             *string   `gorm:"column:video_url;type:varchar(255)" json:"videoUrl"`
	Slug                 string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_news_slug" json:"slug"`
	PublishedAt          time.Time `gorm:"not null;index" json:"publishedAt"`
	IsPublished          bool      `gorm:"not null" json:"is_published"`
	Author               *string   `gorm:"type:varchar(100)" json:"author"`
	Source               *string   `gorm:"type:varchar(255)" json:"source"`
	ViewsCount           int       `gorm:"not null;default:0" json:"viewsCount"`
	MetaTitle            *string   `gorm:"type:varchar(255)" json:"metaTitle"`
	MetaDescription      *string   `gorm:"type:text" json:"metaDescription"`
	Keywords             *string   `gorm:"type:varchar(255)" json:"keywords"`
	IsActive             bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`

	Categories []categoryModel.Category `gorm:"many2many:news_categories;joinForeignKey:NewsID;joinReferences:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"categories"`
}

func (News) TableName() string { return "news" }

// NewsCategory is the join row between news and categories.
type NewsCategory struct {
	NewsID     uint      `gorm:"primaryKey" json:"newsId"`
	CategoryID uint      `gorm:"primaryKey" json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (NewsCategory) TableName() string { return "news_categories" }
