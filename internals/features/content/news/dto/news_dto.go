package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	model "clubolimpo_backend/internals/features/content/news/model"
	helper "clubolimpo_backend/internals/helpers"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateNewsRequest struct {
	Title                string     `json:"title" validate:"required,max=75"`
	Subtitle             *string    `json:"subtitle" validate:"omitempty,max=255"`
	Summary              *string    `json:"summary"`
	Content              string     `json:"content" validate:"required"`
	FeaturedImageURL     *string    `json:"featuredImageUrl" validate:"omitempty,max=255"`
	FeaturedImageAltText *string    `json:"featuredImageAltText" validate:"omitempty,max=255"`
	VideoURL             *string    `json:"videoUrl" validate:"omitempty,max=255"`
	Slug                 *string    `json:"slug" validate:"omitempty,max=120"`
	PublishedAt          *time.Time `json:"publishedAt"`
	IsPublished          *bool      `json:"is_published"`
	Author               *string    `json:"author" validate:"omitempty,max=100"`
	Source               *string    `json:"source" validate:"omitempty,max=255"`
	MetaTitle            *string    `json:"metaTitle" validate:"omitempty,max=255"`
	MetaDescription      *string    `json:"metaDescription"`
	Keywords             *string    `json:"keywords" validate:"omitempty,max=255"`
	CategoryIDs          []uint     `json:"categoryIds" validate:"omitempty,dive,gt=0"`
}

func (r *CreateNewsRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
	for _, p := range []**string{
		&r.Subtitle, &r.Summary, &r.FeaturedImageURL, &r.FeaturedImageAltText,
		&r.VideoURL, &r.Slug, &r.Author, &r.Source, &r.MetaTitle,
		&r.MetaDescription, &r.Keywords,
	} {
		*p = helper.TrimPtr(*p)
	}
}

// ToModel derives the slug from the title and defaults publishedAt to now
// and is_published to true.
func (r *CreateNewsRequest) ToModel(now time.Time) *model.News {
	publishedAt := now
	if r.PublishedAt != nil {
		publishedAt = *r.PublishedAt
	}
	published := true
	if r.IsPublished != nil {
		published = *r.IsPublished
	}
	return &model.News{
		Title:                r.Title,
		Subtitle:             r.Subtitle,
		Summary:              r.Summary,
		Content:              r.Content,
		FeaturedImageURL:     r.FeaturedImageURL,
		FeaturedImageAltText: r.FeaturedImageAltText,
		VideoURL:             r.VideoURL,
		Slug:                 helper.SlugOrDerive(r.Slug, r.Title),
		PublishedAt:          publishedAt,
		IsPublished:          published,
		Author:               r.Author,
		Source:               r.Source,
		MetaTitle:            r.MetaTitle,
		MetaDescription:      r.MetaDescription,
		Keywords:             r.Keywords,
		IsActive:             true,
	}
}

/* =========================================================
   PATCH
   ========================================================= */

type UpdateNewsRequest struct {
	Title                helper.PatchField[string]    `json:"title"`
	Subtitle             helper.PatchField[string]    `json:"subtitle"`
	Summary              helper.PatchField[string]    `json:"summary"`
	Content              helper.PatchField[string]    `json:"content"`
	FeaturedImageURL     helper.PatchField[string]    `json:"featuredImageUrl"`
	FeaturedImageAltText helper.PatchField[string]    `json:"featuredImageAltText"`
	VideoURL             helper.PatchField[string]    `json:"videoUrl"`
	Slug                 helper.PatchField[string]    `json:"slug"`
	PublishedAt          helper.PatchField[time.Time] `json:"publishedAt"`
	IsPublished          helper.PatchField[bool]      `json:"is_published"`
	Author               helper.PatchField[string]    `json:"author"`
	Source               helper.PatchField[string]    `json:"source"`
	MetaTitle            helper.PatchField[string]    `json:"metaTitle"`
	MetaDescription      helper.PatchField[string]    `json:"metaDescription"`
	Keywords             helper.PatchField[string]    `json:"keywords"`
	IsActive             helper.PatchField[bool]      `json:"is_active"`
	// present: replace the category set (null or [] clears it)
	CategoryIDs helper.PatchField[[]uint] `json:"categoryIds"`
}

func (r *UpdateNewsRequest) Normalize() {
	for _, p := range []*helper.PatchField[string]{
		&r.Title, &r.Subtitle, &r.Summary, &r.Content, &r.FeaturedImageURL,
		&r.FeaturedImageAltText, &r.VideoURL, &r.Slug, &r.Author, &r.Source,
		&r.MetaTitle, &r.MetaDescription, &r.Keywords,
	} {
		helper.TrimPatch(p)
	}
}

func (r *UpdateNewsRequest) Validate(v *validator.Validate) helper.FieldErrors {
	errs := helper.FieldErrors{}
	helper.CheckPatch(v, errs, "title", r.Title, "max=75", true)
	helper.CheckPatch(v, errs, "subtitle", r.Subtitle, "max=255", false)
	helper.CheckPatch(v, errs, "content", r.Content, "", true)
	helper.CheckPatch(v, errs, "featuredImageUrl", r.FeaturedImageURL, "max=255", false)
	helper.CheckPatch(v, errs, "featuredImageAltText", r.FeaturedImageAltText, "max=255", false)
	helper.CheckPatch(v, errs, "videoUrl", r.VideoURL, "max=255", false)
	helper.CheckPatch(v, errs, "slug", r.Slug, "max=120", false)
	helper.CheckPatch(v, errs, "publishedAt", r.PublishedAt, "", true)
	helper.CheckPatch(v, errs, "is_published", r.IsPublished, "", true)
	helper.CheckPatch(v, errs, "author", r.Author, "max=100", false)
	helper.CheckPatch(v, errs, "source", r.Source, "max=255", false)
	helper.CheckPatch(v, errs, "metaTitle", r.MetaTitle, "max=255", false)
	helper.CheckPatch(v, errs, "keywords", r.Keywords, "max=255", false)
	helper.CheckPatch(v, errs, "is_active", r.IsActive, "", true)
	helper.CheckPatch(v, errs, "categoryIds", r.CategoryIDs, "dive,gt=0", false)
	return errs
}

func (r *UpdateNewsRequest) ApplyPatch(m *model.News) {
	r.Title.Apply(&m.Title)
	r.Subtitle.ApplyNullable(&m.Subtitle)
	r.Summary.ApplyNullable(&m.Summary)
	r.Content.Apply(&m.Content)
	r.FeaturedImageURL.ApplyNullable(&m.FeaturedImageURL)
	r.FeaturedImageAltText.ApplyNullable(&m.FeaturedImageAltText)
	r.VideoURL.ApplyNullable(&m.VideoURL)
	if r.Slug.Present {
		m.Slug = helper.SlugOrDerive(r.Slug.Value, m.Title)
	}
	r.PublishedAt.Apply(&m.PublishedAt)
	r.IsPublished.Apply(&m.IsPublished)
	r.Author.ApplyNullable(&m.Author)
	r.Source.ApplyNullable(&m.Source)
	r.MetaTitle.ApplyNullable(&m.MetaTitle)
	r.MetaDescription.ApplyNullable(&m.MetaDescription)
	r.Keywords.ApplyNullable(&m.Keywords)
	r.IsActive.Apply(&m.IsActive)
}

// Categories returns the replacement category set, or nil when untouched.
func (r *UpdateNewsRequest) Categories() *[]uint {
	if !r.CategoryIDs.Present {
		return nil
	}
	ids := []uint{}
	if r.CategoryIDs.Value != nil {
		ids = *r.CategoryIDs.Value
	}
	return &ids
}
