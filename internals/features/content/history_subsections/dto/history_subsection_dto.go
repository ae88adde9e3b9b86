package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	model "clubolimpo_backend/internals/features/content/history_subsections/model"
	helper "clubolimpo_backend/internals/helpers"
)

type CreateHistorySubsectionRequest struct {
	HistoryEventID  uint    `json:"historyEventId" validate:"required"`
	Title           string  `json:"title" validate:"required,max=255"`
	Content         string  `json:"content" validate:"required"`
	ImageURL        *string `json:"imageUrl" validate:"omitempty,max=255"`
	DisplayOrder    *int    `json:"displayOrder" validate:"omitempty,gte=0"`
	Slug            *string `json:"slug" validate:"omitempty,max=255"`
	MetaTitle       *string `json:"metaTitle" validate:"omitempty,max=255"`
	MetaDescription *string `json:"metaDescription"`
}

func (r *CreateHistorySubsectionRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
	for _, p := range []**string{&r.ImageURL, &r.Slug, &r.MetaTitle, &r.MetaDescription} {
		*p = helper.TrimPtr(*p)
	}
}

func (r *CreateHistorySubsectionRequest) ToModel() *model.HistorySubsection {
	m := &model.HistorySubsection{
		HistoryEventID:  r.HistoryEventID,
		Title:           r.Title,
		Content:         r.Content,
		ImageURL:        r.ImageURL,
		Slug:            helper.SlugOrDerive(r.Slug, r.Title),
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		IsActive:        true,
	}
	if r.DisplayOrder != nil {
		m.DisplayOrder = *r.DisplayOrder
	}
	return m
}

type UpdateHistorySubsectionRequest struct {
	HistoryEventID  helper.PatchField[uint]   `json:"historyEventId"`
	Title           helper.PatchField[string] `json:"title"`
	Content         helper.PatchField[string] `json:"content"`
	ImageURL        helper.PatchField[string] `json:"imageUrl"`
	DisplayOrder    helper.PatchField[int]    `json:"displayOrder"`
	Slug            helper.PatchField[string] `json:"slug"`
	MetaTitle       helper.PatchField[string] `json:"metaTitle"`
	MetaDescription helper.PatchField[string] `json:"metaDescription"`
	IsActive        helper.PatchField[bool]   `json:"is_active"`
}

func (r *UpdateHistorySubsectionRequest) Normalize() {
	for _, p := range []*helper.PatchField[string]{
		&r.Title, &r.Content, &r.ImageURL, &r.Slug, &r.MetaTitle, &r.MetaDescription,
	} {
		helper.TrimPatch(p)
	}
}

func (r *UpdateHistorySubsectionRequest) Validate(v *validator.Validate) helper.FieldErrors {
	errs := helper.FieldErrors{}
	helper.CheckPatch(v, errs, "historyEventId", r.HistoryEventID, "gt=0", true)
	helper.CheckPatch(v, errs, "title", r.Title, "max=255", true)
	helper.CheckPatch(v, errs, "content", r.Content, "", true)
	helper.CheckPatch(v, errs, "imageUrl", r.ImageURL, "max=255", false)
	helper.CheckPatch(v, errs, "displayOrder", r.DisplayOrder, "gte=0", true)
	helper.CheckPatch(v, errs, "slug", r.Slug, "max=255", false)
	helper.CheckPatch(v, errs, "metaTitle", r.MetaTitle, "max=255", false)
	helper.CheckPatch(v, errs, "is_active", r.IsActive, "", true)
	return errs
}

func (r *UpdateHistorySubsectionRequest) ApplyPatch(m *model.HistorySubsection) {
	r.HistoryEventID.Apply(&m.HistoryEventID)
	r.Title.Apply(&m.Title)
	r.Content.Apply(&m.Content)
	r.ImageURL.ApplyNullable(&m.ImageURL)
	r.DisplayOrder.Apply(&m.DisplayOrder)
	if r.Slug.Present {
		m.Slug = helper.SlugOrDerive(r.Slug.Value, m.Title)
	}
	r.MetaTitle.ApplyNullable(&m.MetaTitle)
	r.MetaDescription.ApplyNullable(&m.MetaDescription)
	r.IsActive.Apply(&m.IsActive)
}
