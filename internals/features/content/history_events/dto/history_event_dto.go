package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	model "clubolimpo_backend/internals/features/content/history_events/model"
	helper "clubolimpo_backend/internals/helpers"
)

type CreateHistoryEventRequest struct {
	Title           string  `json:"title" validate:"required,max=255"`
	Year            int     `json:"year" validate:"required,gte=1800,lte=2100"`
	Month           *int    `json:"month" validate:"omitempty,gte=1,lte=12"`
	Day             *int    `json:"day" validate:"omitempty,gte=1,lte=31"`
	Description     string  `json:"description" validate:"required"`
	ImageURL        *string `json:"imageUrl" validate:"omitempty,max=255"`
	Slug            *string `json:"slug" validate:"omitempty,max=255"`
	DisplayOrder    *int    `json:"displayOrder" validate:"omitempty,gte=0"`
	MetaTitle       *string `json:"metaTitle" validate:"omitempty,max=255"`
	MetaDescription *string `json:"metaDescription"`
}

func (r *CreateHistoryEventRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	for _, p := range []**string{&r.ImageURL, &r.Slug, &r.MetaTitle, &r.MetaDescription} {
		*p = helper.TrimPtr(*p)
	}
}

func (r *CreateHistoryEventRequest) ToModel() *model.HistoryEvent {
	m := &model.HistoryEvent{
		Title:           r.Title,
		Year:            r.Year,
		Month:           r.Month,
		Day:             r.Day,
		Description:     r.Description,
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

type UpdateHistoryEventRequest struct {
	Title           helper.PatchField[string] `json:"title"`
	Year            helper.PatchField[int]    `json:"year"`
	Month           helper.PatchField[int]    `json:"month"`
	Day             helper.PatchField[int]    `json:"day"`
	Description     helper.PatchField[string] `json:"description"`
	ImageURL        helper.PatchField[string] `json:"imageUrl"`
	Slug            helper.PatchField[string] `json:"slug"`
	DisplayOrder    helper.PatchField[int]    `json:"displayOrder"`
	MetaTitle       helper.PatchField[string] `json:"metaTitle"`
	MetaDescription helper.PatchField[string] `json:"metaDescription"`
	IsActive        helper.PatchField[bool]   `json:"is_active"`
}

func (r *UpdateHistoryEventRequest) Normalize() {
	for _, p := range []*helper.PatchField[string]{
		&r.Title, &r.Description, &r.ImageURL, &r.Slug, &r.MetaTitle, &r.MetaDescription,
	} {
		helper.TrimPatch(p)
	}
}

func (r *UpdateHistoryEventRequest) Validate(v *validator.Validate) helper.FieldErrors {
	errs := helper.FieldErrors{}
	helper.CheckPatch(v, errs, "title", r.Title, "max=255", true)
	helper.CheckPatch(v, errs, "year", r.Year, "gte=1800,lte=2100", true)
	helper.CheckPatch(v, errs, "month", r.Month, "gte=1,lte=12", false)
	helper.CheckPatch(v, errs, "day", r.Day, "gte=1,lte=31", false)
	helper.CheckPatch(v, errs, "description", r.Description, "", true)
	helper.CheckPatch(v, errs, "imageUrl", r.ImageURL, "max=255", false)
	helper.CheckPatch(v, errs, "slug", r.Slug, "max=255", false)
	helper.CheckPatch(v, errs, "displayOrder", r.DisplayOrder, "gte=0", true)
	helper.CheckPatch(v, errs, "metaTitle", r.MetaTitle, "max=255", false)
	helper.CheckPatch(v, errs, "is_active", r.IsActive, "", true)
	return errs
}

func (r *UpdateHistoryEventRequest) ApplyPatch(m *model.HistoryEvent) {
	r.Title.Apply(&m.Title)
	r.Year.Apply(&m.Year)
	r.Month.ApplyNullable(&m.Month)
	r.Day.ApplyNullable(&m.Day)
	r.Description.Apply(&m.Description)
	r.ImageURL.ApplyNullable(&m.ImageURL)
	if r.Slug.Present {
		m.Slug = helper.SlugOrDerive(r.Slug.Value, m.Title)
	}
	r.DisplayOrder.Apply(&m.DisplayOrder)
	r.MetaTitle.ApplyNullable(&m.MetaTitle)
	r.MetaDescription.ApplyNullable(&m.MetaDescription)
	r.IsActive.Apply(&m.IsActive)
}
