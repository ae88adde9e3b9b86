package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	model "clubolimpo_backend/internals/features/content/testimonials/model"
	helper "clubolimpo_backend/internals/helpers"
)

type CreateTestimonialRequest struct {
	AuthorName string       `json:"authorName" validate:"required,max=255"`
	AuthorRole *string      `json:"authorRole" validate:"omitempty,max=255"`
	Text       string       `json:"text" validate:"required"`
	Photo      *string      `json:"photo" validate:"omitempty,max=255"`
	Rating     *int         `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Date       *helper.Date `json:"date"`
}

func (r *CreateTestimonialRequest) Normalize() {
	r.AuthorName = strings.TrimSpace(r.AuthorName)
	r.Text = strings.TrimSpace(r.Text)
	r.AuthorRole = helper.TrimPtr(r.AuthorRole)
	r.Photo = helper.TrimPtr(r.Photo)
}

// ToModel defaults the date to today.
func (r *CreateTestimonialRequest) ToModel(today helper.Date) *model.Testimonial {
	date := r.Date
	if date == nil {
		date = &today
	}
	return &model.Testimonial{
		AuthorName: r.AuthorName,
		AuthorRole: r.AuthorRole,
		Text:       r.Text,
		Photo:      r.Photo,
		Rating:     r.Rating,
		Date:       date,
		IsActive:   true,
	}
}

type UpdateTestimonialRequest struct {
	AuthorName helper.PatchField[string]      `json:"authorName"`
	AuthorRole helper.PatchField[string]      `json:"authorRole"`
	Text       helper.PatchField[string]      `json:"text"`
	Photo      helper.PatchField[string]      `json:"photo"`
	Rating     helper.PatchField[int]         `json:"rating"`
	Date       helper.PatchField[helper.Date] `json:"date"`
	IsActive   helper.PatchField[bool]        `json:"is_active"`
}

func (r *UpdateTestimonialRequest) Normalize() {
	for _, p := range []*helper.PatchField[string]{&r.AuthorName, &r.AuthorRole, &r.Text, &r.Photo} {
		helper.TrimPatch(p)
	}
}

func (r *UpdateTestimonialRequest) Validate(v *validator.Validate) helper.FieldErrors {
	errs := helper.FieldErrors{}
	helper.CheckPatch(v, errs, "authorName", r.AuthorName, "max=255", true)
	helper.CheckPatch(v, errs, "authorRole", r.AuthorRole, "max=255", false)
	helper.CheckPatch(v, errs, "text", r.Text, "", true)
	helper.CheckPatch(v, errs, "photo", r.Photo, "max=255", false)
	helper.CheckPatch(v, errs, "rating", r.Rating, "gte=1,lte=5", false)
	helper.CheckPatch(v, errs, "is_active", r.IsActive, "", true)
	return errs
}

func (r *UpdateTestimonialRequest) ApplyPatch(m *model.Testimonial) {
	r.AuthorName.Apply(&m.AuthorName)
	r.AuthorRole.ApplyNullable(&m.AuthorRole)
	r.Text.Apply(&m.Text)
	r.Photo.ApplyNullable(&m.Photo)
	r.Rating.ApplyNullable(&m.Rating)
	r.Date.ApplyNullable(&m.Date)
	r.IsActive.Apply(&m.IsActive)
}
