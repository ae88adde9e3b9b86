package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	model "clubolimpo_backend/internals/features/content/categories/model"
	helper "clubolimpo_backend/internals/helpers"
)

type CreateCategoryRequest struct {
	Name            string  `json:"name" validate:"required,max=100"`
	Description     *string `json:"description"`
	Slug            *string `json:"slug" validate:"omitempty,max=120"`
	IconURL         *string `json:"iconUrl" validate:"omitempty,max=255"`
	ImageURL        *string `json:"imageUrl" validate:"omitempty,max=255"`
	Color           *string `json:"color" validate:"omitempty,hexcolor,len=7"`
	MetaTitle       *string `json:"metaTitle" validate:"omitempty,max=255"`
	MetaDescription *string `json:"metaDescription"`
}

func (r *CreateCategoryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	for _, p := range []**string{
		&r.Description, &r.Slug, &r.IconURL, &r.ImageURL, &r.Color,
		&r.MetaTitle, &r.MetaDescription,
	} {
		*p = helper.TrimPtr(*p)
	}
}

func (r *CreateCategoryRequest) ToModel() *model.Category {
	return &model.Category{
		Name:            r.Name,
		Description:     r.Description,
		Slug:            helper.SlugOrDerive(r.Slug, r.Name),
		IconURL:         r.IconURL,
		ImageURL:        r.ImageURL,
		Color:           r.Color,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		IsActive:        true,
	}
}

type UpdateCategoryRequest struct {
	Name            helper.PatchField[string] `json:"name"`
	Description     helper.PatchField[string] `json:"description"`
	Slug            helper.PatchField[string] `json:"slug"`
	IconURL         helper.PatchField[string] `json:"iconUrl"`
	ImageURL        helper.PatchField[string] `json:"imageUrl"`
	Color           helper.PatchField[string] `json:"color"`
	MetaTitle       helper.PatchField[string] `json:"metaTitle"`
	MetaDescription helper.PatchField[string] `json:"metaDescription"`
	IsActive        helper.PatchField[bool]   `json:"is_active"`
}

func (r *UpdateCategoryRequest) Normalize() {
	for _, p := range []*helper.PatchField[string]{
		&r.Name, &r.Description, &r.Slug, &r.IconURL, &r.ImageURL, &r.Color,
		&r.MetaTitle, &r.MetaDescription,
	} {
		helper.TrimPatch(p)
	}
}

func (r *UpdateCategoryRequest) Validate(v *validator.Validate) helper.FieldErrors {
	errs := helper.FieldErrors{}
	helper.CheckPatch(v, errs, "name", r.Name, "max=100", true)
	helper.CheckPatch(v, errs, "slug", r.Slug, "max=120", false)
	helper.CheckPatch(v, errs, "iconUrl", r.IconURL, "max=255", false)
	helper.CheckPatch(v, errs, "imageUrl", r.ImageURL, "max=255", false)
	helper.CheckPatch(v, errs, "color", r.Color, "hexcolor,len=7", false)
	helper.CheckPatch(v, errs, "metaTitle", r.MetaTitle, "max=255", false)
	helper.CheckPatch(v, errs, "is_active", r.IsActive, "", true)
	return errs
}

// ApplyPatch keeps the stored slug unless one is sent; an explicit null
// re-derives it from the (possibly new) name.
func (r *UpdateCategoryRequest) ApplyPatch(m *model.Category) {
	r.Name.Apply(&m.Name)
	r.Description.ApplyNullable(&m.Description)
	if r.Slug.Present {
		m.Slug = helper.SlugOrDerive(r.Slug.Value, m.Name)
	}
	r.IconURL.ApplyNullable(&m.IconURL)
	r.ImageURL.ApplyNullable(&m.ImageURL)
	r.Color.ApplyNullable(&m.Color)
	r.MetaTitle.ApplyNullable(&m.MetaTitle)
	r.MetaDescription.ApplyNullable(&m.MetaDescription)
	r.IsActive.Apply(&m.IsActive)
}
