package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	model "clubolimpo_backend/internals/features/content/sponsors/model"
	helper "clubolimpo_backend/internals/helpers"
)

const levelTag = "oneof=Main Gold Silver Bronze Partner"

type CreateSponsorRequest struct {
	Name         string       `json:"name" validate:"required,max=100"`
	LogoURL      *string      `json:"logoUrl" validate:"omitempty,max=255"`
	LogoURLBlack *string      `json:"logoUrlBlack" validate:"omitempty,max=255"`
	LogoURLWhite *string      `json:"logoUrlWhite" validate:"omitempty,max=255"`
	WebsiteURL   *string      `json:"websiteUrl" validate:"omitempty,max=255"`
	Level        *string      `json:"level" validate:"omitempty,oneof=Main Gold Silver Bronze Partner"`
	StartDate    *helper.Date `json:"startDate"`
	EndDate      *helper.Date `json:"endDate"`
	Order        *int         `json:"order" validate:"omitempty,gte=0"`
}

func (r *CreateSponsorRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	for _, p := range []**string{&r.LogoURL, &r.LogoURLBlack, &r.LogoURLWhite, &r.WebsiteURL, &r.Level} {
		*p = helper.TrimPtr(*p)
	}
}

// DateRangeValid reports whether endDate does not precede startDate.
func DateRangeValid(start, end *helper.Date) bool {
	return start == nil || end == nil || !end.Time().Before(start.Time())
}

func (r *CreateSponsorRequest) ToModel() *model.Sponsor {
	level := model.LevelPartner
	if r.Level != nil {
		level = model.SponsorLevel(*r.Level)
	}
	return &model.Sponsor{
		Name:         r.Name,
		LogoURL:      r.LogoURL,
		LogoURLBlack: r.LogoURLBlack,
		LogoURLWhite: r.LogoURLWhite,
		WebsiteURL:   r.WebsiteURL,
		Level:        level,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Order:        r.Order,
		IsActive:     true,
	}
}

type UpdateSponsorRequest struct {
	Name         helper.PatchField[string]      `json:"name"`
	LogoURL      helper.PatchField[string]      `json:"logoUrl"`
	LogoURLBlack helper.PatchField[string]      `json:"logoUrlBlack"`
	LogoURLWhite helper.PatchField[string]      `json:"logoUrlWhite"`
	WebsiteURL   helper.PatchField[string]      `json:"websiteUrl"`
	Level        helper.PatchField[string]      `json:"level"`
	StartDate    helper.PatchField[helper.Date] `json:"startDate"`
	EndDate      helper.PatchField[helper.Date] `json:"endDate"`
	Order        helper.PatchField[int]         `json:"order"`
	IsActive     helper.PatchField[bool]        `json:"is_active"`
}

func (r *UpdateSponsorRequest) Normalize() {
	for _, p := range []*helper.PatchField[string]{
		&r.Name, &r.LogoURL, &r.LogoURLBlack, &r.LogoURLWhite, &r.WebsiteURL, &r.Level,
	} {
		helper.TrimPatch(p)
	}
}

func (r *UpdateSponsorRequest) Validate(v *validator.Validate) helper.FieldErrors {
	errs := helper.FieldErrors{}
	helper.CheckPatch(v, errs, "name", r.Name, "max=100", true)
	helper.CheckPatch(v, errs, "logoUrl", r.LogoURL, "max=255", false)
	helper.CheckPatch(v, errs, "logoUrlBlack", r.LogoURLBlack, "max=255", false)
	helper.CheckPatch(v, errs, "logoUrlWhite", r.LogoURLWhite, "max=255", false)
	helper.CheckPatch(v, errs, "websiteUrl", r.WebsiteURL, "max=255", false)
	helper.CheckPatch(v, errs, "level", r.Level, levelTag, true)
	helper.CheckPatch(v, errs, "order", r.Order, "gte=0", false)
	helper.CheckPatch(v, errs, "is_active", r.IsActive, "", true)
	return errs
}

func (r *UpdateSponsorRequest) ApplyPatch(m *model.Sponsor) {
	r.Name.Apply(&m.Name)
	r.LogoURL.ApplyNullable(&m.LogoURL)
	r.LogoURLBlack.ApplyNullable(&m.LogoURLBlack)
	r.LogoURLWhite.ApplyNullable(&m.LogoURLWhite)
	r.WebsiteURL.ApplyNullable(&m.WebsiteURL)
	if r.Level.Set() {
		m.Level = model.SponsorLevel(*r.Level.Value)
	}
	r.StartDate.ApplyNullable(&m.StartDate)
	r.EndDate.ApplyNullable(&m.EndDate)
	r.Order.ApplyNullable(&m.Order)
	r.IsActive.Apply(&m.IsActive)
}
