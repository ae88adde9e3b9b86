package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	model "clubolimpo_backend/internals/features/club/teams/model"
	helper "clubolimpo_backend/internals/helpers"
)

type CreateTeamRequest struct {
	Name            string  `json:"name" validate:"required,max=100"`
	ShortName       string  `json:"shortName" validate:"required,max=50"`
	AbbreviatedName string  `json:"abbreviatedName" validate:"required,max=3"`
	OriginalLogoURL *string `json:"originalLogoUrl" validate:"omitempty,max=255"`
	WhiteLogoURL    *string `json:"whiteLogoUrl" validate:"omitempty,max=255"`
	BlackLogoURL    *string `json:"blackLogoUrl" validate:"omitempty,max=255"`
	City            *string `json:"city" validate:"omitempty,max=100"`
	Country         *string `json:"country" validate:"omitempty,max=100"`
	Description     *string `json:"description"`
	PrimaryColor    *string `json:"primaryColor" validate:"omitempty,hexcolor,len=7"`
	SecondaryColor  *string `json:"secondaryColor" validate:"omitempty,hexcolor,len=7"`
	WebsiteURL      *string `json:"websiteUrl" validate:"omitempty,max=255"`
	MetaTitle       *string `json:"metaTitle" validate:"omitempty,max=255"`
	MetaDescription *string `json:"metaDescription"`
}

func (r *CreateTeamRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.ShortName = strings.TrimSpace(r.ShortName)
	r.AbbreviatedName = strings.ToUpper(strings.TrimSpace(r.AbbreviatedName))
	for _, p := range []**string{
		&r.OriginalLogoURL, &r.WhiteLogoURL, &r.BlackLogoURL, &r.City, &r.Country,
		&r.Description, &r.PrimaryColor, &r.SecondaryColor, &r.WebsiteURL,
		&r.MetaTitle, &r.MetaDescription,
	} {
		*p = helper.TrimPtr(*p)
	}
}

func (r *CreateTeamRequest) ToModel() *model.Team {
	return &model.Team{
		Name:            r.Name,
		ShortName:       r.ShortName,
		AbbreviatedName: r.AbbreviatedName,
		OriginalLogoURL: r.OriginalLogoURL,
		WhiteLogoURL:    r.WhiteLogoURL,
		BlackLogoURL:    r.BlackLogoURL,
		City:            r.City,
		Country:         r.Country,
		Description:     r.Description,
		PrimaryColor:    r.PrimaryColor,
		SecondaryColor:  r.SecondaryColor,
		WebsiteURL:      r.WebsiteURL,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		IsActive:        true,
	}
}

type UpdateTeamRequest struct {
	Name            helper.PatchField[string] `json:"name"`
	ShortName       helper.PatchField[string] `json:"shortName"`
	AbbreviatedName helper.PatchField[string] `json:"abbreviatedName"`
	OriginalLogoURL helper.PatchField[string] `json:"originalLogoUrl"`
	WhiteLogoURL    helper.PatchField[string] `json:"whiteLogoUrl"`
	BlackLogoURL    helper.PatchField[string] `json:"blackLogoUrl"`
	City            helper.PatchField[string] `json:"city"`
	Country         helper.PatchField[string] `json:"country"`
	Description     helper.PatchField[string] `json:"description"`
	PrimaryColor    helper.PatchField[string] `json:"primaryColor"`
	SecondaryColor  helper.PatchField[string] `json:"secondaryColor"`
	WebsiteURL      helper.PatchField[string] `json:"websiteUrl"`
	MetaTitle       helper.PatchField[string] `json:"metaTitle"`
	MetaDescription helper.PatchField[string] `json:"metaDescription"`
	IsActive        helper.PatchField[bool]   `json:"is_active"`
}

func (r *UpdateTeamRequest) Normalize() {
	for _, p := range []*helper.PatchField[string]{
		&r.Name, &r.ShortName, &r.AbbreviatedName, &r.OriginalLogoURL,
		&r.WhiteLogoURL, &r.BlackLogoURL, &r.City, &r.Country, &r.Description,
		&r.PrimaryColor, &r.SecondaryColor, &r.WebsiteURL, &r.MetaTitle,
		&r.MetaDescription,
	} {
		helper.TrimPatch(p)
	}
	if r.AbbreviatedName.Value != nil {
		v := strings.ToUpper(*r.AbbreviatedName.Value)
		r.AbbreviatedName.Value = &v
	}
}

func (r *UpdateTeamRequest) Validate(v *validator.Validate) helper.FieldErrors {
	errs := helper.FieldErrors{}
	helper.CheckPatch(v, errs, "name", r.Name, "max=100", true)
	helper.CheckPatch(v, errs, "shortName", r.ShortName, "max=50", true)
	helper.CheckPatch(v, errs, "abbreviatedName", r.AbbreviatedName, "max=3", true)
	helper.CheckPatch(v, errs, "originalLogoUrl", r.OriginalLogoURL, "max=255", false)
	helper.CheckPatch(v, errs, "whiteLogoUrl", r.WhiteLogoURL, "max=255", false)
	helper.CheckPatch(v, errs, "blackLogoUrl", r.BlackLogoURL, "max=255", false)
	helper.CheckPatch(v, errs, "city", r.City, "max=100", false)
	helper.CheckPatch(v, errs, "country", r.Country, "max=100", false)
	helper.CheckPatch(v, errs, "primaryColor", r.PrimaryColor, "hexcolor,len=7", false)
	helper.CheckPatch(v, errs, "secondaryColor", r.SecondaryColor, "hexcolor,len=7", false)
	helper.CheckPatch(v, errs, "websiteUrl", r.WebsiteURL, "max=255", false)
	helper.CheckPatch(v, errs, "metaTitle", r.MetaTitle, "max=255", false)
	helper.CheckPatch(v, errs, "is_active", r.IsActive, "", true)
	return errs
}

func (r *UpdateTeamRequest) ApplyPatch(m *model.Team) {
	r.Name.Apply(&m.Name)
	r.ShortName.Apply(&m.ShortName)
	r.AbbreviatedName.Apply(&m.AbbreviatedName)
	r.OriginalLogoURL.ApplyNullable(&m.OriginalLogoURL)
	r.WhiteLogoURL.ApplyNullable(&m.WhiteLogoURL)
	r.BlackLogoURL.ApplyNullable(&m.BlackLogoURL)
	r.City.ApplyNullable(&m.City)
	r.Country.ApplyNullable(&m.Country)
	r.Description.ApplyNullable(&m.Description)
	r.PrimaryColor.ApplyNullable(&m.PrimaryColor)
	r.SecondaryColor.ApplyNullable(&m.SecondaryColor)
	r.WebsiteURL.ApplyNullable(&m.WebsiteURL)
	r.MetaTitle.ApplyNullable(&m.MetaTitle)
	r.MetaDescription.ApplyNullable(&m.MetaDescription)
	r.IsActive.Apply(&m.IsActive)
}
