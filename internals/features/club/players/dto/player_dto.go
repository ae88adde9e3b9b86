package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	model "clubolimpo_backend/internals/features/club/players/model"
	helper "clubolimpo_backend/internals/helpers"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreatePlayerRequest struct {
	FirstName       string       `json:"firstName" validate:"required,max=100"`
	LastName        string       `json:"lastName" validate:"required,max=100"`
	Position        string       `json:"position" validate:"required,max=50"`
	Number          *int         `json:"number" validate:"omitempty,gte=0,lte=999"`
	DateOfBirth     *helper.Date `json:"dateOfBirth"`
	CityOfBirth     *string      `json:"cityOfBirth" validate:"omitempty,max=100"`
	StateOfBirth    *string      `json:"stateOfBirth" validate:"omitempty,max=100"`
	Nationality     *string      `json:"nationality" validate:"omitempty,max=100"`
	PreferredFoot   *string      `json:"preferredFoot" validate:"omitempty,max=20"`
	PhotoURL        *string      `json:"photoUrl" validate:"omitempty,max=255"`
	Biography       *string      `json:"biography"`
	InstagramURL    *string      `json:"instagramUrl" validate:"omitempty,max=255"`
	Status          *string      `json:"status" validate:"omitempty,max=50"`
	MetaTitle       *string      `json:"metaTitle" validate:"omitempty,max=255"`
	MetaDescription *string      `json:"metaDescription"`
}

func (r *CreatePlayerRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Position = strings.TrimSpace(r.Position)
	for _, p := range []**string{
		&r.CityOfBirth, &r.StateOfBirth, &r.Nationality, &r.PreferredFoot,
		&r.PhotoURL, &r.Biography, &r.InstagramURL, &r.Status,
		&r.MetaTitle, &r.MetaDescription,
	} {
		*p = helper.TrimPtr(*p)
	}
}

func (r *CreatePlayerRequest) ToModel() *model.Player {
	status := model.DefaultPlayerStatus
	if r.Status != nil {
		status = *r.Status
	}
	return &model.Player{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Position:        r.Position,
		Number:          r.Number,
		DateOfBirth:     r.DateOfBirth,
		CityOfBirth:     r.CityOfBirth,
		StateOfBirth:    r.StateOfBirth,
		Nationality:     r.Nationality,
		PreferredFoot:   r.PreferredFoot,
		PhotoURL:        r.PhotoURL,
		Biography:       r.Biography,
		InstagramURL:    r.InstagramURL,
		Status:          status,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		IsActive:        true,
	}
}

/* =========================================================
   PATCH (absent = keep, null = clear)
   ========================================================= */

type UpdatePlayerRequest struct {
	FirstName       helper.PatchField[string]      `json:"firstName"`
	LastName        helper.PatchField[string]      `json:"lastName"`
	Position        helper.PatchField[string]      `json:"position"`
	Number          helper.PatchField[int]         `json:"number"`
	DateOfBirth     helper.PatchField[helper.Date] `json:"dateOfBirth"`
	CityOfBirth     helper.PatchField[string]      `json:"cityOfBirth"`
	StateOfBirth    helper.PatchField[string]      `json:"stateOfBirth"`
	Nationality     helper.PatchField[string]      `json:"nationality"`
	PreferredFoot   helper.PatchField[string]      `json:"preferredFoot"`
	PhotoURL        helper.PatchField[string]      `json:"photoUrl"`
	Biography       helper.PatchField[string]      `json:"biography"`
	InstagramURL    helper.PatchField[string]      `json:"instagramUrl"`
	Status          helper.PatchField[string]      `json:"status"`
	MetaTitle       helper.PatchField[string]      `json:"metaTitle"`
	MetaDescription helper.PatchField[string]      `json:"metaDescription"`
	IsActive        helper.PatchField[bool]        `json:"is_active"`
}

func (r *UpdatePlayerRequest) Normalize() {
	for _, p := range []*helper.PatchField[string]{
		&r.FirstName, &r.LastName, &r.Position, &r.CityOfBirth, &r.StateOfBirth,
		&r.Nationality, &r.PreferredFoot, &r.PhotoURL, &r.Biography,
		&r.InstagramURL, &r.Status, &r.MetaTitle, &r.MetaDescription,
	} {
		helper.TrimPatch(p)
	}
}

func (r *UpdatePlayerRequest) Validate(v *validator.Validate) helper.FieldErrors {
	errs := helper.FieldErrors{}
	helper.CheckPatch(v, errs, "firstName", r.FirstName, "max=100", true)
	helper.CheckPatch(v, errs, "lastName", r.LastName, "max=100", true)
	helper.CheckPatch(v, errs, "position", r.Position, "max=50", true)
	helper.CheckPatch(v, errs, "number", r.Number, "gte=0,lte=999", false)
	helper.CheckPatch(v, errs, "cityOfBirth", r.CityOfBirth, "max=100", false)
	helper.CheckPatch(v, errs, "stateOfBirth", r.StateOfBirth, "max=100", false)
	helper.CheckPatch(v, errs, "nationality", r.Nationality, "max=100", false)
	helper.CheckPatch(v, errs, "preferredFoot", r.PreferredFoot, "max=20", false)
	helper.CheckPatch(v, errs, "photoUrl", r.PhotoURL, "max=255", false)
	helper.CheckPatch(v, errs, "instagramUrl", r.InstagramURL, "max=255", false)
	helper.CheckPatch(v, errs, "status", r.Status, "max=50", true)
	helper.CheckPatch(v, errs, "metaTitle", r.MetaTitle, "max=255", false)
	helper.CheckPatch(v, errs, "is_active", r.IsActive, "", true)
	return errs
}

func (r *UpdatePlayerRequest) ApplyPatch(m *model.Player) {
	r.FirstName.Apply(&m.FirstName)
	r.LastName.Apply(&m.LastName)
	r.Position.Apply(&m.Position)
	r.Number.ApplyNullable(&m.Number)
	r.DateOfBirth.ApplyNullable(&m.DateOfBirth)
	r.CityOfBirth.ApplyNullable(&m.CityOfBirth)
	r.StateOfBirth.ApplyNullable(&m.StateOfBirth)
	r.Nationality.ApplyNullable(&m.Nationality)
	r.PreferredFoot.ApplyNullable(&m.PreferredFoot)
	r.PhotoURL.ApplyNullable(&m.PhotoURL)
	r.Biography.ApplyNullable(&m.Biography)
	r.InstagramURL.ApplyNullable(&m.InstagramURL)
	r.Status.Apply(&m.Status)
	r.MetaTitle.ApplyNullable(&m.MetaTitle)
	r.MetaDescription.ApplyNullable(&m.MetaDescription)
	r.IsActive.Apply(&m.IsActive)
}
