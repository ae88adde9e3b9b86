package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	model "clubolimpo_backend/internals/features/club/monthly_players/model"
	helper "clubolimpo_backend/internals/helpers"
)

type CreateMonthlyPlayerRequest struct {
	PlayerID        uint    `json:"playerId" validate:"required"`
	Year            int     `json:"year" validate:"required,gte=1900,lte=2100"`
	Month           int     `json:"month" validate:"required,gte=1,lte=12"`
	Reason          string  `json:"reason" validate:"required"`
	ImageURL        *string `json:"imageUrl" validate:"omitempty,max=255"`
	VideoURL        *string `json:"videoUrl" validate:"omitempty,max=255"`
	MetaTitle       *string `json:"metaTitle" validate:"omitempty,max=255"`
	MetaDescription *string `json:"metaDescription"`
}

func (r *CreateMonthlyPlayerRequest) Normalize() {
	r.Reason = strings.TrimSpace(r.Reason)
	for _, p := range []**string{&r.ImageURL, &r.VideoURL, &r.MetaTitle, &r.MetaDescription} {
		*p = helper.TrimPtr(*p)
	}
}

func (r *CreateMonthlyPlayerRequest) ToModel() *model.MonthlyPlayer {
	return &model.MonthlyPlayer{
		PlayerID:        r.PlayerID,
		Year:            r.Year,
		Month:           r.Month,
		Reason:          r.Reason,
		ImageURL:        r.ImageURL,
		VideoURL:        r.VideoURL,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		IsActive:        true,
	}
}

type UpdateMonthlyPlayerRequest struct {
	PlayerID        helper.PatchField[uint]   `json:"playerId"`
	Year            helper.PatchField[int]    `json:"year"`
	Month           helper.PatchField[int]    `json:"month"`
	Reason          helper.PatchField[string] `json:"reason"`
	ImageURL        helper.PatchField[string] `json:"imageUrl"`
	VideoURL        helper.PatchField[string] `json:"videoUrl"`
	MetaTitle       helper.PatchField[string] `json:"metaTitle"`
	MetaDescription helper.PatchField[string] `json:"metaDescription"`
	IsActive        helper.PatchField[bool]   `json:"is_active"`
}

func (r *UpdateMonthlyPlayerRequest) Normalize() {
	for _, p := range []*helper.PatchField[string]{
		&r.Reason, &r.ImageURL, &r.VideoURL, &r.MetaTitle, &r.MetaDescription,
	} {
		helper.TrimPatch(p)
	}
}

func (r *UpdateMonthlyPlayerRequest) Validate(v *validator.Validate) helper.FieldErrors {
	errs := helper.FieldErrors{}
	helper.CheckPatch(v, errs, "playerId", r.PlayerID, "gt=0", true)
	helper.CheckPatch(v, errs, "year", r.Year, "gte=1900,lte=2100", true)
	helper.CheckPatch(v, errs, "month", r.Month, "gte=1,lte=12", true)
	helper.CheckPatch(v, errs, "reason", r.Reason, "", true)
	helper.CheckPatch(v, errs, "imageUrl", r.ImageURL, "max=255", false)
	helper.CheckPatch(v, errs, "videoUrl", r.VideoURL, "max=255", false)
	helper.CheckPatch(v, errs, "metaTitle", r.MetaTitle, "max=255", false)
	helper.CheckPatch(v, errs, "is_active", r.IsActive, "", true)
	return errs
}

// AwardChanged reports whether the (player, year, month) key is being touched.
func (r *UpdateMonthlyPlayerRequest) AwardChanged() bool {
	return r.PlayerID.Set() || r.Year.Set() || r.Month.Set() || r.IsActive.Set()
}

func (r *UpdateMonthlyPlayerRequest) ApplyPatch(m *model.MonthlyPlayer) {
	r.PlayerID.Apply(&m.PlayerID)
	r.Year.Apply(&m.Year)
	r.Month.Apply(&m.Month)
	r.Reason.Apply(&m.Reason)
	r.ImageURL.ApplyNullable(&m.ImageURL)
	r.VideoURL.ApplyNullable(&m.VideoURL)
	r.MetaTitle.ApplyNullable(&m.MetaTitle)
	r.MetaDescription.ApplyNullable(&m.MetaDescription)
	r.IsActive.Apply(&m.IsActive)
}
