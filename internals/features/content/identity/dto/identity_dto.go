package dto

import (
	"github.com/go-playground/validator/v10"

	model "clubolimpo_backend/internals/features/content/identity/model"
	helper "clubolimpo_backend/internals/helpers"
)

type CreateIdentityRequest struct {
	MissionText     *string `json:"missionText"`
	MissionImageURL *string `json:"missionImageUrl" validate:"omitempty,max=255"`
	VisionText      *string `json:"visionText"`
	VisionImageURL  *string `json:"visionImageUrl" validate:"omitempty,max=255"`
	ValuesText      *string `json:"valuesText"`
	ValuesImageURL  *string `json:"valuesImageUrl" validate:"omitempty,max=255"`
}

func (r *CreateIdentityRequest) Normalize() {
	for _, p := range []**string{
		&r.MissionText, &r.MissionImageURL, &r.VisionText,
		&r.VisionImageURL, &r.ValuesText, &r.ValuesImageURL,
	} {
		*p = helper.TrimPtr(*p)
	}
}

func (r *CreateIdentityRequest) ToModel() *model.Identity {
	return &model.Identity{
		MissionText:     r.MissionText,
		MissionImageURL: r.MissionImageURL,
		VisionText:      r.VisionText,
		VisionImageURL:  r.VisionImageURL,
		ValuesText:      r.ValuesText,
		ValuesImageURL:  r.ValuesImageURL,
		IsActive:        true,
	}
}

type UpdateIdentityRequest struct {
	MissionText     helper.PatchField[string] `json:"missionText"`
	MissionImageURL helper.PatchField[string] `json:"missionImageUrl"`
	VisionText      helper.PatchField[string] `json:"visionText"`
	VisionImageURL  helper.PatchField[string] `json:"visionImageUrl"`
	ValuesText      helper.PatchField[string] `json:"valuesText"`
	ValuesImageURL  helper.PatchField[string] `json:"valuesImageUrl"`
}

func (r *UpdateIdentityRequest) Normalize() {
	for _, p := range []*helper.PatchField[string]{
		&r.MissionText, &r.MissionImageURL, &r.VisionText,
		&r.VisionImageURL, &r.ValuesText, &r.ValuesImageURL,
	} {
		helper.TrimPatch(p)
	}
}

func (r *UpdateIdentityRequest) Validate(v *validator.Validate) helper.FieldErrors {
	errs := helper.FieldErrors{}
	helper.CheckPatch(v, errs, "missionImageUrl", r.MissionImageURL, "max=255", false)
	helper.CheckPatch(v, errs, "visionImageUrl", r.VisionImageURL, "max=255", false)
	helper.CheckPatch(v, errs, "valuesImageUrl", r.ValuesImageURL, "max=255", false)
	return errs
}

func (r *UpdateIdentityRequest) ApplyPatch(m *model.Identity) {
	r.MissionText.ApplyNullable(&m.MissionText)
	r.MissionImageURL.ApplyNullable(&m.MissionImageURL)
	r.VisionText.ApplyNullable(&m.VisionText)
	r.VisionImageURL.ApplyNullable(&m.VisionImageURL)
	r.ValuesText.ApplyNullable(&m.ValuesText)
	r.ValuesImageURL.ApplyNullable(&m.ValuesImageURL)
}
