package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	model "clubolimpo_backend/internals/features/club/matches/model"
	helper "clubolimpo_backend/internals/helpers"
)

type CreateMatchRequest struct {
	DateTime        *time.Time `json:"dateTime"`
	Category        string     `json:"category" validate:"required,max=20"`
	Order           *int       `json:"order" validate:"omitempty,gte=0"`
	HomeTeamID      uint       `json:"homeTeamId" validate:"required"`
	AwayTeamID      uint       `json:"awayTeamId" validate:"required"`
	HomeTeamScore   *int       `json:"homeTeamScore" validate:"omitempty,gte=0"`
	AwayTeamScore   *int       `json:"awayTeamScore" validate:"omitempty,gte=0"`
	Location        *string    `json:"location" validate:"omitempty,max=255"`
	MatchType       string     `json:"matchType" validate:"required,max=100"`
	Status          *string    `json:"status" validate:"omitempty,max=50"`
	Round           *string    `json:"round" validate:"omitempty,max=50"`
	HighlightsURL   *string    `json:"highlightsUrl" validate:"omitempty,max=255"`
	LiveStreamURL   *string    `json:"liveStreamUrl" validate:"omitempty,max=255"`
	Description     *string    `json:"description"`
	MetaTitle       *string    `json:"metaTitle" validate:"omitempty,max=255"`
	MetaDescription *string    `json:"metaDescription"`
}

func (r *CreateMatchRequest) Normalize() {
	r.Category = strings.TrimSpace(r.Category)
	r.MatchType = strings.TrimSpace(r.MatchType)
	for _, p := range []**string{
		&r.Location, &r.Status, &r.Round, &r.HighlightsURL, &r.LiveStreamURL,
		&r.Description, &r.MetaTitle, &r.MetaDescription,
	} {
		*p = helper.TrimPtr(*p)
	}
}

// ToModel leaves Order at zero when absent; the controller assigns the next slot.
func (r *CreateMatchRequest) ToModel() *model.Match {
	status := model.DefaultMatchStatus
	if r.Status != nil {
		status = *r.Status
	}
	m := &model.Match{
		DateTime:        r.DateTime,
		Category:        r.Category,
		HomeTeamID:      r.HomeTeamID,
		AwayTeamID:      r.AwayTeamID,
		HomeTeamScore:   r.HomeTeamScore,
		AwayTeamScore:   r.AwayTeamScore,
		Location:        r.Location,
		MatchType:       r.MatchType,
		Status:          status,
		Round:           r.Round,
		HighlightsURL:   r.HighlightsURL,
		LiveStreamURL:   r.LiveStreamURL,
		Description:     r.Description,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		IsActive:        true,
	}
	if r.Order != nil {
		m.Order = *r.Order
	}
	return m
}

type UpdateMatchRequest struct {
	DateTime        helper.PatchField[time.Time] `json:"dateTime"`
	Category        helper.PatchField[string]    `json:"category"`
	Order           helper.PatchField[int]       `json:"order"`
	HomeTeamID      helper.PatchField[uint]      `json:"homeTeamId"`
	AwayTeamID      helper.PatchField[uint]      `json:"awayTeamId"`
	HomeTeamScore   helper.PatchField[int]       `json:"homeTeamScore"`
	AwayTeamScore   helper.PatchField[int]       `json:"awayTeamScore"`
	Location        helper.PatchField[string]    `json:"location"`
	MatchType       helper.PatchField[string]    `json:"matchType"`
	Status          helper.PatchField[string]    `json:"status"`
	Round           helper.PatchField[string]    `json:"round"`
	HighlightsURL   helper.PatchField[string]    `json:"highlightsUrl"`
	LiveStreamURL   helper.PatchField[string]    `json:"liveStreamUrl"`
	Description     helper.PatchField[string]    `json:"description"`
	MetaTitle       helper.PatchField[string]    `json:"metaTitle"`
	MetaDescription helper.PatchField[string]    `json:"metaDescription"`
	IsActive        helper.PatchField[bool]      `json:"is_active"`
}

func (r *UpdateMatchRequest) Normalize() {
	for _, p := range []*helper.PatchField[string]{
		&r.Category, &r.Location, &r.MatchType, &r.Status, &r.Round,
		&r.HighlightsURL, &r.LiveStreamURL, &r.Description, &r.MetaTitle,
		&r.MetaDescription,
	} {
		helper.TrimPatch(p)
	}
}

func (r *UpdateMatchRequest) Validate(v *validator.Validate) helper.FieldErrors {
	errs := helper.FieldErrors{}
	helper.CheckPatch(v, errs, "category", r.Category, "max=20", true)
	helper.CheckPatch(v, errs, "order", r.Order, "gte=0", true)
	helper.CheckPatch(v, errs, "homeTeamId", r.HomeTeamID, "gt=0", true)
	helper.CheckPatch(v, errs, "awayTeamId", r.AwayTeamID, "gt=0", true)
	helper.CheckPatch(v, errs, "homeTeamScore", r.HomeTeamScore, "gte=0", false)
	helper.CheckPatch(v, errs, "awayTeamScore", r.AwayTeamScore, "gte=0", false)
	helper.CheckPatch(v, errs, "location", r.Location, "max=255", false)
	helper.CheckPatch(v, errs, "matchType", r.MatchType, "max=100", true)
	helper.CheckPatch(v, errs, "status", r.Status, "max=50", true)
	helper.CheckPatch(v, errs, "round", r.Round, "max=50", false)
	helper.CheckPatch(v, errs, "highlightsUrl", r.HighlightsURL, "max=255", false)
	helper.CheckPatch(v, errs, "liveStreamUrl", r.LiveStreamURL, "max=255", false)
	helper.CheckPatch(v, errs, "metaTitle", r.MetaTitle, "max=255", false)
	helper.CheckPatch(v, errs, "is_active", r.IsActive, "", true)
	return errs
}

// TeamsChanged reports whether either team reference is being replaced.
func (r *UpdateMatchRequest) TeamsChanged() bool {
	return r.HomeTeamID.Set() || r.AwayTeamID.Set()
}

func (r *UpdateMatchRequest) ApplyPatch(m *model.Match) {
	r.DateTime.ApplyNullable(&m.DateTime)
	r.Category.Apply(&m.Category)
	r.Order.Apply(&m.Order)
	r.HomeTeamID.Apply(&m.HomeTeamID)
	r.AwayTeamID.Apply(&m.AwayTeamID)
	r.HomeTeamScore.ApplyNullable(&m.HomeTeamScore)
	r.AwayTeamScore.ApplyNullable(&m.AwayTeamScore)
	r.Location.ApplyNullable(&m.Location)
	r.MatchType.Apply(&m.MatchType)
	r.Status.Apply(&m.Status)
	r.Round.ApplyNullable(&m.Round)
	r.HighlightsURL.ApplyNullable(&m.HighlightsURL)
	r.LiveStreamURL.ApplyNullable(&m.LiveStreamURL)
	r.Description.ApplyNullable(&m.Description)
	r.MetaTitle.ApplyNullable(&m.MetaTitle)
	r.MetaDescription.ApplyNullable(&m.MetaDescription)
	r.IsActive.Apply(&m.IsActive)
}
