// Package registry is the one place that knows every table and every
// repository. It is built once at startup and handed to the routes.
package registry

import (
	"gorm.io/gorm"

	matchModel "clubolimpo_backend/internals/features/club/matches/model"
	monthlyModel "clubolimpo_backend/internals/features/club/monthly_players/model"
	playerModel "clubolimpo_backend/internals/features/club/players/model"
	teamModel "clubolimpo_backend/internals/features/club/teams/model"
	categoryModel "clubolimpo_backend/internals/features/content/categories/model"
	eventModel "clubolimpo_backend/internals/features/content/history_events/model"
	subsectionModel "clubolimpo_backend/internals/features/content/history_subsections/model"
	identityModel "clubolimpo_backend/internals/features/content/identity/model"
	newsModel "clubolimpo_backend/internals/features/content/news/model"
	sponsorModel "clubolimpo_backend/internals/features/content/sponsors/model"
	testimonialModel "clubolimpo_backend/internals/features/content/testimonials/model"
	userModel "clubolimpo_backend/internals/features/users/auth/model"
)

// Models lists the schema in dependency order (parents before children).
func Models() []any {
	return []any{
		&userModel.UserModel{},
		&playerModel.Player{},
		&teamModel.Team{},
		&matchModel.Match{},
		&categoryModel.Category{},
		&newsModel.News{},
		&newsModel.NewsCategory{},
		&eventModel.HistoryEvent{},
		&subsectionModel.HistorySubsection{},
		&monthlyModel.MonthlyPlayer{},
		&sponsorModel.Sponsor{},
		&testimonialModel.Testimonial{},
		&identityModel.Identity{},
	}
}

// Migrate registers the news/category join model and auto-migrates every table.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&newsModel.News{}, "Categories", &newsModel.NewsCategory{}); err != nil {
		return err
	}
	return db.AutoMigrate(Models()...)
}
