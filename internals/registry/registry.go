package registry

import (
	"gorm.io/gorm"

	matchRepo "clubolimpo_backend/internals/features/club/matches/repository"
	monthlyRepo "clubolimpo_backend/internals/features/club/monthly_players/repository"
	playerRepo "clubolimpo_backend/internals/features/club/players/repository"
	teamRepo "clubolimpo_backend/internals/features/club/teams/repository"
	categoryRepo "clubolimpo_backend/internals/features/content/categories/repository"
	eventRepo "clubolimpo_backend/internals/features/content/history_events/repository"
	subsectionRepo "clubolimpo_backend/internals/features/content/history_subsections/repository"
	identityRepo "clubolimpo_backend/internals/features/content/identity/repository"
	newsRepo "clubolimpo_backend/internals/features/content/news/repository"
	sponsorRepo "clubolimpo_backend/internals/features/content/sponsors/repository"
	testimonialRepo "clubolimpo_backend/internals/features/content/testimonials/repository"
	authRepo "clubolimpo_backend/internals/features/users/auth/repository"
)

type Repositories struct {
	Users              *authRepo.UserRepository
	Players            *playerRepo.PlayerRepository
	Teams              *teamRepo.TeamRepository
	Matches            *matchRepo.MatchRepository
	MonthlyPlayers     *monthlyRepo.MonthlyPlayerRepository
	Categories         *categoryRepo.CategoryRepository
	News               *newsRepo.NewsRepository
	HistoryEvents      *eventRepo.HistoryEventRepository
	HistorySubsections *subsectionRepo.HistorySubsectionRepository
	Sponsors           *sponsorRepo.SponsorRepository
	Testimonials       *testimonialRepo.TestimonialRepository
	Identity           *identityRepo.IdentityRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:              authRepo.NewUserRepository(db),
		Players:            playerRepo.NewPlayerRepository(db),
		Teams:              teamRepo.NewTeamRepository(db),
		Matches:            matchRepo.NewMatchRepository(db),
		MonthlyPlayers:     monthlyRepo.NewMonthlyPlayerRepository(db),
		Categories:         categoryRepo.NewCategoryRepository(db),
		News:               newsRepo.NewNewsRepository(db),
		HistoryEvents:      eventRepo.NewHistoryEventRepository(db),
		HistorySubsections: subsectionRepo.NewHistorySubsectionRepository(db),
		Sponsors:           sponsorRepo.NewSponsorRepository(db),
		Testimonials:       testimonialRepo.NewTestimonialRepository(db),
		Identity:           identityRepo.NewIdentityRepository(db),
	}
}
