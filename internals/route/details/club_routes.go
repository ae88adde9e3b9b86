package details

import (
	"github.com/gofiber/fiber/v2"

	matchController "clubolimpo_backend/internals/features/club/matches/controller"
	matchRoute "clubolimpo_backend/internals/features/club/matches/route"
	monthlyController "clubolimpo_backend/internals/features/club/monthly_players/controller"
	monthlyRoute "clubolimpo_backend/internals/features/club/monthly_players/route"
	playerController "clubolimpo_backend/internals/features/club/players/controller"
	playerRoute "clubolimpo_backend/internals/features/club/players/route"
	teamController "clubolimpo_backend/internals/features/club/teams/controller"
	teamRoute "clubolimpo_backend/internals/features/club/teams/route"
	"clubolimpo_backend/internals/registry"
)

// ClubRoutes mounts players, teams, matches and player-of-the-month.
func ClubRoutes(api fiber.Router, repos *registry.Repositories, requireAuth fiber.Handler) {
	playerRoute.PlayerRoutes(api, playerController.NewPlayerController(repos.Players), requireAuth)
	teamRoute.TeamRoutes(api, teamController.NewTeamController(repos.Teams), requireAuth)
	matchRoute.MatchRoutes(api, matchController.NewMatchController(repos.Matches, repos.Teams), requireAuth)
	monthlyRoute.MonthlyPlayerRoutes(api, monthlyController.NewMonthlyPlayerController(repos.MonthlyPlayers, repos.Players), requireAuth)
}
