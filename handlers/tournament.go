package handlers

import (
	"swiss-tournament/middleware"
	"swiss-tournament/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTournamentRoutes(app *fiber.App, tournamentService *services.TournamentService, operatorToken string) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// 🔓 Read-only routes
	app.Get("/players/count", tournamentService.HandleCountPlayers)
	app.Get("/standings", tournamentService.HandleStandings)
	app.Get("/pairings", tournamentService.HandlePairings)
	app.Get("/snapshot", tournamentService.HandleSnapshot)

	// 🔐 Operator routes
	operator := middleware.OperatorAuthMiddleware(operatorToken)
	app.Post("/players", operator, tournamentService.HandleRegisterPlayer)
	app.Delete("/players", operator, tournamentService.HandleDeletePlayers)
	app.Post("/matches", operator, tournamentService.HandleReportMatch)
	app.Delete("/matches", operator, tournamentService.HandleDeleteMatches)
}
