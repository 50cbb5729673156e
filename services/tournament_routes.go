package services

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

type registerPlayerRequest struct {
	Name string `json:"name"`
}

type reportMatchRequest struct {
	WinnerID uint `json:"winner_id"`
	LoserID  uint `json:"loser_id"`
}

// errorResponse maps domain errors onto HTTP status codes.
func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := "internal error"
	switch {
	case errors.Is(err, ErrInvalidPlayerName):
		status, msg = fiber.StatusBadRequest, "invalid player name"
	case errors.Is(err, ErrInvalidMatch):
		status, msg = fiber.StatusBadRequest, "invalid match"
	case errors.Is(err, ErrPlayerNotFound):
		status, msg = fiber.StatusNotFound, "player not found"
	case errors.Is(err, ErrInvalidPairingInput):
		status, msg = fiber.StatusConflict, "cannot pair an odd number of players"
	case errors.Is(err, ErrStandingsUnavailable):
		status, msg = fiber.StatusServiceUnavailable, "standings unavailable"
	default:
		log.Printf("❌ [TOURNAMENT] %s %s failed: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{"error": msg, "details": err.Error()})
}

func (s *TournamentService) HandleCountPlayers(c *fiber.Ctx) error {
	count, err := s.CountPlayers(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

func (s *TournamentService) HandleRegisterPlayer(c *fiber.Ctx) error {
	var req registerPlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}
	player, err := s.RegisterPlayer(c.UserContext(), req.Name)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(player)
}

func (s *TournamentService) HandleDeletePlayers(c *fiber.Ctx) error {
	if err := s.DeletePlayers(c.UserContext()); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *TournamentService) HandleReportMatch(c *fiber.Ctx) error {
	var req reportMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}
	if req.WinnerID == 0 || req.LoserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "winner_id and loser_id are required"})
	}
	match, err := s.ReportMatch(c.UserContext(), req.WinnerID, req.LoserID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(match)
}

func (s *TournamentService) HandleDeleteMatches(c *fiber.Ctx) error {
	if err := s.DeleteMatches(c.UserContext()); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *TournamentService) HandleStandings(c *fiber.Ctx) error {
	standings, err := s.PlayerStandings(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(standings)
}

func (s *TournamentService) HandlePairings(c *fiber.Ctx) error {
	pairs, err := s.SwissPairings(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"pairs": pairs, "total_pairs": len(pairs)})
}

func (s *TournamentService) HandleSnapshot(c *fiber.Ctx) error {
	snap, err := s.Snapshot(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(snap)
}
