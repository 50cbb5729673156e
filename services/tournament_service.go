package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"swiss-tournament/models"

	"github.com/google/uuid"
)

// TournamentService runs tournament operations against a TournamentStore and
// derives standings and pairings from what the store returns.
type TournamentService struct {
	Store      TournamentStore
	Tournament string
	now        func() time.Time
}

func NewTournamentService(store TournamentStore, tournament string) *TournamentService {
	return &TournamentService{Store: store, Tournament: tournament, now: time.Now}
}

func (s *TournamentService) RegisterPlayer(ctx context.Context, name string) (models.Player, error) {
	player, err := s.Store.AddPlayer(ctx, name)
	if err != nil {
		return models.Player{}, err
	}
	log.Printf("✅ [TOURNAMENT] Registered player %d (%s)", player.ID, player.Name)
	return player, nil
}

func (s *TournamentService) CountPlayers(ctx context.Context) (int64, error) {
	return s.Store.CountPlayers(ctx)
}

func (s *TournamentService) DeletePlayers(ctx context.Context) error {
	if err := s.Store.ClearPlayers(ctx); err != nil {
		return err
	}
	log.Println("🧹 [TOURNAMENT] All players deleted")
	return nil
}

func (s *TournamentService) DeleteMatches(ctx context.Context) error {
	if err := s.Store.ClearMatches(ctx); err != nil {
		return err
	}
	log.Println("🧹 [TOURNAMENT] All matches deleted")
	return nil
}

func (s *TournamentService) ReportMatch(ctx context.Context, winnerID, loserID uint) (models.Match, error) {
	match, err := s.Store.RecordMatch(ctx, winnerID, loserID)
	if err != nil {
		return models.Match{}, err
	}
	log.Printf("🏁 [TOURNAMENT] Match %d recorded: %d beat %d", match.ID, winnerID, loserID)
	return match, nil
}

// PlayerStandings reads the current players and matches and ranks them.
// Any read failure is reported as ErrStandingsUnavailable.
func (s *TournamentService) PlayerStandings(ctx context.Context) ([]models.StandingsRow, error) {
	players, err := s.Store.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStandingsUnavailable, err)
	}
	matches, err := s.Store.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStandingsUnavailable, err)
	}
	return ComputeStandings(players, matches), nil
}

// SwissPairings returns the next-round pairings for the current standings.
func (s *TournamentService) SwissPairings(ctx context.Context) ([]models.Pairing, error) {
	standings, err := s.PlayerStandings(ctx)
	if err != nil {
		return nil, err
	}
	return ComputePairings(standings)
}

// Snapshot captures standings and pairings together. An odd player count is
// not an error here: the snapshot carries the reason in PairingError instead.
func (s *TournamentService) Snapshot(ctx context.Context) (models.Snapshot, error) {
	standings, err := s.PlayerStandings(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}

	snap := models.Snapshot{
		ID:          uuid.NewString(),
		Tournament:  s.Tournament,
		TakenAt:     s.now().UTC(),
		PlayerCount: len(standings),
		Standings:   standings,
		Pairings:    []models.Pairing{},
	}

	pairs, err := ComputePairings(standings)
	switch {
	case errors.Is(err, ErrInvalidPairingInput):
		snap.PairingError = err.Error()
	case err != nil:
		return models.Snapshot{}, err
	default:
		snap.Pairings = pairs
	}
	return snap, nil
}
