package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"swiss-tournament/models"
	"swiss-tournament/utils"
)

// MemoryStore is a TournamentStore held in process memory. It applies the same
// validation as GormStore and is used when no database is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	players []models.Player
	matches []models.Match
	nextPID uint
	nextMID uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextPID: 1, nextMID: 1}
}

func (s *MemoryStore) ListPlayers(ctx context.Context) ([]models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Player(nil), s.players...), nil
}

func (s *MemoryStore) ListMatches(ctx context.Context) ([]models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Match(nil), s.matches...), nil
}

func (s *MemoryStore) AddPlayer(ctx context.Context, name string) (models.Player, error) {
	clean := utils.SanitizeName(name)
	if clean == "" {
		return models.Player{}, fmt.Errorf("%w: name is empty", ErrInvalidPlayerName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := models.Player{ID: s.nextPID, Name: clean, CreatedAt: time.Now()}
	s.nextPID++
	s.players = append(s.players, p)
	return p, nil
}

// ClearPlayers drops players and, like the cascading foreign key, their matches.
// Ids keep counting up, as a serial column would.
func (s *MemoryStore) ClearPlayers(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = nil
	s.matches = nil
	return nil
}

func (s *MemoryStore) ClearMatches(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = nil
	return nil
}

func (s *MemoryStore) RecordMatch(ctx context.Context, winnerID, loserID uint) (models.Match, error) {
	if winnerID == loserID {
		return models.Match{}, fmt.Errorf("%w: player %d cannot play themselves", ErrInvalidMatch, winnerID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range []uint{winnerID, loserID} {
		if !s.hasPlayer(id) {
			return models.Match{}, fmt.Errorf("%w: %d", ErrPlayerNotFound, id)
		}
	}
	m := models.Match{ID: s.nextMID, WinnerID: winnerID, LoserID: loserID, CreatedAt: time.Now()}
	s.nextMID++
	s.matches = append(s.matches, m)
	return m, nil
}

func (s *MemoryStore) CountPlayers(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.players)), nil
}

func (s *MemoryStore) hasPlayer(id uint) bool {
	for _, p := range s.players {
		if p.ID == id {
			return true
		}
	}
	return false
}
