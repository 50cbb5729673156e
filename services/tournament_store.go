package services

import (
	"context"
	"errors"
	"fmt"

	"swiss-tournament/models"
	"swiss-tournament/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrPlayerNotFound    = errors.New("player not found")
	ErrInvalidMatch      = errors.New("invalid match")
	ErrInvalidPlayerName = errors.New("invalid player name")
)

// TournamentStore is the persistence side of the tournament: players and
// match results. Implementations own input validation at the storage boundary.
type TournamentStore interface {
	ListPlayers(ctx context.Context) ([]models.Player, error)
	ListMatches(ctx context.Context) ([]models.Match, error)
	AddPlayer(ctx context.Context, name string) (models.Player, error)
	ClearPlayers(ctx context.Context) error
	ClearMatches(ctx context.Context) error
	RecordMatch(ctx context.Context, winnerID, loserID uint) (models.Match, error)
	CountPlayers(ctx context.Context) (int64, error)
}

// GormStore keeps players and matches in PostgreSQL. The *gorm.DB carries the
// connection pool; each call borrows a connection for its own duration only.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// Migrate creates or updates the players and matches tables.
func (s *GormStore) Migrate() error {
	return s.DB.AutoMigrate(&models.Player{}, &models.Match{})
}

func (s *GormStore) ListPlayers(ctx context.Context) ([]models.Player, error) {
	var players []models.Player
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *GormStore) ListMatches(ctx context.Context) ([]models.Match, error) {
	var matches []models.Match
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&matches).Error; err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

// AddPlayer sanitizes name and inserts a new player; the database assigns the id.
func (s *GormStore) AddPlayer(ctx context.Context, name string) (models.Player, error) {
	clean := utils.SanitizeName(name)
	if clean == "" {
		return models.Player{}, fmt.Errorf("%w: name is empty", ErrInvalidPlayerName)
	}

	player := models.Player{Name: clean}
	if err := s.DB.WithContext(ctx).Create(&player).Error; err != nil {
		return models.Player{}, fmt.Errorf("add player: %w", err)
	}
	return player, nil
}

// ClearPlayers removes every player together with their matches.
func (s *GormStore) ClearPlayers(ctx context.Context) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Match{}).Error; err != nil {
			return fmt.Errorf("clear matches: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.Player{}).Error; err != nil {
			return fmt.Errorf("clear players: %w", err)
		}
		return nil
	})
}

func (s *GormStore) ClearMatches(ctx context.Context) error {
	if err := s.DB.WithContext(ctx).Where("1 = 1").Delete(&models.Match{}).Error; err != nil {
		return fmt.Errorf("clear matches: %w", err)
	}
	return nil
}

// RecordMatch stores a result after checking that both players exist and differ.
func (s *GormStore) RecordMatch(ctx context.Context, winnerID, loserID uint) (models.Match, error) {
	if winnerID == loserID {
		return models.Match{}, fmt.Errorf("%w: player %d cannot play themselves", ErrInvalidMatch, winnerID)
	}

	match := models.Match{WinnerID: winnerID, LoserID: loserID}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range []uint{winnerID, loserID} {
			var player models.Player
			if err := tx.Select("id").First(&player, "id = ?", id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %d", ErrPlayerNotFound, id)
				}
				return fmt.Errorf("look up player %d: %w", id, err)
			}
		}
		if err := tx.Omit(clause.Associations).Create(&match).Error; err != nil {
			return fmt.Errorf("record match: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Match{}, err
	}
	return match, nil
}

func (s *GormStore) CountPlayers(ctx context.Context) (int64, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Player{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return count, nil
}
