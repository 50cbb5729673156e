package models

import "time"

// Match records the outcome of a single game between two registered players.
// Rows are append-only; the only delete is the bulk reset.
type Match struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	WinnerID  uint      `gorm:"index;not null" json:"winner_id"`
	LoserID   uint      `gorm:"index;not null" json:"loser_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Winner Player `gorm:"foreignKey:WinnerID;constraint:OnDelete:CASCADE" json:"-"`
	Loser  Player `gorm:"foreignKey:LoserID;constraint:OnDelete:CASCADE" json:"-"`
}
