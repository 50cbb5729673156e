package models

import "time"

// Player is a registered tournament entrant. The id is assigned by the
// database; names need not be unique.
type Player struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
