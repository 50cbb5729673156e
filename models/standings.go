package models

import "time"

// StandingsRow is one player's record, derived from the match table on demand.
type StandingsRow struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Wins    int    `json:"wins"`
	Matches int    `json:"matches"`
}

// Pairing is a proposed next-round matchup between two standings-adjacent players.
type Pairing struct {
	Player1ID   uint   `json:"player1_id"`
	Player1Name string `json:"player1_name"`
	Player2ID   uint   `json:"player2_id"`
	Player2Name string `json:"player2_name"`
}

// Snapshot bundles the standings and the pairings derived from them at one instant.
// PairingError is set instead of Pairings when no pairing could be produced.
type Snapshot struct {
	ID           string         `json:"id"`
	Tournament   string         `json:"tournament"`
	TakenAt      time.Time      `json:"taken_at"`
	PlayerCount  int            `json:"player_count"`
	Standings    []StandingsRow `json:"standings"`
	Pairings     []Pairing      `json:"pairings"`
	PairingError string         `json:"pairing_error,omitempty"`
}
