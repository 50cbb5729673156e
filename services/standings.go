package services

import (
	"errors"
	"sort"

	"swiss-tournament/models"
)

// ErrStandingsUnavailable is returned when the player or match data behind the
// standings could not be read.
var ErrStandingsUnavailable = errors.New("standings unavailable")

// ComputeStandings aggregates matches into one row per player, ordered by wins
// descending and then by player id ascending so ties are reproducible.
// Matches referencing unknown players are ignored; the store does not record them.
func ComputeStandings(players []models.Player, matches []models.Match) []models.StandingsRow {
	rows := make([]models.StandingsRow, len(players))
	index := make(map[uint]int, len(players))
	for i, p := range players {
		rows[i] = models.StandingsRow{ID: p.ID, Name: p.Name}
		index[p.ID] = i
	}

	for _, m := range matches {
		if i, ok := index[m.WinnerID]; ok {
			rows[i].Wins++
			rows[i].Matches++
		}
		if i, ok := index[m.LoserID]; ok {
			rows[i].Matches++
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		return rows[i].ID < rows[j].ID
	})
	return rows
}
