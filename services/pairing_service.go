package services

import (
	"errors"
	"fmt"

	"swiss-tournament/models"
)

// ErrInvalidPairingInput is returned when the standings cannot be split into
// pairs without leaving a player out.
var ErrInvalidPairingInput = errors.New("invalid pairing input")

// ComputePairings pairs each player with the player adjacent to them in the
// standings: (0,1), (2,3), ... Every row is consumed exactly once.
// An odd number of rows is rejected since byes are not supported.
func ComputePairings(standings []models.StandingsRow) ([]models.Pairing, error) {
	n := len(standings)
	if n%2 != 0 {
		return nil, fmt.Errorf("%w: %d players cannot be paired without a bye", ErrInvalidPairingInput, n)
	}

	pairs := make([]models.Pairing, 0, n/2)
	for i := 0; i < n; i += 2 {
		p1 := standings[i]
		p2 := standings[i+1]

		pairs = append(pairs, models.Pairing{
			Player1ID:   p1.ID,
			Player1Name: p1.Name,
			Player2ID:   p2.ID,
			Player2Name: p2.Name,
		})
	}
	return pairs, nil
}
