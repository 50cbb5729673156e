package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"swiss-tournament/models"
)

// brokenStore fails the list calls it is told to fail.
type brokenStore struct {
	*MemoryStore
	failPlayers bool
	failMatches bool
}

var errStorageDown = errors.New("connection refused")

func (s *brokenStore) ListPlayers(ctx context.Context) ([]models.Player, error) {
	if s.failPlayers {
		return nil, errStorageDown
	}
	return s.MemoryStore.ListPlayers(ctx)
}

func (s *brokenStore) ListMatches(ctx context.Context) ([]models.Match, error) {
	if s.failMatches {
		return nil, errStorageDown
	}
	return s.MemoryStore.ListMatches(ctx)
}

func registerAll(t *testing.T, svc *TournamentService, names ...string) []models.Player {
	t.Helper()
	var players []models.Player
	for _, n := range names {
		p, err := svc.RegisterPlayer(context.Background(), n)
		if err != nil {
			t.Fatalf("RegisterPlayer(%q): %v", n, err)
		}
		players = append(players, p)
	}
	return players
}

func TestTournamentLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewTournamentService(NewMemoryStore(), "club night")

	if n, err := svc.CountPlayers(ctx); err != nil || n != 0 {
		t.Fatalf("CountPlayers = %d, %v; want 0", n, err)
	}

	p := registerAll(t, svc, "Twilight Sparkle", "Fluttershy", "Applejack", "Pinkie Pie")
	if n, _ := svc.CountPlayers(ctx); n != 4 {
		t.Fatalf("CountPlayers = %d; want 4", n)
	}

	standings, err := svc.PlayerStandings(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range standings {
		if row.Wins != 0 || row.Matches != 0 {
			t.Errorf("new player %d has record %d/%d", row.ID, row.Wins, row.Matches)
		}
	}

	if _, err := svc.ReportMatch(ctx, p[0].ID, p[1].ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ReportMatch(ctx, p[2].ID, p[3].ID); err != nil {
		t.Fatal(err)
	}

	pairs, err := svc.SwissPairings(ctx)
	if err != nil {
		t.Fatal(err)
	}
	winners := map[uint]bool{p[0].ID: true, p[2].ID: true}
	for _, pair := range pairs {
		if winners[pair.Player1ID] != winners[pair.Player2ID] {
			t.Errorf("pair %+v mixes a winner with a loser", pair)
		}
	}

	if err := svc.DeleteMatches(ctx); err != nil {
		t.Fatal(err)
	}
	standings, _ = svc.PlayerStandings(ctx)
	for _, row := range standings {
		if row.Matches != 0 {
			t.Errorf("after DeleteMatches player %d has %d matches", row.ID, row.Matches)
		}
	}

	if err := svc.DeletePlayers(ctx); err != nil {
		t.Fatal(err)
	}
	if n, _ := svc.CountPlayers(ctx); n != 0 {
		t.Errorf("CountPlayers after DeletePlayers = %d; want 0", n)
	}
}

func TestPlayerStandingsUnavailable(t *testing.T) {
	cases := []struct {
		name  string
		store *brokenStore
	}{
		{name: "players unreadable", store: &brokenStore{MemoryStore: NewMemoryStore(), failPlayers: true}},
		{name: "matches unreadable", store: &brokenStore{MemoryStore: NewMemoryStore(), failMatches: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := NewTournamentService(c.store, "t")
			rows, err := svc.PlayerStandings(context.Background())
			if !errors.Is(err, ErrStandingsUnavailable) {
				t.Errorf("PlayerStandings err = %v; want ErrStandingsUnavailable", err)
			}
			if rows != nil {
				t.Errorf("got partial standings %+v", rows)
			}
			if _, err := svc.SwissPairings(context.Background()); !errors.Is(err, ErrStandingsUnavailable) {
				t.Errorf("SwissPairings err = %v; want ErrStandingsUnavailable", err)
			}
		})
	}
}

func TestSwissPairingsOddPlayers(t *testing.T) {
	svc := NewTournamentService(NewMemoryStore(), "t")
	registerAll(t, svc, "A", "B", "C")

	pairs, err := svc.SwissPairings(context.Background())
	if !errors.Is(err, ErrInvalidPairingInput) {
		t.Fatalf("err = %v; want ErrInvalidPairingInput", err)
	}
	if pairs != nil {
		t.Errorf("got partial pairings %+v", pairs)
	}
}

func TestSnapshot(t *testing.T) {
	fixed := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	svc := NewTournamentService(NewMemoryStore(), "club night")
	svc.now = func() time.Time { return fixed }
	p := registerAll(t, svc, "A", "B")
	if _, err := svc.ReportMatch(context.Background(), p[1].ID, p[0].ID); err != nil {
		t.Fatal(err)
	}

	snap, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if snap.ID == "" || snap.Tournament != "club night" || !snap.TakenAt.Equal(fixed) {
		t.Errorf("unexpected snapshot header %+v", snap)
	}
	wantPairs := []models.Pairing{{Player1ID: p[1].ID, Player1Name: "B", Player2ID: p[0].ID, Player2Name: "A"}}
	if !reflect.DeepEqual(snap.Pairings, wantPairs) {
		t.Errorf("Pairings = %+v; want %+v", snap.Pairings, wantPairs)
	}
	if snap.PairingError != "" {
		t.Errorf("PairingError = %q; want empty", snap.PairingError)
	}

	registerAll(t, svc, "C")
	snap, err = svc.Snapshot(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if snap.PlayerCount != 3 || len(snap.Pairings) != 0 || snap.PairingError == "" {
		t.Errorf("odd snapshot = %+v; want 3 players, no pairs and a pairing error", snap)
	}
}
