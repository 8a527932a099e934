package database

import (
	"strings"
	"testing"
)

// The overlap check alone cannot stop two racing transactions; the
// unique keys are the hard backstop.  These tests pin down that the
// DDL keeps them.
func TestMigrationsCarryUniqueKeys(t *testing.T) {
	var bookings, players string
	for _, m := range migrations {
		if strings.Contains(m, "CREATE TABLE IF NOT EXISTS bookings") {
			bookings = m
		}
		if strings.Contains(m, "CREATE TABLE IF NOT EXISTS game_players") {
			players = m
		}
	}
	if bookings == "" || players == "" {
		t.Fatal("bookings or game_players DDL missing")
	}
	if !strings.Contains(bookings, "UNIQUE KEY unique_slot_venue_start") {
		t.Error("bookings table lost its slot/venue/start unique key")
	}
	if !strings.Contains(players, "UNIQUE KEY unique_game_user") {
		t.Error("game_players table lost its game/user unique key")
	}
}

func TestMigrationsReferencedTablesComeFirst(t *testing.T) {
	pos := map[string]int{}
	for i, m := range migrations {
		for _, name := range []string{"users", "sports", "venues", "venue_sports", "slots", "games", "bookings", "game_players"} {
			if strings.Contains(m, "CREATE TABLE IF NOT EXISTS "+name+" ") ||
				strings.Contains(m, "CREATE TABLE IF NOT EXISTS "+name+"\n") ||
				strings.Contains(m, "CREATE TABLE IF NOT EXISTS "+name+"(") {
				pos[name] = i
			}
		}
	}
	deps := map[string][]string{
		"venues":       {"users"},
		"venue_sports": {"venues", "sports"},
		"slots":        {"venue_sports"},
		"games":        {"sports", "venues", "users"},
		"bookings":     {"slots", "venues", "venue_sports", "users", "games"},
		"game_players": {"games", "users"},
	}
	for table, needs := range deps {
		ti, ok := pos[table]
		if !ok {
			t.Fatalf("DDL for %s not found", table)
		}
		for _, dep := range needs {
			di, ok := pos[dep]
			if !ok {
				t.Fatalf("DDL for %s not found", dep)
			}
			if di >= ti {
				t.Errorf("%s is created before its dependency %s", table, dep)
			}
		}
	}
}
