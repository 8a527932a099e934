package model

import "time"

// Game status values.
const (
	GameStatusActive   = "active"
	GameStatusInactive = "inactive"
)

// Game is a concrete hosted play session at a specific date and time.
// A game is created together with its booking inside one transaction;
// they are logically a single unit and neither survives a rollback.
//
// Fields:
//  ID            – primary key identifier.
//  SportID       – sport being played.
//  VenueID       – venue hosting the session.
//  StartDatetime – when the session begins (date + time).
//  EndDatetime   – when the session ends (must be after StartDatetime).
//  HostUserID    – user hosting the game.
//  PricePerHour  – hourly price quoted at creation.
//  Status        – active or inactive.
//  CreatedAt     – creation timestamp.
type Game struct {
	ID            uint64    `json:"game_id"`        // games.game_id
	SportID       uint64    `json:"sport_id"`       // games.sport_id
	VenueID       uint64    `json:"venue_id"`       // games.venue_id
	StartDatetime time.Time `json:"start_datetime"` // games.start_datetime
	EndDatetime   time.Time `json:"end_datetime"`   // games.end_datetime
	HostUserID    uint64    `json:"host_user_id"`   // games.host_user_id
	PricePerHour  float64   `json:"price_per_hour"` // games.price_per_hour
	Status        string    `json:"status"`         // games.status
	CreatedAt     time.Time `json:"created_at"`     // games.created_at
}
