package model

import "time"

// GamePlayer statuses.  A membership starts Pending and the host moves
// it to Approved or Rejected; there is no path back to Pending.  A
// rejected player may re-join only via delete + fresh insert, which the
// unique (game, user) key permits.
const (
	PlayerPending  = "Pending"
	PlayerApproved = "Approved"
	PlayerRejected = "Rejected"
)

// ValidPlayerStatus reports whether s is one of the allowed membership
// statuses.
func ValidPlayerStatus(s string) bool {
	return s == PlayerPending || s == PlayerApproved || s == PlayerRejected
}

// GamePlayer is the membership record of a user wanting to join a
// hosted game.  Unique per (game, user) pair.
//
// Fields:
//  ID       – primary key identifier.
//  GameID   – game being joined.
//  UserID   – joining user.
//  Status   – Pending, Approved or Rejected.
//  JoinedAt – when the join request was made.
type GamePlayer struct {
	ID       uint64    `json:"game_player_id"` // game_players.game_player_id
	GameID   uint64    `json:"game_id"`        // game_players.game_id
	UserID   uint64    `json:"user_id"`        // game_players.user_id
	Status   string    `json:"status"`         // game_players.status
	JoinedAt time.Time `json:"joined_at"`      // game_players.joined_at
}
