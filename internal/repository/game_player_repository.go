package repository

import (
	"context"
	"database/sql"

	"github.com/playmate/venue-booking/internal/model"
)

// GamePlayerRepo provides persistence for game memberships.  A
// membership is unique per (game, user); re-joining after a rejection
// is supported by delete + fresh insert, never update-in-place.
type GamePlayerRepo struct {
	db *sql.DB
}

// NewGamePlayerRepo returns a new GamePlayerRepo bound to the given database.
func NewGamePlayerRepo(db *sql.DB) *GamePlayerRepo { return &GamePlayerRepo{db: db} }

// Create inserts a Pending membership for (gameID, userID) and returns
// the populated record.  A second insert for the same pair violates
// the unique key and is reported as ErrDuplicate.
func (r *GamePlayerRepo) Create(ctx context.Context, gameID, userID uint64) (*model.GamePlayer, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO game_players (game_id, user_id, status) VALUES (?, ?, 'Pending')`,
		gameID, userID)
	if err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, uint64(id))
}

// Get returns a membership by id, or sql.ErrNoRows.
func (r *GamePlayerRepo) Get(ctx context.Context, id uint64) (*model.GamePlayer, error) {
	const q = `SELECT game_player_id, game_id, user_id, status, joined_at
	           FROM game_players WHERE game_player_id = ?`
	var gp model.GamePlayer
	err := r.db.QueryRowContext(ctx, q, id).Scan(&gp.ID, &gp.GameID, &gp.UserID, &gp.Status, &gp.JoinedAt)
	if err != nil {
		return nil, err
	}
	return &gp, nil
}

// DeleteByGameAndUser removes the membership for (gameID, userID).
// Returns sql.ErrNoRows when no row matched, so callers can report a
// leave on a non-member as not found rather than success.
func (r *GamePlayerRepo) DeleteByGameAndUser(ctx context.Context, gameID, userID uint64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM game_players WHERE game_id = ? AND user_id = ?`, gameID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateStatus sets the status of a membership.  Zero affected rows is
// reported as sql.ErrNoRows, not success.
func (r *GamePlayerRepo) UpdateStatus(ctx context.Context, gamePlayerID uint64, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE game_players SET status = ? WHERE game_player_id = ?`, status, gamePlayerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// HostOf returns the host user id of the game a membership belongs to.
// Used to enforce that only the host drives status transitions.
func (r *GamePlayerRepo) HostOf(ctx context.Context, gamePlayerID uint64) (uint64, error) {
	const q = `SELECT g.host_user_id
	           FROM game_players gp
	           JOIN games g ON g.game_id = gp.game_id
	           WHERE gp.game_player_id = ?`
	var hostID uint64
	if err := r.db.QueryRowContext(ctx, q, gamePlayerID).Scan(&hostID); err != nil {
		return 0, err
	}
	return hostID, nil
}

// ListByGame returns all memberships of a game, newest first.
func (r *GamePlayerRepo) ListByGame(ctx context.Context, gameID uint64) ([]model.GamePlayer, error) {
	const q = `SELECT game_player_id, game_id, user_id, status, joined_at
	           FROM game_players WHERE game_id = ? ORDER BY joined_at DESC`
	rows, err := r.db.QueryContext(ctx, q, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	players := make([]model.GamePlayer, 0)
	for rows.Next() {
		var gp model.GamePlayer
		if err := rows.Scan(&gp.ID, &gp.GameID, &gp.UserID, &gp.Status, &gp.JoinedAt); err != nil {
			return nil, err
		}
		players = append(players, gp)
	}
	return players, rows.Err()
}
