package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/playmate/venue-booking/internal/model"
)

// GameRepo provides persistence for hosted game sessions.  Games are
// created inside the booking transaction together with their booking
// row; the two commit or roll back as one unit.
type GameRepo struct {
	db *sql.DB
}

// NewGameRepo returns a new GameRepo bound to the given database.
func NewGameRepo(db *sql.DB) *GameRepo { return &GameRepo{db: db} }

// DB exposes the underlying pool so callers can open transactions.
func (r *GameRepo) DB() *sql.DB { return r.db }

// Create inserts a new game within the caller's transaction.  It
// populates the generated ID and defaulted columns on the provided
// record by querying the row back.  The caller must commit or roll
// back the transaction.
func (r *GameRepo) Create(ctx context.Context, ex Executor, g *model.Game) error {
	const q = `INSERT INTO games (sport_id, venue_id, start_datetime, end_datetime, host_user_id, price_per_hour)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := ex.ExecContext(ctx, q, g.SportID, g.VenueID, g.StartDatetime, g.EndDatetime, g.HostUserID, g.PricePerHour)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	g.ID = uint64(id)
	// Query back the full row to populate status and timestamps
	const sel = `SELECT game_id, sport_id, venue_id, start_datetime, end_datetime,
	                    host_user_id, price_per_hour, status, created_at
	             FROM games WHERE game_id = ?`
	return ex.QueryRowContext(ctx, sel, g.ID).Scan(
		&g.ID, &g.SportID, &g.VenueID, &g.StartDatetime, &g.EndDatetime,
		&g.HostUserID, &g.PricePerHour, &g.Status, &g.CreatedAt,
	)
}

// Get returns a game by id, or sql.ErrNoRows.
func (r *GameRepo) Get(ctx context.Context, ex Executor, id uint64) (*model.Game, error) {
	const q = `SELECT game_id, sport_id, venue_id, start_datetime, end_datetime,
	                  host_user_id, price_per_hour, status, created_at
	           FROM games WHERE game_id = ?`
	var g model.Game
	err := ex.QueryRowContext(ctx, q, id).Scan(
		&g.ID, &g.SportID, &g.VenueID, &g.StartDatetime, &g.EndDatetime,
		&g.HostUserID, &g.PricePerHour, &g.Status, &g.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Deactivate marks a game inactive, which releases its time range from
// the booking overlap check.  Returns sql.ErrNoRows when the game does
// not exist.
func (r *GameRepo) Deactivate(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE games SET status = 'inactive' WHERE game_id = ?`, id)
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

// DiscoverItem is a game listed for users browsing sessions they could
// join.  MyStatus is the caller's membership status when they already
// requested to join (NULL otherwise).
type DiscoverItem struct {
	GameID       uint64    `json:"game_id"`
	MyStatus     *string   `json:"status,omitempty"`
	SportName    string    `json:"sport_name"`
	VenueName    string    `json:"venue_name"`
	Address      string    `json:"address"`
	HostFirst    string    `json:"first_name"`
	HostLast     *string   `json:"last_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	TotalJoined  int       `json:"total_joined_player"`
}

// Discover lists games hosted by other users that the caller has not
// been approved into: games they never touched, plus ones where their
// request is still Pending or was Rejected.
func (r *GameRepo) Discover(ctx context.Context, userID uint64) ([]DiscoverItem, error) {
	const q = `SELECT g.game_id, gp.status, s.sport_name, v.venue_name, v.address,
	                  u.first_name, u.last_name, g.created_at,
	                  (SELECT COUNT(*) FROM game_players p WHERE p.game_id = g.game_id) AS total_joined
	           FROM games g
	           JOIN sports s ON s.sport_id = g.sport_id
	           JOIN venues v ON v.venue_id = g.venue_id
	           JOIN users u ON u.user_id = g.host_user_id
	           LEFT JOIN game_players gp ON gp.game_id = g.game_id AND gp.user_id = ?
	           WHERE g.host_user_id != ?
	             AND (gp.status IS NULL OR gp.status = 'Pending' OR gp.status = 'Rejected')
	           ORDER BY g.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]DiscoverItem, 0)
	for rows.Next() {
		var it DiscoverItem
		var status, last sql.NullString
		if err := rows.Scan(&it.GameID, &status, &it.SportName, &it.VenueName, &it.Address,
			&it.HostFirst, &last, &it.CreatedAt, &it.TotalJoined); err != nil {
			return nil, err
		}
		if status.Valid {
			s := status.String
			it.MyStatus = &s
		}
		if last.Valid {
			l := last.String
			it.HostLast = &l
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// JoinedItem is a game the caller has an Approved membership in.
type JoinedItem struct {
	GameID        uint64    `json:"game_id"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
	PricePerHour  float64   `json:"price_per_hour"`
	GameStatus    string    `json:"game_status"`
	SportName     string    `json:"sport_name"`
	VenueName     string    `json:"venue_name"`
	VenueLocation string    `json:"venue_location"`
	MyStatus      string    `json:"my_status"`
	TotalPlayers  int       `json:"total_players"`
}

// ListJoined returns the games a user has been approved into, newest
// first, with the count of approved players per game.
func (r *GameRepo) ListJoined(ctx context.Context, userID uint64) ([]JoinedItem, error) {
	const q = `SELECT g.game_id, g.start_datetime, g.end_datetime, g.price_per_hour, g.status,
	                  s.sport_name, v.venue_name, v.address, gp_self.status,
	                  COUNT(gp_all.user_id) AS total_players
	           FROM game_players gp_self
	           JOIN games g ON gp_self.game_id = g.game_id
	           JOIN sports s ON g.sport_id = s.sport_id
	           JOIN venues v ON g.venue_id = v.venue_id
	           LEFT JOIN game_players gp_all ON g.game_id = gp_all.game_id AND gp_all.status = 'Approved'
	           WHERE gp_self.user_id = ? AND gp_self.status = 'Approved'
	           GROUP BY g.game_id, g.start_datetime, g.end_datetime, g.price_per_hour, g.status,
	                    s.sport_name, v.venue_name, v.address, gp_self.status
	           ORDER BY g.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]JoinedItem, 0)
	for rows.Next() {
		var it JoinedItem
		if err := rows.Scan(&it.GameID, &it.StartDatetime, &it.EndDatetime, &it.PricePerHour,
			&it.GameStatus, &it.SportName, &it.VenueName, &it.VenueLocation,
			&it.MyStatus, &it.TotalPlayers); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// HostedItem is a game the caller created, with its booking's payment
// state attached.
type HostedItem struct {
	GameID        uint64    `json:"game_id"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
	PricePerHour  float64   `json:"price_per_hour"`
	SportName     string    `json:"sport_name"`
	VenueName     string    `json:"venue_name"`
	VenueLocation string    `json:"venue_location"`
	BookingID     *uint64   `json:"booking_id,omitempty"`
	Payment       *string   `json:"payment_status,omitempty"`
	TotalPrice    *float64  `json:"total_price,omitempty"`
	TotalPlayers  int       `json:"total_players"`
}

// ListHosted returns the games created by a user together with booking
// payment details and the count of approved players.
func (r *GameRepo) ListHosted(ctx context.Context, userID uint64) ([]HostedItem, error) {
	const q = `SELECT g.game_id, g.start_datetime, g.end_datetime, g.price_per_hour,
	                  s.sport_name, v.venue_name, v.address,
	                  b.booking_id, b.payment, b.total_price,
	                  COUNT(gp.user_id) AS total_players
	           FROM games g
	           JOIN sports s ON g.sport_id = s.sport_id
	           JOIN venues v ON g.venue_id = v.venue_id
	           LEFT JOIN bookings b ON b.game_id = g.game_id
	           LEFT JOIN game_players gp ON g.game_id = gp.game_id AND gp.status = 'Approved'
	           WHERE g.host_user_id = ?
	           GROUP BY g.game_id, g.start_datetime, g.end_datetime, g.price_per_hour,
	                    s.sport_name, v.venue_name, v.address, b.booking_id, b.payment, b.total_price
	           ORDER BY g.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]HostedItem, 0)
	for rows.Next() {
		var it HostedItem
		var bookingID sql.NullInt64
		var payment sql.NullString
		var total sql.NullFloat64
		if err := rows.Scan(&it.GameID, &it.StartDatetime, &it.EndDatetime, &it.PricePerHour,
			&it.SportName, &it.VenueName, &it.VenueLocation,
			&bookingID, &payment, &total, &it.TotalPlayers); err != nil {
			return nil, err
		}
		if bookingID.Valid {
			id := uint64(bookingID.Int64)
			it.BookingID = &id
		}
		if payment.Valid {
			p := payment.String
			it.Payment = &p
		}
		if total.Valid {
			t := total.Float64
			it.TotalPrice = &t
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
