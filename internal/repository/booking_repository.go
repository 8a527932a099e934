package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/playmate/venue-booking/internal/model"
)

// BookingRepo provides CRUD operations for bookings.  A booking is the
// durable reservation record created in the same transaction as its
// game.  The overlap check and the insert must run on the same
// transaction handle so no reservation can slip in between them; the
// unique key on (slot_id, venue_id, start_datetime) backstops the
// remaining race, which Create reports as ErrDuplicate.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying pool so callers can open transactions.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// OverlapExists reports whether any booking on the same slot and venue
// intersects the half-open interval [start, end) while its game is
// still active.  The predicate is the standard interval intersection:
// existing.start < end AND existing.end > start.
func (r *BookingRepo) OverlapExists(ctx context.Context, ex Executor, slotID, venueID uint64, start, end time.Time) (bool, error) {
	const q = `SELECT 1
	           FROM bookings b
	           JOIN games g ON g.game_id = b.game_id
	           WHERE b.slot_id = ? AND b.venue_id = ?
	             AND b.start_datetime < ? AND b.end_datetime > ?
	             AND g.status = 'active'
	           LIMIT 1`
	var one int
	err := ex.QueryRowContext(ctx, q, slotID, venueID, end, start).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts a booking within the caller's transaction and queries
// the row back to populate the generated ID and defaults.  A violation
// of the slot/venue/start unique key is returned as ErrDuplicate so
// the service can report it as the same conflict as a failed overlap
// check.
func (r *BookingRepo) Create(ctx context.Context, ex Executor, b *model.Booking) error {
	const q = `INSERT INTO bookings (slot_id, venue_id, venue_sport_id, user_id, game_id,
	                                 start_datetime, end_datetime, total_price, payment)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := ex.ExecContext(ctx, q, b.SlotID, b.VenueID, b.VenueSportID, b.UserID, b.GameID,
		b.StartDatetime, b.EndDatetime, b.TotalPrice, b.Payment)
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicate
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	const sel = `SELECT booking_id, slot_id, venue_id, venue_sport_id, user_id, game_id,
	                    start_datetime, end_datetime, total_price, payment, created_at
	             FROM bookings WHERE booking_id = ?`
	var slotID sql.NullInt64
	err = ex.QueryRowContext(ctx, sel, b.ID).Scan(
		&b.ID, &slotID, &b.VenueID, &b.VenueSportID, &b.UserID, &b.GameID,
		&b.StartDatetime, &b.EndDatetime, &b.TotalPrice, &b.Payment, &b.CreatedAt,
	)
	if err != nil {
		return err
	}
	if slotID.Valid {
		sid := uint64(slotID.Int64)
		b.SlotID = &sid
	}
	return nil
}

// GetByGame returns the booking attached to a game, or sql.ErrNoRows.
// One game maps to at most one booking.
func (r *BookingRepo) GetByGame(ctx context.Context, ex Executor, gameID uint64) (*model.Booking, error) {
	const q = `SELECT booking_id, slot_id, venue_id, venue_sport_id, user_id, game_id,
	                  start_datetime, end_datetime, total_price, payment, created_at
	           FROM bookings WHERE game_id = ?`
	var b model.Booking
	var slotID sql.NullInt64
	err := ex.QueryRowContext(ctx, q, gameID).Scan(
		&b.ID, &slotID, &b.VenueID, &b.VenueSportID, &b.UserID, &b.GameID,
		&b.StartDatetime, &b.EndDatetime, &b.TotalPrice, &b.Payment, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if slotID.Valid {
		sid := uint64(slotID.Int64)
		b.SlotID = &sid
	}
	return &b, nil
}

// MarkPaid flips a booking's payment state to paid within the caller's
// transaction.  Returns sql.ErrNoRows when the booking does not exist.
func (r *BookingRepo) MarkPaid(ctx context.Context, ex Executor, bookingID uint64) error {
	res, err := ex.ExecContext(ctx, `UPDATE bookings SET payment = 'paid' WHERE booking_id = ?`, bookingID)
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

// VenueBookingDetail is a booking joined with user, sport, slot and
// game information, returned to venue owners reviewing their calendar.
type VenueBookingDetail struct {
	BookingID    uint64    `json:"booking_id"`
	Start        time.Time `json:"start_datetime"`
	End          time.Time `json:"end_datetime"`
	TotalPrice   float64   `json:"total_price"`
	Payment      string    `json:"payment"`
	UserID       uint64    `json:"user_id"`
	UserFirst    string    `json:"first_name"`
	UserLast     *string   `json:"last_name,omitempty"`
	UserEmail    string    `json:"user_email"`
	SportID      uint64    `json:"sport_id"`
	SportName    string    `json:"sport_name"`
	SlotID       *uint64   `json:"slot_id,omitempty"`
	PricePerSlot *float64  `json:"price_per_slot,omitempty"`
	GameID       uint64    `json:"game_id"`
	GameStatus   string    `json:"game_status"`
}

// ListByVenue returns all bookings at a venue whose game has the given
// status, newest range first.
func (r *BookingRepo) ListByVenue(ctx context.Context, venueID uint64, gameStatus string) ([]VenueBookingDetail, error) {
	const q = `SELECT b.booking_id, b.start_datetime, b.end_datetime, b.total_price, b.payment,
	                  u.user_id, u.first_name, u.last_name, u.user_email,
	                  s.sport_id, s.sport_name,
	                  sl.slot_id, sl.price_per_slot,
	                  g.game_id, g.status
	           FROM bookings b
	           JOIN users u ON b.user_id = u.user_id
	           JOIN venue_sports vs ON b.venue_sport_id = vs.venue_sport_id
	           JOIN sports s ON vs.sport_id = s.sport_id
	           LEFT JOIN slots sl ON b.slot_id = sl.slot_id
	           JOIN games g ON b.game_id = g.game_id
	           WHERE b.venue_id = ? AND g.status = ?
	           ORDER BY b.start_datetime DESC`
	rows, err := r.db.QueryContext(ctx, q, venueID, gameStatus)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]VenueBookingDetail, 0)
	for rows.Next() {
		var d VenueBookingDetail
		var last sql.NullString
		var slotID sql.NullInt64
		var slotPrice sql.NullFloat64
		if err := rows.Scan(&d.BookingID, &d.Start, &d.End, &d.TotalPrice, &d.Payment,
			&d.UserID, &d.UserFirst, &last, &d.UserEmail,
			&d.SportID, &d.SportName,
			&slotID, &slotPrice,
			&d.GameID, &d.GameStatus); err != nil {
			return nil, err
		}
		if last.Valid {
			l := last.String
			d.UserLast = &l
		}
		if slotID.Valid {
			id := uint64(slotID.Int64)
			d.SlotID = &id
		}
		if slotPrice.Valid {
			p := slotPrice.Float64
			d.PricePerSlot = &p
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
