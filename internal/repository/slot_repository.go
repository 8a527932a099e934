package repository

import (
	"context"
	"database/sql"

	"github.com/playmate/venue-booking/internal/model"
)

// SlotRepo provides persistence for slot templates.  A slot describes a
// recurring time-of-day window offered for a sport at a venue; bookings
// reference slots but carry their own concrete datetimes.
type SlotRepo struct {
	db *sql.DB
}

// NewSlotRepo returns a new SlotRepo bound to the given database.
func NewSlotRepo(db *sql.DB) *SlotRepo { return &SlotRepo{db: db} }

// Create inserts a slot under a venue-sport offering and returns its id.
func (r *SlotRepo) Create(ctx context.Context, s *model.Slot) (uint64, error) {
	const q = `INSERT INTO slots (venue_sport_id, start_time, end_time, price_per_slot)
	           VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.VenueSportID, s.StartTime, s.EndTime, s.PricePerSlot)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Get returns a slot by id, or sql.ErrNoRows.
func (r *SlotRepo) Get(ctx context.Context, ex Executor, id uint64) (*model.Slot, error) {
	const q = `SELECT slot_id, venue_sport_id, start_time, end_time, price_per_slot, created_at
	           FROM slots WHERE slot_id = ?`
	var s model.Slot
	err := ex.QueryRowContext(ctx, q, id).Scan(
		&s.ID, &s.VenueSportID, &s.StartTime, &s.EndTime, &s.PricePerSlot, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SlotDetail is a slot joined with its offering and sport, returned by
// ListByVenue for browse pages.
type SlotDetail struct {
	SlotID       uint64  `json:"slot_id"`
	VenueSportID uint64  `json:"venue_sport_id"`
	SportID      uint64  `json:"sport_id"`
	SportName    string  `json:"sport_name"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	PricePerSlot float64 `json:"price_per_slot"`
}

// ListByVenue returns all slots offered at a venue across its sports,
// ordered by start time.
func (r *SlotRepo) ListByVenue(ctx context.Context, venueID uint64) ([]SlotDetail, error) {
	const q = `SELECT s.slot_id, vs.venue_sport_id, sp.sport_id, sp.sport_name,
	                  s.start_time, s.end_time, s.price_per_slot
	           FROM slots s
	           JOIN venue_sports vs ON s.venue_sport_id = vs.venue_sport_id
	           JOIN sports sp ON vs.sport_id = sp.sport_id
	           WHERE vs.venue_id = ?
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]SlotDetail, 0)
	for rows.Next() {
		var d SlotDetail
		if err := rows.Scan(&d.SlotID, &d.VenueSportID, &d.SportID, &d.SportName,
			&d.StartTime, &d.EndTime, &d.PricePerSlot); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Delete removes a slot.  Returns sql.ErrNoRows when nothing matched.
func (r *SlotRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE slot_id = ?`, id)
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
