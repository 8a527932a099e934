package repository

import (
	"context"
	"database/sql"

	"github.com/playmate/venue-booking/internal/model"
)

// VenueRepo provides persistence for venues and their sport offerings
// (the venue_sports association).  Offerings are the prerequisite for
// any slot or booking on a sport at a venue: the booking transaction
// resolves the offering inside its transaction and aborts when the
// venue does not offer the requested sport.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo returns a new VenueRepo bound to the given database.
func NewVenueRepo(db *sql.DB) *VenueRepo { return &VenueRepo{db: db} }

// DB exposes the underlying pool so callers can open transactions.
func (r *VenueRepo) DB() *sql.DB { return r.db }

// Create inserts a venue owned by ownerID and returns its id.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) (uint64, error) {
	const q = `INSERT INTO venues (owner_user_id, venue_name, address, contact_email, contact_phone)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, v.OwnerUserID, v.Name, v.Address, v.ContactEmail, v.ContactPhone)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Get returns a venue by id, or sql.ErrNoRows.
func (r *VenueRepo) Get(ctx context.Context, ex Executor, id uint64) (*model.Venue, error) {
	const q = `SELECT venue_id, owner_user_id, venue_name, address, contact_email, contact_phone, created_at
	           FROM venues WHERE venue_id = ?`
	var v model.Venue
	var email, phone sql.NullString
	err := ex.QueryRowContext(ctx, q, id).Scan(
		&v.ID, &v.OwnerUserID, &v.Name, &v.Address, &email, &phone, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if email.Valid {
		e := email.String
		v.ContactEmail = &e
	}
	if phone.Valid {
		p := phone.String
		v.ContactPhone = &p
	}
	return &v, nil
}

// AddOffering links a sport to a venue.  The (venue, sport) pair is
// unique; a second insert is reported as ErrDuplicate.
func (r *VenueRepo) AddOffering(ctx context.Context, venueID, sportID uint64) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO venue_sports (venue_id, sport_id) VALUES (?, ?)`, venueID, sportID)
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ResolveOffering returns the venue_sport_id for (venueID, sportID), or
// sql.ErrNoRows when the venue does not offer the sport.  The booking
// transaction calls this with its *sql.Tx so the lookup is atomic with
// the overlap check and insert.
func (r *VenueRepo) ResolveOffering(ctx context.Context, ex Executor, venueID, sportID uint64) (uint64, error) {
	const q = `SELECT venue_sport_id FROM venue_sports WHERE venue_id = ? AND sport_id = ?`
	var id uint64
	if err := ex.QueryRowContext(ctx, q, venueID, sportID).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// OfferingDetail is an offering joined with its sport name, returned
// by ListOfferings for venue browse pages.
type OfferingDetail struct {
	VenueSportID uint64 `json:"venue_sport_id"`
	SportID      uint64 `json:"sport_id"`
	SportName    string `json:"sport_name"`
}

// ListOfferings returns the sports offered at a venue.
func (r *VenueRepo) ListOfferings(ctx context.Context, venueID uint64) ([]OfferingDetail, error) {
	const q = `SELECT vs.venue_sport_id, s.sport_id, s.sport_name
	           FROM venue_sports vs
	           JOIN sports s ON vs.sport_id = s.sport_id
	           WHERE vs.venue_id = ?`
	rows, err := r.db.QueryContext(ctx, q, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]OfferingDetail, 0)
	for rows.Next() {
		var d OfferingDetail
		if err := rows.Scan(&d.VenueSportID, &d.SportID, &d.SportName); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// OwnerOfOffering returns the venue id and owner user id behind a
// venue_sport offering.  Used by owner endpoints to enforce ownership
// before mutating slots.
func (r *VenueRepo) OwnerOfOffering(ctx context.Context, venueSportID uint64) (venueID, ownerID uint64, err error) {
	const q = `SELECT v.venue_id, v.owner_user_id
	           FROM venue_sports vs
	           JOIN venues v ON v.venue_id = vs.venue_id
	           WHERE vs.venue_sport_id = ?`
	err = r.db.QueryRowContext(ctx, q, venueSportID).Scan(&venueID, &ownerID)
	return venueID, ownerID, err
}
