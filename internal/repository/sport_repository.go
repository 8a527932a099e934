package repository

import (
	"context"
	"database/sql"

	"github.com/playmate/venue-booking/internal/model"
)

// SportRepo provides CRUD operations for the sports reference table.
// Sports are immutable reference data maintained by administrators.
type SportRepo struct {
	db *sql.DB
}

// NewSportRepo returns a new SportRepo bound to the given database.
func NewSportRepo(db *sql.DB) *SportRepo { return &SportRepo{db: db} }

// List returns all sports ordered by name.
func (r *SportRepo) List(ctx context.Context) ([]model.Sport, error) {
	const q = `SELECT sport_id, sport_name, created_at FROM sports ORDER BY sport_name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sports := make([]model.Sport, 0)
	for rows.Next() {
		var s model.Sport
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		sports = append(sports, s)
	}
	return sports, rows.Err()
}

// Get returns a single sport by id.  It may run inside or outside a
// transaction depending on the Executor supplied.  When no row exists,
// sql.ErrNoRows is returned.
func (r *SportRepo) Get(ctx context.Context, ex Executor, id uint64) (*model.Sport, error) {
	const q = `SELECT sport_id, sport_name, created_at FROM sports WHERE sport_id = ?`
	var s model.Sport
	if err := ex.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new sport and returns its id.  Duplicate names are
// reported as ErrDuplicate.
func (r *SportRepo) Create(ctx context.Context, name string) (uint64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO sports (sport_name) VALUES (?)`, name)
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

// Delete removes a sport by id.  It returns sql.ErrNoRows when nothing
// was deleted.
func (r *SportRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sports WHERE sport_id = ?`, id)
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
