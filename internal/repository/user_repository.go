package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/playmate/venue-booking/internal/model"
	"github.com/playmate/venue-booking/internal/utils"
)

// UserRepo mirrors the 'users' table.
type UserRepo struct{ DB *sql.DB }

// NewUserRepo returns a new UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user and returns its ID.
func (r *UserRepo) Create(ctx context.Context, email, password, firstName, lastName, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	var last any
	if lastName != "" {
		last = lastName
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (user_email, password_hash, first_name, last_name, role) VALUES (?,?,?,?,?)",
		email, hash, firstName, last, role)
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	var last sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id,user_email,password_hash,first_name,last_name,role,created_at FROM users WHERE user_email=? LIMIT 1",
		email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &last, &u.Role, &u.CreatedAt)
	if last.Valid {
		l := last.String
		u.LastName = &l
	}
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	var last sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id,user_email,password_hash,first_name,last_name,role,created_at FROM users WHERE user_id=? LIMIT 1",
		id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &last, &u.Role, &u.CreatedAt)
	if last.Valid {
		l := last.String
		u.LastName = &l
	}
	return u, err
}
