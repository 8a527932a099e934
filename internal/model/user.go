package model

import "time"

// User roles.  PLAYER accounts book slots and join games; OWNER
// accounts register venues and manage offerings.  ADMIN accounts
// manage the sport catalogue and cannot be created through
// registration; they are seeded directly.
const (
	RolePlayer = "PLAYER"
	RoleOwner  = "OWNER"
	RoleAdmin  = "ADMIN"
)

// User represents an application user record as stored in the `users`
// table.  The json tags are omitted because these structs are used by
// the repository layer; handlers define separate response types.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  FirstName    – given name, used on receipts.
//  LastName     – optional family name.
//  Role         – PLAYER or OWNER.
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           uint64    // users.user_id
	Email        string    // users.user_email
	PasswordHash string    // users.password_hash
	FirstName    string    // users.first_name
	LastName     *string   // users.last_name (nullable)
	Role         string    // users.role
	CreatedAt    time.Time // users.created_at
}
