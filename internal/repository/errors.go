// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// services and handlers to distinguish between different failure
// scenarios. For example, ErrForbidden indicates that the current user
// is not authorized to operate on a resource owned by someone else,
// while ErrDuplicate signals that an insert hit a uniqueness
// constraint (e.g. re-joining a game, or the booking safety-net key).
package repository

import (
	"errors"
	"strings"
)

// ErrForbidden is returned when the caller attempts an operation
// on a resource they do not own. Handlers should translate this
// into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrDuplicate is returned when an insert violates a unique key.
// Callers converge this with their own pre-insert checks into a
// single conflict result (HTTP 409).
var ErrDuplicate = errors.New("duplicate entry")

// ErrEmailExists is returned by user creation when the email is taken.
var ErrEmailExists = errors.New("email already exists")

// isDuplicateEntry reports whether err is a MySQL duplicate-key error
// (ER_DUP_ENTRY, code 1062).
func isDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "1062")
}
