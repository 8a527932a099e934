package middleware

// identity.go defines helper functions shared across middleware files.
// It provides a userID extraction function that reads the subject that
// JWTAuth stored in the Echo context. When no user is authenticated,
// "anon" is returned so unauthenticated traffic shares one bucket.

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// userID returns the authenticated user's id as a string for building
// cache and rate-limit keys.  JWT numeric claims decode as float64, so
// that is the common case; string subjects pass through unchanged.
func userID(c echo.Context) string {
	switch v := c.Get("user_id").(type) {
	case float64:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case string:
		if v != "" {
			return v
		}
	}
	return "anon"
}
