package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/playmate/venue-booking/internal/utils"
)

func TestUserIDFormatsNumericClaims(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if got := userID(c); got != "anon" {
		t.Errorf("no user: userID = %q, want anon", got)
	}

	// JWT claims decode numbers as float64; each authenticated user
	// must get a distinct key, not the shared anonymous bucket.
	c.Set("user_id", float64(42))
	if got := userID(c); got != "42" {
		t.Errorf("float64 claim: userID = %q, want 42", got)
	}
	c.Set("user_id", uint64(7))
	if got := userID(c); got != "7" {
		t.Errorf("uint64 value: userID = %q, want 7", got)
	}
	c.Set("user_id", "19")
	if got := userID(c); got != "19" {
		t.Errorf("string value: userID = %q, want 19", got)
	}
	c.Set("user_id", "")
	if got := userID(c); got != "anon" {
		t.Errorf("empty string: userID = %q, want anon", got)
	}
}

func TestUserIDAfterJWTAuth(t *testing.T) {
	tok, err := utils.NewAccessToken("secret", 42, "PLAYER", 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	rec, c := runJWT(t, "secret", "Bearer "+tok.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := userID(c); got != "42" {
		t.Errorf("userID after auth = %q, want 42", got)
	}
}
