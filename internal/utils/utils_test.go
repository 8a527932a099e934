package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash equals the plain password")
	}
	if !VerifyPassword(hash, "s3cret-pass") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "wrong-pass") {
		t.Error("wrong password accepted")
	}
}

func TestNewAccessToken(t *testing.T) {
	tok, err := NewAccessToken("signing-secret", 77, "PLAYER", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if tok.Token == "" {
		t.Fatal("empty token string")
	}
	if ttl := time.Until(tok.Exp); ttl < 14*time.Minute || ttl > 16*time.Minute {
		t.Errorf("expiry %v not around 15 minutes away", tok.Exp)
	}

	parsed, err := jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("signing-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse back: valid=%v err=%v", parsed != nil && parsed.Valid, err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if sub, _ := claims["sub"].(float64); uint64(sub) != 77 {
		t.Errorf("sub = %v, want 77", claims["sub"])
	}
	if role, _ := claims["role"].(string); role != "PLAYER" {
		t.Errorf("role = %v, want PLAYER", claims["role"])
	}
}

func TestNewAccessTokenWrongSecret(t *testing.T) {
	tok, err := NewAccessToken("signing-secret", 1, "OWNER", 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	_, err = jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	if err == nil {
		t.Error("token verified with the wrong secret")
	}
}
