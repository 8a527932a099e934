package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifierAcceptsValidSignature(t *testing.T) {
	v, err := NewVerifier("test-secret")
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	sig := sign("test-secret", "order_123", "pay_456")
	if !v.Verify("order_123", "pay_456", sig) {
		t.Error("valid signature was rejected")
	}
	// Verification must be repeatable for the same inputs.
	if !v.Verify("order_123", "pay_456", sig) {
		t.Error("second verification of the same signature failed")
	}
}

func TestVerifierRejectsTamperedSignature(t *testing.T) {
	v, err := NewVerifier("test-secret")
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	sig := sign("test-secret", "order_123", "pay_456")

	// Flip one hex character.
	altered := []byte(sig)
	if altered[0] == 'a' {
		altered[0] = 'b'
	} else {
		altered[0] = 'a'
	}
	if v.Verify("order_123", "pay_456", string(altered)) {
		t.Error("tampered signature was accepted")
	}
	if v.Verify("order_999", "pay_456", sig) {
		t.Error("signature for a different order was accepted")
	}
	if v.Verify("order_123", "pay_456", "") {
		t.Error("empty signature was accepted")
	}
}

func TestVerifierRejectsWrongSecret(t *testing.T) {
	v, err := NewVerifier("right-secret")
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	sig := sign("wrong-secret", "order_123", "pay_456")
	if v.Verify("order_123", "pay_456", sig) {
		t.Error("signature from a different secret was accepted")
	}
}

func TestNewVerifierRequiresSecret(t *testing.T) {
	if _, err := NewVerifier(""); err == nil {
		t.Error("expected error for empty secret")
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "secret", ""); err == nil {
		t.Error("expected error for empty key id")
	}
	if _, err := NewClient("key", "", ""); err == nil {
		t.Error("expected error for empty key secret")
	}
}

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/orders" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "key_id" || pass != "key_secret" {
			t.Errorf("unexpected basic auth: %q %q ok=%v", user, pass, ok)
		}
		var body struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
			Receipt  string `json:"receipt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body.Amount != 45000 || body.Currency != "INR" {
			t.Errorf("unexpected order payload: %+v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"order_abc","amount":45000,"currency":"INR"}`))
	}))
	defer srv.Close()

	c, err := NewClient("key_id", "key_secret", srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	order, err := c.CreateOrder(context.Background(), 45000, "INR", "rcpt_1")
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.OrderID != "order_abc" {
		t.Errorf("order id = %q, want order_abc", order.OrderID)
	}
	if order.Amount != 45000 || order.Currency != "INR" {
		t.Errorf("order = %+v", order)
	}
}

func TestCreateOrderProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"description":"bad key"}}`))
	}))
	defer srv.Close()

	c, err := NewClient("key_id", "key_secret", srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := c.CreateOrder(context.Background(), 100, "INR", ""); err == nil {
		t.Error("expected error on provider failure")
	}
}
