// Package payment verifies externally-issued payment assertions and
// creates provider-side orders.  Verification is purely local: the
// provider signs order and payment ids with a shared secret, and the
// server recomputes the HMAC to check the signature.  No state is kept.
package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotConfigured is returned when verification or order creation is
// attempted without provider credentials.  This is a deployment fault,
// not a per-request failure.
var ErrNotConfigured = errors.New("payment gateway is not configured")

// Verifier checks provider signatures against the shared key secret.
// It is pure given its secret: the same inputs always yield the same
// result, and a mismatch is an ordinary false return, never an error.
type Verifier struct {
	secret []byte
}

// NewVerifier builds a Verifier from the provider key secret.  An empty
// secret is a configuration error.
func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, ErrNotConfigured
	}
	return &Verifier{secret: []byte(secret)}, nil
}

// Verify reports whether signature is the hex HMAC-SHA256 of
// "orderID|paymentID" under the shared secret.  The comparison is
// constant time.
func (v *Verifier) Verify(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Order is a provider-side payment order.  Amount is in minor currency
// units (e.g. paise).
type Order struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Client creates orders against the external payment provider.  The
// key id and secret authenticate via basic auth, matching the
// provider's REST API.
type Client struct {
	keyID     string
	keySecret string
	baseURL   string
	http      *http.Client
}

// NewClient returns a provider client, or ErrNotConfigured when the
// credentials are missing.
func NewClient(keyID, keySecret, baseURL string) (*Client, error) {
	if keyID == "" || keySecret == "" {
		return nil, ErrNotConfigured
	}
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   baseURL,
		http:      &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type orderReq struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt,omitempty"`
}

type orderResp struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreateOrder creates a provider-side order for amountMinor units of
// currency and returns its id.  Nothing is persisted locally; the
// booking step later consumes the order id.
func (c *Client) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*Order, error) {
	body, err := json.Marshal(orderReq{Amount: amountMinor, Currency: currency, Receipt: receipt})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("provider order create failed: status %d: %s", resp.StatusCode, snippet)
	}
	var out orderResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &Order{OrderID: out.ID, Amount: out.Amount, Currency: out.Currency}, nil
}
