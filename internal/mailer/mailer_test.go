package mailer

import (
	"strings"
	"testing"
)

func TestNewValidation(t *testing.T) {
	if _, err := New("", "587", "team@playmate.app", "pw"); err == nil {
		t.Error("expected error for missing host")
	}
	if _, err := New("smtp.example.com", "587", "", "pw"); err == nil {
		t.Error("expected error for missing sender")
	}
	m, err := New("smtp.example.com", "", "team@playmate.app", "pw")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.port != "587" {
		t.Errorf("default port = %q, want 587", m.port)
	}
}

func TestReceiptHTML(t *testing.T) {
	html := ReceiptHTML(Receipt{
		Name:          "Asha Rao",
		BookingID:     42,
		VenueName:     "Greenfield Arena",
		VenueAddress:  "12 MG Road, Bengaluru",
		SportName:     "Badminton",
		StartDatetime: "2026-09-15T18:00:00Z",
		EndDatetime:   "2026-09-15T20:00:00Z",
		TotalPrice:    "900.00",
		OrderID:       "order_abc",
		PaymentID:     "pay_xyz",
	})
	for _, want := range []string{
		"Asha Rao", "#42", "Greenfield Arena", "12 MG Road, Bengaluru",
		"Badminton", "2026-09-15T18:00:00Z", "900.00", "order_abc", "pay_xyz",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("receipt html missing %q", want)
		}
	}
	if !strings.Contains(html, "<!DOCTYPE html>") {
		t.Error("receipt is not an html document")
	}
}
