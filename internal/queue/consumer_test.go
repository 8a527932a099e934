package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHandleMessageWritesAuditLine(t *testing.T) {
	t.Chdir(t.TempDir())

	ev := BookingPaidEvent{
		BookingID:     7,
		GameID:        3,
		UserID:        11,
		UserName:      "Asha Rao",
		VenueName:     "Greenfield Arena",
		SportName:     "Badminton",
		StartDatetime: "2026-09-15T18:00:00Z",
		EndDatetime:   "2026-09-15T20:00:00Z",
		TotalPrice:    900,
		OrderID:       "order_abc",
		PaymentID:     "pay_xyz",
		PaidAt:        "2026-09-01T10:00:00Z",
	}
	body, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// nil mailer: the audit line must still be written.
	if err := handleMessage(body, nil); err != nil {
		t.Fatalf("handleMessage: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join("logs", "booking.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(raw)
	for _, want := range []string{"booking_id=7", "game_id=3", "user_id=11", "Greenfield Arena", "order=order_abc", "payment=pay_xyz", "total=900.00"} {
		if !strings.Contains(line, want) {
			t.Errorf("audit line missing %q: %s", want, line)
		}
	}

	// Second message appends rather than truncates.
	if err := handleMessage(body, nil); err != nil {
		t.Fatalf("handleMessage (second): %v", err)
	}
	raw, _ = os.ReadFile(filepath.Join("logs", "booking.log"))
	if got := strings.Count(string(raw), "\n"); got != 2 {
		t.Errorf("log has %d lines, want 2", got)
	}
}

func TestHandleMessageRejectsBadJSON(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := handleMessage([]byte("{not json"), nil); err == nil {
		t.Error("expected error for malformed payload")
	}
}
