// Package queue defines message payloads exchanged over the message
// broker, the publisher that emits them, and the background consumer
// that turns them into receipt mail and audit log lines.
package queue

// BookingPaidEvent is published when a booking's payment is verified
// and committed.  It carries everything downstream consumers need to
// mail a receipt and write an audit line without querying the primary
// database.
type BookingPaidEvent struct {
	BookingID     uint64  `json:"booking_id"`
	GameID        uint64  `json:"game_id"`
	UserID        uint64  `json:"user_id"`
	UserEmail     string  `json:"user_email"`
	UserName      string  `json:"user_name"`
	VenueID       uint64  `json:"venue_id"`
	VenueName     string  `json:"venue_name"`
	VenueAddress  string  `json:"venue_address"`
	SportName     string  `json:"sport_name"`
	StartDatetime string  `json:"start_datetime"`
	EndDatetime   string  `json:"end_datetime"`
	TotalPrice    float64 `json:"total_price"`
	OrderID       string  `json:"order_id"`
	PaymentID     string  `json:"payment_id"`
	PaidAt        string  `json:"paid_at"`
}
