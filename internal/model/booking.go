package model

import "time"

// Booking payment states.
const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// Booking is the reservation record tying a user, a game, a slot
// template and a concrete time range together.  SlotID is nullable:
// the slot is only a template and the booking carries the authoritative
// datetimes.  No two bookings on the same slot and venue may overlap in
// [StartDatetime, EndDatetime) while their games are active.
//
// Fields:
//  ID            – primary key identifier.
//  SlotID        – slot template booked (nullable, SET NULL on delete).
//  VenueID       – venue being booked.
//  VenueSportID  – venue-sport offering the booking is for.
//  UserID        – user who made the booking.
//  GameID        – game created alongside this booking.
//  StartDatetime – concrete start of the reserved range.
//  EndDatetime   – concrete end of the reserved range.
//  TotalPrice    – total price charged.
//  Payment       – unpaid or paid.
//  CreatedAt     – creation timestamp.
type Booking struct {
	ID            uint64    `json:"booking_id"`        // bookings.booking_id
	SlotID        *uint64   `json:"slot_id,omitempty"` // bookings.slot_id (nullable)
	VenueID       uint64    `json:"venue_id"`          // bookings.venue_id
	VenueSportID  uint64    `json:"venue_sport_id"`    // bookings.venue_sport_id
	UserID        uint64    `json:"user_id"`           // bookings.user_id
	GameID        uint64    `json:"game_id"`           // bookings.game_id
	StartDatetime time.Time `json:"start_datetime"`    // bookings.start_datetime
	EndDatetime   time.Time `json:"end_datetime"`      // bookings.end_datetime
	TotalPrice    float64   `json:"total_price"`       // bookings.total_price
	Payment       string    `json:"payment"`           // bookings.payment
	CreatedAt     time.Time `json:"created_at"`        // bookings.created_at
}
