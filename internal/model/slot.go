package model

import "time"

// Slot is a recurring time-of-day template offered for a sport at a
// venue.  Start and end are clock times, not dates: the same slot is
// reused across calendar days, and a booking pins it to a concrete
// datetime range.
//
// Fields:
//  ID           – primary key identifier.
//  VenueSportID – venue-sport offering this slot belongs to.
//  StartTime    – time of day the slot opens (HH:MM:SS).
//  EndTime      – time of day the slot closes.
//  PricePerSlot – price for booking the slot once.
//  CreatedAt    – creation timestamp.
type Slot struct {
	ID           uint64    // slots.slot_id
	VenueSportID uint64    // slots.venue_sport_id
	StartTime    string    // slots.start_time (TIME column)
	EndTime      string    // slots.end_time (TIME column)
	PricePerSlot float64   // slots.price_per_slot
	CreatedAt    time.Time // slots.created_at
}
