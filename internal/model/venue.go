package model

import "time"

// Venue represents a sports facility registered by an owner.  Sports
// offered at the venue and their slots are children of this record.
//
// Fields:
//  ID           – primary key identifier.
//  OwnerUserID  – user who registered the venue.
//  Name         – display name of the venue.
//  Address      – street address.
//  ContactEmail – optional contact email.
//  ContactPhone – optional contact phone number.
//  CreatedAt    – creation timestamp.
type Venue struct {
	ID           uint64    // venues.venue_id
	OwnerUserID  uint64    // venues.owner_user_id
	Name         string    // venues.venue_name
	Address      string    // venues.address
	ContactEmail *string   // venues.contact_email (nullable)
	ContactPhone *string   // venues.contact_phone (nullable)
	CreatedAt    time.Time // venues.created_at
}

// VenueSport links a venue to a sport it offers.  At most one row may
// exist per (venue, sport) pair; slots hang off this association and
// are removed when it is deleted.
//
// Fields:
//  ID        – primary key identifier.
//  VenueID   – venue offering the sport.
//  SportID   – sport being offered.
//  CreatedAt – creation timestamp.
type VenueSport struct {
	ID        uint64    // venue_sports.venue_sport_id
	VenueID   uint64    // venue_sports.venue_id
	SportID   uint64    // venue_sports.sport_id
	CreatedAt time.Time // venue_sports.created_at
}
