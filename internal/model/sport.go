package model

import "time"

// Sport is immutable reference data describing a playable sport.
// Rows are created and deleted by administrators only.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – unique sport name (e.g. Cricket, Pickleball).
//  CreatedAt – creation timestamp.
type Sport struct {
	ID        uint64    // sports.sport_id
	Name      string    // sports.sport_name
	CreatedAt time.Time // sports.created_at
}
