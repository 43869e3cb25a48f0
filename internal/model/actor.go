package model

import "time"

// Actor represents a person that can be cast in movies, as stored in the
// `actors` table.  The Picture field holds an opaque reference (URL) into
// the file store and may be empty when no picture was uploaded.
//
// Fields:
//
//	ID          – primary key identifier.
//	Name        – actor name.
//	Biography   – free-form biography text (may be empty).
//	DateOfBirth – date of birth (nil when unknown).
//	Picture     – file store reference to the actor picture (empty when none).
type Actor struct {
	ID          uint64     `json:"id"`          // actors.id
	Name        string     `json:"name"`        // actors.name
	Biography   string     `json:"biography"`   // actors.biography
	DateOfBirth *time.Time `json:"dateOfBirth"` // actors.date_of_birth (nullable)
	Picture     string     `json:"picture"`     // actors.picture
}
