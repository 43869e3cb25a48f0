package model

// Genre represents a movie genre as stored in the `genres` table.
// Genres are created and deleted independently and referenced by
// movies through the movies_genres join table.
//
// Fields:
//
//	ID   – primary key identifier.
//	Name – genre name, unique, max 50 chars, first letter uppercase.
type Genre struct {
	ID   uint64 `json:"id"`   // genres.id
	Name string `json:"name"` // genres.name
}
