package model

import "time"

// Movie represents a row in the `movies` table.  Associations to genres,
// theaters and actors live in their own join tables and are loaded
// separately; see MovieDetail.
//
// Fields:
//
//	ID          – primary key identifier.
//	Title       – movie title.
//	Summary     – synopsis text.
//	Trailer     – trailer URL (may be empty).
//	InTheaters  – whether the movie is currently showing.
//	ReleaseDate – release date (date precision, stored UTC).
//	Poster      – file store reference to the poster (empty when none).
type Movie struct {
	ID          uint64    `json:"id"`          // movies.id
	Title       string    `json:"title"`       // movies.title
	Summary     string    `json:"summary"`     // movies.summary
	Trailer     string    `json:"trailer"`     // movies.trailer
	InTheaters  bool      `json:"inTheaters"`  // movies.in_theaters
	ReleaseDate time.Time `json:"releaseDate"` // movies.release_date
	Poster      string    `json:"poster"`      // movies.poster
}

// CastMember is a movie↔actor association row joined with the actor record.
// Rank is the 0-based position the actor was submitted in and orders the
// cast list in read responses.
type CastMember struct {
	ActorID   uint64 // movies_actors.actor_id
	Name      string // actors.name
	Picture   string // actors.picture
	Character string // movies_actors.charact
	Rank      int    // movies_actors.rank
}

// CastEntry is the write-side shape of a cast association: which actor plays
// which character.  Rank is assigned from the slice index on persist.
type CastEntry struct {
	ActorID   uint64
	Character string
}

// MovieDetail bundles a movie with its fully materialized associations.
// All three association kinds are always loaded before mapping to a
// response shape.
type MovieDetail struct {
	Movie
	Genres   []Genre
	Theaters []MovieTheater
	Cast     []CastMember
}
