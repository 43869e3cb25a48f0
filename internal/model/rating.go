package model

// Rating models an entry in the `ratings` table.  The table carries a
// unique key over (movie_id, user_id) so a user can hold at most one
// rating per movie; writes for an existing pair overwrite the score.
//
// Fields:
//
//	ID      – primary key identifier.
//	MovieID – rated movie.
//	UserID  – user that cast the vote (issued by the identity service).
//	Score   – vote value, 1..5, validated at the input boundary.
type Rating struct {
	ID      uint64 `json:"id"`      // ratings.id
	MovieID uint64 `json:"movieId"` // ratings.movie_id
	UserID  uint64 `json:"userId"`  // ratings.user_id
	Score   uint8  `json:"score"`   // ratings.score
}
