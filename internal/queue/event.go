// Package queue defines message payloads exchanged over the message broker.
package queue

// Event kinds published on the catalog.events queue.
const (
	KindMovieCreated   = "movie.created"
	KindMovieUpdated   = "movie.updated"
	KindMovieDeleted   = "movie.deleted"
	KindRatingUpserted = "rating.upserted"
)

// CatalogEvent is published after a successful catalog write.  It carries
// enough information for downstream consumers to build an audit trail or
// trigger cache invalidation without querying the primary database.  Fields
// that do not apply to a kind are left zero and omitted from the JSON.
type CatalogEvent struct {
	Kind       string `json:"kind"`
	MovieID    uint64 `json:"movie_id"`
	Title      string `json:"title,omitempty"`
	UserID     uint64 `json:"user_id,omitempty"`
	Score      uint8  `json:"score,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
