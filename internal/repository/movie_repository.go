package repository

import (
	"context"
	"database/sql"
	"errors"

	"movies-api/internal/model"
)

// homeFeedSize caps both home feed lists.  Not configurable.
const homeFeedSize = 6

const (
	homeUpcomingSQL = `SELECT id, title, summary, trailer, in_theaters, release_date, poster
	                   FROM movies WHERE release_date > CURDATE()
	                   ORDER BY release_date, id LIMIT ?`
	homeInTheatersSQL = `SELECT id, title, summary, trailer, in_theaters, release_date, poster
	                     FROM movies WHERE in_theaters = 1
	                     ORDER BY release_date, id LIMIT ?`
)

// MovieRepo encapsulates all database queries related to movies and their
// genre/theater/cast associations.  Every write touching a movie and its
// join rows happens inside a single transaction so a request either applies
// completely or not at all.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the provided DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// Create inserts the movie row and its associations in one transaction.  On
// success the movie's ID field is populated.  Unknown genre/theater/actor
// ids surface as foreign-key violations; see IsForeignKey.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie, genreIDs, theaterIDs []uint64, cast []model.CastEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	const q = `INSERT INTO movies (title, summary, trailer, in_theaters, release_date, poster)
	           VALUES (?, ?, ?, ?, ?, ?)`
	var res sql.Result
	if res, err = tx.ExecContext(ctx, q, m.Title, m.Summary, m.Trailer, m.InTheaters, m.ReleaseDate, m.Poster); err != nil {
		return err
	}
	var id int64
	if id, err = res.LastInsertId(); err != nil {
		return err
	}
	m.ID = uint64(id)

	err = replaceAssociations(ctx, tx, m.ID, genreIDs, theaterIDs, cast)
	return err
}

// Update fully replaces the movie's scalar fields and all of its
// associations in one transaction.  Returns ErrMovieNotFound when the id
// has no matching row; in that case nothing is written.
func (r *MovieRepo) Update(ctx context.Context, m *model.Movie, genreIDs, theaterIDs []uint64, cast []model.CastEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	// Existence probe inside the tx; RowsAffected can't be used because a
	// no-op UPDATE reports zero rows on MySQL.
	var exists uint64
	if err = tx.QueryRowContext(ctx, "SELECT id FROM movies WHERE id = ?", m.ID).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrMovieNotFound
		}
		return err
	}

	const q = `UPDATE movies
	           SET title = ?, summary = ?, trailer = ?, in_theaters = ?, release_date = ?, poster = ?
	           WHERE id = ?`
	if _, err = tx.ExecContext(ctx, q, m.Title, m.Summary, m.Trailer, m.InTheaters, m.ReleaseDate, m.Poster, m.ID); err != nil {
		return err
	}

	err = replaceAssociations(ctx, tx, m.ID, genreIDs, theaterIDs, cast)
	return err
}

// Delete removes the movie, its association rows and its ratings in one
// transaction.  Returns ErrMovieNotFound when the id has no matching row.
// The caller is responsible for removing the stored poster afterwards; a
// storage failure there must not undo the committed row deletion.
func (r *MovieRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	for _, q := range []string{
		"DELETE FROM movies_genres WHERE movie_id = ?",
		"DELETE FROM movie_theaters_movies WHERE movie_id = ?",
		"DELETE FROM movies_actors WHERE movie_id = ?",
		"DELETE FROM ratings WHERE movie_id = ?",
	} {
		if _, err = tx.ExecContext(ctx, q, id); err != nil {
			return err
		}
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, "DELETE FROM movies WHERE id = ?", id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrMovieNotFound
		return err
	}
	return nil
}

// replaceAssociations rewrites the three association tables for a movie to
// exactly the supplied sets: delete-all-then-insert, never a diff.  Genre
// and theater ids are unordered sets (input duplicates collapse); the cast
// keeps submission order and each entry's rank is its 0-based index.  An
// empty cast clears all actor links.
func replaceAssociations(ctx context.Context, tx *sql.Tx, movieID uint64, genreIDs, theaterIDs []uint64, cast []model.CastEntry) error {
	for _, q := range []string{
		"DELETE FROM movies_genres WHERE movie_id = ?",
		"DELETE FROM movie_theaters_movies WHERE movie_id = ?",
		"DELETE FROM movies_actors WHERE movie_id = ?",
	} {
		if _, err := tx.ExecContext(ctx, q, movieID); err != nil {
			return err
		}
	}

	for _, gid := range dedupe(genreIDs) {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO movies_genres (movie_id, genre_id) VALUES (?, ?)", movieID, gid); err != nil {
			return err
		}
	}
	for _, tid := range dedupe(theaterIDs) {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO movie_theaters_movies (movie_theater_id, movie_id) VALUES (?, ?)", tid, movieID); err != nil {
			return err
		}
	}
	for i, entry := range cast {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO movies_actors (movie_id, actor_id, charact, `rank`) VALUES (?, ?, ?, ?)",
			movieID, entry.ActorID, entry.Character, i); err != nil {
			return err
		}
	}
	return nil
}

// dedupe collapses duplicate ids while keeping first-seen order.
func dedupe(ids []uint64) []uint64 {
	seen := make(map[uint64]bool, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// GetByID fetches a movie row without associations.  It returns
// ErrMovieNotFound when no row matches.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (*model.Movie, error) {
	const q = `SELECT id, title, summary, trailer, in_theaters, release_date, poster
	           FROM movies WHERE id = ?`
	var m model.Movie
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&m.ID, &m.Title, &m.Summary, &m.Trailer, &m.InTheaters, &m.ReleaseDate, &m.Poster); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// GetDetail loads a movie with all three association kinds materialized.
// The cast comes back ordered by rank so read responses never depend on
// storage order.  Returns ErrMovieNotFound when the id has no matching row.
func (r *MovieRepo) GetDetail(ctx context.Context, id uint64) (*model.MovieDetail, error) {
	m, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := &model.MovieDetail{Movie: *m}

	const qGenres = `SELECT g.id, g.name
	                 FROM movies_genres mg JOIN genres g ON g.id = mg.genre_id
	                 WHERE mg.movie_id = ? ORDER BY g.name, g.id`
	rows, err := r.db.QueryContext(ctx, qGenres, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		d.Genres = append(d.Genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const qTheaters = `SELECT t.id, t.name, t.latitude, t.longitude
	                   FROM movie_theaters_movies tm JOIN movie_theaters t ON t.id = tm.movie_theater_id
	                   WHERE tm.movie_id = ? ORDER BY t.name, t.id`
	trows, err := r.db.QueryContext(ctx, qTheaters, id)
	if err != nil {
		return nil, err
	}
	defer trows.Close()
	for trows.Next() {
		var t model.MovieTheater
		if err := trows.Scan(&t.ID, &t.Name, &t.Latitude, &t.Longitude); err != nil {
			return nil, err
		}
		d.Theaters = append(d.Theaters, t)
	}
	if err := trows.Err(); err != nil {
		return nil, err
	}

	const qCast = `SELECT ma.actor_id, a.name, a.picture, ma.charact, ma.` + "`rank`" + `
	               FROM movies_actors ma JOIN actors a ON a.id = ma.actor_id
	               WHERE ma.movie_id = ? ORDER BY ma.` + "`rank`" + `
	`
	crows, err := r.db.QueryContext(ctx, qCast, id)
	if err != nil {
		return nil, err
	}
	defer crows.Close()
	for crows.Next() {
		var cm model.CastMember
		if err := crows.Scan(&cm.ActorID, &cm.Name, &cm.Picture, &cm.Character, &cm.Rank); err != nil {
			return nil, err
		}
		d.Cast = append(d.Cast, cm)
	}
	if err := crows.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// Home returns the two public landing lists: movies releasing strictly
// after today and movies currently in theaters, each soonest-release first
// and capped at six.  The lists are independent queries; a movie may appear
// in both when its flags and dates say so.
func (r *MovieRepo) Home(ctx context.Context) (upcoming, inTheaters []model.Movie, err error) {
	if upcoming, err = r.listMovies(ctx, homeUpcomingSQL, homeFeedSize); err != nil {
		return nil, nil, err
	}
	if inTheaters, err = r.listMovies(ctx, homeInTheatersSQL, homeFeedSize); err != nil {
		return nil, nil, err
	}
	return upcoming, inTheaters, nil
}

// listMovies runs a movie SELECT with the standard column set and scans the
// result into a slice.
func (r *MovieRepo) listMovies(ctx context.Context, q string, args ...any) ([]model.Movie, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Movie, 0, homeFeedSize)
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Summary, &m.Trailer, &m.InTheaters, &m.ReleaseDate, &m.Poster); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
