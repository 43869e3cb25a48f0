package repository

import (
	"context"
	"strings"

	"movies-api/internal/model"
)

// MovieFilter defines the conjunctive criteria for the public movie search.
// Zero values impose no filter: an empty title, false flags and GenreID 0
// all mean "don't narrow".
type MovieFilter struct {
	Title            string
	InTheaters       bool
	UpcomingReleases bool
	GenreID          uint64
}

// buildMovieFilter translates a MovieFilter into a WHERE condition and its
// arguments.  Title matching is case-insensitive substring.  The genre
// criterion is expressed as an EXISTS probe against the join table so the
// outer query never duplicates movies.
func buildMovieFilter(f MovieFilter) (string, []any) {
	where := []string{}
	args := []any{}

	if f.Title != "" {
		where = append(where, "LOWER(m.title) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Title)+"%")
	}
	if f.InTheaters {
		where = append(where, "m.in_theaters = 1")
	}
	if f.UpcomingReleases {
		where = append(where, "m.release_date > CURDATE()")
	}
	if f.GenreID > 0 {
		where = append(where, "EXISTS (SELECT 1 FROM movies_genres mg WHERE mg.movie_id = m.id AND mg.genre_id = ?)")
		args = append(args, f.GenreID)
	}

	if len(where) == 0 {
		return "1=1", args
	}
	return strings.Join(where, " AND "), args
}

// Search returns one page of movies matching the filter, ordered by title
// (ties broken by id), together with the total match count for the
// pagination header.
func (r *MovieRepo) Search(ctx context.Context, f MovieFilter, p Pagination) ([]model.Movie, int64, error) {
	cond, args := buildMovieFilter(f)

	var total int64
	countSQL := "SELECT COUNT(*) FROM movies m WHERE " + cond
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := `SELECT m.id, m.title, m.summary, m.trailer, m.in_theaters, m.release_date, m.poster
		FROM movies m
		WHERE ` + cond + `
		ORDER BY m.title, m.id
		LIMIT ? OFFSET ?`

	argsData := append(append([]any{}, args...), p.Limit(), p.Offset())

	rows, err := r.db.QueryContext(ctx, dataSQL, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]model.Movie, 0, p.Limit())
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Summary, &m.Trailer, &m.InTheaters, &m.ReleaseDate, &m.Poster); err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
