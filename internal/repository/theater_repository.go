package repository

import (
	"context"
	"database/sql"
	"errors"

	"movies-api/internal/model"
)

// TheaterRepo encapsulates all database queries related to movie theaters.
type TheaterRepo struct {
	db *sql.DB
}

// NewTheaterRepo constructs a TheaterRepo with the provided DB handle.
func NewTheaterRepo(db *sql.DB) *TheaterRepo {
	return &TheaterRepo{db: db}
}

// Create inserts a new movie theater.  On success the ID field is populated
// with the auto-generated value.
func (r *TheaterRepo) Create(ctx context.Context, t *model.MovieTheater) error {
	const q = "INSERT INTO movie_theaters (name, latitude, longitude) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, t.Name, t.Latitude, t.Longitude)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// GetByID fetches a movie theater by its ID.  It returns ErrTheaterNotFound
// when no row matches.
func (r *TheaterRepo) GetByID(ctx context.Context, id uint64) (*model.MovieTheater, error) {
	const q = "SELECT id, name, latitude, longitude FROM movie_theaters WHERE id = ?"
	var t model.MovieTheater
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&t.ID, &t.Name, &t.Latitude, &t.Longitude); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTheaterNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ListAll returns every movie theater ordered by name.  The theater list is
// small by nature and is served unpaginated.
func (r *TheaterRepo) ListAll(ctx context.Context) ([]model.MovieTheater, error) {
	const q = "SELECT id, name, latitude, longitude FROM movie_theaters ORDER BY name, id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MovieTheater
	for rows.Next() {
		var t model.MovieTheater
		if err := rows.Scan(&t.ID, &t.Name, &t.Latitude, &t.Longitude); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces all scalar fields of a movie theater.  Returns
// ErrTheaterNotFound when the id has no matching row.
func (r *TheaterRepo) Update(ctx context.Context, t *model.MovieTheater) error {
	if _, err := r.GetByID(ctx, t.ID); err != nil {
		return err
	}
	const q = "UPDATE movie_theaters SET name = ?, latitude = ?, longitude = ? WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, t.Name, t.Latitude, t.Longitude, t.ID)
	return err
}

// Delete removes a movie theater and its movie association rows in one
// transaction.  Returns ErrTheaterNotFound when the id has no matching row.
func (r *TheaterRepo) Delete(ctx context.Context, id uint64) error {
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

	if _, err = tx.ExecContext(ctx, "DELETE FROM movie_theaters_movies WHERE movie_theater_id = ?", id); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, "DELETE FROM movie_theaters WHERE id = ?", id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrTheaterNotFound
		return err
	}
	return nil
}
