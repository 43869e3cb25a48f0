package repository

import (
	"context"
	"database/sql"
	"errors"

	"movies-api/internal/model"
)

// GenreRepo encapsulates all database queries related to genres.  It
// depends on a sql.DB connection which should be configured elsewhere.
type GenreRepo struct {
	db *sql.DB
}

// NewGenreRepo constructs a GenreRepo with the provided DB handle.  This
// allows dependency injection of the database in tests and at startup.
func NewGenreRepo(db *sql.DB) *GenreRepo {
	return &GenreRepo{db: db}
}

// Create inserts a new genre.  On success the ID field is populated with
// the auto-generated value.
func (r *GenreRepo) Create(ctx context.Context, g *model.Genre) error {
	const q = "INSERT INTO genres (name) VALUES (?)"
	res, err := r.db.ExecContext(ctx, q, g.Name)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	g.ID = uint64(id)
	return nil
}

// GetByID fetches a genre by its ID.  It returns ErrGenreNotFound when no
// row matches.
func (r *GenreRepo) GetByID(ctx context.Context, id uint64) (*model.Genre, error) {
	const q = "SELECT id, name FROM genres WHERE id = ?"
	var g model.Genre
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&g.ID, &g.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}
	return &g, nil
}

// List returns one page of genres ordered by name (ties broken by id) along
// with the total number of genre rows for the pagination header.
func (r *GenreRepo) List(ctx context.Context, p Pagination) ([]model.Genre, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM genres").Scan(&total); err != nil {
		return nil, 0, err
	}

	const q = "SELECT id, name FROM genres ORDER BY name, id LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, q, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]model.Genre, 0, p.Limit())
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, 0, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ListAll returns every genre ordered by name.  Used to populate the movie
// create/edit form contexts, which are not paginated.
func (r *GenreRepo) ListAll(ctx context.Context) ([]model.Genre, error) {
	const q = "SELECT id, name FROM genres ORDER BY name, id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Genre
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the genre name.  It returns ErrGenreNotFound when the id
// has no matching row.  The existence probe is separate from the UPDATE
// because MySQL reports zero affected rows for a no-op write.
func (r *GenreRepo) Update(ctx context.Context, g *model.Genre) error {
	if _, err := r.GetByID(ctx, g.ID); err != nil {
		return err
	}
	const q = "UPDATE genres SET name = ? WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, g.Name, g.ID)
	return err
}

// Delete removes a genre and its movie association rows in one transaction.
// Returns ErrGenreNotFound when the id has no matching row.
func (r *GenreRepo) Delete(ctx context.Context, id uint64) error {
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

	if _, err = tx.ExecContext(ctx, "DELETE FROM movies_genres WHERE genre_id = ?", id); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, "DELETE FROM genres WHERE id = ?", id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrGenreNotFound
		return err
	}
	return nil
}
