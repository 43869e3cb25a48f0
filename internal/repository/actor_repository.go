package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"movies-api/internal/model"
)

// searchByNameLimit caps the number of rows returned by SearchByName; the
// endpoint feeds a typeahead picker in the admin UI.
const searchByNameLimit = 5

// ActorRepo encapsulates all database queries related to actors.
type ActorRepo struct {
	db *sql.DB
}

// NewActorRepo constructs an ActorRepo with the provided DB handle.
func NewActorRepo(db *sql.DB) *ActorRepo {
	return &ActorRepo{db: db}
}

// Create inserts a new actor.  On success the ID field is populated with
// the auto-generated value.
func (r *ActorRepo) Create(ctx context.Context, a *model.Actor) error {
	const q = `INSERT INTO actors (name, biography, date_of_birth, picture)
	           VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, a.Name, a.Biography, a.DateOfBirth, a.Picture)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByID fetches an actor by its ID.  It returns ErrActorNotFound when no
// row matches.
func (r *ActorRepo) GetByID(ctx context.Context, id uint64) (*model.Actor, error) {
	const q = `SELECT id, name, biography, date_of_birth, picture
	           FROM actors WHERE id = ?`
	var a model.Actor
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&a.ID, &a.Name, &a.Biography, &a.DateOfBirth, &a.Picture); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrActorNotFound
		}
		return nil, err
	}
	return &a, nil
}

// List returns one page of actors ordered by name (ties broken by id) along
// with the total number of actor rows for the pagination header.
func (r *ActorRepo) List(ctx context.Context, p Pagination) ([]model.Actor, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM actors").Scan(&total); err != nil {
		return nil, 0, err
	}

	const q = `SELECT id, name, biography, date_of_birth, picture
	           FROM actors ORDER BY name, id LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, q, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]model.Actor, 0, p.Limit())
	for rows.Next() {
		var a model.Actor
		if err := rows.Scan(&a.ID, &a.Name, &a.Biography, &a.DateOfBirth, &a.Picture); err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// SearchByName returns up to five actors whose name contains the given
// substring, ordered by name.  Only id, name and picture are selected; the
// result feeds the cast picker.
func (r *ActorRepo) SearchByName(ctx context.Context, name string) ([]model.Actor, error) {
	const q = `SELECT id, name, picture FROM actors
	           WHERE LOWER(name) LIKE ?
	           ORDER BY name, id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, q, "%"+strings.ToLower(name)+"%", searchByNameLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Actor, 0, searchByNameLimit)
	for rows.Next() {
		var a model.Actor
		if err := rows.Scan(&a.ID, &a.Name, &a.Picture); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces all scalar fields of an actor.  Returns ErrActorNotFound
// when the id has no matching row.
func (r *ActorRepo) Update(ctx context.Context, a *model.Actor) error {
	if _, err := r.GetByID(ctx, a.ID); err != nil {
		return err
	}
	const q = `UPDATE actors
	           SET name = ?, biography = ?, date_of_birth = ?, picture = ?
	           WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, a.Name, a.Biography, a.DateOfBirth, a.Picture, a.ID)
	return err
}

// Delete removes an actor and its cast association rows in one transaction.
// Returns ErrActorNotFound when the id has no matching row.  The caller is
// responsible for removing the actor's stored picture afterwards.
func (r *ActorRepo) Delete(ctx context.Context, id uint64) error {
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

	if _, err = tx.ExecContext(ctx, "DELETE FROM movies_actors WHERE actor_id = ?", id); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, "DELETE FROM actors WHERE id = ?", id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrActorNotFound
		return err
	}
	return nil
}
