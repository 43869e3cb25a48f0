// Package repository contains data access logic separated from HTTP handlers.
// This file defines sentinel error values reused across repositories so that
// handlers can map failures to HTTP responses without inspecting SQL errors.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrGenreNotFound is returned when a genre id has no matching row.
var ErrGenreNotFound = errors.New("genre not found")

// ErrActorNotFound is returned when an actor id has no matching row.
var ErrActorNotFound = errors.New("actor not found")

// ErrTheaterNotFound is returned when a movie theater id has no matching row.
var ErrTheaterNotFound = errors.New("movie theater not found")

// ErrMovieNotFound is returned when a movie id has no matching row.
var ErrMovieNotFound = errors.New("movie not found")

// IsDuplicate reports whether err is a MySQL duplicate-key violation (1062).
// Handlers translate it into HTTP 409.
func IsDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

// IsForeignKey reports whether err is a MySQL foreign-key violation (1452),
// raised when an association references an id that does not exist.  Handlers
// translate it into HTTP 400 rather than a server error.
func IsForeignKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1452
}
