package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicate(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'Action' for key 'genres.name'"}

	assert.True(t, IsDuplicate(dup))
	assert.True(t, IsDuplicate(fmt.Errorf("create genre: %w", dup)), "detected through wrapping")
	assert.False(t, IsDuplicate(&mysql.MySQLError{Number: 1452}))
	assert.False(t, IsDuplicate(errors.New("1062")), "plain errors never match")
	assert.False(t, IsDuplicate(nil))
}

func TestIsForeignKey(t *testing.T) {
	fk := &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}

	assert.True(t, IsForeignKey(fk))
	assert.True(t, IsForeignKey(fmt.Errorf("link cast: %w", fk)))
	assert.False(t, IsForeignKey(&mysql.MySQLError{Number: 1062}))
	assert.False(t, IsForeignKey(nil))
}
