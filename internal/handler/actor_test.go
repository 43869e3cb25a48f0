package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorFormValidation(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&actorForm{Name: "Al Pacino"}))
	assert.NoError(t, v.Validate(&actorForm{Name: "Al Pacino", DateOfBirth: "1940-04-25"}))
	assert.Error(t, v.Validate(&actorForm{Name: ""}))
	assert.Error(t, v.Validate(&actorForm{Name: "Al Pacino", DateOfBirth: "25/04/1940"}))
}

func TestActorFormDateOfBirth(t *testing.T) {
	assert.Nil(t, actorForm{}.dateOfBirth())

	got := actorForm{DateOfBirth: "1940-04-25"}.dateOfBirth()
	require.NotNil(t, got)
	assert.Equal(t, "1940-04-25", got.Format("2006-01-02"))
}
