package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Both home lists are capped, ordered soonest-release first with a stable
// tie-break, and select on their own criterion: strictly future release
// dates on one side, the in_theaters flag on the other.
func TestHomeFeedQueries(t *testing.T) {
	assert.Equal(t, 6, homeFeedSize)

	assert.Contains(t, homeUpcomingSQL, "release_date > CURDATE()")
	assert.NotContains(t, homeUpcomingSQL, ">=", "today's releases are not upcoming")
	assert.Contains(t, homeUpcomingSQL, "ORDER BY release_date, id LIMIT ?")

	assert.Contains(t, homeInTheatersSQL, "in_theaters = 1")
	assert.Contains(t, homeInTheatersSQL, "ORDER BY release_date, id LIMIT ?")
}
