package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationNormalized(t *testing.T) {
	cases := []struct {
		name string
		in   Pagination
		want Pagination
	}{
		{"defaults", Pagination{}, Pagination{Page: 1, RecordsPerPage: 10}},
		{"negative page", Pagination{Page: -3, RecordsPerPage: 20}, Pagination{Page: 1, RecordsPerPage: 20}},
		{"zero size", Pagination{Page: 2, RecordsPerPage: 0}, Pagination{Page: 2, RecordsPerPage: 10}},
		{"clamped to max", Pagination{Page: 1, RecordsPerPage: 500}, Pagination{Page: 1, RecordsPerPage: 50}},
		{"at max", Pagination{Page: 1, RecordsPerPage: 50}, Pagination{Page: 1, RecordsPerPage: 50}},
		{"in range", Pagination{Page: 7, RecordsPerPage: 25}, Pagination{Page: 7, RecordsPerPage: 25}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalized())
		})
	}
}

// Walking every page of an ordered collection must reproduce it exactly
// once per element, and pages past the end must be empty.
func TestPaginationWindowCoversCollection(t *testing.T) {
	const n = 23
	src := make([]int, n)
	for i := range src {
		src[i] = i
	}

	window := func(p Pagination) []int {
		lo := p.Offset()
		if lo > len(src) {
			return nil
		}
		hi := lo + p.Limit()
		if hi > len(src) {
			hi = len(src)
		}
		return src[lo:hi]
	}

	var got []int
	for page := 1; page <= 3; page++ {
		got = append(got, window(Pagination{Page: page, RecordsPerPage: 10})...)
	}
	assert.Equal(t, src, got)

	assert.Empty(t, window(Pagination{Page: 4, RecordsPerPage: 10}))
	assert.Empty(t, window(Pagination{Page: 100, RecordsPerPage: 50}))
}

func TestPaginationOffset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, RecordsPerPage: 10}.Offset())
	assert.Equal(t, 40, Pagination{Page: 5, RecordsPerPage: 10}.Offset())
	// Oversized request clamps before the offset is computed.
	assert.Equal(t, 50, Pagination{Page: 2, RecordsPerPage: 999}.Offset())
}
