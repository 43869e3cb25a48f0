package handler // handler defines http handlers

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"movies-api/internal/repository"
)

// totalRecordsHeader carries the total match count for paginated list
// endpoints so clients can render page controls without a second request.
const totalRecordsHeader = "totalAmountOfRecords"

// getUserID extracts the user_id claim from echo.Context and converts it to
// uint64.  JWT claim decoding yields float64 for numeric claims, so several
// representations are accepted.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// parseID parses the :id route parameter.
func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// bindPagination reads page/recordsPerPage query parameters.  Out-of-range
// values are clamped by the repository layer; unparsable values fall back
// to zero and therefore to the defaults.
func bindPagination(c echo.Context) repository.Pagination {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	per, _ := strconv.Atoi(c.QueryParam("recordsPerPage"))
	return repository.Pagination{Page: page, RecordsPerPage: per}
}

// setTotalRecords writes the pagination metadata header.
func setTotalRecords(c echo.Context, total int64) {
	c.Response().Header().Set(totalRecordsHeader, strconv.FormatInt(total, 10))
}
