package pagination

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

var ErrInvalid = errors.New("invalid pagination parameters")

// Parse reads limit and offset query parameters. Limit is clamped into
// [1, MaxLimit]; a negative offset or a non-numeric value is rejected.
// Both list endpoints share this so the bounds behave identically.
func Parse(c *gin.Context) (limit, offset int, err error) {
	limit = DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, ErrInvalid
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	if raw := c.Query("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, ErrInvalid
		}
	}
	return limit, offset, nil
}
