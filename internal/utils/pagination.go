package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/underdogsx/coordination-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Offset int
	Limit  int
}

// GetPaginationParams extracts and validates skip/limit query parameters
func GetPaginationParams(c *gin.Context) PaginationParams {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageLimit)))

	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > constants.MaxPageLimit {
		limit = constants.DefaultPageLimit
	}

	return PaginationParams{
		Offset: skip,
		Limit:  limit,
	}
}
