package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParsePagination safely parses and validates page and limit query parameters.
// It uses default values of 1 for page and 20 for limit.
// The limit cannot exceed 100.
func ParsePagination(c *gin.Context) (page, limit int, err error) {
	// Parse page query parameter (default: 1)
	pageStr := c.DefaultQuery("page", "1")
	page, err = strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return 0, 0, fmt.Errorf("invalid page parameter: must be a positive integer")
	}

	// Parse limit query parameter (default: 20, max: 100)
	limitStr := c.DefaultQuery("limit", "20")
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > 100 {
		return 0, 0, fmt.Errorf("invalid limit parameter: must be between 1 and 100")
	}

	return page, limit, nil
}
