package server

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/modguard/pkg/db/pagination"
)

const defaultRangeDays = 30

func parsePagination(c *gin.Context) (pagination.Pagination, error) {
	page, err := parsePositiveInt(c.Query("page"), 1)
	if err != nil {
		return pagination.Pagination{}, newValidationError("page", "invalid_page", "page must be a positive integer")
	}
	limit, err := parsePositiveInt(c.Query("limit"), 10)
	if err != nil {
		return pagination.Pagination{}, newValidationError("limit", "invalid_limit", "limit must be a positive integer")
	}
	return pagination.Pagination{Page: page, Limit: limit}.Normalize(), nil
}

// parseRangeDays accepts "30d" style symbolic ranges or a bare day count.
func parseRangeDays(c *gin.Context) (int, error) {
	raw := strings.ToLower(strings.TrimSpace(c.Query("range")))
	if raw == "" {
		return defaultRangeDays, nil
	}
	raw = strings.TrimSuffix(raw, "d")
	days, err := strconv.Atoi(raw)
	if err != nil || days < 0 {
		return 0, newValidationError("range", "invalid_range", "range must look like 30d")
	}
	return days, nil
}

func parsePositiveInt(value string, def int) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def, nil
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, err
	}
	if parsed < 1 {
		return 0, strconv.ErrRange
	}
	return parsed, nil
}

func parseLimit(c *gin.Context, def int) (int, error) {
	limit, err := parsePositiveInt(c.Query("limit"), def)
	if err != nil {
		return 0, newValidationError("limit", "invalid_limit", "limit must be a positive integer")
	}
	if limit > pagination.MaxLimit {
		limit = pagination.MaxLimit
	}
	return limit, nil
}
