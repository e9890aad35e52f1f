package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParseStringIDParam returns the named path parameter, responding with 400
// and an empty string when it is missing.
func ParseStringIDParam(c *gin.Context, param string) string {
	idStr := strings.TrimSpace(c.Param(param))
	if idStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: "ID cannot be empty",
		})
		return ""
	}
	return idStr
}

// ParseUUIDParam parses the named path parameter as a UUID, responding with
// 400 and uuid.Nil on failure.
func ParseUUIDParam(c *gin.Context, param string) uuid.UUID {
	idStr := strings.TrimSpace(c.Param(param))
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: "ID must be a valid UUID",
		})
		return uuid.Nil
	}
	return id
}

// ParseTimeQuery parses an optional RFC3339 query parameter. The zero time
// and ok=true mean the parameter was absent.
func ParseTimeQuery(c *gin.Context, param string) (time.Time, bool) {
	value := strings.TrimSpace(c.Query(param))
	if value == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: "expected RFC3339 timestamp, e.g. 2026-01-02T15:04:05Z",
		})
		return time.Time{}, false
	}
	return t, true
}
