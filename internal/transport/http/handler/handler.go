// Package handler contains the gin handlers for the API surface.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fitmanager/internal/app"
	"fitmanager/internal/transport/http/response"
)

// parseDate accepts ISO date strings (YYYY-MM-DD or RFC 3339). An empty
// string means "now".
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// entryError translates the shared entity-service failures. Not-owner stays
// distinguishable from not-found.
func entryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrEntryNotFound):
		response.Message(c, http.StatusNotFound, "Entry not found")
	case errors.Is(err, app.ErrNotOwner):
		response.Message(c, http.StatusForbidden, "Forbidden")
	case errors.Is(err, app.ErrInvalidInput):
		response.Invalid(c, err.Error())
	default:
		response.ServerError(c)
	}
}
