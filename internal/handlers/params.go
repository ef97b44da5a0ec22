package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads a numeric path parameter.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// optionalFormID reads an optional numeric form field, returning nil when the
// field is empty.
func optionalFormID(c *gin.Context, name string) (*uint64, bool) {
	value := c.PostForm(name)
	if value == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil, false
	}
	return &id, true
}

var dateTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02",
}

// parseDateTime accepts the datetime-local input format plus a few common
// fallbacks.
func parseDateTime(value string) (time.Time, error) {
	var firstErr error
	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// parseDate parses a date-only form field.
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
