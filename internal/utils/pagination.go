package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hiyoko-dev/crm-web/internal/constants"
)

// Page describes one page of a clamped, fixed-size listing.
type Page struct {
	Number     int   `json:"page"`
	Size       int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

// RequestedPage reads the "page" query parameter, defaulting to 1.
// Non-numeric values fall back to 1; range clamping happens against the
// actual row count in ClampPage.
func RequestedPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// ClampPage clamps a requested page number into the valid range for the given
// total row count. A request past the last page yields the last page, never an
// error; an empty result set yields page 1 of 1.
func ClampPage(requested int, totalCount int64) Page {
	size := constants.PageSize
	totalPages := int((totalCount + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	number := requested
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:     number,
		Size:       size,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

// Offset returns the row offset of the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool {
	return p.Number > 1
}

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

// PrevNumber returns the previous page number.
func (p Page) PrevNumber() int {
	return p.Number - 1
}

// NextNumber returns the next page number.
func (p Page) NextNumber() int {
	return p.Number + 1
}
