package errors

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotFound renders the generic not-found page and aborts the request.
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{})
	c.Abort()
}

// ServerError logs the failure and renders the generic error page. Validation
// enforced at the persistence layer (unique email, phone format, bad decimals)
// surfaces here rather than as field-level feedback.
func ServerError(c *gin.Context, err error) {
	log.Printf("server error: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"error": err.Error(),
	})
	c.Abort()
}
