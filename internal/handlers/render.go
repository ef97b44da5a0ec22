package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// addFlash queues a one-shot message for the next rendered page.
func addFlash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		// A lost flash is cosmetic; the redirect still happens.
		return
	}
}

// takeFlashes pops all queued flash messages.
func takeFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	flashes := session.Flashes()
	if len(flashes) > 0 {
		if err := session.Save(); err != nil {
			return nil
		}
	}

	messages := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}

// render draws a template with the flash messages merged into the context.
func render(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["flashes"] = takeFlashes(c)
	c.HTML(code, name, data)
}
