package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionHeader = "X-Session-ID"

// sessionID resolves the caller's session. A missing or blank header mints a
// fresh UUID; either way the ID is echoed on the response so clients can pin
// it for subsequent requests.
func sessionID(c *gin.Context) string {
	id := strings.TrimSpace(c.GetHeader(sessionHeader))
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(sessionHeader, id)
	return id
}
