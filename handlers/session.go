package handlers

import "github.com/gin-gonic/gin"

// SessionKey is the gin context key under which the session middleware stores
// the caller's session id.
const SessionKey = "sessionID"

// SessionID returns the caller's session id set by the session middleware.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
