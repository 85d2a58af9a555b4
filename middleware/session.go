package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"espuma/utils"
)

// SessionTokenHeader carries the signed guest-session token.
const SessionTokenHeader = "X-Session-Token"

const sessionContextKey = "sessionID"

// SessionMiddleware resolves the caller's guest session. A valid token in the
// request header keeps its session id; anything else gets a fresh session and
// a newly minted token echoed back in the response header. Reservation
// ownership hangs off this id, so it is server-issued rather than trusted
// from the client.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		if token := c.GetHeader(SessionTokenHeader); token != "" {
			if sessionID, err := utils.ExtractSessionID(token); err == nil {
				c.Set(sessionContextKey, sessionID)
				c.Next()
				return
			}
			logger.Debug("session: rejecting invalid token, issuing new session")
		}

		sessionID := uuid.New().String()
		token, err := utils.GenerateSessionToken(sessionID, utils.SessionTokenTTL)
		if err != nil {
			logger.Error("session: failed to mint token", zap.Error(err))
			c.AbortWithStatusJSON(500, gin.H{"error": "failed to establish session"})
			return
		}
		c.Header(SessionTokenHeader, token)
		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}
