package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MobeenM17/SuswearGProject/pkg/jwt"
	"github.com/MobeenM17/SuswearGProject/pkg/redis"
	"github.com/MobeenM17/SuswearGProject/pkg/response"
)

// Session cookie names
const (
	CookieRole = "session_role"
	CookieUser = "session_user_id"
)

// Context keys set by Session
const (
	KeyUserID         = "user_id"
	KeyRole           = "role"
	KeySessionID      = "session_id"
	KeySessionExpires = "session_expires"
)

// Session session cookie middleware.
// Both cookies must verify and belong to the same login; a revoked session id
// is rejected when Redis is available. rdb may be nil.
func Session(jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleTok, err1 := c.Cookie(CookieRole)
		userTok, err2 := c.Cookie(CookieUser)
		if err1 != nil || err2 != nil || roleTok == "" || userTok == "" {
			response.Unauthorized(c, 10002, "not signed in")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseSession(roleTok, userTok)
		if err != nil {
			msg := "session invalid"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "session expired"
			}
			response.Unauthorized(c, 10002, msg)
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				// Redis down: keep serving, revocation is best-effort
				logger.Warn("session revocation check failed", zap.Error(err))
			} else if revoked {
				response.Unauthorized(c, 10002, "session revoked")
				c.Abort()
				return
			}
		}

		c.Set(KeyUserID, claims.UserID)
		c.Set(KeyRole, claims.Role)
		c.Set(KeySessionID, claims.ID)
		var expires time.Time
		if claims.ExpiresAt != nil {
			expires = claims.ExpiresAt.Time
		}
		c.Set(KeySessionExpires, expires)

		c.Next()
	}
}

// RoleAuth role guard; must run after Session
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(KeyRole)
		if !ok {
			response.Unauthorized(c, 10002, "not signed in")
			c.Abort()
			return
		}

		userRole, _ := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "access denied")
		c.Abort()
	}
}
