package middleware

import (
	"context"
	"net/http"
	"time"

	userRepo "vidly/database/repository/user"
	"vidly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AdminRequired gates privileged operations. The token's isAdmin claim can
// go stale between issuance and use, so the current flag is re-read from
// the user record, with a Redis cache in front to spare the database on
// repeat requests. Runs after AuthRequired.
func AdminRequired(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access denied. No token provided."})
			return
		}

		ctx := context.Background()
		cacheKey := utils.AuthCachePrefix + "admin:" + userID

		authCache := utils.GetAuthCacheClient()
		if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil {
			if cached == "1" {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied."})
			return
		} else if err != redis.Nil {
			utils.GetLogger().Warn("admin cache lookup failed, falling back to DB", zap.Error(err))
		}

		usr, err := users.GetByID(c.Request.Context(), userID)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}

		flag := "0"
		if usr.IsAdmin {
			flag = "1"
		}
		_ = authCache.Set(ctx, cacheKey, flag, time.Hour).Err()

		if !usr.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied."})
			return
		}
		c.Next()
	}
}
