package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	ctxkit "Immob/pkg/context"
	"Immob/pkg/log"
	"Immob/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimit is a fixed-window limiter over redis: INCR on the window key,
// EXPIRE on first hit. scope separates limits per endpoint family. keyFn
// picks the caller identity (IP or user id). Redis being down fails open.
func RateLimit(rds *redis.Client, scope string, limit int, window time.Duration, keyFn func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := keyFn(c)
		if id == "" {
			c.Next()
			return
		}
		key := fmt.Sprintf("ratelimit:%s:%s:%d", scope, id, time.Now().Unix()/int64(window.Seconds()))

		count, err := rds.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.L.Warn("rate limit incr failed", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			rds.Expire(c.Request.Context(), key, window)
		}
		if count > int64(limit) {
			c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			response.Abort(c, http.StatusTooManyRequests, "too many requests, slow down")
			return
		}
		c.Next()
	}
}

// ByIP keys the limit on the client address.
func ByIP(c *gin.Context) string {
	return c.ClientIP()
}

// ByUser keys the limit on the authenticated user; anonymous requests fall
// back to the client address.
func ByUser(c *gin.Context) string {
	if uid, err := ctxkit.GetUserID(c); err == nil {
		return strconv.FormatInt(uid, 10)
	}
	return c.ClientIP()
}
